package scenario

import (
	"fmt"
	"time"

	"bakehub/internal/backend"
)

// Client는 시나리오 관련 백엔드 엔드포인트 래퍼입니다.
type Client struct {
	api *backend.API
}

// NewClient
func NewClient(api *backend.API) *Client {
	return &Client{api: api}
}

// List
func (c *Client) List(token string) ([]Scenario, error) {
	var scenarios []Scenario
	if err := c.api.DoJSON("GET", "/api/scenarios", token, nil, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}

// Get
func (c *Client) Get(token string, scenarioID uint64) (*Scenario, error) {
	var s Scenario
	if err := c.api.DoJSON("GET", fmt.Sprintf("/api/scenarios/%d", scenarioID), token, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateRequest는 시나리오 생성 요청 본문입니다.
type CreateRequest struct {
	Title          string         `json:"title"`
	StartAt        time.Time      `json:"startAt"`
	MaxWorkerCount int            `json:"maxWorkerCount"`
	Items          []ScenarioItem `json:"items"`
}

// Create
func (c *Client) Create(token string, req CreateRequest) error {
	return c.api.DoJSON("POST", "/api/scenarios", token, req, nil)
}

// Delete는 시나리오를 삭제합니다. 배정(스케줄)도 백엔드에서 함께 삭제됩니다.
func (c *Client) Delete(token string, scenarioID uint64) error {
	return c.api.DoJSON("DELETE", fmt.Sprintf("/api/scenarios/%d", scenarioID), token, nil, nil)
}

// Simulate는 백엔드 시뮬레이션을 트리거합니다. 결과는 상태 폴링으로 확인합니다.
func (c *Client) Simulate(token string, scenarioID uint64) error {
	return c.api.DoJSON("POST", fmt.Sprintf("/api/scenarios/%d/simulate", scenarioID), token, nil, nil)
}

// GetStatus는 시나리오 상태만 가볍게 조회합니다(폴링용).
func (c *Client) GetStatus(token string, scenarioID uint64) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.api.DoJSON("GET", fmt.Sprintf("/api/scenarios/%d/status", scenarioID), token, nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// GetSchedules는 시뮬레이션 결과 배정을 상품별로 묶어 가져옵니다.
func (c *Client) GetSchedules(token string, scenarioID uint64) ([]ScheduledProduct, error) {
	var products []ScheduledProduct
	path := fmt.Sprintf("/api/scenarios/%d/schedules", scenarioID)
	if err := c.api.DoJSON("GET", path, token, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
