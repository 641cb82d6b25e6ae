package task

import (
	"fmt"

	"bakehub/internal/backend"
)

// Client는 공정 관련 백엔드 엔드포인트 래퍼입니다.
type Client struct {
	api *backend.API
}

// NewClient
func NewClient(api *backend.API) *Client {
	return &Client{api: api}
}

// ListByProduct는 상품 1종의 공정 목록을 가져옵니다.
func (c *Client) ListByProduct(token string, productID uint64) ([]Task, error) {
	var tasks []Task
	path := fmt.Sprintf("/api/products/%d/tasks", productID)
	if err := c.api.DoJSON("GET", path, token, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create
func (c *Client) Create(token string, t Task) error {
	body := map[string]interface{}{
		"name":            t.Name,
		"toolCategoryId":  t.ToolCategoryID,
		"seq":             t.Seq,
		"duration":        t.Duration,
		"requiredWorkers": t.RequiredWorkers,
	}
	path := fmt.Sprintf("/api/products/%d/tasks", t.ProductID)
	return c.api.DoJSON("POST", path, token, body, nil)
}

// Update
func (c *Client) Update(token string, t Task) error {
	body := map[string]interface{}{
		"name":            t.Name,
		"toolCategoryId":  t.ToolCategoryID,
		"seq":             t.Seq,
		"duration":        t.Duration,
		"requiredWorkers": t.RequiredWorkers,
	}
	path := fmt.Sprintf("/api/products/%d/tasks/%d", t.ProductID, t.ID)
	return c.api.DoJSON("PUT", path, token, body, nil)
}

// Delete
func (c *Client) Delete(token string, productID, taskID uint64) error {
	path := fmt.Sprintf("/api/products/%d/tasks/%d", productID, taskID)
	return c.api.DoJSON("DELETE", path, token, nil, nil)
}
