package tool

import (
	"fmt"

	"bakehub/internal/backend"
)

// Client는 도구/도구 분류 관련 백엔드 엔드포인트 래퍼입니다.
type Client struct {
	api *backend.API
}

// NewClient
func NewClient(api *backend.API) *Client {
	return &Client{api: api}
}

// --- 도구 분류 ---

// ListCategories
func (c *Client) ListCategories(token string) ([]ToolCategory, error) {
	var categories []ToolCategory
	if err := c.api.DoJSON("GET", "/api/tool-categories", token, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory
func (c *Client) CreateCategory(token, name, description string) error {
	body := map[string]string{
		"name":        name,
		"description": description,
	}
	return c.api.DoJSON("POST", "/api/tool-categories", token, body, nil)
}

// UpdateCategory
func (c *Client) UpdateCategory(token string, categoryID uint64, name, description string) error {
	body := map[string]string{
		"name":        name,
		"description": description,
	}
	return c.api.DoJSON("PUT", fmt.Sprintf("/api/tool-categories/%d", categoryID), token, body, nil)
}

// DeleteCategory
func (c *Client) DeleteCategory(token string, categoryID uint64) error {
	return c.api.DoJSON("DELETE", fmt.Sprintf("/api/tool-categories/%d", categoryID), token, nil, nil)
}

// --- 도구 ---

// ListTools
func (c *Client) ListTools(token string) ([]Tool, error) {
	var tools []Tool
	if err := c.api.DoJSON("GET", "/api/tools", token, nil, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// CreateTool
func (c *Client) CreateTool(token string, categoryID uint64, name, description string) error {
	body := map[string]interface{}{
		"toolCategoryId": categoryID,
		"name":           name,
		"description":    description,
	}
	return c.api.DoJSON("POST", "/api/tools", token, body, nil)
}

// UpdateTool
func (c *Client) UpdateTool(token string, toolID, categoryID uint64, name, description string) error {
	body := map[string]interface{}{
		"toolCategoryId": categoryID,
		"name":           name,
		"description":    description,
	}
	return c.api.DoJSON("PUT", fmt.Sprintf("/api/tools/%d", toolID), token, body, nil)
}

// DeleteTool
func (c *Client) DeleteTool(token string, toolID uint64) error {
	return c.api.DoJSON("DELETE", fmt.Sprintf("/api/tools/%d", toolID), token, nil, nil)
}
