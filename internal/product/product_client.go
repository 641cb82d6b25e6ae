package product

import (
	"fmt"

	"bakehub/internal/backend"
)

// Client는 상품 관련 백엔드 엔드포인트 래퍼입니다.
type Client struct {
	api *backend.API
}

// NewClient
func NewClient(api *backend.API) *Client {
	return &Client{api: api}
}

// List는 상품 전체 목록을 가져옵니다.
func (c *Client) List(token string) ([]Product, error) {
	var products []Product
	if err := c.api.DoJSON("GET", "/api/products", token, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get
func (c *Client) Get(token string, productID uint64) (*Product, error) {
	var product Product
	if err := c.api.DoJSON("GET", fmt.Sprintf("/api/products/%d", productID), token, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Create
func (c *Client) Create(token string, name, description, category string) error {
	body := map[string]string{
		"name":        name,
		"description": description,
		"category":    category,
	}
	return c.api.DoJSON("POST", "/api/products", token, body, nil)
}

// Update
func (c *Client) Update(token string, productID uint64, name, description, category string) error {
	body := map[string]string{
		"name":        name,
		"description": description,
		"category":    category,
	}
	return c.api.DoJSON("PUT", fmt.Sprintf("/api/products/%d", productID), token, body, nil)
}

// Delete
func (c *Client) Delete(token string, productID uint64) error {
	return c.api.DoJSON("DELETE", fmt.Sprintf("/api/products/%d", productID), token, nil, nil)
}
