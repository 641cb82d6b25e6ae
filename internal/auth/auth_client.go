package auth

import (
	"bakehub/internal/backend"
)

// Client는 계정/인증 관련 백엔드 엔드포인트 래퍼입니다.
type Client struct {
	api *backend.API
}

// NewClient
func NewClient(api *backend.API) *Client {
	return &Client{api: api}
}

// Login은 이메일/비밀번호로 백엔드 로그인을 수행하고 토큰+계정을 받습니다.
func (c *Client) Login(email, password string) (*LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var result LoginResult
	if err := c.api.DoJSON("POST", "/api/accounts/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
