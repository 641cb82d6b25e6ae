package account

import (
	"fmt"

	"bakehub/internal/auth"
	"bakehub/internal/backend"
)

// Client는 계정 관리(목록/권한 변경/프로필) 엔드포인트 래퍼입니다.
// 계정 모델은 auth 패키지의 Account를 그대로 씁니다.
type Client struct {
	api *backend.API
}

// NewClient
func NewClient(api *backend.API) *Client {
	return &Client{api: api}
}

// List는 전체 계정 목록을 가져옵니다. role이 비어있지 않으면 해당 역할만 요청합니다.
func (c *Client) List(token, role string) ([]auth.Account, error) {
	path := "/api/accounts"
	if role != "" {
		path += "?role=" + role
	}
	var accounts []auth.Account
	if err := c.api.DoJSON("GET", path, token, nil, &accounts); err != nil {
		return nil, err
	}
	for i := range accounts {
		accounts[i].ProfileURL = c.api.AttachmentURL(accounts[i].ProfileURL)
	}
	return accounts, nil
}

// ChangeRole은 계정의 역할을 변경합니다(백엔드가 최종 권한 검증).
func (c *Client) ChangeRole(token string, accountID uint64, newRole string) error {
	body := map[string]string{"role": newRole}
	return c.api.DoJSON("PUT", fmt.Sprintf("/api/accounts/%d/role", accountID), token, body, nil)
}

// UpdateProfileImage는 프로필 이미지를 업로드합니다.
func (c *Client) UpdateProfileImage(token string, file backend.UploadFile) error {
	return c.api.DoMultipart("PUT", "/api/accounts/me/profile-image", token, nil, []backend.UploadFile{file}, nil)
}
