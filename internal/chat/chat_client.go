package chat

import (
	"fmt"

	"github.com/google/uuid"

	"bakehub/internal/backend"
)

// Client는 채팅 관련 백엔드(REST) 엔드포인트 래퍼입니다.
// 실시간 수신은 STOMP 구독(chat_stomp.go)이 담당합니다.
type Client struct {
	api *backend.API
}

// NewClient
func NewClient(api *backend.API) *Client {
	return &Client{api: api}
}

// ListRooms
func (c *Client) ListRooms(token string) ([]ChatRoom, error) {
	var rooms []ChatRoom
	if err := c.api.DoJSON("GET", "/api/chats", token, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoom
func (c *Client) GetRoom(token string, roomID uint64) (*ChatRoom, error) {
	var room ChatRoom
	if err := c.api.DoJSON("GET", fmt.Sprintf("/api/chats/%d", roomID), token, nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// ListMessages는 채팅방 메시지 이력을 가져옵니다.
func (c *Client) ListMessages(token string, roomID uint64) ([]Message, error) {
	var messages []Message
	path := fmt.Sprintf("/api/chats/%d/messages", roomID)
	if err := c.api.DoJSON("GET", path, token, nil, &messages); err != nil {
		return nil, err
	}
	for i := range messages {
		for j := range messages[i].Attachments {
			messages[i].Attachments[j].URL = c.api.AttachmentURL(messages[i].Attachments[j].Path)
		}
	}
	return messages, nil
}

// SendText는 TEXT 메시지를 보냅니다. 전달은 브로커가 팬아웃합니다.
// clientMessageId는 새로고침 중복 전송을 백엔드가 걸러낼 수 있게 하는 멱등 키입니다.
func (c *Client) SendText(token string, roomID uint64, content string) error {
	body := map[string]string{
		"type":            MessageTypeText,
		"content":         content,
		"clientMessageId": uuid.NewString(),
	}
	path := fmt.Sprintf("/api/chats/%d/messages", roomID)
	return c.api.DoJSON("POST", path, token, body, nil)
}

// SendFile은 FILE 메시지(첨부 업로드)를 보냅니다.
func (c *Client) SendFile(token string, roomID uint64, files []backend.UploadFile) error {
	fields := map[string]string{
		"type":            MessageTypeFile,
		"clientMessageId": uuid.NewString(),
	}
	path := fmt.Sprintf("/api/chats/%d/messages", roomID)
	return c.api.DoMultipart("POST", path, token, fields, files, nil)
}
