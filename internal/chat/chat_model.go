package chat

import (
	"time"
)

// 메시지 종류
const (
	MessageTypeText = "TEXT"
	MessageTypeFile = "FILE"
)

// Talker는 메시지 발신자 요약입니다.
type Talker struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl"`
}

// Attachment는 FILE 메시지의 첨부입니다.
type Attachment struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"-"`
}

// Message는 채팅 메시지 1건입니다. REST 이력 조회와
// 브로커(STOMP) 실시간 프레임이 같은 형태를 공유합니다.
type Message struct {
	ID          uint64       `json:"id"`
	ChatRoomID  uint64       `json:"chatRoomId"`
	Type        string       `json:"type"` // TEXT | FILE
	Content     string       `json:"content"`
	Attachments []Attachment `json:"attachments"`
	Talker      Talker       `json:"talker"`
	TalkedAt    time.Time    `json:"talkedAt"`
}

// ChatRoom은 채팅방 요약입니다.
type ChatRoom struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	Participants []Talker `json:"participants"`
	LastMessage  *Message `json:"lastMessage"`
	UnreadCount  int      `json:"unreadCount"`
}
