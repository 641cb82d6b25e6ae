package chat

import (
	"log"
	"sync"
)

// Hub는 로그인 세션별 브로커 구독과 안읽음 카운터를 관리합니다.
// 구독은 로그인 시 1개 열리고 로그아웃 시 닫힙니다.
type Hub struct {
	client    *Client
	brokerURL string

	mu          sync.Mutex
	subscribers map[uint64]*subscriber       // accountID -> 구독
	unread      map[uint64]map[uint64]int    // accountID -> roomID -> count
	activeRoom  map[uint64]uint64            // accountID -> 열려 있는 방 (0이면 없음)
}

// NewHub
func NewHub(client *Client, brokerURL string) *Hub {
	return &Hub{
		client:      client,
		brokerURL:   brokerURL,
		subscribers: make(map[uint64]*subscriber),
		unread:      make(map[uint64]map[uint64]int),
		activeRoom:  make(map[uint64]uint64),
	}
}

// StartSession은 로그인 직후 호출되어 계정의 브로커 구독을 엽니다.
// 이미 구독이 있으면(중복 로그인) 기존 구독을 재사용합니다.
// 존재 확인과 등록은 같은 락 안에서 끝나야 계정당 구독 1개가 보장됩니다.
func (h *Hub) StartSession(accountID uint64, accountName, token string) {
	sub := &subscriber{
		accountID: accountID,
		token:     token,
		brokerURL: h.brokerURL,
		listRooms: h.listRoomIDs,
		onMessage: h.onMessage,
		done:      make(chan struct{}),
	}

	h.mu.Lock()
	if _, exists := h.subscribers[accountID]; exists {
		h.mu.Unlock()
		log.Printf("[INFO] [Chat] 기존 브로커 구독 재사용 (account=%d)", accountID)
		return
	}
	h.subscribers[accountID] = sub
	h.mu.Unlock()

	go sub.run()
	log.Printf("[INFO] [Chat] 브로커 세션 시작 (account=%s/%d)", accountName, accountID)
}

// listRoomIDs는 구독할 방 목록입니다. 접속할 때마다 새로 조회하므로
// 로그인 이후 참여한 방도 다음 연결부터 반영됩니다.
func (h *Hub) listRoomIDs(token string) ([]uint64, error) {
	rooms, err := h.client.ListRooms(token)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}
	return ids, nil
}

// StopSession은 로그아웃 시 구독을 내리고 카운터를 비웁니다.
func (h *Hub) StopSession(accountID uint64) {
	h.mu.Lock()
	sub, exists := h.subscribers[accountID]
	delete(h.subscribers, accountID)
	delete(h.unread, accountID)
	delete(h.activeRoom, accountID)
	h.mu.Unlock()

	if exists {
		sub.stop()
		log.Printf("[INFO] [Chat] 브로커 세션 종료 (account=%d)", accountID)
	}
}

// Shutdown은 서버 종료 시 모든 브로커 구독을 내립니다.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for accountID, sub := range h.subscribers {
		subs = append(subs, sub)
		delete(h.subscribers, accountID)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.stop()
	}
	log.Printf("[INFO] [Chat] 브로커 세션 전체 종료 (%d 건)", len(subs))
}

// onMessage는 브로커 수신 프레임의 안읽음 판정입니다.
// 본인이 보낸 메시지와 현재 열려 있는 방의 메시지는 세지 않습니다.
func (h *Hub) onMessage(accountID uint64, msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if msg.Talker.ID == accountID {
		return
	}
	if h.activeRoom[accountID] == msg.ChatRoomID && msg.ChatRoomID != 0 {
		return
	}

	perRoom, ok := h.unread[accountID]
	if !ok {
		perRoom = make(map[uint64]int)
		h.unread[accountID] = perRoom
	}
	perRoom[msg.ChatRoomID]++
}

// EnterRoom은 방 화면 진입 시 호출됩니다. 해당 방 카운터를 비웁니다.
func (h *Hub) EnterRoom(accountID, roomID uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.activeRoom[accountID] = roomID
	if perRoom, ok := h.unread[accountID]; ok {
		delete(perRoom, roomID)
	}
}

// LeaveRoom은 방 화면 이탈 시 호출됩니다.
func (h *Hub) LeaveRoom(accountID uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.activeRoom, accountID)
}

// UnreadByRoom은 방별 안읽음 수의 복사본을 반환합니다.
func (h *Hub) UnreadByRoom(accountID uint64) map[uint64]int {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[uint64]int, len(h.unread[accountID]))
	for roomID, count := range h.unread[accountID] {
		out[roomID] = count
	}
	return out
}

// UnreadTotal은 전체 안읽음 수입니다(사이드바 배지 폴링용).
func (h *Hub) UnreadTotal(accountID uint64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	total := 0
	for _, count := range h.unread[accountID] {
		total += count
	}
	return total
}
