package chat

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakehub/internal/backend"
)

func newTestHub() *Hub {
	// 백엔드/브로커 둘 다 닿지 않는 주소. 구독 고루틴은 접속 실패만 반복합니다.
	client := NewClient(backend.New("http://127.0.0.1:1", ""))
	return NewHub(client, "ws://127.0.0.1:1/ws")
}

func TestUnreadCountsInboundMessages(t *testing.T) {
	hub := newTestHub()

	hub.onMessage(1, Message{ChatRoomID: 10, Talker: Talker{ID: 2}})
	hub.onMessage(1, Message{ChatRoomID: 10, Talker: Talker{ID: 2}})
	hub.onMessage(1, Message{ChatRoomID: 11, Talker: Talker{ID: 3}})

	assert.Equal(t, 3, hub.UnreadTotal(1))
	assert.Equal(t, map[uint64]int{10: 2, 11: 1}, hub.UnreadByRoom(1))
}

func TestUnreadIgnoresSelfAuthored(t *testing.T) {
	hub := newTestHub()

	hub.onMessage(1, Message{ChatRoomID: 10, Talker: Talker{ID: 1}})

	assert.Zero(t, hub.UnreadTotal(1))
}

func TestUnreadIgnoresActiveRoom(t *testing.T) {
	hub := newTestHub()

	hub.EnterRoom(1, 10)
	hub.onMessage(1, Message{ChatRoomID: 10, Talker: Talker{ID: 2}})
	hub.onMessage(1, Message{ChatRoomID: 11, Talker: Talker{ID: 2}})

	// 열려 있는 방(10)의 수신분은 세지 않고, 다른 방(11)은 셉니다.
	assert.Equal(t, 1, hub.UnreadTotal(1))

	// 방에서 나가면 다시 셉니다.
	hub.LeaveRoom(1)
	hub.onMessage(1, Message{ChatRoomID: 10, Talker: Talker{ID: 2}})
	assert.Equal(t, 2, hub.UnreadTotal(1))
}

func TestEnterRoomClearsCounter(t *testing.T) {
	hub := newTestHub()

	hub.onMessage(1, Message{ChatRoomID: 10, Talker: Talker{ID: 2}})
	hub.onMessage(1, Message{ChatRoomID: 11, Talker: Talker{ID: 2}})
	hub.EnterRoom(1, 10)

	assert.Equal(t, map[uint64]int{11: 1}, hub.UnreadByRoom(1))
}

func TestStartSessionConcurrentLoginsKeepOneSubscriber(t *testing.T) {
	hub := newTestHub()

	// 같은 계정의 다중 로그인(여러 탭/기기)이 동시에 들어와도
	// 구독은 1개만 만들어지고, 로그아웃 1번이면 전부 정리되어야 합니다.
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.StartSession(1, "기획자", "token-1")
		}()
	}
	wg.Wait()

	hub.mu.Lock()
	count := len(hub.subscribers)
	hub.mu.Unlock()
	require.Equal(t, 1, count)

	hub.StopSession(1)

	hub.mu.Lock()
	count = len(hub.subscribers)
	hub.mu.Unlock()
	assert.Zero(t, count)
}

func TestStopSessionDropsState(t *testing.T) {
	hub := newTestHub()

	hub.onMessage(1, Message{ChatRoomID: 10, Talker: Talker{ID: 2}})
	hub.StopSession(1)

	assert.Zero(t, hub.UnreadTotal(1))
}

func TestGroupMessagesByTalkerAndMinute(t *testing.T) {
	base := time.Date(2026, 1, 26, 5, 0, 10, 0, time.UTC)
	messages := []Message{
		{ID: 1, Talker: Talker{ID: 2, Name: "B"}, TalkedAt: base},
		{ID: 2, Talker: Talker{ID: 2, Name: "B"}, TalkedAt: base.Add(20 * time.Second)}, // 같은 분
		{ID: 3, Talker: Talker{ID: 2, Name: "B"}, TalkedAt: base.Add(2 * time.Minute)},  // 다른 분
		{ID: 4, Talker: Talker{ID: 1, Name: "나"}, TalkedAt: base.Add(2 * time.Minute)}, // 발신자 변경
	}

	groups := GroupMessages(messages, 1)

	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Messages, 2)
	assert.False(t, groups[0].Mine)
	assert.Len(t, groups[1].Messages, 1)
	assert.True(t, groups[2].Mine)
}

func TestGroupMessagesEmpty(t *testing.T) {
	assert.Empty(t, GroupMessages(nil, 1))
}
