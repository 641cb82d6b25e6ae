package chat

import (
	"testing"
	"time"

	"github.com/go-stomp/stomp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPumpFramesReleasedWhenConnectionEnds(t *testing.T) {
	frames := make(chan *stomp.Message)
	connDone := make(chan struct{})
	done := make(chan struct{})

	// 연결 유실 시나리오: 구독 채널이 전부 닫힌 상태에서
	// 수신 루프는 첫 nil만 받고 연결을 정리합니다.
	// 나머지 펌프는 connDone으로 전부 풀려야 합니다.
	const pumps = 4
	finished := make(chan struct{}, pumps)
	for i := 0; i < pumps; i++ {
		in := make(chan *stomp.Message)
		close(in)
		go func() {
			pumpFrames(in, frames, connDone, done)
			finished <- struct{}{}
		}()
	}

	require.Nil(t, <-frames)
	close(connDone)

	for i := 0; i < pumps; i++ {
		select {
		case <-finished:
		case <-time.After(time.Second):
			t.Fatal("펌프 고루틴이 종료되지 않았습니다")
		}
	}
}

func TestSubscriberRefreshesRoomsEachConnect(t *testing.T) {
	calls := 0
	s := &subscriber{
		accountID: 1,
		token:     "token-1",
		brokerURL: "ws://127.0.0.1:1/ws", // 접속은 항상 실패
		listRooms: func(string) ([]uint64, error) {
			calls++
			return []uint64{10}, nil
		},
		onMessage: func(uint64, Message) {},
		done:      make(chan struct{}),
	}

	// 접속 시도마다 방 목록을 새로 조회해야 중간에 참여한 방도 반영됩니다.
	require.Error(t, s.connectAndPump())
	require.Error(t, s.connectAndPump())

	assert.Equal(t, 2, calls)
}
