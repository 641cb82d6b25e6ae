package chat

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/go-stomp/stomp/v3"
	"github.com/gorilla/websocket"
)

// 재연결 고정 지연. 브로커 클라이언트의 기본 재시도와 같은 단순 정책만 둡니다.
const reconnectDelay = 5 * time.Second

// wsStream은 gorilla 웹소켓 연결을 go-stomp가 요구하는
// io.ReadWriteCloser로 감쌉니다. (STOMP 프레임 1개 = WS 메시지 1개)
type wsStream struct {
	ws     *websocket.Conn
	reader io.Reader
}

func (w *wsStream) Read(p []byte) (int, error) {
	for {
		if w.reader == nil {
			_, r, err := w.ws.NextReader()
			if err != nil {
				return 0, err
			}
			w.reader = r
		}
		n, err := w.reader.Read(p)
		if err == io.EOF {
			w.reader = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

func (w *wsStream) Write(p []byte) (int, error) {
	if err := w.ws.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *wsStream) Close() error {
	return w.ws.Close()
}

// subscriber는 로그인 세션 1개의 브로커 연결입니다.
// /topic/user/{accountId}와 참여 중인 방의 /topic/chat/{id}를 구독합니다.
type subscriber struct {
	accountID uint64
	token     string
	brokerURL string
	listRooms func(token string) ([]uint64, error)
	onMessage func(accountID uint64, msg Message)
	done      chan struct{}
}

// run은 연결 유실 시 고정 지연으로 재접속하는 수신 루프입니다.
func (s *subscriber) run() {
	for {
		select {
		case <-s.done:
			return
		default:
		}

		if err := s.connectAndPump(); err != nil {
			log.Printf("[WARN] [Chat] 브로커 연결 끊김 (account=%d): %v", s.accountID, err)
		}

		select {
		case <-s.done:
			return
		case <-time.After(reconnectDelay):
		}
	}
}

// connectAndPump는 연결 1회 수명 동안 프레임을 수신합니다.
func (s *subscriber) connectAndPump() error {
	// 참여 중인 방 목록은 접속할 때마다 새로 조회합니다.
	roomIDs, err := s.listRooms(s.token)
	if err != nil {
		// 조회 실패는 치명적이지 않습니다. 개인 토픽만 구독하고 진행합니다.
		log.Printf("[ERROR] [Chat] 방 목록 조회 실패, 개인 토픽만 구독 (account=%d): %v", s.accountID, err)
		roomIDs = nil
	}

	ws, _, err := websocket.DefaultDialer.Dial(s.brokerURL, nil)
	if err != nil {
		return fmt.Errorf("웹소켓 연결 실패: %w", err)
	}

	conn, err := stomp.Connect(&wsStream{ws: ws},
		stomp.ConnOpt.Header("Authorization", "Bearer "+s.token),
		stomp.ConnOpt.HeartBeat(0, 0),
	)
	if err != nil {
		ws.Close()
		return fmt.Errorf("STOMP 핸드셰이크 실패: %w", err)
	}
	defer conn.Disconnect()

	// 개인 알림 채널 + 참여 중인 방 구독
	destinations := []string{fmt.Sprintf("/topic/user/%d", s.accountID)}
	for _, roomID := range roomIDs {
		destinations = append(destinations, fmt.Sprintf("/topic/chat/%d", roomID))
	}

	// connDone은 이 연결이 끝나면 닫혀, 대기 중인 펌프 고루틴을 모두 풉니다.
	frames := make(chan *stomp.Message)
	connDone := make(chan struct{})
	defer close(connDone)

	for _, dest := range destinations {
		sub, err := conn.Subscribe(dest, stomp.AckAuto)
		if err != nil {
			return fmt.Errorf("구독 실패 (%s): %w", dest, err)
		}
		go pumpFrames(sub.C, frames, connDone, s.done)
	}
	log.Printf("[INFO] [Chat] 브로커 구독 시작 (account=%d, topics=%d)", s.accountID, len(destinations))

	for {
		select {
		case <-s.done:
			return nil
		case frame := <-frames:
			if frame == nil {
				return fmt.Errorf("구독 채널이 닫혔습니다")
			}
			if frame.Err != nil {
				return frame.Err
			}
			var msg Message
			if err := json.Unmarshal(frame.Body, &msg); err != nil {
				// 형식이 다른 프레임은 버립니다. 수신 루프는 계속 돕니다.
				log.Printf("[WARN] [Chat] 메시지 프레임 디코딩 실패: %v", err)
				continue
			}
			s.onMessage(s.accountID, msg)
		}
	}
}

// pumpFrames는 구독 1개의 수신분을 공용 채널로 넘기고,
// 구독 채널이 닫히면 nil 한 건을 보내 연결 유실을 알립니다.
// connDone이 닫힌 뒤에는 어떤 경우에도 바로 끝납니다.
func pumpFrames(in chan *stomp.Message, frames chan<- *stomp.Message, connDone, done <-chan struct{}) {
	for msg := range in {
		select {
		case frames <- msg:
		case <-connDone:
			return
		case <-done:
			return
		}
	}
	select {
	case frames <- nil:
	case <-connDone:
	case <-done:
	}
}

func (s *subscriber) stop() {
	close(s.done)
}
