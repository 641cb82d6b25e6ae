package chat

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus" // (logrus 표준 사용)

	"bakehub/internal/backend"
)

// ChatHandler는 채팅 화면 핸들러입니다.
type ChatHandler struct {
	client *Client
	hub    *Hub
	store  *session.Store
}

// NewChatHandler
func NewChatHandler(client *Client, hub *Hub, store *session.Store) *ChatHandler {
	return &ChatHandler{
		client: client,
		hub:    hub,
		store:  store,
	}
}

// HandleShowRoomListPage는 'GET /chats' 요청을 처리합니다.
func (h *ChatHandler) HandleShowRoomListPage(c *fiber.Ctx) error {
	token := c.Locals("token").(string)
	accountID := c.Locals("account_id").(uint64)

	// 방 목록 화면으로 나오면 "열려 있는 방" 상태를 해제합니다.
	h.hub.LeaveRoom(accountID)

	rooms, err := h.client.ListRooms(token)
	if err != nil {
		log.Errorf("채팅방 목록 조회 실패: %v", err)
		return c.Status(500).SendString("데이터 조회 중 오류 발생")
	}

	// 백엔드 카운터에 실시간 수신분을 더해 표시합니다.
	live := h.hub.UnreadByRoom(accountID)
	for i := range rooms {
		rooms[i].UnreadCount += live[rooms[i].ID]
	}

	return c.Render("chat_rooms", fiber.Map{
		"Title":    "Bakehub | 메시지",
		"UserName": c.Locals("account_name").(string),
		"UserRole": c.Locals("user_role").(string),
		"Rooms":    rooms,
	}, "layout")
}

// HandleShowRoomPage는 'GET /chats/:id' 요청을 처리합니다.
func (h *ChatHandler) HandleShowRoomPage(c *fiber.Ctx) error {
	roomID, err := c.ParamsInt("id")
	if err != nil || roomID <= 0 {
		return c.Status(400).SendString("유효하지 않은 채팅방 ID입니다.")
	}

	token := c.Locals("token").(string)
	accountID := c.Locals("account_id").(uint64)

	// 방 진입: 이 방의 수신분은 안읽음으로 세지 않습니다.
	h.hub.EnterRoom(accountID, uint64(roomID))

	room, err := h.client.GetRoom(token, uint64(roomID))
	if err != nil {
		log.Errorf("채팅방(ID: %d) 조회 실패: %v", roomID, err)
		return c.Redirect("/chats")
	}
	messages, err := h.client.ListMessages(token, uint64(roomID))
	if err != nil {
		log.Errorf("채팅방(ID: %d) 메시지 조회 실패: %v", roomID, err)
		return c.Redirect("/chats")
	}

	return c.Render("chat_room", fiber.Map{
		"Title":    "Bakehub | " + room.Name,
		"UserName": c.Locals("account_name").(string),
		"UserRole": c.Locals("user_role").(string),
		"Room":     room,
		"Groups":   GroupMessages(messages, accountID),
	}, "layout")
}

// HandleSendMessage는 'POST /chats/:id/messages' 요청을 처리합니다.
func (h *ChatHandler) HandleSendMessage(c *fiber.Ctx) error {
	roomID, err := c.ParamsInt("id")
	if err != nil || roomID <= 0 {
		return c.Status(400).SendString("유효하지 않은 채팅방 ID입니다.")
	}

	token := c.Locals("token").(string)
	content := c.FormValue("content")
	if content == "" {
		return c.Redirect("/chats/" + strconv.Itoa(roomID))
	}

	if err := h.client.SendText(token, uint64(roomID), content); err != nil {
		log.Errorf("메시지 전송 실패 (room=%d): %v", roomID, err)
		sess, _ := h.store.Get(c)
		sess.Set("flash_error", "메시지 전송 실패: "+err.Error())
		sess.Save()
	}

	return c.Redirect("/chats/" + strconv.Itoa(roomID))
}

// HandleSendFile은 'POST /chats/:id/files' 요청을 처리합니다.
func (h *ChatHandler) HandleSendFile(c *fiber.Ctx) error {
	roomID, err := c.ParamsInt("id")
	if err != nil || roomID <= 0 {
		return c.Status(400).SendString("유효하지 않은 채팅방 ID입니다.")
	}

	token := c.Locals("token").(string)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Redirect("/chats/" + strconv.Itoa(roomID))
	}
	var uploads []backend.UploadFile
	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			continue
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			continue
		}
		uploads = append(uploads, backend.UploadFile{
			Field:    "files",
			Name:     fh.Filename,
			Content:  content,
			MimeType: fh.Header.Get("Content-Type"),
		})
	}
	if len(uploads) == 0 {
		return c.Redirect("/chats/" + strconv.Itoa(roomID))
	}

	if err := h.client.SendFile(token, uint64(roomID), uploads); err != nil {
		log.Errorf("파일 메시지 전송 실패 (room=%d): %v", roomID, err)
		sess, _ := h.store.Get(c)
		sess.Set("flash_error", "파일 전송 실패: "+err.Error())
		sess.Save()
	}

	return c.Redirect("/chats/" + strconv.Itoa(roomID))
}

// HandleUnreadBadge는 'GET /chats/unread' 요청을 처리합니다.
// 사이드바 배지가 주기적으로 폴링하는 JSON 엔드포인트입니다.
func (h *ChatHandler) HandleUnreadBadge(c *fiber.Ctx) error {
	accountID := c.Locals("account_id").(uint64)
	return c.JSON(fiber.Map{
		"total": h.hub.UnreadTotal(accountID),
	})
}
