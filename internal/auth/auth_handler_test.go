package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakehub/internal/backend"
	"bakehub/internal/chat"
	"bakehub/internal/scenario"
)

func TestLogoutDropsViewState(t *testing.T) {
	store := session.New()
	hub := chat.NewHub(chat.NewClient(backend.New("http://127.0.0.1:1", "")), "ws://127.0.0.1:1/ws")
	viewState := scenario.NewViewStateStore()
	handler := NewAuthHandler(NewService(NewClient(backend.New("http://127.0.0.1:1", ""))), store, hub, viewState)

	app := fiber.New()
	app.Get("/seed", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		require.NoError(t, err)
		sess.Set("account_id", uint64(7))
		return sess.Save()
	})
	app.Get("/auth/logout", handler.HandleLogout)

	// 로그인 세션 동안 타임라인 눈금을 바꿔 둡니다.
	viewState.SetResolution(7, 3, 5)

	seedResp, err := app.Test(httptest.NewRequest("GET", "/seed", nil))
	require.NoError(t, err)
	cookie := seedResp.Header.Get("Set-Cookie")
	require.NotEmpty(t, cookie)

	req := httptest.NewRequest("GET", "/auth/logout", nil)
	req.Header.Set("Cookie", cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get("Location"))

	// 로그아웃 후에는 화면 상태가 기본값으로 돌아와야 합니다.
	resolution, _, _, _ := viewState.Snapshot(7, 3)
	assert.Equal(t, 15, resolution)
}
