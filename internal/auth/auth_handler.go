package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus" // (logrus 표준 사용)

	"bakehub/internal/chat"
	"bakehub/internal/scenario"
)

// AuthHandler
type AuthHandler struct {
	service   *Service
	store     *session.Store
	hub       *chat.Hub                // 로그인/로그아웃 시 브로커 구독을 열고 닫습니다
	viewState *scenario.ViewStateStore // 로그아웃 시 타임라인 화면 상태를 버립니다
}

// NewAuthHandler
func NewAuthHandler(service *Service, store *session.Store, hub *chat.Hub, viewState *scenario.ViewStateStore) *AuthHandler {
	return &AuthHandler{
		service:   service,
		store:     store,
		hub:       hub,
		viewState: viewState,
	}
}

// --- [로그인] 플로우 ---

func (h *AuthHandler) HandleShowLoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Bakehub | 로그인",
	}, "layout")
}

func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	type loginForm struct {
		Email    string `form:"email"`
		Password string `form:"password"`
	}
	form := new(loginForm)
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("입력 값이 올바르지 않습니다.")
	}

	result, err := h.service.Login(LoginRequest{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		log.Warnf("로그인 처리 실패: %v", err)
		return c.Render("login", fiber.Map{
			"Title": "Bakehub | 로그인",
			"Error": err.Error(),
			"Email": form.Email,
		}, "layout")
	}

	sess, err := h.store.Get(c)
	if err != nil {
		log.Errorf("세션 가져오기 실패: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("세션 오류")
	}

	// 콘솔이 보관하는 유일한 영속 상태: 토큰 + 계정 프로필
	sess.Set("token", result.Token)
	sess.Set("account_id", result.Account.ID)
	sess.Set("account_name", result.Account.Name)
	sess.Set("account_role", result.Account.Role)
	sess.Set("profile_url", result.Account.ProfileURL)
	if err := sess.Save(); err != nil {
		log.Errorf("로그인 세션 저장 실패: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("세션 저장 오류")
	}

	// 로그인한 세션당 브로커 연결 1개 (채팅/알림 구독)
	h.hub.StartSession(result.Account.ID, result.Account.Name, result.Token)

	log.Infof("로그인 및 세션 저장 완료: %s", result.Account.Email)

	return c.Redirect("/dashboard")
}

// --- [로그아웃] 플로우 ---

func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		log.Errorf("로그아웃: 세션 가져오기 실패: %v", err)
		return c.Redirect("/auth/login")
	}

	// 세션 파기 전에 계정 ID를 확보해 브로커 구독과 화면 상태부터 내립니다.
	if accountID, ok := sess.Get("account_id").(uint64); ok {
		h.hub.StopSession(accountID)
		h.viewState.DropAccount(accountID)
	}

	if err := sess.Destroy(); err != nil {
		log.Errorf("로그아웃: 세션 파기 실패: %v", err)
		return c.Status(500).SendString("로그아웃 처리 중 오류 발생")
	}

	log.Info("사용자 로그아웃 성공")

	return c.Redirect("/auth/login")
}
