package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	log "github.com/sirupsen/logrus"
)

// DashboardHandler는 대시보드 관련 핸들러입니다.
type DashboardHandler struct {
	service *Service
	store   *session.Store
}

// NewDashboardHandler는 새 핸들러를 생성합니다.
func NewDashboardHandler(service *Service, store *session.Store) *DashboardHandler {
	return &DashboardHandler{service: service, store: store}
}

// HandleShowDashboard는 'GET /dashboard' 요청을 처리합니다.
func (h *DashboardHandler) HandleShowDashboard(c *fiber.Ctx) error {
	sess, _ := h.store.Get(c)
	flashSuccess := sess.Get("flash_success")
	flashError := sess.Get("flash_error")
	if flashSuccess != nil {
		sess.Delete("flash_success")
	}
	if flashError != nil {
		sess.Delete("flash_error")
	}
	sess.Save()

	token := c.Locals("token").(string)
	accountID := c.Locals("account_id").(uint64)

	data, err := h.service.GetDashboardData(token, accountID)
	if err != nil {
		log.Errorf("대시보드 데이터 조회 실패: %v", err)
		return c.Status(500).SendString("데이터 조회 중 오류 발생")
	}

	return c.Render("dashboard", fiber.Map{
		"Title":        "Bakehub | 대시보드",
		"UserName":     c.Locals("account_name").(string),
		"UserRole":     c.Locals("user_role").(string),
		"Data":         data,
		"FlashSuccess": flashSuccess,
		"FlashError":   flashError,
	}, "layout")
}
