package search

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// SearchHandler는 통합 검색 화면 핸들러입니다.
type SearchHandler struct {
	service *Service
}

// NewSearchHandler
func NewSearchHandler(service *Service) *SearchHandler {
	return &SearchHandler{service: service}
}

// HandleSearch는 'GET /search' 요청을 처리합니다.
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	token := c.Locals("token").(string)
	userRole := c.Locals("user_role").(string)

	result, err := h.service.Search(token, c.Query("keyword"), userRole)
	if err != nil {
		log.Errorf("통합 검색 실패 (keyword: %s): %v", c.Query("keyword"), err)
		return c.Status(500).SendString("데이터 조회 중 오류 발생")
	}

	return c.Render("search", fiber.Map{
		"Title":    "Bakehub | 통합 검색",
		"UserName": c.Locals("account_name").(string),
		"UserRole": userRole,
		"Result":   result,
	}, "layout")
}
