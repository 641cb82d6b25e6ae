package calendar

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus" // (logrus 표준 사용)
)

// CalendarHandler는 생산 달력 화면 핸들러입니다.
type CalendarHandler struct {
	service *Service
}

// NewCalendarHandler
func NewCalendarHandler(service *Service) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// HandleShowCalendarPage는 'GET /calendar' 요청을 처리합니다.
// year/month 쿼리가 없거나 잘못되면 현재 달을 보여줍니다.
func (h *CalendarHandler) HandleShowCalendarPage(c *fiber.Ctx) error {
	now := time.Now()

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		year = now.Year()
	}
	monthNum, err := strconv.Atoi(c.Query("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		monthNum = int(now.Month())
	}
	month := time.Month(monthNum)

	token := c.Locals("token").(string)

	grid, err := h.service.GetMonthGrid(token, year, month, now)
	if err != nil {
		log.Errorf("달력 데이터 조회 실패: %v", err)
		return c.Status(500).SendString("데이터 조회 중 오류 발생")
	}

	prev := time.Date(year, month, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	next := time.Date(year, month, 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)

	return c.Render("calendar", fiber.Map{
		"Title":     "Bakehub | 생산 달력",
		"UserName":  c.Locals("account_name").(string),
		"UserRole":  c.Locals("user_role").(string),
		"Grid":      grid,
		"PrevYear":  prev.Year(),
		"PrevMonth": int(prev.Month()),
		"NextYear":  next.Year(),
		"NextMonth": int(next.Month()),
	}, "layout")
}
