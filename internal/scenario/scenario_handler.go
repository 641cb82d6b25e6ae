package scenario

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus" // (logrus 표준 사용)

	"bakehub/internal/product"
	"bakehub/internal/timeline"
)

// SimulationWatcher는 시뮬레이션 트리거 후 상태 폴링을 맡는 쪽(스케줄러)입니다.
type SimulationWatcher interface {
	Watch(scenarioID uint64, title, token string)
}

// ScenarioHandler는 시나리오/타임라인 화면 핸들러입니다.
type ScenarioHandler struct {
	service       *Service
	productClient *product.Client
	store         *session.Store
	watcher       SimulationWatcher
}

// NewScenarioHandler
func NewScenarioHandler(service *Service, pc *product.Client, store *session.Store, watcher SimulationWatcher) *ScenarioHandler {
	return &ScenarioHandler{
		service:       service,
		productClient: pc,
		store:         store,
		watcher:       watcher,
	}
}

// HandleShowScenarioPage는 'GET /scenarios' 요청을 처리합니다.
func (h *ScenarioHandler) HandleShowScenarioPage(c *fiber.Ctx) error {
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

	data, err := h.service.GetListPageData(token)
	if err != nil {
		log.Errorf("시나리오 페이지 데이터 조회 실패: %v", err)
		return c.Status(500).SendString("데이터 조회 중 오류 발생")
	}

	// 생성 모달의 품목 선택 목록
	products, err := h.productClient.List(token)
	if err != nil {
		log.Errorf("시나리오 생성용 상품 목록 조회 실패: %v", err)
		return c.Status(500).SendString("데이터 조회 중 오류 발생")
	}

	return c.Render("scenarios", fiber.Map{
		"Title":        "Bakehub | 생산 시나리오",
		"UserName":     c.Locals("account_name").(string),
		"UserRole":     c.Locals("user_role").(string),
		"Data":         data,
		"Products":     products,
		"FlashSuccess": flashSuccess,
		"FlashError":   flashError,
	}, "layout")
}

// HandleCreateScenario는 'POST /scenarios' 요청을 처리합니다.
func (h *ScenarioHandler) HandleCreateScenario(c *fiber.Ctx) error {
	form := new(struct {
		Title          string   `form:"title"`
		StartAt        string   `form:"start_at"` // "2006-01-02T15:04" (datetime-local)
		MaxWorkerCount int      `form:"max_worker_count"`
		ProductIDs     []uint64 `form:"product_id"`
		Qtys           []int    `form:"qty"`
	})
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("시나리오 폼 입력이 잘못되었습니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	startAt, err := time.Parse("2006-01-02T15:04", form.StartAt)
	if err != nil {
		sess.Set("flash_error", "시작 시각 형식이 잘못되었습니다.")
		sess.Save()
		return c.Redirect("/scenarios")
	}

	req := CreateRequest{
		Title:          form.Title,
		StartAt:        startAt,
		MaxWorkerCount: form.MaxWorkerCount,
	}
	for i, pid := range form.ProductIDs {
		qty := 0
		if i < len(form.Qtys) {
			qty = form.Qtys[i]
		}
		if pid == 0 && qty == 0 {
			continue // 빈 품목 행은 무시
		}
		req.Items = append(req.Items, ScenarioItem{ProductID: pid, Qty: qty})
	}

	if err := ValidateCreate(req); err != nil {
		sess.Set("flash_error", err.Error())
		sess.Save()
		return c.Redirect("/scenarios")
	}

	if err := h.service.client.Create(token, req); err != nil {
		log.Errorf("시나리오 생성 실패: %v", err)
		sess.Set("flash_error", "시나리오 생성 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "시나리오가 생성되었습니다.")
	}
	sess.Save()

	return c.Redirect("/scenarios")
}

// HandleDeleteScenario는 'POST /scenarios/delete/:id' 요청을 처리합니다.
func (h *ScenarioHandler) HandleDeleteScenario(c *fiber.Ctx) error {
	scenarioID, err := c.ParamsInt("id")
	if err != nil || scenarioID <= 0 {
		return c.Status(400).SendString("유효하지 않은 시나리오 ID입니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	if err := h.service.client.Delete(token, uint64(scenarioID)); err != nil {
		log.Errorf("시나리오(ID: %d) 삭제 실패: %v", scenarioID, err)
		sess.Set("flash_error", "시나리오 삭제 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "시나리오가 삭제되었습니다.")
	}
	sess.Save()

	return c.Redirect("/scenarios")
}

// HandleSimulate는 'POST /scenarios/:id/simulate' 요청을 처리합니다.
// 트리거 후 상태 폴링은 스케줄러(watcher)에 위임합니다.
func (h *ScenarioHandler) HandleSimulate(c *fiber.Ctx) error {
	scenarioID, err := c.ParamsInt("id")
	if err != nil || scenarioID <= 0 {
		return c.Status(400).SendString("유효하지 않은 시나리오 ID입니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	sc, err := h.service.client.Get(token, uint64(scenarioID))
	if err != nil {
		sess.Set("flash_error", "시나리오 조회 실패: "+err.Error())
		sess.Save()
		return c.Redirect("/scenarios")
	}
	if sc.Status == StatusSimulating {
		sess.Set("flash_error", "이미 시뮬레이션이 진행 중입니다.")
		sess.Save()
		return c.Redirect("/scenarios")
	}

	if err := h.service.client.Simulate(token, uint64(scenarioID)); err != nil {
		log.Errorf("시나리오(ID: %d) 시뮬레이션 트리거 실패: %v", scenarioID, err)
		sess.Set("flash_error", "시뮬레이션 요청 실패: "+err.Error())
		sess.Save()
		return c.Redirect("/scenarios")
	}

	h.watcher.Watch(uint64(scenarioID), sc.Title, token)
	log.Infof("시뮬레이션 요청 완료, 상태 폴링 등록 (ID: %d)", scenarioID)

	sess.Set("flash_success", "시뮬레이션이 시작되었습니다. 완료되면 알림이 발송됩니다.")
	sess.Save()
	return c.Redirect("/scenarios")
}

// HandleShowTimelinePage는 'GET /scenarios/:id/timeline' 요청을 처리합니다.
func (h *ScenarioHandler) HandleShowTimelinePage(c *fiber.Ctx) error {
	scenarioID, err := c.ParamsInt("id")
	if err != nil || scenarioID <= 0 {
		return c.Status(400).SendString("유효하지 않은 시나리오 ID입니다.")
	}

	token := c.Locals("token").(string)
	accountID := c.Locals("account_id").(uint64)

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

	data, err := h.service.GetDetailPageData(token, accountID, uint64(scenarioID))
	if err != nil {
		log.Errorf("시나리오(ID: %d) 타임라인 조회 실패: %v", scenarioID, err)
		sess.Set("flash_error", err.Error())
		sess.Save()
		return c.Redirect("/scenarios")
	}

	return c.Render("scenario_timeline", fiber.Map{
		"Title":        "Bakehub | " + data.Scenario.Title,
		"UserName":     c.Locals("account_name").(string),
		"UserRole":     c.Locals("user_role").(string),
		"Data":         data,
		"FlashSuccess": flashSuccess,
		"FlashError":   flashError,
	}, "layout")
}

// timelineRedirect는 화면 상태 변경 후 타임라인으로 돌아갑니다.
func timelineRedirect(c *fiber.Ctx, scenarioID int) error {
	return c.Redirect("/scenarios/" + strconv.Itoa(scenarioID) + "/timeline")
}

// HandleSetResolution은 'POST /scenarios/:id/view/resolution' 요청을 처리합니다.
func (h *ScenarioHandler) HandleSetResolution(c *fiber.Ctx) error {
	scenarioID, err := c.ParamsInt("id")
	if err != nil || scenarioID <= 0 {
		return c.Status(400).SendString("유효하지 않은 시나리오 ID입니다.")
	}
	resolution, _ := strconv.Atoi(c.FormValue("resolution"))

	accountID := c.Locals("account_id").(uint64)
	h.service.viewState.SetResolution(accountID, uint64(scenarioID), resolution)
	return timelineRedirect(c, scenarioID)
}

// HandleSetPanelWidth는 'POST /scenarios/:id/view/panel' 요청을 처리합니다.
func (h *ScenarioHandler) HandleSetPanelWidth(c *fiber.Ctx) error {
	scenarioID, err := c.ParamsInt("id")
	if err != nil || scenarioID <= 0 {
		return c.Status(400).SendString("유효하지 않은 시나리오 ID입니다.")
	}
	width, _ := strconv.Atoi(c.FormValue("width"))

	accountID := c.Locals("account_id").(uint64)
	h.service.viewState.SetPanelWidth(accountID, uint64(scenarioID), width)
	// 드래그 종료 시 fetch로 호출되므로 본문 없이 204
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleToggleGroup은 'POST /scenarios/:id/view/toggle' 요청을 처리합니다.
func (h *ScenarioHandler) HandleToggleGroup(c *fiber.Ctx) error {
	scenarioID, err := c.ParamsInt("id")
	if err != nil || scenarioID <= 0 {
		return c.Status(400).SendString("유효하지 않은 시나리오 ID입니다.")
	}
	groupKey := c.FormValue("group")
	if groupKey == "" {
		return c.Status(400).SendString("그룹 키가 없습니다.")
	}

	accountID := c.Locals("account_id").(uint64)
	h.service.viewState.ToggleGroup(accountID, uint64(scenarioID), groupKey)
	return timelineRedirect(c, scenarioID)
}

// HandleSetOverride는 'POST /scenarios/:id/view/override' 요청을 처리합니다.
// 배정 미리보기 덮어쓰기는 화면 전용이며 백엔드로 보내지 않습니다.
func (h *ScenarioHandler) HandleSetOverride(c *fiber.Ctx) error {
	scenarioID, err := c.ParamsInt("id")
	if err != nil || scenarioID <= 0 {
		return c.Status(400).SendString("유효하지 않은 시나리오 ID입니다.")
	}
	form := new(struct {
		Key    string `form:"key"`
		Worker string `form:"worker"`
		Tool   string `form:"tool"`
	})
	if err := c.BodyParser(form); err != nil || form.Key == "" {
		return c.Status(fiber.StatusBadRequest).SendString("덮어쓰기 폼 입력이 잘못되었습니다.")
	}

	accountID := c.Locals("account_id").(uint64)
	h.service.viewState.SetOverride(accountID, uint64(scenarioID), form.Key, timeline.Override{
		WorkerName: form.Worker,
		ToolName:   form.Tool,
	})
	return timelineRedirect(c, scenarioID)
}

// HandleExportTimeline은 'GET /scenarios/:id/timeline/export' 요청을 처리합니다.
func (h *ScenarioHandler) HandleExportTimeline(c *fiber.Ctx) error {
	scenarioID, err := c.ParamsInt("id")
	if err != nil || scenarioID <= 0 {
		return c.Status(400).SendString("유효하지 않은 시나리오 ID입니다.")
	}

	token := c.Locals("token").(string)
	accountID := c.Locals("account_id").(uint64)

	data, err := h.service.GetDetailPageData(token, accountID, uint64(scenarioID))
	if err != nil {
		log.Errorf("시나리오(ID: %d) 엑셀 내보내기 실패: %v", scenarioID, err)
		return c.Status(500).SendString("내보내기 데이터 조회 실패")
	}

	buf, err := ExportTimelineXLSX(data.Scenario, data.Layout)
	if err != nil {
		log.Errorf("시나리오(ID: %d) 엑셀 생성 실패: %v", scenarioID, err)
		return c.Status(500).SendString("엑셀 파일 생성 실패")
	}

	filename := fmt.Sprintf("timeline_%d.xlsx", scenarioID)
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
