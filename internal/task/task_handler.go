package task

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus" // (logrus 표준 사용)
)

// TaskHandler는 상품별 공정 관리 화면 핸들러입니다.
type TaskHandler struct {
	service *Service
	store   *session.Store
}

// NewTaskHandler
func NewTaskHandler(service *Service, store *session.Store) *TaskHandler {
	return &TaskHandler{
		service: service,
		store:   store,
	}
}

// HandleShowTaskPage는 'GET /products/:productId/tasks' 요청을 처리합니다.
func (h *TaskHandler) HandleShowTaskPage(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return c.Status(400).SendString("유효하지 않은 상품 ID입니다.")
	}

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

	data, err := h.service.GetPageData(token, uint64(productID))
	if err != nil {
		log.Errorf("공정 페이지 데이터 조회 실패 (product=%d): %v", productID, err)
		return c.Status(500).SendString("데이터 조회 중 오류 발생")
	}

	return c.Render("tasks", fiber.Map{
		"Title":        "Bakehub | 공정 관리",
		"UserName":     c.Locals("account_name").(string),
		"UserRole":     c.Locals("user_role").(string),
		"Data":         data,
		"FlashSuccess": flashSuccess,
		"FlashError":   flashError,
	}, "layout")
}

// parseTaskForm은 생성/수정 폼을 Task로 변환합니다.
func parseTaskForm(c *fiber.Ctx, productID uint64) (Task, error) {
	form := new(struct {
		Name            string `form:"name"`
		ToolCategoryID  uint64 `form:"tool_category_id"`
		Seq             int    `form:"seq"`
		Duration        int    `form:"duration"`
		RequiredWorkers int    `form:"required_workers"`
	})
	if err := c.BodyParser(form); err != nil {
		return Task{}, err
	}
	return Task{
		ProductID:       productID,
		Name:            form.Name,
		ToolCategoryID:  form.ToolCategoryID,
		Seq:             form.Seq,
		Duration:        form.Duration,
		RequiredWorkers: form.RequiredWorkers,
	}, nil
}

func (h *TaskHandler) redirectBack(c *fiber.Ctx, productID int) error {
	return c.Redirect("/products/" + strconv.Itoa(productID) + "/tasks")
}

// HandleCreateTask는 'POST /products/:productId/tasks' 요청을 처리합니다.
func (h *TaskHandler) HandleCreateTask(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return c.Status(400).SendString("유효하지 않은 상품 ID입니다.")
	}

	t, err := parseTaskForm(c, uint64(productID))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("공정 폼 입력이 잘못되었습니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	if err := ValidateTask(t); err != nil {
		sess.Set("flash_error", err.Error())
		sess.Save()
		return h.redirectBack(c, productID)
	}

	if err := h.service.client.Create(token, t); err != nil {
		log.Errorf("공정 생성 실패 (product=%d): %v", productID, err)
		sess.Set("flash_error", "공정 등록 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "공정이 등록되었습니다.")
	}
	sess.Save()

	return h.redirectBack(c, productID)
}

// HandleUpdateTask는 'POST /products/:productId/tasks/edit/:id' 요청을 처리합니다.
func (h *TaskHandler) HandleUpdateTask(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	taskID, err2 := c.ParamsInt("id")
	if err != nil || err2 != nil || productID <= 0 || taskID <= 0 {
		return c.Status(400).SendString("유효하지 않은 요청입니다.")
	}

	t, err := parseTaskForm(c, uint64(productID))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("공정 폼 입력이 잘못되었습니다.")
	}
	t.ID = uint64(taskID)

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	if err := ValidateTask(t); err != nil {
		sess.Set("flash_error", err.Error())
		sess.Save()
		return h.redirectBack(c, productID)
	}

	if err := h.service.client.Update(token, t); err != nil {
		log.Errorf("공정(ID: %d) 수정 실패: %v", taskID, err)
		sess.Set("flash_error", "공정 수정 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "공정이 수정되었습니다.")
	}
	sess.Save()

	return h.redirectBack(c, productID)
}

// HandleDeleteTask는 'POST /products/:productId/tasks/delete/:id' 요청을 처리합니다.
func (h *TaskHandler) HandleDeleteTask(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	taskID, err2 := c.ParamsInt("id")
	if err != nil || err2 != nil || productID <= 0 || taskID <= 0 {
		return c.Status(400).SendString("유효하지 않은 요청입니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	if err := h.service.client.Delete(token, uint64(productID), uint64(taskID)); err != nil {
		log.Errorf("공정(ID: %d) 삭제 실패: %v", taskID, err)
		sess.Set("flash_error", "공정 삭제 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "공정이 삭제되었습니다.")
	}
	sess.Save()

	return h.redirectBack(c, productID)
}
