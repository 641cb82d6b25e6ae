package tool

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus" // (logrus 표준 사용)
)

// ToolHandler는 도구/도구 분류 관리 화면 핸들러입니다.
type ToolHandler struct {
	service *Service
	store   *session.Store
}

// NewToolHandler
func NewToolHandler(service *Service, store *session.Store) *ToolHandler {
	return &ToolHandler{
		service: service,
		store:   store,
	}
}

// flashAndRedirect는 결과 메시지를 플래시로 남기고 목록으로 돌아갑니다.
func (h *ToolHandler) flashAndRedirect(c *fiber.Ctx, err error, success string) error {
	sess, _ := h.store.Get(c)
	if err != nil {
		sess.Set("flash_error", err.Error())
	} else {
		sess.Set("flash_success", success)
	}
	sess.Save()
	return c.Redirect("/tools")
}

// HandleShowToolPage는 'GET /tools' 요청을 처리합니다.
func (h *ToolHandler) HandleShowToolPage(c *fiber.Ctx) error {
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

	data, err := h.service.GetPageData(token)
	if err != nil {
		log.Errorf("도구 페이지 데이터 조회 실패: %v", err)
		return c.Status(500).SendString("데이터 조회 중 오류 발생")
	}

	return c.Render("tools", fiber.Map{
		"Title":        "Bakehub | 도구 관리",
		"UserName":     c.Locals("account_name").(string),
		"UserRole":     c.Locals("user_role").(string),
		"Data":         data,
		"FlashSuccess": flashSuccess,
		"FlashError":   flashError,
	}, "layout")
}

// HandleCreateCategory는 'POST /tools/categories' 요청을 처리합니다.
func (h *ToolHandler) HandleCreateCategory(c *fiber.Ctx) error {
	form := new(struct {
		Name        string `form:"name"`
		Description string `form:"description"`
	})
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("분류 폼 입력이 잘못되었습니다.")
	}

	token := c.Locals("token").(string)
	err := h.service.CreateCategory(token, form.Name, form.Description)
	if err != nil {
		log.Errorf("도구 분류 생성 실패: %v", err)
	}
	return h.flashAndRedirect(c, err, "도구 분류가 등록되었습니다.")
}

// HandleUpdateCategory는 'POST /tools/categories/edit/:id' 요청을 처리합니다.
func (h *ToolHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID <= 0 {
		return c.Status(400).SendString("유효하지 않은 분류 ID입니다.")
	}
	form := new(struct {
		Name        string `form:"name"`
		Description string `form:"description"`
	})
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("분류 폼 입력이 잘못되었습니다.")
	}

	token := c.Locals("token").(string)
	updateErr := h.service.UpdateCategory(token, uint64(categoryID), form.Name, form.Description)
	if updateErr != nil {
		log.Errorf("도구 분류(ID: %d) 수정 실패: %v", categoryID, updateErr)
	}
	return h.flashAndRedirect(c, updateErr, "도구 분류가 수정되었습니다.")
}

// HandleDeleteCategory는 'POST /tools/categories/delete/:id' 요청을 처리합니다.
func (h *ToolHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID <= 0 {
		return c.Status(400).SendString("유효하지 않은 분류 ID입니다.")
	}

	token := c.Locals("token").(string)
	deleteErr := h.service.DeleteCategory(token, uint64(categoryID))
	if deleteErr != nil {
		log.Errorf("도구 분류(ID: %d) 삭제 실패: %v", categoryID, deleteErr)
	}
	return h.flashAndRedirect(c, deleteErr, "도구 분류가 삭제되었습니다.")
}

// HandleCreateTool는 'POST /tools' 요청을 처리합니다.
func (h *ToolHandler) HandleCreateTool(c *fiber.Ctx) error {
	form := new(struct {
		CategoryID  uint64 `form:"category_id"`
		Name        string `form:"name"`
		Description string `form:"description"`
	})
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("도구 폼 입력이 잘못되었습니다.")
	}

	token := c.Locals("token").(string)
	err := h.service.CreateTool(token, form.CategoryID, form.Name, form.Description)
	if err != nil {
		log.Errorf("도구 생성 실패: %v", err)
	}
	return h.flashAndRedirect(c, err, "도구가 등록되었습니다.")
}

// HandleUpdateTool는 'POST /tools/edit/:id' 요청을 처리합니다.
func (h *ToolHandler) HandleUpdateTool(c *fiber.Ctx) error {
	toolID, err := c.ParamsInt("id")
	if err != nil || toolID <= 0 {
		return c.Status(400).SendString("유효하지 않은 도구 ID입니다.")
	}
	form := new(struct {
		CategoryID  uint64 `form:"category_id"`
		Name        string `form:"name"`
		Description string `form:"description"`
	})
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("도구 폼 입력이 잘못되었습니다.")
	}

	token := c.Locals("token").(string)
	updateErr := h.service.UpdateTool(token, uint64(toolID), form.CategoryID, form.Name, form.Description)
	if updateErr != nil {
		log.Errorf("도구(ID: %d) 수정 실패: %v", toolID, updateErr)
	}
	return h.flashAndRedirect(c, updateErr, "도구가 수정되었습니다.")
}

// HandleDeleteTool는 'POST /tools/delete/:id' 요청을 처리합니다.
func (h *ToolHandler) HandleDeleteTool(c *fiber.Ctx) error {
	toolID, err := c.ParamsInt("id")
	if err != nil || toolID <= 0 {
		return c.Status(400).SendString("유효하지 않은 도구 ID입니다.")
	}

	token := c.Locals("token").(string)
	deleteErr := h.service.DeleteTool(token, uint64(toolID))
	if deleteErr != nil {
		log.Errorf("도구(ID: %d) 삭제 실패: %v", toolID, deleteErr)
	}
	return h.flashAndRedirect(c, deleteErr, "도구가 삭제되었습니다.")
}
