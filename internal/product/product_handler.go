package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus" // (logrus 표준 사용)
)

// ProductHandler는 상품 관리 화면 핸들러입니다.
type ProductHandler struct {
	service *Service
	store   *session.Store
}

// NewProductHandler
func NewProductHandler(service *Service, store *session.Store) *ProductHandler {
	return &ProductHandler{
		service: service,
		store:   store,
	}
}

// HandleShowProductPage는 'GET /products' 요청을 처리합니다.
func (h *ProductHandler) HandleShowProductPage(c *fiber.Ctx) error {
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
	page, _ := strconv.Atoi(c.Query("page", "1"))

	data, err := h.service.GetListPageData(token, c.Query("keyword"), c.Query("sort"), page)
	if err != nil {
		log.Errorf("상품 페이지 데이터 조회 실패: %v", err)
		return c.Status(500).SendString("데이터 조회 중 오류 발생")
	}

	return c.Render("products", fiber.Map{
		"Title":        "Bakehub | 상품 관리",
		"UserName":     c.Locals("account_name").(string),
		"UserRole":     c.Locals("user_role").(string),
		"Data":         data,
		"FlashSuccess": flashSuccess,
		"FlashError":   flashError,
	}, "layout")
}

// HandleCreateProduct는 'POST /products' 요청을 처리합니다. (모달 생성)
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	form := new(struct {
		Name        string `form:"name"`
		Description string `form:"description"`
		Category    string `form:"category"`
	})
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("상품 폼 입력이 잘못되었습니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	if form.Name == "" {
		sess.Set("flash_error", "상품명을 입력해 주세요.")
		sess.Save()
		return c.Redirect("/products")
	}

	err := h.service.client.Create(token, form.Name, form.Description, form.Category)
	if err != nil {
		log.Errorf("상품 생성 실패: %v", err)
		sess.Set("flash_error", "상품 등록 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "상품이 등록되었습니다.")
	}
	sess.Save()

	return c.Redirect("/products")
}

// HandleUpdateProduct는 'POST /products/edit/:id' 요청을 처리합니다.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return c.Status(400).SendString("유효하지 않은 상품 ID입니다.")
	}

	form := new(struct {
		Name        string `form:"name"`
		Description string `form:"description"`
		Category    string `form:"category"`
	})
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("상품 폼 입력이 잘못되었습니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	err = h.service.client.Update(token, uint64(productID), form.Name, form.Description, form.Category)
	if err != nil {
		log.Errorf("상품(ID: %d) 수정 실패: %v", productID, err)
		sess.Set("flash_error", "상품 수정 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "상품이 수정되었습니다.")
	}
	sess.Save()

	return c.Redirect("/products")
}

// HandleDeleteProduct는 'POST /products/delete/:id' 요청을 처리합니다.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return c.Status(400).SendString("유효하지 않은 상품 ID입니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	if err := h.service.client.Delete(token, uint64(productID)); err != nil {
		log.Errorf("상품(ID: %d) 삭제 실패: %v", productID, err)
		sess.Set("flash_error", "상품 삭제 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "상품이 삭제되었습니다.")
	}
	sess.Save()

	return c.Redirect("/products")
}
