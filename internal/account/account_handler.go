package account

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus" // (logrus 표준 사용)

	"bakehub/internal/backend"
)

// AccountHandler는 계정 관리/프로필 화면 핸들러입니다.
type AccountHandler struct {
	service *Service
	store   *session.Store
}

// NewAccountHandler
func NewAccountHandler(service *Service, store *session.Store) *AccountHandler {
	return &AccountHandler{
		service: service,
		store:   store,
	}
}

// HandleShowAccountPage는 'GET /admin/accounts' 요청을 처리합니다.
func (h *AccountHandler) HandleShowAccountPage(c *fiber.Ctx) error {
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

	data, err := h.service.GetPageData(token, c.Query("role"), c.Query("keyword"))
	if err != nil {
		log.Errorf("계정 페이지 데이터 조회 실패: %v", err)
		return c.Status(500).SendString("데이터 조회 중 오류 발생")
	}

	return c.Render("accounts", fiber.Map{
		"Title":        "Bakehub | 계정 관리",
		"UserName":     c.Locals("account_name").(string),
		"UserRole":     c.Locals("user_role").(string),
		"Data":         data,
		"FlashSuccess": flashSuccess,
		"FlashError":   flashError,
	}, "layout")
}

// HandleChangeRole은 'POST /admin/accounts/role' 요청을 처리합니다.
func (h *AccountHandler) HandleChangeRole(c *fiber.Ctx) error {
	form := new(struct {
		AccountID uint64 `form:"account_id"`
		NewRole   string `form:"new_role"`
	})
	if err := c.BodyParser(form); err != nil {
		return c.Status(400).SendString("역할 변경 폼 입력이 잘못되었습니다.")
	}

	token := c.Locals("token").(string)
	callerRole := c.Locals("user_role").(string)
	sess, _ := h.store.Get(c)

	err := h.service.ChangeRole(token, callerRole, form.AccountID, form.NewRole)
	if err != nil {
		log.Errorf("계정(ID: %d) 역할 변경 실패: %v", form.AccountID, err)
		sess.Set("flash_error", "역할 변경 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "계정(ID: "+strconv.FormatUint(form.AccountID, 10)+")의 역할이 "+form.NewRole+"(으)로 변경되었습니다.")
	}
	sess.Save()

	return c.Redirect("/admin/accounts")
}

// HandleUpdateProfileImage는 'POST /profile/image' 요청을 처리합니다.
func (h *AccountHandler) HandleUpdateProfileImage(c *fiber.Ctx) error {
	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	fh, err := c.FormFile("image")
	if err != nil {
		sess.Set("flash_error", "이미지 파일을 선택해 주세요.")
		sess.Save()
		return c.Redirect("/dashboard")
	}
	f, err := fh.Open()
	if err != nil {
		sess.Set("flash_error", "이미지 파일을 읽을 수 없습니다.")
		sess.Save()
		return c.Redirect("/dashboard")
	}
	content, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		sess.Set("flash_error", "이미지 파일을 읽을 수 없습니다.")
		sess.Save()
		return c.Redirect("/dashboard")
	}

	err = h.service.client.UpdateProfileImage(token, backend.UploadFile{
		Field:    "image",
		Name:     fh.Filename,
		Content:  content,
		MimeType: fh.Header.Get("Content-Type"),
	})
	if err != nil {
		log.Errorf("프로필 이미지 변경 실패: %v", err)
		sess.Set("flash_error", "프로필 이미지 변경 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "프로필 이미지가 변경되었습니다.")
	}
	sess.Save()

	return c.Redirect("/dashboard")
}
