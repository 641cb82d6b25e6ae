package board

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus" // (logrus 표준 사용)

	"bakehub/internal/backend"
)

// BoardHandler는 게시판 1종(공지 또는 자유게시판)의 핸들러입니다.
// main.go가 종류별로 2개 조립해 각각의 경로에 붙입니다.
type BoardHandler struct {
	service  *Service
	store    *session.Store
	kind     Kind
	basePath string // "/notices" | "/community"
	title    string // 화면 타이틀
}

// NewBoardHandler
func NewBoardHandler(service *Service, store *session.Store, kind Kind, basePath, title string) *BoardHandler {
	return &BoardHandler{
		service:  service,
		store:    store,
		kind:     kind,
		basePath: basePath,
		title:    title,
	}
}

// HandleShowListPage는 'GET {basePath}' 요청을 처리합니다.
func (h *BoardHandler) HandleShowListPage(c *fiber.Ctx) error {
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
	userRole := c.Locals("user_role").(string)
	page, _ := strconv.Atoi(c.Query("page", "1"))
	keyword := c.Query("keyword")

	data, err := h.service.GetListPageData(token, h.kind, keyword, page)
	if err != nil {
		log.Errorf("게시판 목록 조회 실패 (%s): %v", h.kind, err)
		return c.Status(500).SendString("데이터 조회 중 오류 발생")
	}

	return c.Render("board_list", fiber.Map{
		"Title":        "Bakehub | " + h.title,
		"BoardTitle":   h.title,
		"BasePath":     h.basePath,
		"UserName":     c.Locals("account_name").(string),
		"UserRole":     userRole,
		"CanWrite":     h.service.CanWrite(h.kind, userRole),
		"Data":         data,
		"FlashSuccess": flashSuccess,
		"FlashError":   flashError,
	}, "layout")
}

// HandleShowDetailPage는 'GET {basePath}/:id' 요청을 처리합니다.
func (h *BoardHandler) HandleShowDetailPage(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil || postID <= 0 {
		return c.Status(400).SendString("유효하지 않은 게시글 ID입니다.")
	}

	token := c.Locals("token").(string)
	accountID := c.Locals("account_id").(uint64)
	userRole := c.Locals("user_role").(string)

	sess, _ := h.store.Get(c)
	flashError := sess.Get("flash_error")
	if flashError != nil {
		sess.Delete("flash_error")
		sess.Save()
	}

	data, err := h.service.GetDetailPageData(token, h.kind, uint64(postID))
	if err != nil {
		log.Errorf("게시글(ID: %d) 상세 조회 실패: %v", postID, err)
		sess.Set("flash_error", err.Error())
		sess.Save()
		return c.Redirect(h.basePath)
	}

	return c.Render("board_detail", fiber.Map{
		"Title":      "Bakehub | " + data.Post.Title,
		"BoardTitle": h.title,
		"BasePath":   h.basePath,
		"UserName":   c.Locals("account_name").(string),
		"UserRole":   userRole,
		"CanEdit":    h.service.CanEdit(data.Post, accountID, userRole),
		"Data":       data,
		"FlashError": flashError,
	}, "layout")
}

// HandleShowWritePage는 'GET {basePath}/write' 요청을 처리합니다.
func (h *BoardHandler) HandleShowWritePage(c *fiber.Ctx) error {
	userRole := c.Locals("user_role").(string)
	if !h.service.CanWrite(h.kind, userRole) {
		return c.Redirect(h.basePath)
	}
	return c.Render("board_form", fiber.Map{
		"Title":      "Bakehub | 글쓰기",
		"BoardTitle": h.title,
		"BasePath":   h.basePath,
		"UserName":   c.Locals("account_name").(string),
		"UserRole":   userRole,
	}, "layout")
}

// collectUploads는 폼의 첨부파일들을 백엔드 업로드 형식으로 읽어들입니다.
func collectUploads(c *fiber.Ctx) ([]backend.UploadFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// 첨부 없는 단순 폼 전송도 허용
		return nil, nil
	}
	var uploads []backend.UploadFile
	for _, fh := range form.File["attachments"] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, backend.UploadFile{
			Field:    "attachments",
			Name:     fh.Filename,
			Content:  content,
			MimeType: fh.Header.Get("Content-Type"),
		})
	}
	return uploads, nil
}

// HandleCreatePost는 'POST {basePath}' 요청을 처리합니다.
func (h *BoardHandler) HandleCreatePost(c *fiber.Ctx) error {
	token := c.Locals("token").(string)
	userRole := c.Locals("user_role").(string)
	sess, _ := h.store.Get(c)

	title := c.FormValue("title")
	content := c.FormValue("content")

	uploads, err := collectUploads(c)
	if err != nil {
		log.Errorf("첨부파일 읽기 실패: %v", err)
		sess.Set("flash_error", "첨부파일을 읽을 수 없습니다.")
		sess.Save()
		return c.Redirect(h.basePath)
	}

	err = h.service.CreatePost(token, h.kind, userRole, title, content, uploads)
	if err != nil {
		log.Errorf("게시글 등록 실패: %v", err)
		sess.Set("flash_error", "등록 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "게시글이 등록되었습니다.")
	}
	sess.Save()

	return c.Redirect(h.basePath)
}

// HandleUpdatePost는 'POST {basePath}/edit/:id' 요청을 처리합니다.
func (h *BoardHandler) HandleUpdatePost(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil || postID <= 0 {
		return c.Status(400).SendString("유효하지 않은 게시글 ID입니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	uploads, err := collectUploads(c)
	if err != nil {
		log.Errorf("첨부파일 읽기 실패: %v", err)
		sess.Set("flash_error", "첨부파일을 읽을 수 없습니다.")
		sess.Save()
		return c.Redirect(h.basePath)
	}

	err = h.service.client.Update(token, h.kind, uint64(postID), c.FormValue("title"), c.FormValue("content"), uploads)
	if err != nil {
		log.Errorf("게시글(ID: %d) 수정 실패: %v", postID, err)
		sess.Set("flash_error", "수정 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "게시글이 수정되었습니다.")
	}
	sess.Save()

	return c.Redirect(h.basePath + "/" + strconv.Itoa(postID))
}

// HandleDeletePost는 'POST {basePath}/delete/:id' 요청을 처리합니다.
func (h *BoardHandler) HandleDeletePost(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil || postID <= 0 {
		return c.Status(400).SendString("유효하지 않은 게시글 ID입니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	if err := h.service.client.Delete(token, h.kind, uint64(postID)); err != nil {
		log.Errorf("게시글(ID: %d) 삭제 실패: %v", postID, err)
		sess.Set("flash_error", "삭제 실패: "+err.Error())
	} else {
		sess.Set("flash_success", "게시글이 삭제되었습니다.")
	}
	sess.Save()

	return c.Redirect(h.basePath)
}

// HandleCreateComment는 'POST {basePath}/:id/comments' 요청을 처리합니다.
func (h *BoardHandler) HandleCreateComment(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil || postID <= 0 {
		return c.Status(400).SendString("유효하지 않은 게시글 ID입니다.")
	}

	form := new(struct {
		Content  string `form:"content"`
		ParentID uint64 `form:"parent_id"`
	})
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("댓글 폼 입력이 잘못되었습니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	if err := h.service.client.CreateComment(token, h.kind, uint64(postID), form.ParentID, form.Content); err != nil {
		log.Errorf("댓글 등록 실패 (post=%d): %v", postID, err)
		sess.Set("flash_error", "댓글 등록 실패: "+err.Error())
		sess.Save()
	}

	return c.Redirect(h.basePath + "/" + strconv.Itoa(postID))
}

// HandleDeleteComment는 'POST {basePath}/:id/comments/delete/:commentId' 요청을 처리합니다.
func (h *BoardHandler) HandleDeleteComment(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	commentID, err2 := c.ParamsInt("commentId")
	if err != nil || err2 != nil || postID <= 0 || commentID <= 0 {
		return c.Status(400).SendString("유효하지 않은 요청입니다.")
	}

	token := c.Locals("token").(string)
	sess, _ := h.store.Get(c)

	if err := h.service.client.DeleteComment(token, h.kind, uint64(postID), uint64(commentID)); err != nil {
		log.Errorf("댓글(ID: %d) 삭제 실패: %v", commentID, err)
		sess.Set("flash_error", "댓글 삭제 실패: "+err.Error())
		sess.Save()
	}

	return c.Redirect(h.basePath + "/" + strconv.Itoa(postID))
}
