package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// API는 원격 베이커리 백엔드(REST)에 대한 공용 클라이언트입니다.
// 모든 리소스 클라이언트(board, product, scenario, chat ...)가 이 구조체를 공유합니다.
// (주의) 백엔드 호스트는 설정에서 1곳으로만 주입됩니다. 파일별 하드코딩 금지.
type API struct {
	baseURL string
	fileURL string // 첨부파일 다운로드 호스트 (베이스와 다를 수 있음)
	hc      *http.Client
}

// New는 백엔드 베이스 URL과 파일 호스트로 API 클라이언트를 생성합니다.
func New(baseURL, fileURL string) *API {
	if fileURL == "" {
		fileURL = baseURL
	}
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		fileURL: strings.TrimRight(fileURL, "/"),
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError는 비 2xx 응답을 표현합니다.
// (Status를 별도로 들고 있어 핸들러가 403/404/409를 분기할 수 있습니다)
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsStatus는 err이 특정 HTTP 상태의 APIError인지 확인합니다.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == status
}

// DoJSON은 JSON 본문 요청 1회를 수행합니다. 재시도/캐싱 없음.
// token이 비어있지 않으면 Bearer 헤더를 부착합니다.
// out이 nil이 아니면 2xx 응답 본문을 JSON으로 디코딩합니다.
func (a *API) DoJSON(method, path, token string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			log.Printf("[ERROR] 백엔드 요청 본문 직렬화 실패 (%s %s): %v", method, path, err)
			return fmt.Errorf("요청 본문 생성에 실패했습니다.")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("요청 생성에 실패했습니다.")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return a.send(req, method, path, out)
}

// UploadFile은 멀티파트 업로드 1건입니다.
type UploadFile struct {
	Field    string // 폼 필드명
	Name     string // 파일명
	Content  []byte
	MimeType string
}

// DoMultipart는 첨부파일 업로드(multipart/form-data) 요청을 수행합니다.
func (a *API) DoMultipart(method, path, token string, fields map[string]string, files []UploadFile, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return fmt.Errorf("업로드 폼 구성에 실패했습니다.")
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return fmt.Errorf("업로드 폼 구성에 실패했습니다.")
		}
		if _, err := part.Write(f.Content); err != nil {
			return fmt.Errorf("업로드 폼 구성에 실패했습니다.")
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("업로드 폼 구성에 실패했습니다.")
	}

	req, err := http.NewRequest(method, a.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("요청 생성에 실패했습니다.")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return a.send(req, method, path, out)
}

// send는 요청을 실행하고 상태 코드를 검사합니다.
func (a *API) send(req *http.Request, method, path string, out interface{}) error {
	resp, err := a.hc.Do(req)
	if err != nil {
		log.Printf("[ERROR] 백엔드 호출 실패 (%s %s): %v", method, path, err)
		return &APIError{Status: 0, Message: "서버에 연결할 수 없습니다. 잠시 후 다시 시도해 주세요."}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return a.decodeError(resp, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("[ERROR] 백엔드 응답 디코딩 실패 (%s %s): %v", method, path, err)
		return &APIError{Status: resp.StatusCode, Message: "서버 응답을 해석할 수 없습니다."}
	}
	return nil
}

// decodeError는 실패 응답 본문에서 사용자 메시지를 뽑아 APIError로 변환합니다.
func (a *API) decodeError(resp *http.Response, method, path string) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &body)

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		// 본문에 메시지가 없는 경우 상태 코드별 기본 메시지
		switch resp.StatusCode {
		case http.StatusForbidden:
			msg = "권한이 없습니다."
		case http.StatusNotFound:
			msg = "요청한 대상을 찾을 수 없습니다."
		case http.StatusConflict:
			msg = "이미 존재하거나 사용 중인 항목입니다."
		default:
			msg = "요청 처리에 실패했습니다."
		}
	}

	log.Printf("[WARN] 백엔드 오류 응답 (%s %s): status=%d msg=%s", method, path, resp.StatusCode, msg)
	return &APIError{Status: resp.StatusCode, Message: msg}
}

// AttachmentURL은 서버 상대 경로로 내려온 첨부파일 경로를 다운로드 링크로 만듭니다.
func (a *API) AttachmentURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return a.fileURL + path
}
