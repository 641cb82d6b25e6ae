package backend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSONAttachesBearerAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]interface{}{{"id": 1, "name": "소금빵"}})
	}))
	defer srv.Close()

	api := New(srv.URL, "")

	var out []struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}
	err := api.DoJSON(http.MethodGet, "/api/products", "test-token", nil, &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "소금빵", out[0].Name)
}

func TestDoJSONSendsBodyWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "baker@bakehub.kr", body["email"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	api := New(srv.URL, "")

	err := api.DoJSON(http.MethodPost, "/api/accounts/login", "", map[string]string{"email": "baker@bakehub.kr"}, nil)
	require.NoError(t, err)
}

func TestDecodeErrorUsesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "이미 사용 중인 도구입니다."})
	}))
	defer srv.Close()

	api := New(srv.URL, "")

	err := api.DoJSON(http.MethodDelete, "/api/tools/1", "t", nil, nil)

	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusConflict))
	assert.Equal(t, "이미 사용 중인 도구입니다.", err.Error())
}

func TestDecodeErrorFallbackMessages(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{http.StatusForbidden, "권한이 없습니다."},
		{http.StatusNotFound, "요청한 대상을 찾을 수 없습니다."},
		{http.StatusConflict, "이미 존재하거나 사용 중인 항목입니다."},
		{http.StatusInternalServerError, "요청 처리에 실패했습니다."},
	}

	for _, tc := range cases {
		status := tc.status
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		api := New(srv.URL, "")
		err := api.DoJSON(http.MethodGet, "/api/x", "t", nil, nil)

		require.Error(t, err)
		assert.True(t, IsStatus(err, tc.status))
		assert.Equal(t, tc.want, err.Error())
		srv.Close()
	}
}

func TestIsStatusRejectsOtherErrors(t *testing.T) {
	assert.False(t, IsStatus(assert.AnError, http.StatusNotFound))
	assert.False(t, IsStatus(&APIError{Status: 404}, http.StatusConflict))
	assert.True(t, IsStatus(&APIError{Status: 404}, http.StatusNotFound))
}

func TestDoMultipartUploadsFieldsAndFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "아침 공지", r.FormValue("title"))

		f, fh, err := r.FormFile("attachments")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "recipe.pdf", fh.Filename)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	api := New(srv.URL, "")

	err := api.DoMultipart(http.MethodPost, "/api/notices", "t",
		map[string]string{"title": "아침 공지"},
		[]UploadFile{{Field: "attachments", Name: "recipe.pdf", Content: []byte("pdf-bytes"), MimeType: "application/pdf"}},
		nil)
	require.NoError(t, err)
}

func TestAttachmentURL(t *testing.T) {
	api := New("http://api.internal", "http://files.internal/")

	assert.Equal(t, "http://files.internal/uploads/a.png", api.AttachmentURL("/uploads/a.png"))
	assert.Equal(t, "http://files.internal/uploads/a.png", api.AttachmentURL("uploads/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", api.AttachmentURL("https://cdn.example.com/a.png"))
	assert.Equal(t, "", api.AttachmentURL(""))
}

func TestConnectionRefusedReturnsAPIError(t *testing.T) {
	// 닫힌 서버 주소로 호출하면 상태 0의 APIError가 나와야 한다.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	api := New(srv.URL, "")
	err := api.DoJSON(http.MethodGet, "/api/x", "", nil, nil)

	require.Error(t, err)
	assert.True(t, IsStatus(err, 0))
}
