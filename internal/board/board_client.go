package board

import (
	"fmt"

	"bakehub/internal/backend"
)

// Client는 게시판 관련 백엔드 엔드포인트 래퍼입니다.
// 공지/자유게시판은 경로만 다르고 계약이 같습니다.
type Client struct {
	api *backend.API
}

// NewClient
func NewClient(api *backend.API) *Client {
	return &Client{api: api}
}

func basePath(kind Kind) string {
	if kind == KindCommunity {
		return "/api/community"
	}
	return "/api/notices"
}

// List는 게시글 전체 목록을 가져옵니다.
// 검색/정렬/페이지네이션은 받아온 목록 위에서 서비스가 수행합니다.
func (c *Client) List(token string, kind Kind) ([]Post, error) {
	var posts []Post
	if err := c.api.DoJSON("GET", basePath(kind), token, nil, &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		for j := range posts[i].Attachments {
			posts[i].Attachments[j].URL = c.api.AttachmentURL(posts[i].Attachments[j].Path)
		}
	}
	return posts, nil
}

// Get은 게시글 1건을 가져옵니다.
func (c *Client) Get(token string, kind Kind, postID uint64) (*Post, error) {
	var post Post
	path := fmt.Sprintf("%s/%d", basePath(kind), postID)
	if err := c.api.DoJSON("GET", path, token, nil, &post); err != nil {
		return nil, err
	}
	for i := range post.Attachments {
		post.Attachments[i].URL = c.api.AttachmentURL(post.Attachments[i].Path)
	}
	return &post, nil
}

// Create는 제목/본문(HTML)/첨부파일을 multipart로 업로드합니다.
func (c *Client) Create(token string, kind Kind, title, content string, files []backend.UploadFile) error {
	fields := map[string]string{
		"title":   title,
		"content": content,
	}
	return c.api.DoMultipart("POST", basePath(kind), token, fields, files, nil)
}

// Update는 게시글을 수정합니다. 첨부는 추가분만 업로드합니다.
func (c *Client) Update(token string, kind Kind, postID uint64, title, content string, files []backend.UploadFile) error {
	fields := map[string]string{
		"title":   title,
		"content": content,
	}
	path := fmt.Sprintf("%s/%d", basePath(kind), postID)
	return c.api.DoMultipart("PUT", path, token, fields, files, nil)
}

// Delete는 게시글을 삭제합니다.
func (c *Client) Delete(token string, kind Kind, postID uint64) error {
	path := fmt.Sprintf("%s/%d", basePath(kind), postID)
	return c.api.DoJSON("DELETE", path, token, nil, nil)
}

// --- 댓글 ---

// ListComments는 게시글의 평면 댓글 목록을 가져옵니다.
// 트리 복원은 comment_tree.go가 담당합니다.
func (c *Client) ListComments(token string, kind Kind, postID uint64) ([]Comment, error) {
	var comments []Comment
	path := fmt.Sprintf("%s/%d/comments", basePath(kind), postID)
	if err := c.api.DoJSON("GET", path, token, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment는 댓글/답글을 등록합니다. parentID가 0이면 최상위 댓글입니다.
func (c *Client) CreateComment(token string, kind Kind, postID uint64, parentID uint64, content string) error {
	body := map[string]interface{}{
		"content": content,
	}
	if parentID != 0 {
		body["parentCommentId"] = parentID
	}
	path := fmt.Sprintf("%s/%d/comments", basePath(kind), postID)
	return c.api.DoJSON("POST", path, token, body, nil)
}

// DeleteComment는 댓글을 삭제합니다.
func (c *Client) DeleteComment(token string, kind Kind, postID, commentID uint64) error {
	path := fmt.Sprintf("%s/%d/comments/%d", basePath(kind), postID, commentID)
	return c.api.DoJSON("DELETE", path, token, nil, nil)
}
