package board

import (
	"time"
)

// Kind는 게시판 종류입니다. 공지/자유게시판은 화면과 권한만 다르고
// 동작이 같아 하나의 구현을 공유합니다.
type Kind string

const (
	KindNotice    Kind = "NOTICE"    // 관리자/계획자 공지
	KindCommunity Kind = "COMMUNITY" // 작업자 자유게시판
)

// Writer는 게시글/댓글 작성자 요약입니다.
type Writer struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	ProfileURL string `json:"profileUrl"`
}

// Attachment는 백엔드가 내려주는 서버 상대 경로 첨부입니다.
// URL은 콘솔이 설정된 파일 호스트로 조립해 채웁니다.
type Attachment struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"-"`
}

// Post는 게시글 1건입니다. Content는 백엔드 에디터가 만든 HTML입니다.
type Post struct {
	ID          uint64       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Writer      Writer       `json:"writer"`
	CreatedAt   time.Time    `json:"createdAt"`
	Attachments []Attachment `json:"attachments"`
}

// Comment는 댓글 1건입니다. ParentCommentID가 nil이면 최상위 댓글입니다.
type Comment struct {
	ID              uint64    `json:"id"`
	PostID          uint64    `json:"noticeId"`
	ParentCommentID *uint64   `json:"parentCommentId"`
	Writer          Writer    `json:"writer"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
}
