package auth

import (
	"time"
)

// Account는 백엔드 계정 응답의 형태입니다.
// (생성/수정/삭제는 전부 백엔드 REST가 담당하고, 콘솔은 읽기만 합니다)
type Account struct {
	ID         uint64     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"` // ADMIN | PLANNER | WORKER
	ProfileURL string     `json:"profileUrl"`
	CreatedAt  *time.Time `json:"createdAt"`
}

// LoginResult는 'POST /api/accounts/login' 성공 응답입니다.
type LoginResult struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}
