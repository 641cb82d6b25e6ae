package auth

import (
	"fmt"
	"log"
	"net/http"

	"bakehub/internal/backend"
)

// Service는 'auth' 기능의 비즈니스 로직을 담당합니다.
// 인증 자체는 백엔드가 수행하고, 콘솔은 토큰/계정을 세션에 보관만 합니다.
type Service struct {
	client *Client
}

// NewService는 Client를 받아 새 Service를 생성합니다.
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// LoginRequest는 핸들러(웹)로부터 받은 로그인 폼 데이터입니다.
type LoginRequest struct {
	Email    string
	Password string
}

// Login은 백엔드 로그인을 호출하고 결과를 그대로 반환합니다.
// 401/403은 "잘못된 계정" 메시지로 변환합니다.
func (s *Service) Login(req LoginRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("이메일과 비밀번호를 모두 입력해 주세요.")
	}

	result, err := s.client.Login(req.Email, req.Password)
	if err != nil {
		if backend.IsStatus(err, http.StatusUnauthorized) || backend.IsStatus(err, http.StatusForbidden) {
			log.Printf("[INFO] 로그인 실패: 인증 거부 (%s)", req.Email)
			return nil, fmt.Errorf("이메일 또는 비밀번호가 올바르지 않습니다.")
		}
		log.Printf("[ERROR] 로그인 백엔드 호출 실패: %v", err)
		return nil, err
	}

	log.Printf("[INFO] 로그인 성공: %s (role=%s)", result.Account.Email, result.Account.Role)
	return result, nil
}
