package account

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"bakehub/internal/auth"
	"bakehub/internal/middleware"
)

// Service는 계정 관리 화면 데이터 조립을 담당합니다.
type Service struct {
	client *Client
}

// NewService
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// PageData는 계정 관리 화면 데이터입니다.
type PageData struct {
	Accounts []auth.Account
	Keyword  string
	Role     string
}

// GetPageData는 계정 목록을 받아 키워드 필터를 적용해 이름순으로 정렬합니다.
func (s *Service) GetPageData(token, role, keyword string) (*PageData, error) {
	accounts, err := s.client.List(token, role)
	if err != nil {
		log.Printf("[ERROR] 계정 목록 조회 실패: %v", err)
		return nil, err
	}

	if keyword != "" {
		lower := strings.ToLower(keyword)
		filtered := accounts[:0]
		for _, a := range accounts {
			if strings.Contains(strings.ToLower(a.Name), lower) ||
				strings.Contains(strings.ToLower(a.Email), lower) {
				filtered = append(filtered, a)
			}
		}
		accounts = filtered
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})

	return &PageData{
		Accounts: accounts,
		Keyword:  keyword,
		Role:     role,
	}, nil
}

// ChangeRole은 관리자(호출자 역할 확인)가 계정의 역할을 변경합니다.
func (s *Service) ChangeRole(token, callerRole string, accountID uint64, newRole string) error {
	if callerRole != middleware.RoleAdmin {
		return fmt.Errorf("권한 없음: 역할 변경은 관리자(ADMIN)만 가능합니다.")
	}
	switch newRole {
	case middleware.RoleAdmin, middleware.RolePlanner, middleware.RoleWorker:
	default:
		return fmt.Errorf("유효하지 않은 역할입니다: %s", newRole)
	}
	return s.client.ChangeRole(token, accountID, newRole)
}
