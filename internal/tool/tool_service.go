package tool

import (
	"fmt"
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"

	"bakehub/internal/backend"
)

// Service는 도구 화면 데이터 조립과 오류 메시지 변환을 담당합니다.
type Service struct {
	client *Client
}

// NewService
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// PageData는 도구 관리 화면 데이터입니다.
// 분류별 도구 목록을 한 화면에서 보여줍니다.
type PageData struct {
	Categories    []ToolCategory
	ToolsByCat    map[uint64][]Tool
	TotalTools    int
	Uncategorized []Tool // 분류가 삭제된 채 남은 도구 (비정상 데이터 방어)
}

// GetPageData는 분류/도구를 병렬 조회해 분류별로 묶습니다.
func (s *Service) GetPageData(token string) (*PageData, error) {
	var categories []ToolCategory
	var tools []Tool
	var eg errgroup.Group

	eg.Go(func() error {
		list, err := s.client.ListCategories(token)
		if err != nil {
			log.Printf("[ERROR] GetPageData: 도구 분류 조회 실패: %v", err)
			return err
		}
		categories = list
		return nil
	})
	eg.Go(func() error {
		list, err := s.client.ListTools(token)
		if err != nil {
			log.Printf("[ERROR] GetPageData: 도구 목록 조회 실패: %v", err)
			return err
		}
		tools = list
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	data := &PageData{
		Categories: categories,
		ToolsByCat: make(map[uint64][]Tool, len(categories)),
		TotalTools: len(tools),
	}
	known := make(map[uint64]bool, len(categories))
	for _, cat := range categories {
		known[cat.ID] = true
	}
	for _, t := range tools {
		if known[t.CategoryID] {
			data.ToolsByCat[t.CategoryID] = append(data.ToolsByCat[t.CategoryID], t)
		} else {
			data.Uncategorized = append(data.Uncategorized, t)
		}
	}
	return data, nil
}

// wrapToolError는 도구/분류 엔드포인트의 404/409를 화면용 메시지로 바꿉니다.
func wrapToolError(err error, subject string) error {
	if err == nil {
		return nil
	}
	if backend.IsStatus(err, http.StatusNotFound) {
		return fmt.Errorf("%s을(를) 찾을 수 없습니다. 이미 삭제되었을 수 있습니다.", subject)
	}
	if backend.IsStatus(err, http.StatusConflict) {
		return fmt.Errorf("%s이(가) 사용 중이라 처리할 수 없습니다. 연결된 공정을 먼저 정리해 주세요.", subject)
	}
	return err
}

// CreateCategory
func (s *Service) CreateCategory(token, name, description string) error {
	if name == "" {
		return fmt.Errorf("분류명을 입력해 주세요.")
	}
	return wrapToolError(s.client.CreateCategory(token, name, description), "도구 분류")
}

// UpdateCategory
func (s *Service) UpdateCategory(token string, categoryID uint64, name, description string) error {
	return wrapToolError(s.client.UpdateCategory(token, categoryID, name, description), "도구 분류")
}

// DeleteCategory
func (s *Service) DeleteCategory(token string, categoryID uint64) error {
	return wrapToolError(s.client.DeleteCategory(token, categoryID), "도구 분류")
}

// CreateTool
func (s *Service) CreateTool(token string, categoryID uint64, name, description string) error {
	if name == "" {
		return fmt.Errorf("도구명을 입력해 주세요.")
	}
	if categoryID == 0 {
		return fmt.Errorf("도구 분류를 선택해 주세요.")
	}
	return wrapToolError(s.client.CreateTool(token, categoryID, name, description), "도구")
}

// UpdateTool
func (s *Service) UpdateTool(token string, toolID, categoryID uint64, name, description string) error {
	return wrapToolError(s.client.UpdateTool(token, toolID, categoryID, name, description), "도구")
}

// DeleteTool
func (s *Service) DeleteTool(token string, toolID uint64) error {
	return wrapToolError(s.client.DeleteTool(token, toolID), "도구")
}
