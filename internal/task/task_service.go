package task

import (
	"fmt"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"bakehub/internal/product"
	"bakehub/internal/tool"
)

// Service는 공정 화면 데이터 조립을 담당합니다.
// 공정 폼에는 도구 분류 선택이 필요해 tool 클라이언트에도 의존합니다.
type Service struct {
	client        *Client
	productClient *product.Client
	toolClient    *tool.Client
}

// NewService
func NewService(client *Client, pc *product.Client, tc *tool.Client) *Service {
	return &Service{
		client:        client,
		productClient: pc,
		toolClient:    tc,
	}
}

// PageData는 공정 관리 화면 데이터입니다.
type PageData struct {
	Product        *product.Product
	Tasks          []Task
	ToolCategories []tool.ToolCategory
	TotalMinutes   int // 공정 duration 합 (참고 표시용)
}

// GetPageData는 상품/공정/도구분류를 병렬 조회하고 공정을 Seq 순으로 정렬합니다.
func (s *Service) GetPageData(token string, productID uint64) (*PageData, error) {
	var data PageData
	var eg errgroup.Group

	eg.Go(func() error {
		p, err := s.productClient.Get(token, productID)
		if err != nil {
			log.Printf("[ERROR] GetPageData: 상품(ID: %d) 조회 실패: %v", productID, err)
			return err
		}
		data.Product = p
		return nil
	})
	eg.Go(func() error {
		tasks, err := s.client.ListByProduct(token, productID)
		if err != nil {
			log.Printf("[ERROR] GetPageData: 공정 목록 조회 실패: %v", err)
			return err
		}
		data.Tasks = tasks
		return nil
	})
	eg.Go(func() error {
		categories, err := s.toolClient.ListCategories(token)
		if err != nil {
			log.Printf("[ERROR] GetPageData: 도구 분류 조회 실패: %v", err)
			return err
		}
		data.ToolCategories = categories
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(data.Tasks, func(i, j int) bool {
		return data.Tasks[i].Seq < data.Tasks[j].Seq
	})
	for _, t := range data.Tasks {
		data.TotalMinutes += t.Duration
	}
	return &data, nil
}

// ValidateTask는 폼 입력의 기본 제약을 검사합니다.
func ValidateTask(t Task) error {
	if t.Name == "" {
		return fmt.Errorf("공정명을 입력해 주세요.")
	}
	if t.Seq <= 0 {
		return fmt.Errorf("실행 순서(Seq)는 1 이상이어야 합니다.")
	}
	if t.Duration <= 0 {
		return fmt.Errorf("소요 시간(분)은 1 이상이어야 합니다.")
	}
	if t.RequiredWorkers <= 0 {
		return fmt.Errorf("필요 인원은 1명 이상이어야 합니다.")
	}
	return nil
}
