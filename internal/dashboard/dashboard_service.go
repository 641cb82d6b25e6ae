package dashboard

import (
	"log"
	"sort"

	"golang.org/x/sync/errgroup" // (여러 백엔드 조회를 병렬로 처리하기 위함)

	"bakehub/internal/board"
	"bakehub/internal/chat"
	"bakehub/internal/product"
	"bakehub/internal/scenario"
)

const recentNoticeLimit = 5

// DashboardData는 대시보드 뷰(View)에 전달될 데이터 구조체입니다.
type DashboardData struct {
	RecentNotices   []board.Post   // 최근 공지 목록
	ScenarioCounts  map[string]int // 시나리오 상태별 건수
	RunningCount    int            // 시뮬레이션 진행 중 건수
	ProductCount    int            // 등록 상품 수
	UnreadChatCount int            // 읽지 않은 채팅 수
}

// Service는 대시보드 데이터 조회를 담당합니다.
// (여러 클라이언트에 의존합니다)
type Service struct {
	boardClient    *board.Client
	scenarioClient *scenario.Client
	productClient  *product.Client
	hub            *chat.Hub
}

// NewService는 대시보드 서비스를 생성합니다.
func NewService(bc *board.Client, sc *scenario.Client, pc *product.Client, hub *chat.Hub) *Service {
	return &Service{
		boardClient:    bc,
		scenarioClient: sc,
		productClient:  pc,
		hub:            hub,
	}
}

// GetDashboardData는 대시보드에 필요한 데이터를 백엔드에서 병렬로 조회하여 집계합니다.
func (s *Service) GetDashboardData(token string, accountID uint64) (*DashboardData, error) {
	var data DashboardData
	var eg errgroup.Group

	// 고루틴 1: 최근 공지 조회
	eg.Go(func() error {
		notices, err := s.boardClient.List(token, board.KindNotice)
		if err != nil {
			log.Printf("[ERROR] GetDashboardData: 공지 조회 실패: %v", err)
			return err
		}
		sort.SliceStable(notices, func(i, j int) bool {
			return notices[i].CreatedAt.After(notices[j].CreatedAt)
		})
		if len(notices) > recentNoticeLimit {
			notices = notices[:recentNoticeLimit]
		}
		data.RecentNotices = notices
		return nil
	})

	// 고루틴 2: 시나리오 상태 집계
	eg.Go(func() error {
		scenarios, err := s.scenarioClient.List(token)
		if err != nil {
			log.Printf("[ERROR] GetDashboardData: 시나리오 조회 실패: %v", err)
			return err
		}
		counts := make(map[string]int)
		for _, sc := range scenarios {
			counts[sc.Status]++
		}
		data.ScenarioCounts = counts
		data.RunningCount = counts[scenario.StatusSimulating]
		return nil
	})

	// 고루틴 3: 상품 수 조회
	eg.Go(func() error {
		products, err := s.productClient.List(token)
		if err != nil {
			log.Printf("[ERROR] GetDashboardData: 상품 조회 실패: %v", err)
			return err
		}
		data.ProductCount = len(products)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 읽지 않은 채팅 수는 메모리 집계라 병렬화가 필요 없습니다.
	data.UnreadChatCount = s.hub.UnreadTotal(accountID)

	return &data, nil
}
