package scenario

import (
	"fmt"
	"log"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"bakehub/internal/timeline"
)

// Service는 시나리오 화면 데이터 조립과 타임라인 계산을 담당합니다.
type Service struct {
	client    *Client
	viewState *ViewStateStore
}

// NewService
func NewService(client *Client, vs *ViewStateStore) *Service {
	return &Service{
		client:    client,
		viewState: vs,
	}
}

// ListPageData
type ListPageData struct {
	Scenarios     []Scenario
	CountByStatus map[string]int
}

// GetListPageData는 시나리오 목록을 최신순으로 정렬하고 상태별로 집계합니다.
func (s *Service) GetListPageData(token string) (*ListPageData, error) {
	scenarios, err := s.client.List(token)
	if err != nil {
		log.Printf("[ERROR] 시나리오 목록 조회 실패: %v", err)
		return nil, err
	}

	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].ID > scenarios[j].ID
	})

	counts := map[string]int{}
	for _, sc := range scenarios {
		counts[sc.Status]++
	}

	return &ListPageData{
		Scenarios:     scenarios,
		CountByStatus: counts,
	}, nil
}

// toTimelineProducts는 백엔드 배정 응답을 타임라인 입력으로 변환합니다.
func toTimelineProducts(products []ScheduledProduct) []timeline.Product {
	out := make([]timeline.Product, 0, len(products))
	for _, p := range products {
		tp := timeline.Product{
			ID:   p.ID,
			Name: p.Name,
		}
		for _, sched := range p.ScenarioSchedules {
			entry := timeline.ScheduleEntry{
				ID:       sched.ID,
				ToolID:   sched.ToolID,
				ToolName: sched.ToolName,
				TaskName: sched.ScheduleTask.Name,
				Duration: sched.ScheduleTask.Duration,
				StartAt:  sched.StartAt,
				EndAt:    sched.EndAt,
			}
			if sched.Worker != nil {
				entry.Worker = &timeline.Worker{
					ID:   sched.Worker.ID,
					Name: sched.Worker.Name,
				}
			}
			tp.Schedules = append(tp.Schedules, entry)
		}
		out = append(out, tp)
	}
	return out
}

// Makespan은 전체 배정의 (마지막 종료 - 첫 시작)을 분으로 구합니다.
// 배정이 없거나 시각이 결손이면 0입니다.
func Makespan(products []ScheduledProduct) int {
	var first, last *time.Time
	for _, p := range products {
		for _, sched := range p.ScenarioSchedules {
			if sched.StartAt != nil && (first == nil || sched.StartAt.Before(*first)) {
				first = sched.StartAt
			}
			if sched.EndAt != nil && (last == nil || sched.EndAt.After(*last)) {
				last = sched.EndAt
			}
		}
	}
	if first == nil || last == nil || last.Before(*first) {
		return 0
	}
	return int(last.Sub(*first).Minutes())
}

// FormatMinutes는 분을 "n시간 m분" 표기로 바꿉니다.
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0분"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d분", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%d시간", minutes/60)
	}
	return fmt.Sprintf("%d시간 %d분", minutes/60, minutes%60)
}

// DetailPageData는 시나리오 상세(타임라인) 화면 데이터입니다.
type DetailPageData struct {
	Scenario        *Scenario
	Products        []ScheduledProduct
	Layout          timeline.Layout
	Resolution      int
	PanelWidth      int
	MakespanMinutes int
	MakespanLabel   string
}

// GetDetailPageData는 시나리오와 배정을 병렬 조회한 뒤,
// 세션 한정 화면 상태(덮어쓰기/접힘/눈금)를 반영해 타임라인을 계산합니다.
func (s *Service) GetDetailPageData(token string, accountID, scenarioID uint64) (*DetailPageData, error) {
	var data DetailPageData
	var eg errgroup.Group

	eg.Go(func() error {
		sc, err := s.client.Get(token, scenarioID)
		if err != nil {
			log.Printf("[ERROR] 시나리오(ID: %d) 조회 실패: %v", scenarioID, err)
			return err
		}
		data.Scenario = sc
		return nil
	})
	eg.Go(func() error {
		products, err := s.client.GetSchedules(token, scenarioID)
		if err != nil {
			log.Printf("[ERROR] 시나리오(ID: %d) 배정 조회 실패: %v", scenarioID, err)
			return err
		}
		data.Products = products
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	resolution, panelWidth, collapsed, overrides := s.viewState.Snapshot(accountID, scenarioID)

	data.Layout = timeline.Build(toTimelineProducts(data.Products), data.Scenario.StartAt, timeline.Options{
		Resolution: resolution,
		Collapsed:  collapsed,
		Overrides:  overrides,
	})
	// 사라진 작업자의 접힘 키 정리 (다음 렌더링부터 반영)
	s.viewState.PruneCollapsed(accountID, scenarioID, data.Layout)

	data.Resolution = resolution
	data.PanelWidth = panelWidth
	data.MakespanMinutes = Makespan(data.Products)
	data.MakespanLabel = FormatMinutes(data.MakespanMinutes)
	return &data, nil
}

// ValidateCreate는 시나리오 생성 폼의 기본 제약을 검사합니다.
func ValidateCreate(req CreateRequest) error {
	if req.Title == "" {
		return fmt.Errorf("시나리오 제목을 입력해 주세요.")
	}
	if req.MaxWorkerCount <= 0 {
		return fmt.Errorf("최대 투입 인원은 1명 이상이어야 합니다.")
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("생산 품목을 1개 이상 추가해 주세요.")
	}
	for _, item := range req.Items {
		if item.ProductID == 0 || item.Qty <= 0 {
			return fmt.Errorf("품목과 수량을 올바르게 입력해 주세요.")
		}
	}
	return nil
}
