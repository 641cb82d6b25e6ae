package calendar

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"bakehub/internal/board"
	"bakehub/internal/scenario"
)

// Service는 시나리오/공지를 모아 월 달력 그리드를 만듭니다.
type Service struct {
	scenarioClient *scenario.Client
	boardClient    *board.Client
}

// NewService
func NewService(scenarioClient *scenario.Client, boardClient *board.Client) *Service {
	return &Service{
		scenarioClient: scenarioClient,
		boardClient:    boardClient,
	}
}

// GetMonthGrid는 해당 연월의 달력 데이터를 조회합니다.
// 시나리오는 생산 시작일(StartAt), 공지는 작성일 기준으로 배치됩니다.
func (s *Service) GetMonthGrid(token string, year int, month time.Month, now time.Time) (*MonthGrid, error) {
	var (
		scenarios []scenario.Scenario
		notices   []board.Post
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		scenarios, err = s.scenarioClient.List(token)
		return err
	})
	g.Go(func() error {
		var err error
		notices, err = s.boardClient.List(token, board.KindNotice)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	events := make(map[string][]Event)
	for _, sc := range scenarios {
		if sc.StartAt == nil {
			continue
		}
		at := *sc.StartAt
		events[dayKey(at)] = append(events[dayKey(at)], Event{
			Kind:  EventScenario,
			Title: sc.Title,
			Link:  fmt.Sprintf("/scenarios/%d/timeline", sc.ID),
			At:    at,
		})
	}
	for _, n := range notices {
		events[dayKey(n.CreatedAt)] = append(events[dayKey(n.CreatedAt)], Event{
			Kind:  EventNotice,
			Title: n.Title,
			Link:  fmt.Sprintf("/notices/%d", n.ID),
			At:    n.CreatedAt,
		})
	}

	return buildGrid(year, month, now, events), nil
}

// buildGrid는 일요일 시작 6주 이내 그리드를 만듭니다.
func buildGrid(year int, month time.Month, now time.Time, events map[string][]Event) *MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	// 그리드 첫 칸은 해당 주 일요일
	start := first.AddDate(0, 0, -int(first.Weekday()))
	last := first.AddDate(0, 1, -1)

	grid := &MonthGrid{Year: year, Month: month}
	today := dayKey(now)

	for cur := start; !cur.After(last) || cur.Weekday() != time.Sunday; cur = cur.AddDate(0, 0, 1) {
		if cur.Weekday() == time.Sunday {
			grid.Weeks = append(grid.Weeks, make([]Day, 0, 7))
		}
		w := len(grid.Weeks) - 1
		grid.Weeks[w] = append(grid.Weeks[w], Day{
			Date:    cur,
			InMonth: cur.Month() == month,
			IsToday: dayKey(cur) == today,
			Events:  events[dayKey(cur)],
		})
	}
	return grid
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
