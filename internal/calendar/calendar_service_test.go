package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGridShape(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	grid := buildGrid(2026, time.August, now, nil)

	require.NotEmpty(t, grid.Weeks)
	for _, week := range grid.Weeks {
		assert.Len(t, week, 7)
		assert.Equal(t, time.Sunday, week[0].Date.Weekday())
		assert.Equal(t, time.Saturday, week[6].Date.Weekday())
	}

	// 2026-08-01은 토요일이므로 첫 주는 7월 26일(일)부터 시작한다.
	first := grid.Weeks[0][0]
	assert.Equal(t, time.Date(2026, 7, 26, 0, 0, 0, 0, time.UTC), first.Date)
	assert.False(t, first.InMonth)

	// 마지막 주는 8월 31일(월)을 포함한 주까지 채워진다.
	lastWeek := grid.Weeks[len(grid.Weeks)-1]
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), lastWeek[6].Date)
}

func TestBuildGridTodayAndEvents(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	events := map[string][]Event{
		"2026-08-15": {
			{Kind: EventScenario, Title: "추석 특별 생산", At: time.Date(2026, 8, 15, 5, 0, 0, 0, time.UTC)},
			{Kind: EventNotice, Title: "휴무 안내", At: time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)},
		},
	}

	grid := buildGrid(2026, time.August, now, events)

	var today, fifteenth *Day
	for wi := range grid.Weeks {
		for di := range grid.Weeks[wi] {
			d := &grid.Weeks[wi][di]
			switch d.Date.Format("2006-01-02") {
			case "2026-08-30":
				today = d
			case "2026-08-15":
				fifteenth = d
			}
		}
	}

	require.NotNil(t, today)
	assert.True(t, today.IsToday)
	assert.Empty(t, today.Events)

	require.NotNil(t, fifteenth)
	assert.False(t, fifteenth.IsToday)
	require.Len(t, fifteenth.Events, 2)
	assert.Equal(t, EventScenario, fifteenth.Events[0].Kind)
	assert.Equal(t, EventNotice, fifteenth.Events[1].Kind)
}

func TestBuildGridOutOfMonthCells(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	grid := buildGrid(2026, time.February, now, nil)

	// 2026-02-01이 일요일, 2026-02-28이 토요일이라 정확히 4주 그리드다.
	require.Len(t, grid.Weeks, 4)
	for _, week := range grid.Weeks {
		for _, d := range week {
			assert.True(t, d.InMonth)
		}
	}
}
