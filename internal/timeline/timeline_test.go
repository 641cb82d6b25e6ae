package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	require.NoError(t, err)
	return &parsed
}

// 명세의 예시 시나리오: 시작 05:00, A(+10, 20분), B(+40, 15분)
func exampleInput(t *testing.T) ([]Product, *time.Time) {
	start := ts(t, "2026-01-26T05:00:00")
	products := []Product{
		{
			ID:   1,
			Name: "단팥빵",
			Schedules: []ScheduleEntry{
				{
					ID:       11,
					Worker:   &Worker{ID: 1, Name: "A"},
					ToolName: "오븐 1",
					TaskName: "반죽",
					Duration: 20,
					StartAt:  ts(t, "2026-01-26T05:10:00"),
					EndAt:    ts(t, "2026-01-26T05:30:00"),
				},
				{
					ID:       12,
					Worker:   &Worker{ID: 2, Name: "B"},
					ToolName: "오븐 2",
					TaskName: "굽기",
					Duration: 15,
					StartAt:  ts(t, "2026-01-26T05:40:00"),
					EndAt:    ts(t, "2026-01-26T05:55:00"),
				},
			},
		},
	}
	return products, start
}

func taskRows(layout Layout) []Row {
	var rows []Row
	for _, r := range layout.Rows {
		if r.Kind == RowTask {
			rows = append(rows, r)
		}
	}
	return rows
}

func TestBuildExampleScenario(t *testing.T) {
	products, start := exampleInput(t)

	layout := Build(products, start, Options{Resolution: 15})

	// 그룹은 최초 등장 순서: A, B
	require.Len(t, layout.Groups, 2)
	assert.Equal(t, "A", layout.Groups[0].Name)
	assert.Equal(t, "B", layout.Groups[1].Name)

	// 최대 종료 55분 + 여백 60 = 115 → 120분으로 올림
	assert.Equal(t, 55, layout.MaxEnd)
	assert.Equal(t, 120, layout.AxisMinutes)

	// 15분 눈금 ⇒ 4px/분, 캔버스 폭 = 120*4
	assert.Equal(t, 4, layout.PxPerMinute)
	assert.Equal(t, 480, layout.CanvasWidth)

	rows := taskRows(layout)
	require.Len(t, rows, 2)
	assert.Equal(t, 10, rows[0].Start)
	assert.Equal(t, 20, rows[0].Duration)
	assert.Equal(t, 20*4, rows[0].Width)
	assert.Equal(t, 40, rows[1].Start)
	assert.Equal(t, 15, rows[1].Duration)
	assert.Equal(t, 15*4, rows[1].Width)
}

func TestPxPerMinuteByResolution(t *testing.T) {
	assert.Equal(t, 12, PxPerMinute(5))
	assert.Equal(t, 4, PxPerMinute(15))
	assert.Equal(t, 2, PxPerMinute(30))
	// 허용되지 않는 값은 15분 눈금으로 간주
	assert.Equal(t, 4, PxPerMinute(0))
	assert.Equal(t, 4, PxPerMinute(7))
}

func TestAxisRounding(t *testing.T) {
	// 24시간 이하: 1시간 단위 올림, 항상 maxEnd+60 이상
	assert.Equal(t, 60, AxisMinutes(0))
	assert.Equal(t, 120, AxisMinutes(55))
	assert.Equal(t, 120, AxisMinutes(60))
	assert.Equal(t, 180, AxisMinutes(61))

	// 패딩 포함 24시간 초과: 6시간 단위 올림
	assert.Equal(t, 1440, AxisMinutes(1380))
	assert.Equal(t, 1800, AxisMinutes(1381))
	assert.Equal(t, 1800, AxisMinutes(1700))

	for _, maxEnd := range []int{0, 1, 59, 55, 719, 1380, 1381, 2000, 5000} {
		axis := AxisMinutes(maxEnd)
		assert.GreaterOrEqual(t, axis, maxEnd+TrailingPadMinutes)
		if maxEnd+TrailingPadMinutes <= DayMinutes {
			assert.Zero(t, axis%HourRound)
		} else {
			assert.Zero(t, axis%SixHourRound)
		}
	}
}

func TestStartOffsetsNonNegativeAndChronological(t *testing.T) {
	products, start := exampleInput(t)
	layout := Build(products, start, Options{Resolution: 5})

	perGroup := map[string]int{}
	for _, r := range taskRows(layout) {
		assert.GreaterOrEqual(t, r.Start, 0)
		if prev, ok := perGroup[r.GroupKey]; ok {
			assert.GreaterOrEqual(t, r.Start, prev)
		}
		perGroup[r.GroupKey] = r.Start
	}
}

func TestMalformedTimestampsDegradeToOrigin(t *testing.T) {
	start := ts(t, "2026-01-26T05:00:00")
	products := []Product{
		{
			ID: 7,
			Schedules: []ScheduleEntry{
				{ID: 1, TaskName: "결손 시작", StartAt: nil, EndAt: ts(t, "2026-01-26T06:00:00")},
				{ID: 2, TaskName: "결손 전체"},
				{ID: 3, TaskName: "역전", StartAt: ts(t, "2026-01-26T04:00:00"), EndAt: ts(t, "2026-01-26T03:00:00")},
			},
		},
	}

	// 패닉 없이 원점(0분) 블록으로 강등되어야 합니다.
	layout := Build(products, start, Options{Resolution: 15})
	rows := taskRows(layout)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, 0, r.Start)
	}
	assert.Equal(t, 0, rows[1].Duration)
	assert.Equal(t, 0, rows[2].Duration)
}

func TestUnassignedWorkersCollapseIntoSyntheticGroup(t *testing.T) {
	products, start := exampleInput(t)
	products[0].Schedules = append(products[0].Schedules, ScheduleEntry{
		ID:       13,
		TaskName: "포장",
		Duration: 5,
		StartAt:  ts(t, "2026-01-26T06:00:00"),
	}, ScheduleEntry{
		ID:       14,
		TaskName: "정리",
		Duration: 5,
		StartAt:  ts(t, "2026-01-26T06:10:00"),
	})

	layout := Build(products, start, Options{Resolution: 15})

	require.Len(t, layout.Groups, 3)
	assert.Equal(t, UnassignedKey, layout.Groups[2].Key)
	assert.Equal(t, 2, layout.Groups[2].TaskCount)
}

func TestCollapseRemovesOnlyThatGroupsRows(t *testing.T) {
	products, start := exampleInput(t)

	full := Build(products, start, Options{Resolution: 15})
	collapsed := Build(products, start, Options{
		Resolution: 15,
		Collapsed:  map[string]bool{"w:1": true},
	})

	// A 그룹의 task 행만 사라지고 헤더는 남습니다.
	assert.Len(t, collapsed.Rows, len(full.Rows)-1)
	for _, r := range collapsed.Rows {
		if r.GroupKey == "w:1" {
			assert.Equal(t, RowGroup, r.Kind)
		}
	}

	// 행 인덱스는 빈틈 없이 단조 증가해야 합니다.
	for i, r := range collapsed.Rows {
		assert.Equal(t, i, r.Index)
	}
}

func TestDeterministicRelayout(t *testing.T) {
	products, start := exampleInput(t)
	opts := Options{
		Resolution: 5,
		Collapsed:  map[string]bool{"w:2": true},
		Overrides:  map[string]Override{"task:1:11": {WorkerName: "C"}},
	}

	first := Build(products, start, opts)
	second := Build(products, start, opts)

	assert.Equal(t, first, second)
}

func TestOverrideShadowsExactlyOneRow(t *testing.T) {
	products, start := exampleInput(t)

	base := Build(products, start, Options{Resolution: 15})
	overridden := Build(products, start, Options{
		Resolution: 15,
		Overrides: map[string]Override{
			"task:1:11": {WorkerName: "교체 작업자", ToolName: "오븐 3"},
		},
	})

	baseRows := taskRows(base)
	overRows := taskRows(overridden)
	require.Len(t, overRows, len(baseRows))

	for i, r := range overRows {
		if r.Key == "task:1:11" {
			assert.Equal(t, "교체 작업자", r.WorkerName)
			assert.Equal(t, "오븐 3", r.ToolName)
			continue
		}
		assert.Equal(t, baseRows[i].WorkerName, r.WorkerName)
		assert.Equal(t, baseRows[i].ToolName, r.ToolName)
	}

	// 덮어쓰기는 원본 입력을 변경하지 않습니다.
	assert.Equal(t, "A", products[0].Schedules[0].Worker.Name)
}

func TestNormalizeCollapsedPrunesVanishedWorkers(t *testing.T) {
	products, start := exampleInput(t)
	layout := Build(products, start, Options{Resolution: 15})

	state := map[string]bool{
		"w:1":   true,
		"w:999": true, // 입력에서 사라진 작업자
	}
	next := NormalizeCollapsed(state, layout)

	assert.Equal(t, map[string]bool{"w:1": true}, next)
}

func TestClampPanelWidth(t *testing.T) {
	assert.Equal(t, 220, ClampPanelWidth(10))
	assert.Equal(t, 360, ClampPanelWidth(360))
	assert.Equal(t, 520, ClampPanelWidth(9000))
}
