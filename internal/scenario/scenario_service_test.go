package scenario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakehub/internal/timeline"
)

func at(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	require.NoError(t, err)
	return &parsed
}

func TestMakespan(t *testing.T) {
	products := []ScheduledProduct{
		{
			ID: 1,
			ScenarioSchedules: []ScenarioSchedule{
				{StartAt: at(t, "2026-01-26T05:10:00"), EndAt: at(t, "2026-01-26T05:30:00")},
				{StartAt: at(t, "2026-01-26T05:40:00"), EndAt: at(t, "2026-01-26T06:55:00")},
			},
		},
		{
			ID: 2,
			ScenarioSchedules: []ScenarioSchedule{
				{StartAt: at(t, "2026-01-26T05:05:00"), EndAt: at(t, "2026-01-26T05:20:00")},
			},
		},
	}

	// 첫 시작 05:05, 마지막 종료 06:55 → 110분
	assert.Equal(t, 110, Makespan(products))
}

func TestMakespanDegenerateInputs(t *testing.T) {
	assert.Equal(t, 0, Makespan(nil))
	assert.Equal(t, 0, Makespan([]ScheduledProduct{{ID: 1}}))
	// 시각 결손 배정만 있는 경우
	assert.Equal(t, 0, Makespan([]ScheduledProduct{
		{ID: 1, ScenarioSchedules: []ScenarioSchedule{{}}},
	}))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0분", FormatMinutes(0))
	assert.Equal(t, "45분", FormatMinutes(45))
	assert.Equal(t, "2시간", FormatMinutes(120))
	assert.Equal(t, "1시간 50분", FormatMinutes(110))
}

func TestToTimelineProductsCarriesWorkerAndTask(t *testing.T) {
	products := []ScheduledProduct{
		{
			ID:   3,
			Name: "크루아상",
			ScenarioSchedules: []ScenarioSchedule{
				{
					ID:           7,
					Worker:       &ScheduleWorker{ID: 2, Name: "B"},
					ToolID:       4,
					ToolName:     "오븐 2",
					StartAt:      at(t, "2026-01-26T05:00:00"),
					EndAt:        at(t, "2026-01-26T05:30:00"),
					ScheduleTask: ScheduleTask{Name: "굽기", Duration: 30},
				},
				{ID: 8, ScheduleTask: ScheduleTask{Name: "포장"}}, // 작업자 미배정
			},
		},
	}

	out := toTimelineProducts(products)
	require.Len(t, out, 1)
	require.Len(t, out[0].Schedules, 2)

	first := out[0].Schedules[0]
	require.NotNil(t, first.Worker)
	assert.Equal(t, "B", first.Worker.Name)
	assert.Equal(t, "굽기", first.TaskName)
	assert.Equal(t, 30, first.Duration)

	assert.Nil(t, out[0].Schedules[1].Worker)
}

func TestViewStateOverrideLifecycle(t *testing.T) {
	store := NewViewStateStore()

	store.SetOverride(1, 10, "task:1:11", timeline.Override{WorkerName: "C"})
	_, _, _, overrides := store.Snapshot(1, 10)
	assert.Equal(t, "C", overrides["task:1:11"].WorkerName)

	// 다른 계정/시나리오에는 보이지 않습니다.
	_, _, _, other := store.Snapshot(2, 10)
	assert.Empty(t, other)
	_, _, _, other = store.Snapshot(1, 11)
	assert.Empty(t, other)

	// 빈 값으로 해제
	store.SetOverride(1, 10, "task:1:11", timeline.Override{})
	_, _, _, overrides = store.Snapshot(1, 10)
	assert.Empty(t, overrides)
}

func TestViewStateResolutionAndPanelClamp(t *testing.T) {
	store := NewViewStateStore()

	resolution, panel, _, _ := store.Snapshot(1, 1)
	assert.Equal(t, 15, resolution)
	assert.Equal(t, 320, panel)

	store.SetResolution(1, 1, 5)
	store.SetPanelWidth(1, 1, 9999)
	resolution, panel, _, _ = store.Snapshot(1, 1)
	assert.Equal(t, 5, resolution)
	assert.Equal(t, 520, panel)

	// 허용되지 않는 눈금 값은 무시
	store.SetResolution(1, 1, 13)
	resolution, _, _, _ = store.Snapshot(1, 1)
	assert.Equal(t, 5, resolution)
}

func TestViewStateDropAccount(t *testing.T) {
	store := NewViewStateStore()
	store.ToggleGroup(1, 1, "w:1")
	store.DropAccount(1)

	_, _, collapsed, _ := store.Snapshot(1, 1)
	assert.Empty(t, collapsed)
}
