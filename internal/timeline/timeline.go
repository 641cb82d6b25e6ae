// Package timeline은 시나리오 시뮬레이션 결과(ScenarioSchedule)를
// 간트 차트 격자로 배치하는 순수 계산 패키지입니다.
// 네트워크 호출 없음. 같은 입력이면 항상 같은 배치가 나옵니다.
package timeline

import (
	"fmt"
	"time"
)

// 축/패널 상수
const (
	TrailingPadMinutes = 60   // 마지막 블록 뒤 여백
	HourRound          = 60   // 24시간 이하 축 반올림 단위
	SixHourRound       = 360  // 24시간 초과 축 반올림 단위
	DayMinutes         = 1440 // 24시간
	PanelMinWidth      = 220  // 좌측 고정 패널 최소 폭(px)
	PanelMaxWidth      = 520  // 좌측 고정 패널 최대 폭(px)
)

// UnassignedKey는 작업자 미배정 스케줄을 모으는 합성 그룹 키입니다.
const UnassignedKey = "unassigned"

// Worker는 스케줄에 배정된 작업자입니다.
type Worker struct {
	ID   uint64
	Name string
}

// ScheduleEntry는 백엔드가 계산한 배정 1건입니다.
// StartAt/EndAt은 일부가 비어 있을 수 있습니다(부분 로딩/결손 데이터).
type ScheduleEntry struct {
	ID       uint64
	Worker   *Worker
	ToolID   uint64
	ToolName string
	TaskName string
	Duration int // 공정 정의 duration(분). 0이면 EndAt-StartAt로 대체
	StartAt  *time.Time
	EndAt    *time.Time
}

// Product는 상품 1종과 그 스케줄 목록입니다.
type Product struct {
	ID        uint64
	Name      string
	Schedules []ScheduleEntry
}

// Override는 화면 표시 전용 배정 덮어쓰기입니다(원본 불변).
// 백엔드로 전송되지 않는 세션 한정 미리보기 값입니다.
type Override struct {
	WorkerName string
	ToolName   string
}

// Options는 배치 계산 입력 옵션입니다.
type Options struct {
	Resolution int                 // 눈금 간격(분): 5 | 15 | 30
	Collapsed  map[string]bool     // 그룹 키 -> 접힘 여부 (없으면 펼침)
	Overrides  map[string]Override // 합성 키 -> 표시 덮어쓰기
}

// RowKind는 행 종류입니다.
type RowKind int

const (
	RowGroup RowKind = iota // 작업자 그룹 헤더 행
	RowTask                 // 스케줄 블록 행
)

// Row는 패널/타임라인 본문이 공유하는 행 좌표계의 1행입니다.
// Index는 렌더링되는 행에 대해 단조 증가합니다(그룹 헤더 포함).
type Row struct {
	Index       int
	Kind        RowKind
	GroupKey    string
	Label       string
	ProductID   uint64
	ProductName string
	WorkerName  string
	ToolName    string
	Key         string // 덮어쓰기 합성 키 (task 행 전용)
	Start       int    // 시나리오 시작 기준 경과(분)
	Duration    int    // 블록 길이(분)
	Left        int    // px
	Width       int    // px
}

// IsGroup은 그룹 헤더 행 여부입니다. (템플릿 분기용)
func (r Row) IsGroup() bool {
	return r.Kind == RowGroup
}

// Group은 작업자 그룹 요약입니다. 순서는 평탄화 중 최초 등장 순서입니다.
type Group struct {
	Key       string
	Name      string
	Collapsed bool
	TaskCount int
}

// Layout은 계산 결과 전체입니다.
type Layout struct {
	Rows        []Row
	Groups      []Group
	AxisMinutes int
	MaxEnd      int
	PxPerMinute int
	CanvasWidth int
}

// Tick은 시간축 눈금 1개입니다.
type Tick struct {
	Minute int
	Left   int // px
	Label  string
}

// HourTicks는 1시간 간격 눈금을 만듭니다. (템플릿 렌더링용)
func (l Layout) HourTicks() []Tick {
	var ticks []Tick
	for m := 0; m <= l.AxisMinutes; m += HourRound {
		ticks = append(ticks, Tick{
			Minute: m,
			Left:   m * l.PxPerMinute,
			Label:  fmt.Sprintf("+%d시간", m/60),
		})
	}
	return ticks
}

// OverrideKey는 행 단위 덮어쓰기의 합성 키를 만듭니다.
// 스케줄 ID가 없는(0) 비정상 데이터는 평탄화 인덱스로 대체합니다.
func OverrideKey(productID, scheduleID uint64, flattenIndex int) string {
	if scheduleID == 0 {
		return fmt.Sprintf("task:%d:%d", productID, flattenIndex)
	}
	return fmt.Sprintf("task:%d:%d", productID, scheduleID)
}

// PxPerMinute는 눈금 간격에서 분당 픽셀을 구합니다. (5⇒12, 15⇒4, 30⇒2)
// 허용되지 않는 값은 15분 눈금으로 간주합니다.
func PxPerMinute(resolution int) int {
	switch resolution {
	case 5, 15, 30:
		return 60 / resolution
	default:
		return 60 / 15
	}
}

// ClampPanelWidth는 좌측 패널 드래그 폭을 허용 범위로 자릅니다.
func ClampPanelWidth(w int) int {
	if w < PanelMinWidth {
		return PanelMinWidth
	}
	if w > PanelMaxWidth {
		return PanelMaxWidth
	}
	return w
}

// AxisMinutes는 축 전체 길이(분)를 구합니다.
// maxEnd + 60분 여백 후, 24시간 이하면 1시간 단위, 초과면 6시간 단위로 올림합니다.
func AxisMinutes(maxEnd int) int {
	total := maxEnd + TrailingPadMinutes
	round := HourRound
	if total > DayMinutes {
		round = SixHourRound
	}
	if total%round != 0 {
		total = (total/round + 1) * round
	}
	return total
}

// minutesSince는 기준 시각으로부터의 경과 분입니다.
// 결손/역전 입력은 0으로 강등합니다(절대 패닉하지 않음).
func minutesSince(base, t *time.Time) int {
	if base == nil || t == nil {
		return 0
	}
	m := int(t.Sub(*base).Minutes())
	if m < 0 {
		return 0
	}
	return m
}

// entryDuration은 블록 길이(분)를 결정합니다.
// 공정 duration 우선, 없으면 EndAt-StartAt, 둘 다 없으면 0.
func entryDuration(e ScheduleEntry) int {
	if e.Duration > 0 {
		return e.Duration
	}
	if e.StartAt != nil && e.EndAt != nil {
		d := int(e.EndAt.Sub(*e.StartAt).Minutes())
		if d > 0 {
			return d
		}
	}
	return 0
}

// Build는 (products, scenarioStart, opts)의 순수 함수로 전체 배치를 계산합니다.
func Build(products []Product, scenarioStart *time.Time, opts Options) Layout {
	pxPerMinute := PxPerMinute(opts.Resolution)

	// 1. 평탄화: 모든 상품의 스케줄을 등장 순서대로 task 행 후보로 변환
	type flatTask struct {
		row      Row
		groupKey string
	}
	var flat []flatTask
	groupOrder := []string{}              // 최초 등장 순서
	groupName := map[string]string{}      // 키 -> 표시 이름
	groupTasks := map[string][]int{}      // 키 -> flat 인덱스 목록
	maxEnd := 0

	flattenIndex := 0
	for _, p := range products {
		for _, e := range p.Schedules {
			start := minutesSince(scenarioStart, e.StartAt)
			duration := entryDuration(e)
			if end := start + duration; end > maxEnd {
				maxEnd = end
			}

			// 2. 작업자 그룹 결정: 미배정은 합성 그룹으로 수렴
			key := UnassignedKey
			name := "미배정"
			workerName := ""
			if e.Worker != nil && e.Worker.ID != 0 {
				key = fmt.Sprintf("w:%d", e.Worker.ID)
				name = e.Worker.Name
				workerName = e.Worker.Name
			}
			if _, seen := groupName[key]; !seen {
				groupOrder = append(groupOrder, key)
				groupName[key] = name
			}

			row := Row{
				Kind:        RowTask,
				GroupKey:    key,
				Label:       e.TaskName,
				ProductID:   p.ID,
				ProductName: p.Name,
				WorkerName:  workerName,
				ToolName:    e.ToolName,
				Key:         OverrideKey(p.ID, e.ID, flattenIndex),
				Start:       start,
				Duration:    duration,
			}

			// 7. 표시 전용 덮어쓰기: 해당 행 1개만 그림자 처리
			if ov, ok := opts.Overrides[row.Key]; ok {
				if ov.WorkerName != "" {
					row.WorkerName = ov.WorkerName
				}
				if ov.ToolName != "" {
					row.ToolName = ov.ToolName
				}
			}

			groupTasks[key] = append(groupTasks[key], len(flat))
			flat = append(flat, flatTask{row: row, groupKey: key})
			flattenIndex++
		}
	}

	// 4~5. 축 길이와 캔버스 폭
	axis := AxisMinutes(maxEnd)
	canvas := axis * pxPerMinute

	// 3. 그룹 헤더 + (펼친 그룹의) task 행을 단조 증가 인덱스로 배열
	layout := Layout{
		AxisMinutes: axis,
		MaxEnd:      maxEnd,
		PxPerMinute: pxPerMinute,
		CanvasWidth: canvas,
	}

	rowIndex := 0
	for _, key := range groupOrder {
		collapsed := opts.Collapsed[key]
		group := Group{
			Key:       key,
			Name:      groupName[key],
			Collapsed: collapsed,
			TaskCount: len(groupTasks[key]),
		}
		layout.Groups = append(layout.Groups, group)

		layout.Rows = append(layout.Rows, Row{
			Index:    rowIndex,
			Kind:     RowGroup,
			GroupKey: key,
			Label:    group.Name,
		})
		rowIndex++

		if collapsed {
			continue
		}
		for _, fi := range groupTasks[key] {
			row := flat[fi].row
			row.Index = rowIndex
			row.Left = row.Start * pxPerMinute
			row.Width = row.Duration * pxPerMinute
			layout.Rows = append(layout.Rows, row)
			rowIndex++
		}
	}

	return layout
}

// NormalizeCollapsed는 접힘 상태를 현재 입력에 맞게 정리합니다.
// 사라진 작업자의 키는 제거되고, 새 작업자는 기본 펼침(키 없음)입니다.
func NormalizeCollapsed(collapsed map[string]bool, layout Layout) map[string]bool {
	next := make(map[string]bool, len(collapsed))
	for _, g := range layout.Groups {
		if collapsed[g.Key] {
			next[g.Key] = true
		}
	}
	return next
}
