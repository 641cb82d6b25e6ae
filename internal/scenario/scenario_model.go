package scenario

import (
	"time"
)

// 시나리오 상태. 시뮬레이션은 전적으로 백엔드가 수행합니다.
const (
	StatusReady      = "READY"
	StatusSimulating = "SIMULATING"
	StatusOptimal    = "OPTIMAL"
	StatusError      = "ERROR"
)

// ScenarioItem은 시나리오의 생산 품목 1건입니다.
type ScenarioItem struct {
	ProductID   uint64 `json:"productId"`
	ProductName string `json:"productName"`
	Qty         int    `json:"qty"`
}

// Scenario는 계획자가 만든 생산 실행 요청입니다.
type Scenario struct {
	ID             uint64         `json:"id"`
	Title          string         `json:"title"`
	StartAt        *time.Time     `json:"startAt"`
	MaxWorkerCount int            `json:"maxWorkerCount"`
	Items          []ScenarioItem `json:"items"`
	Status         string         `json:"status"`
	CreatedAt      *time.Time     `json:"createdAt"`
}

// ScheduleWorker는 배정된 작업자 요약입니다.
type ScheduleWorker struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ScheduleTask는 배정된 공정 요약입니다.
type ScheduleTask struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"` // 분
}

// ScenarioSchedule은 백엔드 시뮬레이션이 계산한 배정 1건입니다.
// 콘솔에서는 읽기 전용이며, 시나리오가 삭제되면 함께 사라집니다.
type ScenarioSchedule struct {
	ID           uint64          `json:"id"`
	ScenarioID   uint64          `json:"scenarioId"`
	ProductID    uint64          `json:"productId"`
	TaskID       uint64          `json:"taskId"`
	Worker       *ScheduleWorker `json:"worker"`
	ToolID       uint64          `json:"toolId"`
	ToolName     string          `json:"toolName"`
	StartAt      *time.Time      `json:"startAt"`
	EndAt        *time.Time      `json:"endAt"`
	ScheduleTask ScheduleTask    `json:"scheduleTask"`
}

// ScheduledProduct는 상품 1종과 그 배정 목록입니다(타임라인 입력 형태).
type ScheduledProduct struct {
	ID                uint64             `json:"id"`
	Name              string             `json:"name"`
	ScenarioSchedules []ScenarioSchedule `json:"scenarioSchedules"`
}
