package calendar

import "time"

// EventKind는 달력 항목의 출처 구분입니다.
type EventKind string

const (
	EventScenario EventKind = "SCENARIO"
	EventNotice   EventKind = "NOTICE"
)

// Event는 달력 한 칸에 표시되는 항목입니다.
type Event struct {
	Kind  EventKind
	Title string
	Link  string
	At    time.Time
}

// Day는 달력 그리드의 하루입니다.
type Day struct {
	Date     time.Time
	InMonth  bool
	IsToday  bool
	Events   []Event
}

// MonthGrid는 주 단위로 잘린 달력 그리드입니다.
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks [][]Day
}
