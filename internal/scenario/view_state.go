package scenario

import (
	"sync"

	"bakehub/internal/timeline"
)

// viewState는 타임라인 화면의 세션 한정 상태입니다.
// 덮어쓰기/접힘/눈금/패널 폭 전부 콘솔 메모리에만 존재하며
// 백엔드로 절대 전송되지 않습니다.
type viewState struct {
	Resolution int
	PanelWidth int
	Collapsed  map[string]bool
	Overrides  map[string]timeline.Override
}

func newViewState() *viewState {
	return &viewState{
		Resolution: 15,
		PanelWidth: 320,
		Collapsed:  map[string]bool{},
		Overrides:  map[string]timeline.Override{},
	}
}

// ViewStateStore는 (계정, 시나리오)별 viewState 보관소입니다.
// 로그아웃 시 계정 단위로 정리합니다.
type ViewStateStore struct {
	mu     sync.Mutex
	states map[uint64]map[uint64]*viewState // accountID -> scenarioID -> state
}

// NewViewStateStore
func NewViewStateStore() *ViewStateStore {
	return &ViewStateStore{
		states: make(map[uint64]map[uint64]*viewState),
	}
}

func (s *ViewStateStore) get(accountID, scenarioID uint64) *viewState {
	perAccount, ok := s.states[accountID]
	if !ok {
		perAccount = make(map[uint64]*viewState)
		s.states[accountID] = perAccount
	}
	state, ok := perAccount[scenarioID]
	if !ok {
		state = newViewState()
		perAccount[scenarioID] = state
	}
	return state
}

// Snapshot은 타임라인 계산에 쓸 복사본을 반환합니다(원본 공유 금지).
func (s *ViewStateStore) Snapshot(accountID, scenarioID uint64) (int, int, map[string]bool, map[string]timeline.Override) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.get(accountID, scenarioID)

	collapsed := make(map[string]bool, len(state.Collapsed))
	for k, v := range state.Collapsed {
		collapsed[k] = v
	}
	overrides := make(map[string]timeline.Override, len(state.Overrides))
	for k, v := range state.Overrides {
		overrides[k] = v
	}
	return state.Resolution, state.PanelWidth, collapsed, overrides
}

// SetResolution은 눈금 간격(5/15/30분)을 바꿉니다.
func (s *ViewStateStore) SetResolution(accountID, scenarioID uint64, resolution int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch resolution {
	case 5, 15, 30:
		s.get(accountID, scenarioID).Resolution = resolution
	}
}

// SetPanelWidth는 좌측 패널 폭을 허용 범위로 잘라 저장합니다.
func (s *ViewStateStore) SetPanelWidth(accountID, scenarioID uint64, width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(accountID, scenarioID).PanelWidth = timeline.ClampPanelWidth(width)
}

// ToggleGroup은 작업자 그룹 접힘을 토글합니다.
func (s *ViewStateStore) ToggleGroup(accountID, scenarioID uint64, groupKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.get(accountID, scenarioID)
	if state.Collapsed[groupKey] {
		delete(state.Collapsed, groupKey)
	} else {
		state.Collapsed[groupKey] = true
	}
}

// SetOverride는 행 1개의 표시 전용 배정 덮어쓰기를 저장합니다.
// 둘 다 빈 값이면 덮어쓰기를 해제합니다.
func (s *ViewStateStore) SetOverride(accountID, scenarioID uint64, key string, ov timeline.Override) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.get(accountID, scenarioID)
	if ov.WorkerName == "" && ov.ToolName == "" {
		delete(state.Overrides, key)
		return
	}
	state.Overrides[key] = ov
}

// PruneCollapsed는 입력에서 사라진 작업자의 접힘 키를 정리합니다.
func (s *ViewStateStore) PruneCollapsed(accountID, scenarioID uint64, layout timeline.Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.get(accountID, scenarioID)
	state.Collapsed = timeline.NormalizeCollapsed(state.Collapsed, layout)
}

// DropAccount는 로그아웃 시 계정의 모든 화면 상태를 버립니다.
func (s *ViewStateStore) DropAccount(accountID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, accountID)
}
