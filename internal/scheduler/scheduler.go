package scheduler

import (
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"bakehub/internal/notify"
	"bakehub/internal/scenario"
)

// watchEntry는 상태 확인 대상으로 등록된 시뮬레이션 1건입니다.
type watchEntry struct {
	scenarioID uint64
	title      string
	token      string
}

// Scheduler는 시뮬레이션 완료 여부를 주기적으로 확인합니다.
// scenario 핸들러가 Watch()로 등록한 시나리오만 확인 대상입니다.
type Scheduler struct {
	cron *cron.Cron
	// (의존성)
	scenarioClient *scenario.Client
	notifier       *notify.Notifier

	mu      sync.Mutex
	watched map[uint64]watchEntry
}

// NewScheduler
func NewScheduler(sc *scenario.Client, notifier *notify.Notifier) *Scheduler {
	c := cron.New()
	return &Scheduler{
		cron:           c,
		scenarioClient: sc,
		notifier:       notifier,
		watched:        make(map[uint64]watchEntry),
	}
}

// Watch는 시뮬레이션 상태 확인 대상을 등록합니다.
// 같은 시나리오를 다시 등록하면 토큰만 갱신됩니다.
func (s *Scheduler) Watch(scenarioID uint64, title, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watched[scenarioID] = watchEntry{scenarioID: scenarioID, title: title, token: token}
	log.Printf("[Scheduler] 시나리오(ID: %d, %s) 상태 확인 대상으로 등록", scenarioID, title)
}

// Start
func (s *Scheduler) Start() {
	log.Println("[INFO] -----------------------------------------")
	log.Println("[INFO] 🔔 Bakehub 스케줄러가 시작됩니다...")
	s.cron.AddFunc("@every 1m", s.checkSimulations)
	s.cron.Start()
	log.Println("[INFO] -----------------------------------------")
}

// Stop
func (s *Scheduler) Stop() {
	log.Println("[INFO] Bakehub 스케줄러가 중지됩니다...")
	s.cron.Stop()
}

// checkSimulations는 등록된 시나리오의 상태를 병렬로 확인합니다.
func (s *Scheduler) checkSimulations() {
	s.mu.Lock()
	entries := make([]watchEntry, 0, len(s.watched))
	for _, e := range s.watched {
		entries = append(entries, e)
	}
	s.mu.Unlock()

	if len(entries) == 0 {
		return
	}

	log.Printf("[Scheduler] %d 건의 시뮬레이션 상태를 확인합니다...", len(entries))

	var wg sync.WaitGroup
	for _, e := range entries {
		wg.Add(1)
		go func(e watchEntry) {
			defer wg.Done()
			s.checkOne(e)
		}(e)
	}
	wg.Wait()
}

// checkOne은 시나리오 1건의 상태를 확인하고, 종료 상태면 알림 후 등록을 해제합니다.
func (s *Scheduler) checkOne(e watchEntry) {
	status, err := s.scenarioClient.GetStatus(e.token, e.scenarioID)
	if err != nil {
		// 일시적인 백엔드 오류일 수 있으니 등록은 유지하고 다음 틱에 재확인합니다.
		log.Printf("[ERROR] [Scheduler] 시나리오(ID: %d) 상태 조회 실패: %v", e.scenarioID, err)
		return
	}

	switch status {
	case scenario.StatusOptimal, scenario.StatusError:
		s.mu.Lock()
		delete(s.watched, e.scenarioID)
		s.mu.Unlock()

		log.Printf("[Scheduler] 시나리오(ID: %d, %s) 시뮬레이션 종료: %s", e.scenarioID, e.title, status)
		s.notifier.SimulationFinished(e.scenarioID, e.title, status)
	default:
		// READY/SIMULATING이면 계속 대기합니다.
	}
}
