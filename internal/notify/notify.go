package notify

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/sizzlei/slack-notificator"
	"github.com/slack-go/slack"
)

// Notifier는 운영 채널로 Slack 알림을 발송합니다.
// 알림 실패는 화면 동작에 영향을 주면 안 되므로 에러를 반환하지 않고 로그만 남깁니다.
type Notifier struct {
	botToken  string
	channelID string
}

// NewNotifier
func NewNotifier(botToken, channelID string) *Notifier {
	return &Notifier{
		botToken:  botToken,
		channelID: channelID,
	}
}

// Enabled는 Slack 설정이 있는지 여부입니다. 설정이 없으면 발송을 건너뜁니다.
func (n *Notifier) Enabled() bool {
	return n.botToken != "" && n.channelID != ""
}

// SimulationFinished는 시뮬레이션 종료(OPTIMAL/ERROR) 알림을 발송합니다.
func (n *Notifier) SimulationFinished(scenarioID uint64, title, status string) {
	if !n.Enabled() {
		log.Printf("[Notify] Slack 미설정으로 시나리오(ID: %d) 알림을 건너뜁니다.", scenarioID)
		return
	}

	color := "#2eb886"
	headline := "시뮬레이션이 완료되었습니다."
	if status == "ERROR" {
		color = "#d00000"
		headline = "시뮬레이션이 실패했습니다."
	}

	attachment, err := n.buildAttachment(scenarioID, title, status, color)
	if err != nil {
		log.Printf("[ERROR] [Notify] 시나리오(ID: %d) Attachment 조립 실패: %v", scenarioID, err)
		return
	}

	api := slacknotificator.GetClient(n.botToken)
	notificationText := fmt.Sprintf("[Bakehub] %s (%s)", headline, title)
	if err := api.SetChannel(n.channelID).SendAttachment(notificationText, attachment); err != nil {
		log.Printf("[ERROR] [Notify] 시나리오(ID: %d) -> 채널(%s) 발송 실패: %v", scenarioID, n.channelID, err)
		return
	}
	log.Printf("[SUCCESS] [Notify] 시나리오(ID: %d) -> 채널(%s) 발송 성공", scenarioID, n.channelID)
}

// buildAttachment는 'slack-notificator'가 받는 Attachment JSON을 조립합니다.
func (n *Notifier) buildAttachment(scenarioID uint64, title, status, color string) (slack.Attachment, error) {
	payload := map[string]interface{}{
		"color": color,
		"title": title,
		"text":  fmt.Sprintf("시나리오 ID: %d\n상태: %s\n타임라인: /scenarios/%d/timeline", scenarioID, status, scenarioID),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		var empty slack.Attachment
		return empty, err
	}
	return slacknotificator.CreateAttachement(string(raw))
}
