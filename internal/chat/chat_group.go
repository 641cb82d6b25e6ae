package chat

import (
	"time"
)

// MessageGroup은 말풍선 묶음입니다. 같은 발신자가 같은 분(minute)에
// 연속으로 보낸 메시지는 한 묶음으로 표시합니다.
type MessageGroup struct {
	Talker   Talker
	Mine     bool // 본인 발신 여부 (좌/우 정렬)
	Messages []Message
}

// GroupMessages는 시간순 메시지 목록을 말풍선 묶음으로 변환합니다.
// 입력 순서를 그대로 유지하는 순수 함수입니다.
func GroupMessages(messages []Message, selfID uint64) []MessageGroup {
	var groups []MessageGroup
	for _, msg := range messages {
		if len(groups) > 0 {
			last := &groups[len(groups)-1]
			lastMsg := last.Messages[len(last.Messages)-1]
			sameMinute := lastMsg.TalkedAt.Truncate(time.Minute).Equal(msg.TalkedAt.Truncate(time.Minute))
			if last.Talker.ID == msg.Talker.ID && sameMinute {
				last.Messages = append(last.Messages, msg)
				continue
			}
		}
		groups = append(groups, MessageGroup{
			Talker:   msg.Talker,
			Mine:     msg.Talker.ID == selfID,
			Messages: []Message{msg},
		})
	}
	return groups
}
