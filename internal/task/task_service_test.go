package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTask(t *testing.T) {
	valid := Task{Name: "반죽", Seq: 1, Duration: 30, RequiredWorkers: 2}
	assert.NoError(t, ValidateTask(valid))

	cases := []struct {
		name string
		task Task
	}{
		{"이름 없음", Task{Seq: 1, Duration: 30, RequiredWorkers: 1}},
		{"순서 0", Task{Name: "발효", Seq: 0, Duration: 30, RequiredWorkers: 1}},
		{"소요 시간 0", Task{Name: "굽기", Seq: 2, Duration: 0, RequiredWorkers: 1}},
		{"인원 0", Task{Name: "포장", Seq: 3, Duration: 10, RequiredWorkers: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidateTask(tc.task))
		})
	}
}
