package task

// Task는 상품 1종의 공정 단계 정의입니다. Seq 순서대로 실행됩니다.
type Task struct {
	ID              uint64 `json:"id"`
	ProductID       uint64 `json:"productId"`
	Name            string `json:"name"`
	ToolCategoryID  uint64 `json:"toolCategoryId"`
	Seq             int    `json:"seq"`
	Duration        int    `json:"duration"` // 분
	RequiredWorkers int    `json:"requiredWorkers"`
}
