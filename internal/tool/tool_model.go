package tool

// ToolCategory는 장비 분류(오븐, 믹서, 발효기 ...)입니다.
type ToolCategory struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Tool은 장비 1대입니다.
type Tool struct {
	ID          uint64 `json:"id"`
	CategoryID  uint64 `json:"toolCategoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
