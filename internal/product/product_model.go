package product

import (
	"time"
)

// Product는 백엔드 상품(빵) 마스터의 형태입니다.
type Product struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	CreatedAt   *time.Time `json:"createdAt"`
}
