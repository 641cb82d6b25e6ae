package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bakehub/internal/auth"
	"bakehub/internal/board"
	"bakehub/internal/product"
)

func TestFilterPosts(t *testing.T) {
	posts := []board.Post{
		{ID: 1, Title: "크루아상 생산 일정 안내", Content: "내일 새벽 반죽 준비"},
		{ID: 2, Title: "휴무 공지", Content: "설 연휴 휴무입니다"},
		{ID: 3, Title: "오븐 점검", Content: "크루아상 라인 오븐 점검 예정"},
	}

	got := filterPosts(posts, "크루아상")

	assert.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(3), got[1].ID)
}

func TestFilterProductsByNameAndCategory(t *testing.T) {
	products := []product.Product{
		{ID: 1, Name: "소금빵", Category: "빵"},
		{ID: 2, Name: "딸기 케이크", Category: "케이크"},
		{ID: 3, Name: "바게트", Category: "빵"},
	}

	assert.Len(t, filterProducts(products, "빵"), 2)
	assert.Len(t, filterProducts(products, "케이크"), 1)
	assert.Empty(t, filterProducts(products, "쿠키"))
}

func TestFilterAccountsCaseInsensitive(t *testing.T) {
	accounts := []auth.Account{
		{ID: 1, Name: "김제빵", Email: "Baker.Kim@bakehub.kr"},
		{ID: 2, Name: "이반죽", Email: "dough.lee@bakehub.kr"},
	}

	got := filterAccounts(accounts, "baker.kim")

	assert.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].ID)
}
