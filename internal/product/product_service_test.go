package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Name: "소금빵", Category: "빵"},
		{ID: 2, Name: "크루아상", Category: "페이스트리"},
		{ID: 3, Name: "단팥빵", Category: "빵"},
		{ID: 4, Name: "마카롱", Category: "디저트"},
	}
}

func TestFilterSortPageKeyword(t *testing.T) {
	data := FilterSortPage(sampleProducts(), "빵", "name", 1)

	require.Equal(t, 2, data.TotalCount)
	assert.Equal(t, "단팥빵", data.Products[0].Name)
	assert.Equal(t, "소금빵", data.Products[1].Name)
}

func TestFilterSortPageByCategory(t *testing.T) {
	data := FilterSortPage(sampleProducts(), "", "category", 1)

	require.Equal(t, 4, data.TotalCount)
	assert.Equal(t, "디저트", data.Products[0].Category)
	// 같은 카테고리 안에서는 이름순
	assert.Equal(t, "단팥빵", data.Products[1].Name)
	assert.Equal(t, "소금빵", data.Products[2].Name)
}

func TestFilterSortPageClampsPage(t *testing.T) {
	// 범위를 벗어난 페이지 번호는 가장 가까운 유효 페이지로
	data := FilterSortPage(sampleProducts(), "", "name", 99)
	assert.Equal(t, 1, data.Page)
	assert.Len(t, data.Products, 4)

	empty := FilterSortPage(nil, "", "name", 0)
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Empty(t, empty.Products)
}
