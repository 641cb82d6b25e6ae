package product

import (
	"log"
	"sort"
	"strings"
)

// 목록 화면 페이지 크기
const pageSize = 12

// Service는 상품 화면 데이터 조립을 담당합니다.
// 목록 검색/정렬/페이지네이션은 받아온 목록 위에서 수행합니다.
type Service struct {
	client *Client
}

// NewService
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// ListPageData
type ListPageData struct {
	Products   []Product
	Keyword    string
	SortBy     string // name | category
	Page       int
	TotalPages int
	TotalCount int
	PageNums   []int // 템플릿 페이지네이션용 1..TotalPages
}

// FilterSortPage는 이미 받아온 목록에 키워드 필터/정렬/페이지 자르기를 적용합니다.
// 순수 함수라 화면 갱신마다 다시 호출해도 결과가 흔들리지 않습니다.
func FilterSortPage(products []Product, keyword, sortBy string, page int) ListPageData {
	if keyword != "" {
		lower := strings.ToLower(keyword)
		filtered := make([]Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), lower) ||
				strings.Contains(strings.ToLower(p.Category), lower) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	switch sortBy {
	case "category":
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Category == products[j].Category {
				return products[i].Name < products[j].Name
			}
			return products[i].Category < products[j].Category
		})
	default:
		sortBy = "name"
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	}

	totalCount := len(products)
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	from := (page - 1) * pageSize
	to := from + pageSize
	if to > totalCount {
		to = totalCount
	}

	pageNums := make([]int, totalPages)
	for i := range pageNums {
		pageNums[i] = i + 1
	}

	return ListPageData{
		Products:   products[from:to],
		Keyword:    keyword,
		SortBy:     sortBy,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: totalCount,
		PageNums:   pageNums,
	}
}

// GetListPageData는 목록을 조회해 화면 데이터로 가공합니다.
func (s *Service) GetListPageData(token, keyword, sortBy string, page int) (*ListPageData, error) {
	products, err := s.client.List(token)
	if err != nil {
		log.Printf("[ERROR] 상품 목록 조회 실패: %v", err)
		return nil, err
	}
	data := FilterSortPage(products, keyword, sortBy, page)
	return &data, nil
}
