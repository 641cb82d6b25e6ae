package search

import (
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"bakehub/internal/account"
	"bakehub/internal/auth"
	"bakehub/internal/board"
	"bakehub/internal/middleware"
	"bakehub/internal/product"
)

// Result는 통합 검색 결과 묶음입니다.
type Result struct {
	Keyword  string
	Notices  []board.Post
	Posts    []board.Post
	Products []product.Product
	Accounts []auth.Account
	Total    int
}

// Service는 공지/자유게시판/상품/계정을 한 번에 검색합니다.
type Service struct {
	boardClient   *board.Client
	productClient *product.Client
	accountClient *account.Client
}

// NewService
func NewService(bc *board.Client, pc *product.Client, ac *account.Client) *Service {
	return &Service{
		boardClient:   bc,
		productClient: pc,
		accountClient: ac,
	}
}

// Search는 키워드 검색을 병렬로 수행합니다. 계정 검색은 ADMIN에게만 허용됩니다.
func (s *Service) Search(token, keyword, callerRole string) (*Result, error) {
	keyword = strings.TrimSpace(keyword)
	result := &Result{Keyword: keyword}
	if keyword == "" {
		return result, nil
	}

	var eg errgroup.Group

	eg.Go(func() error {
		notices, err := s.boardClient.List(token, board.KindNotice)
		if err != nil {
			log.Printf("[ERROR] Search: 공지 조회 실패: %v", err)
			return err
		}
		result.Notices = filterPosts(notices, keyword)
		return nil
	})

	eg.Go(func() error {
		posts, err := s.boardClient.List(token, board.KindCommunity)
		if err != nil {
			log.Printf("[ERROR] Search: 게시글 조회 실패: %v", err)
			return err
		}
		result.Posts = filterPosts(posts, keyword)
		return nil
	})

	eg.Go(func() error {
		products, err := s.productClient.List(token)
		if err != nil {
			log.Printf("[ERROR] Search: 상품 조회 실패: %v", err)
			return err
		}
		result.Products = filterProducts(products, keyword)
		return nil
	})

	if callerRole == middleware.RoleAdmin {
		eg.Go(func() error {
			accounts, err := s.accountClient.List(token, "")
			if err != nil {
				log.Printf("[ERROR] Search: 계정 조회 실패: %v", err)
				return err
			}
			result.Accounts = filterAccounts(accounts, keyword)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result.Total = len(result.Notices) + len(result.Posts) + len(result.Products) + len(result.Accounts)
	return result, nil
}

func filterPosts(posts []board.Post, keyword string) []board.Post {
	var out []board.Post
	for _, p := range posts {
		if containsFold(p.Title, keyword) || containsFold(p.Content, keyword) {
			out = append(out, p)
		}
	}
	return out
}

func filterProducts(products []product.Product, keyword string) []product.Product {
	var out []product.Product
	for _, p := range products {
		if containsFold(p.Name, keyword) || containsFold(p.Category, keyword) {
			out = append(out, p)
		}
	}
	return out
}

func filterAccounts(accounts []auth.Account, keyword string) []auth.Account {
	var out []auth.Account
	for _, a := range accounts {
		if containsFold(a.Name, keyword) || containsFold(a.Email, keyword) {
			out = append(out, a)
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
