package board

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"bakehub/internal/backend"
	"bakehub/internal/middleware"
)

// 목록 화면 페이지 크기
const pageSize = 10

// Service는 게시판 화면에 필요한 데이터 조립을 담당합니다.
type Service struct {
	client *Client
}

// NewService
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// ListPageData는 목록 화면에 전달되는 데이터입니다.
type ListPageData struct {
	Posts      []Post
	Keyword    string
	Page       int
	TotalPages int
	TotalCount int
	PageNums   []int // 템플릿 페이지네이션용 1..TotalPages
}

// GetListPageData는 전체 목록을 받아온 뒤 콘솔 쪽에서
// 키워드 필터 → 최신순 정렬 → 페이지 자르기를 수행합니다.
func (s *Service) GetListPageData(token string, kind Kind, keyword string, page int) (*ListPageData, error) {
	posts, err := s.client.List(token, kind)
	if err != nil {
		log.Printf("[ERROR] 게시글 목록 조회 실패 (kind=%s): %v", kind, err)
		return nil, err
	}

	// 1. 키워드 필터 (제목/작성자)
	if keyword != "" {
		lower := strings.ToLower(keyword)
		filtered := posts[:0]
		for _, p := range posts {
			if strings.Contains(strings.ToLower(p.Title), lower) ||
				strings.Contains(strings.ToLower(p.Writer.Name), lower) {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	// 2. 최신순 정렬 (동률이면 ID 역순으로 안정화)
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	// 3. 페이지 자르기
	totalCount := len(posts)
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

	return &ListPageData{
		Posts:      posts[from:to],
		Keyword:    keyword,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: totalCount,
		PageNums:   pageNums,
	}, nil
}

// DetailPageData는 상세 화면에 전달되는 데이터입니다.
type DetailPageData struct {
	Post         *Post
	Comments     []*CommentNode
	CommentCount int
}

// GetDetailPageData는 게시글과 댓글을 병렬로 조회하고 댓글 트리를 복원합니다.
func (s *Service) GetDetailPageData(token string, kind Kind, postID uint64) (*DetailPageData, error) {
	var data DetailPageData
	var eg errgroup.Group

	eg.Go(func() error {
		post, err := s.client.Get(token, kind, postID)
		if err != nil {
			log.Printf("[ERROR] 게시글(ID: %d) 조회 실패: %v", postID, err)
			return err
		}
		data.Post = post
		return nil
	})
	eg.Go(func() error {
		comments, err := s.client.ListComments(token, kind, postID)
		if err != nil {
			log.Printf("[ERROR] 게시글(ID: %d) 댓글 조회 실패: %v", postID, err)
			return err
		}
		data.Comments = BuildCommentTree(comments)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	data.CommentCount = CountComments(data.Comments)
	return &data, nil
}

// CanWrite는 게시판 종류별 글쓰기 권한입니다. 규칙은 middleware에 1곳만 둡니다.
func (s *Service) CanWrite(kind Kind, role string) bool {
	return middleware.CanManageBoard(string(kind), role)
}

// CanEdit는 수정/삭제 권한입니다. 작성자 본인 또는 ADMIN.
func (s *Service) CanEdit(post *Post, accountID uint64, role string) bool {
	return post.Writer.ID == accountID || role == middleware.RoleAdmin
}

// CreatePost는 권한 확인 후 게시글을 등록합니다.
func (s *Service) CreatePost(token string, kind Kind, role, title, content string, files []backend.UploadFile) error {
	if !s.CanWrite(kind, role) {
		return fmt.Errorf("권한 없음: 이 게시판에 글을 쓸 수 없습니다.")
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("제목을 입력해 주세요.")
	}
	return s.client.Create(token, kind, title, content, files)
}
