package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parent(id uint64) *uint64 { return &id }

func TestBuildCommentTreeForest(t *testing.T) {
	comments := []Comment{
		{ID: 1, Content: "첫 댓글"},
		{ID: 2, ParentCommentID: parent(1), Content: "답글"},
		{ID: 3, ParentCommentID: parent(2), Content: "답글의 답글"},
		{ID: 4, Content: "두 번째 댓글"},
		{ID: 5, ParentCommentID: parent(1), Content: "답글 2"},
	}

	roots := BuildCommentTree(comments)

	require.Len(t, roots, 2)
	assert.Equal(t, uint64(1), roots[0].ID)
	assert.Equal(t, uint64(4), roots[1].ID)

	// 형제 순서는 입력 순서를 유지
	require.Len(t, roots[0].Replies, 2)
	assert.Equal(t, uint64(2), roots[0].Replies[0].ID)
	assert.Equal(t, uint64(5), roots[0].Replies[1].ID)

	assert.Equal(t, 0, roots[0].Depth)
	assert.Equal(t, 1, roots[0].Replies[0].Depth)
	assert.Equal(t, 2, roots[0].Replies[0].Replies[0].Depth)

	assert.Equal(t, 5, CountComments(roots))
}

func TestBuildCommentTreeDepthCap(t *testing.T) {
	// 1 → 2 → 3 → 4 → 5 → 6 체인: 깊이는 3에서 눌러서 표시
	comments := []Comment{
		{ID: 1},
		{ID: 2, ParentCommentID: parent(1)},
		{ID: 3, ParentCommentID: parent(2)},
		{ID: 4, ParentCommentID: parent(3)},
		{ID: 5, ParentCommentID: parent(4)},
		{ID: 6, ParentCommentID: parent(5)},
	}

	roots := BuildCommentTree(comments)
	require.Len(t, roots, 1)

	node := roots[0]
	depths := []int{node.Depth}
	for len(node.Replies) > 0 {
		node = node.Replies[0]
		depths = append(depths, node.Depth)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 3, 3}, depths)
}

func TestBuildCommentTreeOrphanParent(t *testing.T) {
	// 목록에 없는 부모를 가리키면 최상위로 승격 (방어)
	comments := []Comment{
		{ID: 1},
		{ID: 2, ParentCommentID: parent(999)},
	}

	roots := BuildCommentTree(comments)
	require.Len(t, roots, 2)
	assert.Equal(t, 0, roots[1].Depth)
}

func TestBuildCommentTreeCycleDoesNotHang(t *testing.T) {
	// 부모 참조가 사이클인 비정상 입력도 멈추지 않고 전부 배치
	comments := []Comment{
		{ID: 1, ParentCommentID: parent(2)},
		{ID: 2, ParentCommentID: parent(1)},
		{ID: 3},
	}

	roots := BuildCommentTree(comments)
	assert.GreaterOrEqual(t, len(roots), 2)

	total := 0
	seen := map[uint64]bool{}
	var walk func(n *CommentNode)
	walk = func(n *CommentNode) {
		if seen[n.ID] {
			return
		}
		seen[n.ID] = true
		total++
		for _, r := range n.Replies {
			walk(r)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	assert.Equal(t, 3, total)
}
