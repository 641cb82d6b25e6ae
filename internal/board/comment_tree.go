package board

// MaxReplyDepth는 화면에 표시하는 대댓글 최대 깊이입니다.
// 더 깊은 답글은 이 깊이로 눌러서 표시합니다.
const MaxReplyDepth = 3

// CommentNode는 평면 댓글 목록에서 복원한 트리의 노드입니다.
type CommentNode struct {
	Comment
	Depth   int
	Replies []*CommentNode
}

// BuildCommentTree는 백엔드의 평면 댓글 목록을 ParentCommentID 기준으로
// 포레스트로 복원합니다. 입력 순서(백엔드 정렬)를 형제 순서로 유지합니다.
// 존재하지 않는 부모를 가리키는 댓글은 최상위로 올립니다(방어).
func BuildCommentTree(comments []Comment) []*CommentNode {
	byID := make(map[uint64]*CommentNode, len(comments))
	order := make([]*CommentNode, 0, len(comments))

	for _, c := range comments {
		node := &CommentNode{Comment: c}
		byID[c.ID] = node
		order = append(order, node)
	}

	var roots []*CommentNode
	for _, node := range order {
		parentID := node.ParentCommentID
		if parentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := byID[*parentID]
		if !ok || parent == node {
			// 부모가 목록에 없거나 자기 자신을 가리키는 비정상 데이터
			roots = append(roots, node)
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}

	// 깊이 계산. 부모 참조가 사이클을 이루는 비정상 입력도
	// 방문 표시로 한 번만 처리하고 고아로 승격합니다.
	visited := make(map[uint64]bool, len(order))
	var walk func(node *CommentNode, depth int)
	walk = func(node *CommentNode, depth int) {
		if visited[node.ID] {
			return
		}
		visited[node.ID] = true
		if depth > MaxReplyDepth {
			depth = MaxReplyDepth
		}
		node.Depth = depth
		for _, reply := range node.Replies {
			walk(reply, depth+1)
		}
	}
	for _, root := range roots {
		walk(root, 0)
	}
	for _, node := range order {
		if !visited[node.ID] {
			// 사이클에 갇혀 어떤 루트에서도 도달하지 못한 노드
			node.Replies = nil
			roots = append(roots, node)
			walk(node, 0)
		}
	}

	return roots
}

// CountComments는 트리 전체 노드 수입니다(목록 화면 배지용).
func CountComments(roots []*CommentNode) int {
	total := 0
	var walk func(node *CommentNode)
	walk = func(node *CommentNode) {
		total++
		for _, reply := range node.Replies {
			walk(reply)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return total
}
