package domain

// Traversal orders emitted by the binary tree generator.
const (
	TraversalPreorder  = "preorder"
	TraversalInorder   = "inorder"
	TraversalPostorder = "postorder"
)

// TreeNode is a binary search tree node.
// Ids are assigned in insertion order starting at 0 and never reused.
type TreeNode struct {
	ID    int       `json:"id"`
	Value int       `json:"value"`
	Left  *TreeNode `json:"left"`
	Right *TreeNode `json:"right"`
}

// Clone deep-copies the subtree rooted at n.
func (n *TreeNode) Clone() *TreeNode {
	if n == nil {
		return nil
	}
	return &TreeNode{
		ID:    n.ID,
		Value: n.Value,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
	}
}

// TreeState is the payload of binary tree steps.
type TreeState struct {
	Root      *TreeNode `json:"root"`
	CurrentID *int      `json:"currentId"`
	Highlight []int     `json:"highlight"`
	// Path holds the node ids visited so far by the active traversal; Visited their values.
	Path          []int  `json:"path"`
	Visited       []int  `json:"visited"`
	TraversalType string `json:"traversalType,omitempty"`
}

// Clone returns a deep copy of the tree state.
func (t *TreeState) Clone() *TreeState {
	if t == nil {
		return nil
	}
	return &TreeState{
		Root:          t.Root.Clone(),
		CurrentID:     cloneIntPtr(t.CurrentID),
		Highlight:     cloneInts(t.Highlight),
		Path:          cloneInts(t.Path),
		Visited:       cloneInts(t.Visited),
		TraversalType: t.TraversalType,
	}
}
