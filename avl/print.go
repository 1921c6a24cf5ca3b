package avl

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Print writes an indented drawing of the tree structure to w, one node per
// line with its height and balance. Right children are listed before left
// children so the drawing reads top-down like the key order turned sideways.
//
//	5 (h=3 +0)
//	├── [R]  8 (h=2 +0)
//	│   ├── [R]  9 (h=1 +0)
//	│   └── [L]  7 (h=1 +0)
//	└── [L]  4 (h=2 +1)
//	    └── [L]  1 (h=1 +0)
func (t *Tree[E, K]) Print(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

// String renders the same drawing as Print.
func (t *Tree[E, K]) String() string {
	if t.root == nil {
		return "<empty>\n"
	}
	tp := treeprint.NewWithRoot(label(t.root))
	addChildren(tp, t.root)

	return tp.String()
}

func addChildren[E any](branch treeprint.Tree, n *node[E]) {
	if n.right != nil {
		addChildren(branch.AddMetaBranch("R", label(n.right)), n.right)
	}
	if n.left != nil {
		addChildren(branch.AddMetaBranch("L", label(n.left)), n.left)
	}
}

func label[E any](n *node[E]) string {
	return fmt.Sprintf("%v (h=%d %+d)", n.elem, n.height, n.balance())
}
