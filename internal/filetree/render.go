package filetree

import (
	"io"

	"github.com/ddddddO/gtree"

	"github.com/tacogips/pagegen/internal/template/model"
)

// Render draws items under a root labelled rootName.
func Render(w io.Writer, rootName string, items []*model.FileTreeItem) error {
	root := gtree.NewRoot(rootName)
	addNodes(root, items)
	return gtree.OutputProgrammably(w, root)
}

func addNodes(parent *gtree.Node, items []*model.FileTreeItem) {
	for _, item := range items {
		name := item.Name
		if item.IsFolder() {
			name += Separator
		}
		node := parent.Add(name)
		addNodes(node, item.Children)
	}
}
