package model

// ItemType distinguishes files from synthesized folders in a file tree.
type ItemType string

const (
	// ItemFile is a node backed by a ProjectFile.
	ItemFile ItemType = "file"
	// ItemFolder is a node synthesized from a shared path prefix.
	ItemFolder ItemType = "folder"
)

// FileTreeItem is a node in the hierarchy rebuilt from flat file paths.
type FileTreeItem struct {
	Name     string          `json:"name"`
	Path     string          `json:"path"`
	Type     ItemType        `json:"type"`
	FileType string          `json:"fileType,omitempty"`
	Children []*FileTreeItem `json:"children,omitempty"`
}

// IsFolder reports whether the item is a folder.
func (i *FileTreeItem) IsFolder() bool {
	return i.Type == ItemFolder
}
