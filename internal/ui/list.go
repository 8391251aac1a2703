package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"albumweld/internal/sorter"
)

var _ list.Item = renameItem{}

// renameItem wraps [sorter.RenameOp] to implement [list.Item].
type renameItem struct {
	index int
	op    sorter.RenameOp
}

func (i renameItem) FilterValue() string { return i.op.Title }
func (i renameItem) Title() string       { return fmt.Sprintf("%d. %s", i.index+1, i.op.Title) }
func (i renameItem) Description() string {
	return fmt.Sprintf("%s ==> %s", i.op.Source, i.op.NewName)
}
