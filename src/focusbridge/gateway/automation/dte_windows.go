//go:build windows

package automation

import (
	"context"
	"fmt"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/mapper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// dteHandle drives a Visual Studio DTE automation object through IDispatch.
type dteHandle struct {
	dte    *ole.IDispatch
	logger *zap.SugaredLogger
}

func (h *dteHandle) release() {
	if h.dte != nil {
		h.dte.Release()
		h.dte = nil
	}
}

func (h *dteHandle) ActiveDocument(ctx context.Context) (entity.DocumentContext, error) {
	var doc entity.DocumentContext

	solutionPath, err := h.solutionPath()
	if err != nil {
		return doc, err
	}
	if solutionPath != "" {
		doc.WorkspaceRoot = mapper.DirName(solutionPath)
	}

	active, err := dispatchProperty(h.dte, "ActiveDocument")
	if err != nil || active == nil {
		return doc, err
	}
	defer active.Release()

	if doc.FilePath, err = stringProperty(active, "FullName"); err != nil {
		return doc, err
	}
	doc.Line = h.activeLine(active)
	return doc, nil
}

func (h *dteHandle) solutionPath() (string, error) {
	solution, err := dispatchProperty(h.dte, "Solution")
	if err != nil || solution == nil {
		return "", err
	}
	defer solution.Release()
	return stringProperty(solution, "FullName")
}

// activeLine returns 0 for documents whose selection is not a text selection.
func (h *dteHandle) activeLine(doc *ole.IDispatch) int {
	sel, err := dispatchProperty(doc, "Selection")
	if err != nil || sel == nil {
		return 0
	}
	defer sel.Release()

	point, err := dispatchProperty(sel, "ActivePoint")
	if err != nil || point == nil {
		h.logger.Debugw("active document has no text selection", "error", err)
		return 0
	}
	defer point.Release()

	line, err := intProperty(point, "Line")
	if err != nil {
		return 0
	}
	return line
}

func (h *dteHandle) Workspace(ctx context.Context) (*entity.WorkspaceNode, error) {
	solution, err := dispatchProperty(h.dte, "Solution")
	if err != nil || solution == nil {
		return nil, err
	}
	defer solution.Release()

	full, err := stringProperty(solution, "FullName")
	if err != nil || full == "" {
		return nil, err
	}
	root := &entity.WorkspaceNode{Name: mapper.BaseName(full)}

	projects, err := dispatchProperty(solution, "Projects")
	if err != nil || projects == nil {
		return root, err
	}
	defer projects.Release()

	err = forEachItem(projects, func(project *ole.IDispatch) error {
		node, err := projectNode(project)
		if node != nil {
			root.Children = append(root.Children, node)
		}
		return err
	})
	return root, err
}

// projectNode reads a project. Unloaded projects have no items and yield a leaf.
func projectNode(project *ole.IDispatch) (*entity.WorkspaceNode, error) {
	name, err := stringProperty(project, "Name")
	node := &entity.WorkspaceNode{Name: name}

	items, itemsErr := dispatchProperty(project, "ProjectItems")
	err = multierr.Append(err, itemsErr)
	if items == nil {
		return node, err
	}
	defer items.Release()

	return node, multierr.Append(err, appendItems(node, items))
}

func appendItems(parent *entity.WorkspaceNode, items *ole.IDispatch) error {
	return forEachItem(items, func(item *ole.IDispatch) error {
		node, err := itemNode(item)
		parent.Children = append(parent.Children, node)
		return err
	})
}

// itemNode reads every physical file of a project item, then its sub items and,
// for solution folders, the nested project.
func itemNode(item *ole.IDispatch) (*entity.WorkspaceNode, error) {
	name, err := stringProperty(item, "Name")
	node := &entity.WorkspaceNode{Name: name}

	count, countErr := intProperty(item, "FileCount")
	err = multierr.Append(err, countErr)
	for i := 1; i <= count; i++ {
		p, pathErr := stringProperty(item, "FileNames", int16(i))
		err = multierr.Append(err, pathErr)
		if p != "" {
			node.FilePaths = append(node.FilePaths, p)
		}
	}

	if sub, subErr := dispatchProperty(item, "ProjectItems"); subErr != nil {
		err = multierr.Append(err, subErr)
	} else if sub != nil {
		err = multierr.Append(err, appendItems(node, sub))
		sub.Release()
	}

	// SubProject is only set on solution folder entries.
	if project, _ := dispatchProperty(item, "SubProject"); project != nil {
		child, childErr := projectNode(project)
		node.Children = append(node.Children, child)
		err = multierr.Append(err, childErr)
		project.Release()
	}
	return node, err
}

func (h *dteHandle) OpenFile(ctx context.Context, path string) error {
	ops, err := dispatchProperty(h.dte, "ItemOperations")
	if err != nil {
		return err
	}
	if ops == nil {
		return fmt.Errorf("ItemOperations is unavailable")
	}
	defer ops.Release()

	v, err := oleutil.CallMethod(ops, "OpenFile", path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	if clearErr := v.Clear(); clearErr != nil {
		h.logger.Debugw("releasing opened window", "error", clearErr)
	}
	return nil
}

// forEachItem visits the 1-based Item(i) entries of an automation collection.
// A failing entry is skipped and its error combined into the result.
func forEachItem(collection *ole.IDispatch, visit func(*ole.IDispatch) error) error {
	count, err := intProperty(collection, "Count")
	if err != nil {
		return err
	}
	for i := 1; i <= count; i++ {
		v, callErr := oleutil.CallMethod(collection, "Item", i)
		if callErr != nil {
			err = multierr.Append(err, fmt.Errorf("reading item %d: %w", i, callErr))
			continue
		}
		item := v.ToIDispatch()
		if item == nil {
			err = multierr.Append(err, v.Clear())
			continue
		}
		err = multierr.Append(err, visit(item))
		item.Release()
	}
	return err
}

// dispatchProperty returns nil without error when the property holds no object.
// The caller releases a non-nil result.
func dispatchProperty(d *ole.IDispatch, name string, params ...interface{}) (*ole.IDispatch, error) {
	v, err := oleutil.GetProperty(d, name, params...)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if disp := v.ToIDispatch(); disp != nil {
		return disp, nil
	}
	return nil, v.Clear()
}

func stringProperty(d *ole.IDispatch, name string, params ...interface{}) (string, error) {
	v, err := oleutil.GetProperty(d, name, params...)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	s := v.ToString()
	return s, v.Clear()
}

func intProperty(d *ole.IDispatch, name string) (int, error) {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", name, err)
	}
	defer v.Clear()

	switch n := v.Value().(type) {
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint32:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s is %T, not an integer", name, n)
	}
}
