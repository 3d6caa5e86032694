package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/pulseboard/gqlview/parser"
	"github.com/pulseboard/gqlview/toolbar"
	"github.com/pulseboard/gqlview/tree"
)

// viewer is the interactive terminal outline. It is the single writer of
// the toolbar state; every gesture re-derives the rows from the current
// parse.
type viewer struct {
	app    *tview.Application
	list   *tview.List
	search *tview.InputField
	layout *tview.Flex
	status *tview.TextView

	path     string
	renderer *tree.Renderer
	st       toolbar.State
	rows     []tree.Row

	searchShown bool
}

// runTUI opens the interactive viewer for the given document file. When
// watch is set, the file is reparsed on every write event.
func runTUI(path string, watch bool) error {
	v := &viewer{
		app:    tview.NewApplication(),
		list:   tview.NewList(),
		search: tview.NewInputField(),
		status: tview.NewTextView(),
		path:   path,
	}
	if err := v.reload(); err != nil {
		return err
	}

	v.list.ShowSecondaryText(false)
	v.list.SetBorder(true)
	v.list.SetTitle(fmt.Sprintf(" %s ", path))
	v.list.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		v.toggleRow(index)
	})
	v.list.SetInputCapture(v.handleKey)

	v.search.SetLabel("Search: ")
	v.search.SetChangedFunc(func(text string) {
		v.st.SetSearchTerm(text)
		v.redraw()
	})
	v.search.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			v.st.HideSearch()
			v.hideSearchBox()
			v.redraw()
			return
		}
		// Enter keeps the search active and hands focus back to the list.
		v.app.SetFocus(v.list)
	})

	v.status.SetText(" enter/space toggle   e expand all   c collapse all   / search   q quit")

	v.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.list, 0, 1, true).
		AddItem(v.status, 1, 0, false)

	if watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("start watcher: %v", err)
		}
		defer watcher.Close()
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %v", path, err)
		}
		go v.watchLoop(watcher)
	}

	v.redraw()
	return v.app.SetRoot(v.layout, true).Run()
}

// reload reparses the document file. Open/closed overrides do not survive a
// reparse; the new tree starts from the toolbar defaults.
func (v *viewer) reload() error {
	data, err := os.ReadFile(v.path)
	if err != nil {
		return fmt.Errorf("read %s: %v", v.path, err)
	}
	v.renderer = tree.New(parser.Parse(string(data)))
	return nil
}

// watchLoop reloads on write events, debounced so editors that write in
// bursts trigger one reparse.
func (v *viewer) watchLoop(watcher *fsnotify.Watcher) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write != fsnotify.Write {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(300*time.Millisecond, func() {
				v.app.QueueUpdateDraw(func() {
					if err := v.reload(); err == nil {
						v.redraw()
					}
				})
			})
			mu.Unlock()
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// handleKey processes list-focused gestures.
func (v *viewer) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case 'q':
		v.app.Stop()
		return nil
	case 'e':
		v.st.ExpandAll()
		v.redraw()
		return nil
	case 'c':
		v.st.CollapseAll()
		v.redraw()
		return nil
	case '/':
		v.st.ShowSearch()
		v.showSearchBox()
		v.redraw()
		return nil
	case ' ':
		v.toggleRow(v.list.GetCurrentItem())
		return nil
	}
	return event
}

func (v *viewer) toggleRow(index int) {
	if index < 0 || index >= len(v.rows) || !v.rows[index].HasChildren {
		return
	}
	v.renderer.Toggle(v.rows[index].Path, v.st)
	v.redraw()
}

func (v *viewer) showSearchBox() {
	if v.searchShown {
		v.app.SetFocus(v.search)
		return
	}
	v.searchShown = true
	v.layout.RemoveItem(v.status)
	v.layout.AddItem(v.search, 1, 0, false)
	v.layout.AddItem(v.status, 1, 0, false)
	v.app.SetFocus(v.search)
}

func (v *viewer) hideSearchBox() {
	if !v.searchShown {
		return
	}
	v.searchShown = false
	v.layout.RemoveItem(v.search)
	v.app.SetFocus(v.list)
}

// redraw re-derives the rows and repaints the list, keeping the selection
// on the same position where possible.
func (v *viewer) redraw() {
	current := v.list.GetCurrentItem()
	v.rows = v.renderer.Rows(v.st, v.st.Term())
	v.list.Clear()
	for _, row := range v.rows {
		v.list.AddItem(rowText(row), "", 0, nil)
	}
	if count := v.list.GetItemCount(); count > 0 {
		if current >= count {
			current = count - 1
		}
		if current < 0 {
			current = 0
		}
		v.list.SetCurrentItem(current)
	}
}

// rowText renders one row with tview color tags, highlighted spans in
// reverse video.
func rowText(row tree.Row) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", row.Depth))
	switch {
	case !row.HasChildren:
		b.WriteString("  ")
	case row.Open:
		b.WriteString("- ")
	default:
		b.WriteString("+ ")
	}
	for _, span := range row.Header {
		if span.Highlight {
			b.WriteString("[black:yellow]")
			b.WriteString(tview.Escape(span.Text))
			b.WriteString("[-:-]")
			continue
		}
		b.WriteString(tview.Escape(span.Text))
	}
	return b.String()
}
