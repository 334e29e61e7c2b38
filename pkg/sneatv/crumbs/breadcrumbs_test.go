package crumbs

import (
	"errors"
	"strings"
	"testing"

	"github.com/datatug/remotetug/pkg/sneatv/ttestutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func newTrail(t *testing.T, opened *[]string) *Breadcrumbs {
	t.Helper()
	open := func(target string) func() error {
		return func() error {
			*opened = append(*opened, target)
			return nil
		}
	}
	bc := NewBreadcrumbs(NewTargetBreadcrumb("Home", "", open("")))
	bc.Push(NewTargetBreadcrumb("docs", "docs", open("docs")))
	bc.Push(NewTargetBreadcrumb("2024", "docs/2024", open("docs/2024")))
	return bc
}

func TestBreadcrumbs_PushClear(t *testing.T) {
	t.Parallel()
	var opened []string
	bc := newTrail(t, &opened)
	assert.Len(t, bc.Items(), 3)
	assert.True(t, bc.IsLastItemSelected())

	bc.Clear()
	assert.Len(t, bc.Items(), 1)
	assert.Equal(t, "Home", bc.Items()[0].GetTitle())

	assert.NoError(t, bc.GoHome())
	assert.Equal(t, []string{""}, opened)
}

func TestBreadcrumbs_GoHome_Empty(t *testing.T) {
	t.Parallel()
	bc := NewBreadcrumbs(nil)
	assert.NoError(t, bc.GoHome())
	bc.Clear()
	assert.Len(t, bc.Items(), 0)
}

func TestBreadcrumbs_Draw(t *testing.T) {
	t.Parallel()
	var opened []string
	s := ttestutils.NewSimScreen(t, "UTF-8", 40, 1)
	defer s.Fini()

	bc := newTrail(t, &opened)
	bc.SetRect(0, 0, 40, 1)
	bc.Draw(s)
	line := ttestutils.ReadLine(s, 0, 40)
	assert.Equal(t, "Home > docs > 2024", strings.TrimRight(line, " "))

	_, style, _ := s.Get(14, 0)
	_, _, attrs := style.Decompose()
	assert.True(t, attrs&tcell.AttrBold != 0, "active crumb is bold")

	s.Clear()
	bc.SetRect(0, 0, 8, 1)
	bc.Draw(s)
	assert.Equal(t, "Home > d", ttestutils.ReadLine(s, 0, 8))

	bc.SetRect(0, 0, 0, 1)
	bc.Draw(s)
}

func TestBreadcrumbs_FocusBlur(t *testing.T) {
	t.Parallel()
	var opened []string
	bc := newTrail(t, &opened)

	bc.Focus(func(p tview.Primitive) {})
	assert.Equal(t, 1, bc.selectedItemIndex)

	bc.selectedItemIndex = 0
	bc.Focus(func(p tview.Primitive) {})
	assert.Equal(t, 0, bc.selectedItemIndex)

	bc.Blur()
	assert.Equal(t, 2, bc.selectedItemIndex)

	single := NewBreadcrumbs(NewBreadcrumb("Home", nil))
	single.Focus(func(p tview.Primitive) {})
	assert.Equal(t, 0, single.selectedItemIndex)
}

func TestBreadcrumbs_InputHandler(t *testing.T) {
	t.Parallel()
	var opened []string
	bc := newTrail(t, &opened)
	next, prev := tview.NewBox(), tview.NewBox()
	bc.SetNextFocusTarget(next)
	bc.SetPrevFocusTarget(prev)

	var focused tview.Primitive
	setFocus := func(p tview.Primitive) { focused = p }
	handler := bc.InputHandler()
	key := func(k tcell.Key) {
		handler(tcell.NewEventKey(k, 0, tcell.ModNone), setFocus)
	}

	key(tcell.KeyLeft)
	assert.Equal(t, 1, bc.selectedItemIndex)
	key(tcell.KeyEnter)
	assert.Equal(t, []string{"docs"}, opened)

	key(tcell.KeyRight)
	key(tcell.KeyRight)
	assert.Equal(t, 2, bc.selectedItemIndex)

	key(tcell.KeyHome)
	key(tcell.KeyLeft)
	assert.Equal(t, 0, bc.selectedItemIndex)

	key(tcell.KeyTab)
	assert.Equal(t, next, focused)
	key(tcell.KeyUp)
	assert.Equal(t, prev, focused)

	key(tcell.KeyF1)

	empty := NewBreadcrumbs(nil)
	empty.InputHandler()(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), setFocus)
}

func TestBreadcrumbs_ActionError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("list failed")
	var got error
	bc := NewBreadcrumbs(NewBreadcrumb("Home", func() error { return wantErr }),
		WithErrorHandler(func(err error) { got = err }),
		WithSeparator(" / "),
	)
	assert.Equal(t, " / ", bc.separator)
	bc.InputHandler()(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), nil)
	assert.Equal(t, wantErr, got)
}

func TestBreadcrumbs_MouseHandler(t *testing.T) {
	t.Parallel()
	var opened []string
	bc := newTrail(t, &opened)
	bc.SetRect(0, 0, 40, 1)
	handler := bc.MouseHandler()

	var focused tview.Primitive
	setFocus := func(p tview.Primitive) { focused = p }

	// "Home > docs > 2024": docs spans columns 7..10.
	consumed, _ := handler(tview.MouseLeftDown, tcell.NewEventMouse(8, 0, tcell.Button1, 0), setFocus)
	assert.True(t, consumed)
	assert.Equal(t, 1, bc.selectedItemIndex)
	assert.Len(t, opened, 0)

	consumed, _ = handler(tview.MouseLeftClick, tcell.NewEventMouse(8, 0, tcell.Button1, 0), setFocus)
	assert.True(t, consumed)
	assert.Equal(t, bc, focused)
	assert.Equal(t, []string{"docs"}, opened)

	consumed, _ = handler(tview.MouseLeftClick, tcell.NewEventMouse(15, 0, tcell.Button1, 0), setFocus)
	assert.True(t, consumed)
	assert.Equal(t, []string{"docs", "docs/2024"}, opened)

	consumed, _ = handler(tview.MouseLeftClick, tcell.NewEventMouse(5, 0, tcell.Button1, 0), setFocus)
	assert.True(t, consumed, "click on separator is consumed")
	assert.Len(t, opened, 2)

	consumed, _ = handler(tview.MouseMove, tcell.NewEventMouse(8, 0, tcell.ButtonNone, 0), setFocus)
	assert.False(t, consumed)

	consumed, _ = handler(tview.MouseLeftClick, tcell.NewEventMouse(8, 3, tcell.Button1, 0), setFocus)
	assert.False(t, consumed)
}
