package crumbs

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

const defaultSeparator = " > "

type Option func(bc *Breadcrumbs)

func WithSeparator(separator string) Option {
	return func(bc *Breadcrumbs) {
		bc.separator = separator
	}
}

// WithErrorHandler receives errors returned by crumb actions.
func WithErrorHandler(onError func(error)) Option {
	return func(bc *Breadcrumbs) {
		bc.onError = onError
	}
}

// Breadcrumbs renders a single line trail; the last item is the active one.
type Breadcrumbs struct {
	*tview.Box
	items             []Breadcrumb
	selectedItemIndex int
	separator         string
	nextFocusTarget   tview.Primitive
	prevFocusTarget   tview.Primitive
	onError           func(error)
}

func NewBreadcrumbs(home Breadcrumb, o ...Option) *Breadcrumbs {
	bc := &Breadcrumbs{
		Box:       tview.NewBox(),
		separator: defaultSeparator,
	}
	if home != nil {
		bc.items = []Breadcrumb{home}
	}
	for _, opt := range o {
		opt(bc)
	}
	return bc
}

func (b *Breadcrumbs) Push(item Breadcrumb) {
	b.items = append(b.items, item)
	b.selectedItemIndex = len(b.items) - 1
}

// Clear removes everything but the home crumb.
func (b *Breadcrumbs) Clear() {
	if len(b.items) > 1 {
		b.items = b.items[:1]
	}
	b.selectedItemIndex = len(b.items) - 1
}

func (b *Breadcrumbs) Items() []Breadcrumb {
	return b.items
}

func (b *Breadcrumbs) GoHome() error {
	if len(b.items) == 0 {
		return nil
	}
	return b.items[0].Action()
}

func (b *Breadcrumbs) SetNextFocusTarget(target tview.Primitive) {
	b.nextFocusTarget = target
}

func (b *Breadcrumbs) SetPrevFocusTarget(target tview.Primitive) {
	b.prevFocusTarget = target
}

func (b *Breadcrumbs) IsLastItemSelected() bool {
	return b.selectedItemIndex == len(b.items)-1
}

// Focus preselects the parent of the active crumb as that is what users go to.
func (b *Breadcrumbs) Focus(delegate func(p tview.Primitive)) {
	if b.selectedItemIndex < 0 || b.selectedItemIndex >= len(b.items)-1 {
		b.selectedItemIndex = max(len(b.items)-2, 0)
	}
	b.Box.Focus(delegate)
}

func (b *Breadcrumbs) Blur() {
	b.selectedItemIndex = len(b.items) - 1
	b.Box.Blur()
}

func (b *Breadcrumbs) itemStyle(i int, item Breadcrumb) tcell.Style {
	color := item.GetColor()
	if color == tcell.ColorDefault {
		color = tcell.ColorLightSkyBlue
	}
	style := tcell.StyleDefault.Foreground(color)
	if i == len(b.items)-1 {
		style = style.Foreground(tcell.ColorWhite).Bold(true)
	}
	if b.HasFocus() && i == b.selectedItemIndex {
		style = style.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	}
	return style
}

func (b *Breadcrumbs) Draw(screen tcell.Screen) {
	b.Box.DrawForSubclass(screen, b)
	x, y, width, height := b.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	maxX := x + width
	cursorX := x
	sepStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, item := range b.items {
		if cursorX >= maxX {
			break
		}
		cursorX = printAt(screen, item.GetTitle(), cursorX, y, maxX, b.itemStyle(i, item))
		if i < len(b.items)-1 {
			cursorX = printAt(screen, b.separator, cursorX, y, maxX, sepStyle)
		}
	}
}

func printAt(screen tcell.Screen, text string, x, y, maxX int, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			return maxX
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func (b *Breadcrumbs) runAction(i int) {
	if err := b.items[i].Action(); err != nil && b.onError != nil {
		b.onError(err)
	}
}

func (b *Breadcrumbs) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return b.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if len(b.items) == 0 {
			return
		}
		switch event.Key() {
		case tcell.KeyLeft:
			if b.selectedItemIndex > 0 {
				b.selectedItemIndex--
			}
		case tcell.KeyRight:
			if b.selectedItemIndex < len(b.items)-1 {
				b.selectedItemIndex++
			}
		case tcell.KeyHome:
			b.selectedItemIndex = 0
		case tcell.KeyEnter:
			if b.selectedItemIndex >= 0 && b.selectedItemIndex < len(b.items) {
				b.runAction(b.selectedItemIndex)
			}
		case tcell.KeyTab, tcell.KeyDown:
			if b.nextFocusTarget != nil {
				setFocus(b.nextFocusTarget)
			}
		case tcell.KeyBacktab, tcell.KeyUp:
			if b.prevFocusTarget != nil {
				setFocus(b.prevFocusTarget)
			}
		default:
			return
		}
	})
}

// itemAt returns the index of the crumb drawn at column x or -1.
func (b *Breadcrumbs) itemAt(x int) int {
	rectX, _, width, _ := b.GetInnerRect()
	maxX := rectX + width
	cursorX := rectX
	for i, item := range b.items {
		if cursorX >= maxX {
			break
		}
		w := runewidth.StringWidth(item.GetTitle())
		if x >= cursorX && x < cursorX+w {
			return i
		}
		cursorX += w
		if i < len(b.items)-1 {
			cursorX += runewidth.StringWidth(b.separator)
		}
	}
	return -1
}

func (b *Breadcrumbs) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return b.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if action != tview.MouseLeftClick && action != tview.MouseLeftDown {
			return false, nil
		}
		x, y := event.Position()
		if !b.InInnerRect(x, y) {
			return false, nil
		}
		i := b.itemAt(x)
		if i >= 0 {
			b.selectedItemIndex = i
		}
		if action == tview.MouseLeftClick {
			if setFocus != nil {
				setFocus(b)
			}
			if i >= 0 {
				b.runAction(i)
			}
		}
		return true, nil
	})
}
