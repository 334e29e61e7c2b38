package sneatv

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	focusedStyle = tcell.StyleDefault.Foreground(DefaultFocusedBorderColor).Background(tcell.ColorBlack)
	blurredStyle = tcell.StyleDefault.Foreground(DefaultBlurBorderColor).Background(tcell.ColorBlack)
)

type BoxedContent interface {
	tview.Primitive
	GetTitle() string
	SetTitle(title string) *tview.Box
	SetBorderPadding(top, bottom, left, right int) *tview.Box
}

// Boxed draws a frame around its content with the title centred in the top
// line and an optional footer centred in the bottom line.
type Boxed struct {
	BoxedContent
	options boxOptions
}

type boxOptions struct {
	leftBorder   bool
	leftPadding  int
	rightBorder  bool
	rightPadding int
	footer       tview.Primitive
}

type BoxOption func(*boxOptions)

func WithLeftBorder(padding int) BoxOption {
	return func(opts *boxOptions) {
		opts.leftBorder = true
		opts.leftPadding = padding
	}
}

func WithRightBorder(padding int) BoxOption {
	return func(opts *boxOptions) {
		opts.rightBorder = true
		opts.rightPadding = padding
	}
}

func WithFooter(footer tview.Primitive) BoxOption {
	return func(opts *boxOptions) {
		opts.footer = footer
	}
}

func NewBoxed(inner BoxedContent, o ...BoxOption) *Boxed {
	b := Boxed{
		BoxedContent: inner,
	}
	for _, option := range o {
		option(&b.options)
	}
	left, right := b.options.leftPadding, b.options.rightPadding
	if b.options.leftBorder {
		left++
	}
	if b.options.rightBorder {
		right++
	}
	inner.SetBorderPadding(1, 1, left, right)
	return &b
}

func (b Boxed) Draw(screen tcell.Screen) {
	b.BoxedContent.Draw(screen)
	b.drawBorders(screen)
}

func (b Boxed) drawBorders(screen tcell.Screen) {
	x, y, width, height := b.GetRect()
	if width <= 0 || height <= 0 {
		return
	}
	hasFocus := b.HasFocus()
	lineStyle, lineChar := blurredStyle, '─'
	if hasFocus {
		lineStyle, lineChar = focusedStyle, '═'
	}

	horizontal := func(y int, content func(x, width int), contentWidth int) {
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, lineChar, nil, lineStyle)
		}
		if contentWidth <= 0 || contentWidth+2 > width {
			return
		}
		start := x + (width-contentWidth)/2
		left, right := '┤', '├'
		if hasFocus {
			left, right = '╡', '╞'
		}
		screen.SetContent(start-1, y, left, nil, lineStyle)
		content(start, contentWidth)
		screen.SetContent(start+contentWidth, y, right, nil, lineStyle)
	}

	title := b.GetTitle()
	horizontal(y, func(x, width int) {
		tview.Print(screen, title, x, y, width, tview.AlignLeft, tcell.ColorGhostWhite)
	}, tview.TaggedStringWidth(title))

	bottom := y + height - 1
	if footer := b.options.footer; footer != nil {
		horizontal(bottom, func(x, width int) {
			footer.SetRect(x, bottom, width, 1)
			footer.Draw(screen)
		}, footerWidth(footer))
	} else {
		horizontal(bottom, nil, 0)
	}

	vertical := func(x int, top, bottom rune) {
		screen.SetContent(x, y, top, nil, lineStyle)
		for i := 1; i < height-1; i++ {
			screen.SetContent(x, y+i, '│', nil, lineStyle)
		}
		screen.SetContent(x, y+height-1, bottom, nil, lineStyle)
	}
	if b.options.leftBorder {
		if hasFocus {
			vertical(x, '╒', '╘')
		} else {
			vertical(x, '┌', '└')
		}
	}
	if b.options.rightBorder {
		if hasFocus {
			vertical(x+width-1, '╕', '╛')
		} else {
			vertical(x+width-1, '┐', '┘')
		}
	}
}

func footerWidth(footer tview.Primitive) int {
	switch f := footer.(type) {
	case *tview.TextView:
		text := f.GetText(false)
		if newline := strings.IndexByte(text, '\n'); newline >= 0 {
			text = text[:newline]
		}
		return tview.TaggedStringWidth(text)
	default:
		_, _, width, _ := footer.GetRect()
		return max(width, 0)
	}
}
