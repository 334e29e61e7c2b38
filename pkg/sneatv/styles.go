package sneatv

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	DefaultFocusedBorderColor = tcell.ColorCornflowerBlue
	DefaultBlurBorderColor    = tcell.ColorGray
)

// DefaultBorderWithoutPadding gives box a border whose colour follows focus.
func DefaultBorderWithoutPadding(box *tview.Box) {
	box.SetBorder(true)
	box.SetBorderPadding(0, 0, 0, 0)
	box.SetBorderColor(DefaultBlurBorderColor)
	box.SetFocusFunc(func() {
		box.SetBorderColor(DefaultFocusedBorderColor)
	})
	box.SetBlurFunc(func() {
		box.SetBorderColor(DefaultBlurBorderColor)
	})
}

func SetPanelTitle(box *tview.Box, title string) {
	box.SetTitle(title)
	box.SetTitleAlign(tview.AlignLeft)
}
