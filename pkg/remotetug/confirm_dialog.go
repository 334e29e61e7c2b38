package remotetug

import (
	"github.com/datatug/remotetug/pkg/remotetug/rtconfirm"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	confirmButtonLabel = "Delete"
	cancelButtonLabel  = "Cancel"
)

// confirmDialog asks before a destructive action. Escape, the Cancel button
// or a click outside the dialog dismiss it.
type confirmDialog struct {
	*tview.Grid
	frame     *tview.Flex
	message   *tview.TextView
	buttons   *tview.Form
	onConfirm func()
	onCancel  func()
}

func newConfirmDialog(onConfirm, onCancel func()) *confirmDialog {
	d := &confirmDialog{
		onConfirm: onConfirm,
		onCancel:  onCancel,
		message: tview.NewTextView().
			SetWrap(true).
			SetWordWrap(true).
			SetTextAlign(tview.AlignCenter),
		buttons: tview.NewForm(),
	}
	d.message.SetBackgroundColor(tcell.ColorDarkRed)
	d.buttons.SetButtonsAlign(tview.AlignCenter)
	d.buttons.SetBackgroundColor(tcell.ColorDarkRed)
	d.buttons.AddButton(confirmButtonLabel, d.confirm)
	d.buttons.AddButton(cancelButtonLabel, d.cancel)
	d.buttons.SetCancelFunc(d.cancel)

	d.frame = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(d.message, 0, 1, false).
		AddItem(d.buttons, 3, 0, true)
	d.frame.SetBorder(true).
		SetTitleAlign(tview.AlignCenter).
		SetBackgroundColor(tcell.ColorDarkRed)

	d.Grid = tview.NewGrid().
		SetColumns(0, 56, 0).
		SetRows(0, 10, 0).
		AddItem(d.frame, 1, 1, 1, 1, 0, 0, true)

	d.Grid.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			d.cancel()
			return nil
		}
		return event
	})
	return d
}

func (d *confirmDialog) SetPrompt(prompt rtconfirm.Prompt) {
	d.frame.SetTitle(" " + tview.Escape(prompt.Title) + " ")
	d.message.SetText("\n" + tview.Escape(prompt.Description))
	d.buttons.SetFocus(0)
}

func (d *confirmDialog) confirm() {
	if d.onConfirm != nil {
		d.onConfirm()
	}
}

func (d *confirmDialog) cancel() {
	if d.onCancel != nil {
		d.onCancel()
	}
}

func (d *confirmDialog) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return d.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if action == tview.MouseLeftClick {
			if x, y := event.Position(); !d.frame.InRect(x, y) {
				d.cancel()
				return true, nil
			}
		}
		return d.Grid.MouseHandler()(action, event, setFocus)
	})
}
