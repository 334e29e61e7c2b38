package remotetug

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = `F1        - Help
Enter     - Open folder / download file
Backspace - Go to parent folder
P         - Preview file
F5, Ctrl+R - Refresh
V         - Toggle list / grid view
U         - Select files for upload
D, F8, Del - Delete
Tab       - Next panel
Q, Alt+X  - Exit the app`

func createHelpModal(onClose func()) (modal tview.Primitive, helpView *tview.TextView, button *tview.Button) {
	helpView = tview.NewTextView().
		SetDynamicColors(true).
		SetText(tview.Escape(helpText))
	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	closeOnKey := func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			onClose()
			return nil
		}
		return event
	}
	helpView.SetInputCapture(closeOnKey)

	button = tview.NewButton("Close").SetSelectedFunc(onClose)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(closeOnKey)

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)
	helpFlex.SetBorder(true).
		SetTitle(" RemoteTug - Help ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	modal = tview.NewGrid().
		SetColumns(0, 48, 0).
		SetRows(0, 14, 0).
		AddItem(helpFlex, 1, 1, 1, 1, 0, 0, true)

	return modal, helpView, button
}
