package remotetug

import (
	"strings"

	"github.com/datatug/remotetug/pkg/sneatv"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// uploadDialog collects local file paths, separated by commas.
type uploadDialog struct {
	*tview.Grid
	form     *tview.Form
	input    *tview.InputField
	onSubmit func(paths []string)
	onClose  func()
}

func newUploadDialog(onSubmit func(paths []string), onClose func()) *uploadDialog {
	d := &uploadDialog{
		onSubmit: onSubmit,
		onClose:  onClose,
		input: tview.NewInputField().
			SetLabel("Local files ").
			SetPlaceholder("report.pdf, ~/photos/cat.png"),
		form: tview.NewForm(),
	}
	d.form.AddFormItem(d.input)
	d.form.AddButton("Select", d.submit)
	d.form.AddButton(cancelButtonLabel, d.close)
	d.form.SetCancelFunc(d.close)
	sneatv.DefaultBorderWithoutPadding(d.form.Box)
	sneatv.SetPanelTitle(d.form.Box, " Upload files ")
	d.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			d.submit()
		}
	})

	d.Grid = tview.NewGrid().
		SetColumns(0, 64, 0).
		SetRows(0, 7, 0).
		AddItem(d.form, 1, 1, 1, 1, 0, 0, true)
	return d
}

func (d *uploadDialog) Reset() {
	d.input.SetText("")
	d.form.SetFocus(0)
}

func (d *uploadDialog) submit() {
	paths := splitPaths(d.input.GetText())
	d.close()
	if d.onSubmit != nil {
		d.onSubmit(paths)
	}
}

func (d *uploadDialog) close() {
	if d.onClose != nil {
		d.onClose()
	}
}

func splitPaths(text string) []string {
	var paths []string
	for _, p := range strings.Split(text, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
