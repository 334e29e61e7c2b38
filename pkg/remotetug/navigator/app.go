// Package navigator abstracts the parts of tview.Application the UI drives,
// so screens can be exercised without a terminal.
package navigator

import (
	"github.com/rivo/tview"
)

//go:generate mockgen -source=app.go -destination=mock_app.go -package=navigator

type App interface {
	Run() error
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
}

type (
	UpdateDrawQueuer func(f func())
	Focuser          func(p tview.Primitive)
	RootSetter       func(root tview.Primitive, fullscreen bool)
)

type AppOption func(na *appProxy)

func NewApp(app *tview.Application, o ...AppOption) App {
	a := &appProxy{}
	if app != nil {
		a.setFocus = func(primitive tview.Primitive) {
			_ = app.SetFocus(primitive)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.queueUpdateDraw = func(f func()) {
			_ = app.QueueUpdateDraw(f)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithQueueUpdateDraw(queueUpdateDraw UpdateDrawQueuer) AppOption {
	return func(na *appProxy) {
		na.queueUpdateDraw = queueUpdateDraw
	}
}

func WithSetFocus(setFocus Focuser) AppOption {
	return func(na *appProxy) {
		na.setFocus = setFocus
	}
}

func WithSetRoot(setRoot RootSetter) AppOption {
	return func(na *appProxy) {
		na.setRoot = setRoot
	}
}

func WithEnableMouse(enableMouse func(bool)) AppOption {
	return func(na *appProxy) {
		na.enableMouse = enableMouse
	}
}

func WithRun(run func() error) AppOption {
	return func(na *appProxy) {
		na.run = run
	}
}

func WithStop(stop func()) AppOption {
	return func(na *appProxy) {
		na.stop = stop
	}
}

var _ App = (*appProxy)(nil)

// appProxy forwards to whichever functions were wired; unwired calls are no-ops.
type appProxy struct {
	queueUpdateDraw UpdateDrawQueuer
	setFocus        Focuser
	setRoot         RootSetter
	enableMouse     func(bool)
	run             func() error
	stop            func()
}

func (n appProxy) EnableMouse(b bool) {
	if n.enableMouse != nil {
		n.enableMouse(b)
	}
}

func (n appProxy) QueueUpdateDraw(f func()) {
	if n.queueUpdateDraw != nil {
		n.queueUpdateDraw(f)
	}
}

func (n appProxy) SetFocus(p tview.Primitive) {
	if n.setFocus != nil {
		n.setFocus(p)
	}
}

func (n appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	if n.setRoot != nil {
		n.setRoot(root, fullscreen)
	}
}

func (n appProxy) Run() error {
	if n.run == nil {
		return nil
	}
	return n.run()
}

func (n appProxy) Stop() {
	if n.stop != nil {
		n.stop()
	}
}
