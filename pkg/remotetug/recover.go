package remotetug

import (
	"fmt"
	"runtime/debug"
)

// guard runs f on the UI goroutine and turns a panic into a notification.
func (nav *Navigator) guard(op string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			nav.reportFault(op, r, debug.Stack())
		}
	}()
	f()
}

// goWorker runs f off the UI goroutine. A panic is reported back on the UI
// goroutine and does not end the session.
func (nav *Navigator) goWorker(op string, f func()) {
	nav.o.goAsync(func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				nav.app.QueueUpdateDraw(func() {
					nav.reportFault(op, r, stack)
				})
			}
		}()
		f()
	})
}

func (nav *Navigator) reportFault(op string, r any, stack []byte) {
	nav.log.Error().
		Str("op", op).
		Str("panic", fmt.Sprint(r)).
		Bytes("stack", stack).
		Msg("recovered from panic")
	nav.notifications.Error(msgUnexpectedError)
}
