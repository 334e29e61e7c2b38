package remotetug

import (
	"fmt"
	"strings"

	"github.com/datatug/remotetug/pkg/remotetug/rtnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var severityColors = map[rtnotify.Severity]tcell.Color{
	rtnotify.SeverityInfo:    tcell.ColorLightSkyBlue,
	rtnotify.SeveritySuccess: tcell.ColorLimeGreen,
	rtnotify.SeverityWarning: tcell.ColorGold,
	rtnotify.SeverityError:   tcell.ColorOrangeRed,
}

var severityIcons = map[rtnotify.Severity]string{
	rtnotify.SeverityInfo:    "ℹ",
	rtnotify.SeveritySuccess: "✔",
	rtnotify.SeverityWarning: "⚠",
	rtnotify.SeverityError:   "✖",
}

// toastsView lists live notifications, newest last.
type toastsView struct {
	*tview.TextView
}

func newToastsView() *toastsView {
	return &toastsView{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false),
	}
}

func (v *toastsView) Render(items []rtnotify.Notification) {
	var sb strings.Builder
	for i, n := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "[#%06x]", severityColors[n.Severity].Hex())
		sb.WriteString(severityIcons[n.Severity])
		sb.WriteString(" ")
		sb.WriteString(tview.Escape(n.Message))
		sb.WriteString("[-]")
	}
	v.SetText(sb.String())
}
