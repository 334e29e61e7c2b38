package ttestutils

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ReadScreen returns every line of the screen with trailing blanks trimmed.
func ReadScreen(screen tcell.Screen) []string {
	width, height := screen.Size()
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		lines[y] = strings.TrimRight(ReadLine(screen, y, width), " ")
	}
	return lines
}

// NewSimScreen creates a new simulation screen for testing
func NewSimScreen(t testing.TB, charset string, width, height int) tcell.Screen {
	t.Helper()
	s := tcell.NewSimulationScreen(charset)
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}
