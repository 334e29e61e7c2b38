// Package chroma2tcell turns chroma token streams into tview colour tags.
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

var matchLexer = lexers.Match

// Colorize highlights text with lexer. Token values are escaped so that
// square brackets in the source are not taken for tview tags.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		value := tview.Escape(token.Value)
		color := style.Get(token.Type)
		if color.IsZero() || !color.Colour.IsSet() {
			sb.WriteString(value)
			continue
		}
		sb.WriteString("[" + color.Colour.String() + "]")
		sb.WriteString(value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// ColorizeFile picks a lexer by file name. ok is false when no lexer is
// registered for the name, in which case text comes back escaped only.
func ColorizeFile(fileName, text string) (colorized string, ok bool, err error) {
	lexer := matchLexer(fileName)
	if lexer == nil {
		return tview.Escape(text), false, nil
	}
	colorized, err = Colorize(text, DefaultStyle, chroma.Coalesce(lexer))
	return colorized, err == nil, err
}
