package viewers

import (
	"bytes"
	"encoding/json"

	"github.com/datatug/remotetug/pkg/files"
)

var _ Previewer = (*JsonPreviewer)(nil)

// JsonPreviewer indents JSON before highlighting it. Truncated or invalid
// documents are shown as they are.
type JsonPreviewer struct {
	*TextPreviewer
}

func NewJsonPreviewer() *JsonPreviewer {
	return &JsonPreviewer{TextPreviewer: NewTextPreviewer()}
}

func (p *JsonPreviewer) Preview(entry files.DirEntry, data []byte) {
	text, _ := prettyJSON(data)
	p.setText(entry.Name(), text)
}

func prettyJSON(input []byte) (string, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, input, "", "  "); err != nil {
		return string(input), err
	}
	return out.String(), nil
}
