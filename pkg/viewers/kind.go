package viewers

import (
	"bytes"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/datatug/remotetug/pkg/files"
)

type Kind int

const (
	KindText Kind = iota
	KindJSON
	KindImage
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindImage:
		return "image"
	case KindBinary:
		return "binary"
	default:
		return "text"
	}
}

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".webp": true, ".tif": true, ".tiff": true,
}

// KindOf decides how to render data using the server MIME type, the file
// extension and finally the bytes themselves.
func KindOf(entry files.DirEntry, data []byte) Kind {
	mimeType := strings.ToLower(entry.MimeType())
	ext := strings.ToLower(path.Ext(entry.Name()))
	switch {
	case strings.HasPrefix(mimeType, "image/") || imageExtensions[ext]:
		if GetImageMeta(data) != nil {
			return KindImage
		}
	case mimeType == "application/json" || ext == ".json":
		return KindJSON
	}
	if looksLikeText(data) {
		return KindText
	}
	return KindBinary
}

func looksLikeText(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}
	if utf8.Valid(data) {
		return true
	}
	// The prefix may cut a multi-byte rune in half.
	for i := 1; i < utf8.UTFMax && i <= len(data); i++ {
		if utf8.Valid(data[:len(data)-i]) {
			return true
		}
	}
	return false
}

// Previewers holds one previewer per kind so widgets are reused.
type Previewers struct {
	Text   *TextPreviewer
	JSON   *JsonPreviewer
	Image  *ImagePreviewer
	Binary *HexPreviewer
}

func NewPreviewers() *Previewers {
	return &Previewers{
		Text:   NewTextPreviewer(),
		JSON:   NewJsonPreviewer(),
		Image:  NewImagePreviewer(),
		Binary: NewHexPreviewer(),
	}
}

func (p *Previewers) For(kind Kind) Previewer {
	switch kind {
	case KindJSON:
		return p.JSON
	case KindImage:
		return p.Image
	case KindBinary:
		return p.Binary
	default:
		return p.Text
	}
}
