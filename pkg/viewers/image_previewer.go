package viewers

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/rivo/tview"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var _ Previewer = (*ImagePreviewer)(nil)

// ImagePreviewer shows format and dimensions read from the image header.
type ImagePreviewer struct {
	metaTable *MetaTable
}

func NewImagePreviewer() *ImagePreviewer {
	previewer := &ImagePreviewer{
		metaTable: NewMetaTable(),
	}
	previewer.metaTable.SetSelectable(true, true)
	return previewer
}

func (p *ImagePreviewer) Preview(entry files.DirEntry, data []byte) {
	meta := GetImageMeta(data)
	if meta == nil {
		meta = &Meta{Groups: []*MetaGroup{{ID: "main", Title: "Unrecognised image"}}}
	}
	if size := entry.SizeFormatted(); size != "" {
		meta.Groups[0].Records = append(meta.Groups[0].Records, &MetaRecord{
			ID: "size", Title: "Size", Value: size, ValueAlign: AlignRight,
		})
	}
	p.metaTable.SetMeta(meta)
}

func (p *ImagePreviewer) Main() tview.Primitive {
	return p.metaTable
}

// GetImageMeta decodes only the image header, so a prefix of the file is enough.
func GetImageMeta(data []byte) *Meta {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	main := MetaGroup{
		ID:    "main",
		Title: "Format: " + strings.ToUpper(format),
	}
	main.Records = append(main.Records,
		&MetaRecord{ID: "width", Title: "Width", Value: strconv.Itoa(cfg.Width), ValueAlign: AlignRight},
		&MetaRecord{ID: "height", Title: "Height", Value: strconv.Itoa(cfg.Height), ValueAlign: AlignRight},
	)
	return &Meta{Groups: []*MetaGroup{&main}}
}
