package viewers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/datatug/remotetug/pkg/files"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func file(name string, o ...files.DirEntryOption) files.DirEntry {
	return files.NewDirEntry(name, "docs/"+name, false, o...)
}

func TestKindOf(t *testing.T) {
	pngData := pngBytes(t, 4, 3)
	for _, tt := range []struct {
		name  string
		entry files.DirEntry
		data  []byte
		want  Kind
	}{
		{"text", file("readme.md"), []byte("# Title\n"), KindText},
		{"json_by_ext", file("data.json"), []byte(`{"a":1}`), KindJSON},
		{"json_by_mime", file("data", files.MimeType("application/json")), []byte(`[]`), KindJSON},
		{"image_by_ext", file("pic.png"), pngData, KindImage},
		{"image_by_mime", file("pic", files.MimeType("image/png")), pngData, KindImage},
		{"broken_image", file("pic.png"), []byte("not an image"), KindText},
		{"binary", file("blob.bin"), []byte{0x00, 0x01, 0x02}, KindBinary},
		{"cut_rune", file("utf.txt"), []byte("caf\xc3"), KindText},
		{"invalid_utf8", file("latin1.txt"), []byte{0xff, 0xfe, 0xfd, 0xfc, 'a'}, KindBinary},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.entry, tt.data))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "json", KindJSON.String())
	assert.Equal(t, "image", KindImage.String())
	assert.Equal(t, "binary", KindBinary.String())
}

func TestPreviewers_For(t *testing.T) {
	p := NewPreviewers()
	assert.True(t, p.For(KindText) == Previewer(p.Text))
	assert.True(t, p.For(KindJSON) == Previewer(p.JSON))
	assert.True(t, p.For(KindImage) == Previewer(p.Image))
	assert.True(t, p.For(KindBinary) == Previewer(p.Binary))
}

func TestTextPreviewer(t *testing.T) {
	p := NewTextPreviewer()
	p.Preview(file("main.go"), []byte("package main\n"))
	text := p.GetText(true)
	assert.Contains(t, text, "package main")
	assert.NotEqual(t, nil, p.Main())

	p.Preview(file("plain.unknownext"), []byte("a [b] c"))
	assert.Contains(t, p.GetText(true), "a [b")

	p.ShowError("boom")
	assert.Equal(t, "boom", p.GetText(true))
}

func TestJsonPreviewer(t *testing.T) {
	p := NewJsonPreviewer()
	p.Preview(file("data.json"), []byte(`{"a":1}`))
	assert.Contains(t, p.GetText(true), "\"a\": 1")

	p.Preview(file("data.json"), []byte(`{"a":`))
	assert.Contains(t, p.GetText(true), `{"a":`)
}

func TestImagePreviewer(t *testing.T) {
	p := NewImagePreviewer()
	p.Preview(file("pic.png", files.SizeFormatted("1.0 KB")), pngBytes(t, 4, 3))
	table := p.metaTable
	assert.Equal(t, "Format: PNG", table.GetCell(0, 0).Text)
	assert.Equal(t, "4", table.GetCell(1, 1).Text)
	assert.Equal(t, "3", table.GetCell(2, 1).Text)
	assert.Equal(t, "1.0 KB", table.GetCell(3, 1).Text)

	p.Preview(file("pic.png"), []byte("nope"))
	assert.Equal(t, "Unrecognised image", table.GetCell(0, 0).Text)
	assert.Equal(t, 1, table.GetRowCount())
	assert.NotEqual(t, nil, p.Main())
}

func TestGetImageMeta(t *testing.T) {
	meta := GetImageMeta(pngBytes(t, 100, 50))
	assert.NotEqual(t, nil, meta)
	assert.Equal(t, "100", meta.Groups[0].Records[0].Value)
	assert.Equal(t, "50", meta.Groups[0].Records[1].Value)
	assert.Equal(t, (*Meta)(nil), GetImageMeta(nil))
}

func TestHexPreviewer(t *testing.T) {
	p := NewHexPreviewer()
	p.Preview(file("blob.bin"), []byte("ABC\x00"))
	text := p.GetText(true)
	assert.True(t, strings.HasPrefix(text, "00000000  41 42 43 00"), text)
	assert.Contains(t, text, "|ABC.|")
	assert.NotEqual(t, nil, p.Main())
}

func TestMetaTable_SetMeta(t *testing.T) {
	mt := NewMetaTable()
	mt.SetMeta(&Meta{Groups: []*MetaGroup{{
		ID:    "group1",
		Title: "Group 1",
		Records: []*MetaRecord{
			{ID: "rec1", Title: "Rec 1", Value: "Val 1"},
			{ID: "rec2", Title: "Rec 2", Value: "Val 2", ValueAlign: AlignRight},
		},
	}}})
	assert.Equal(t, 3, mt.GetRowCount())
	assert.Equal(t, "Group 1", mt.GetCell(0, 0).Text)
	assert.Equal(t, "  Rec 1", mt.GetCell(1, 0).Text)
	assert.Equal(t, "Val 2", mt.GetCell(2, 1).Text)

	mt.SetMeta(nil)
	assert.Equal(t, 0, mt.GetRowCount())
}
