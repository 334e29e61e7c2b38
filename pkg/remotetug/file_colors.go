package remotetug

import (
	"path"
	"strings"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/gdamore/tcell/v2"
)

const (
	dirIcon     = "📁"
	defaultIcon = "📄"
)

var fileColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"cpp":  tcell.ColorDodgerBlue,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"java": tcell.ColorDodgerBlue,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"sql":  tcell.ColorSpringGreen,
	"json": tcell.ColorGold,
	"xml":  tcell.ColorLightYellow,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"py":   tcell.ColorLightGreen,
	"sh":   tcell.ColorGreen,
	"txt":  tcell.ColorWhite,
	"csv":  tcell.ColorLightGreen,
	"pdf":  tcell.ColorIndianRed,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"svg":  tcell.ColorMediumPurple,
	"webp": tcell.ColorMediumPurple,
	"mov":  tcell.ColorLightSalmon,
	"mp4":  tcell.ColorLightSalmon,
	"avi":  tcell.ColorLightSalmon,
	"mkv":  tcell.ColorLightSalmon,
	"mp3":  tcell.ColorPaleGoldenrod,
	"wav":  tcell.ColorPaleGoldenrod,
	"flac": tcell.ColorPaleGoldenrod,
	"aac":  tcell.ColorPaleGoldenrod,
	"zip":  tcell.ColorSandyBrown,
	"rar":  tcell.ColorSandyBrown,
	"7z":   tcell.ColorSandyBrown,
	"tar":  tcell.ColorSandyBrown,
	"log":  tcell.ColorRosyBrown,
	"xls":  tcell.ColorGreen,
	"xlsx": tcell.ColorGreen,
	"doc":  tcell.ColorBlue,
	"docx": tcell.ColorBlue,
}

var fileIcons = map[string]string{
	"jpg": "🖼️", "jpeg": "🖼️", "png": "🖼️", "gif": "🖼️", "svg": "🖼️",
	"mp4": "🎬", "avi": "🎬", "mov": "🎬", "mkv": "🎬",
	"mp3": "🎵", "wav": "🎵", "flac": "🎵", "aac": "🎵",
	"pdf": "📄", "doc": "📄", "docx": "📄", "txt": "📋",
	"xls": "📊", "xlsx": "📊", "csv": "📊",
	"zip": "📦", "rar": "📦", "7z": "📦", "tar": "📦",
	"js": "📜", "html": "📜", "css": "📜", "json": "📜",
	"cpp": "💻", "c": "💻", "py": "💻", "java": "💻",
}

func fileExt(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

func GetColorByFileExt(name string) tcell.Color {
	if color, ok := fileColors[fileExt(name)]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}

func GetIcon(entry files.DirEntry) string {
	if entry.IsDir() {
		return dirIcon
	}
	if icon, ok := fileIcons[fileExt(entry.Name())]; ok {
		return icon
	}
	return defaultIcon
}
