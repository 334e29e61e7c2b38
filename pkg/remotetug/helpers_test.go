package remotetug

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/datatug/remotetug/pkg/remotetug/rtnotify"
	"go.uber.org/mock/gomock"
)

func newNavigatorForTest(t *testing.T, options ...NavigatorOption) (nav *Navigator, store *files.MockStore, app *testApp) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store = files.NewMockStore(ctrl)
	store.EXPECT().RootTitle().Return("http://localhost:5000/").AnyTimes()
	app = &testApp{}
	defaults := []NavigatorOption{
		WithGoAsync(func(f func()) {
			f()
		}),
		WithNotificationAfterFunc(func(time.Duration, func()) {}),
		WithAutoPreview(false),
		WithDownloadDir(t.TempDir()),
	}
	nav = NewNavigator(app, store, append(defaults, options...)...)
	return nav, store, app
}

func entry(name, path string, isDir bool, o ...files.DirEntryOption) files.DirEntry {
	return files.NewDirEntry(name, path, isDir, o...)
}

func sampleListing() []files.DirEntry {
	return []files.DirEntry{
		entry("b.txt", "b.txt", false, files.Size(3), files.SizeFormatted("3 B")),
		entry("A", "A", true),
		entry("notes.md", "notes.md", false, files.Size(2048)),
	}
}

func childNames(dir *files.DirContext) []string {
	if dir == nil {
		return nil
	}
	names := make([]string, 0, len(dir.Children()))
	for _, child := range dir.Children() {
		names = append(names, child.Name())
	}
	return names
}

func messages(nav *Navigator) []string {
	items := nav.Notifications()
	result := make([]string, len(items))
	for i, n := range items {
		result[i] = n.Severity.String() + ": " + n.Message
	}
	return result
}

func countSeverity(nav *Navigator, severity rtnotify.Severity) (count int) {
	for _, n := range nav.Notifications() {
		if n.Severity == severity {
			count++
		}
	}
	return
}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

type recordingSaver struct {
	paths []string
	modes []string
	files []string
}

func (s *recordingSaver) SaveCurrentPath(path string) { s.paths = append(s.paths, path) }
func (s *recordingSaver) SaveViewMode(mode string)    { s.modes = append(s.modes, mode) }
func (s *recordingSaver) SaveCurrentFile(name string) { s.files = append(s.files, name) }
