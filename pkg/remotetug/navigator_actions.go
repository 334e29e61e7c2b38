package remotetug

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/datatug/remotetug/pkg/fsutils"
	"github.com/datatug/remotetug/pkg/remotetug/rtconfirm"
	"github.com/datatug/remotetug/pkg/remotetug/rtnav"
	"github.com/datatug/remotetug/pkg/viewers"
)

// NavigateTo makes path current and loads it. There is no history.
func (nav *Navigator) NavigateTo(path string) {
	nav.state.NavigateTo(path)
	path = nav.state.CurrentPath()
	nav.log.Info().Str("path", path).Msg("navigate")
	nav.renderBreadcrumbs()
	nav.o.stateSaver.SaveCurrentPath(path)
	nav.Load()
}

func (nav *Navigator) OpenFolder(entry files.DirEntry) {
	nav.NavigateTo(entry.Path())
}

// GoUp opens the parent of the current folder; at the root it does nothing.
func (nav *Navigator) GoUp() {
	current := nav.state.CurrentPath()
	if current == "" {
		return
	}
	nav.files.currentFileName = files.BaseName(current)
	nav.NavigateTo(files.ParentPath(current))
}

// Activate opens folders and downloads files.
func (nav *Navigator) Activate(entry files.DirEntry) {
	if entry.IsDir() {
		nav.OpenFolder(entry)
		return
	}
	nav.Download(entry)
}

func (nav *Navigator) SetViewMode(mode rtnav.ViewMode) {
	nav.state.SetViewMode(mode)
	nav.files.SetViewMode(mode)
	nav.o.stateSaver.SaveViewMode(mode.String())
}

func (nav *Navigator) ToggleViewMode() {
	nav.SetViewMode(nav.state.ToggleViewMode())
}

func (nav *Navigator) RequestDelete(entry files.DirEntry) {
	nav.confirm.RequestConfirmation(rtconfirm.Action{
		Kind:       rtconfirm.KindDelete,
		TargetPath: entry.Path(),
		TargetName: entry.Name(),
	})
}

func (nav *Navigator) RequestDeleteSelected() {
	if entry, ok := nav.files.SelectedEntry(); ok {
		nav.RequestDelete(entry)
	}
}

func (nav *Navigator) ConfirmPending() {
	nav.hidePage(pageConfirm)
	nav.confirm.Confirm()
}

func (nav *Navigator) CancelPending() {
	nav.hidePage(pageConfirm)
	nav.confirm.Cancel()
}

func (nav *Navigator) execute(action rtconfirm.Action) {
	switch action.Kind {
	case rtconfirm.KindDelete:
		nav.deleteFile(action.TargetPath)
	default:
		nav.log.Warn().Str("kind", string(action.Kind)).Msg("unknown action")
	}
}

// deleteFile refreshes the listing only after the store acknowledged the
// delete; on failure the current listing stays as it is.
func (nav *Navigator) deleteFile(path string) {
	nav.goWorker("delete", func() {
		err := nav.store.Delete(nav.o.ctx, path)
		nav.app.QueueUpdateDraw(func() {
			nav.guard("delete", func() {
				if err != nil {
					nav.log.Error().Err(err).Str("path", path).Msg("delete failed")
					nav.notifications.Error(msgDeleteFailed + files.Reason(err))
					return
				}
				nav.log.Info().Str("path", path).Msg("deleted")
				nav.notifications.Success(msgDeleteSucceeded)
				nav.Load()
			})
		})
	})
}

// Download saves entry into the download directory. Nothing is left under
// the target name when the transfer fails.
func (nav *Navigator) Download(entry files.DirEntry) {
	if entry.IsDir() {
		return
	}
	path, dir := entry.Path(), nav.o.downloadDir
	name := files.BaseName(path)
	nav.log.Info().Str("path", path).Str("dir", dir).Msg("download")
	nav.goWorker("download", func() {
		savedPath, written, err := nav.downloadTo(dir, path, name)
		nav.app.QueueUpdateDraw(func() {
			nav.guard("download", func() {
				if err != nil {
					nav.log.Error().Err(err).Str("path", path).Msg("download failed")
					nav.notifications.Error(msgDownloadFailed + files.Reason(err))
					return
				}
				nav.log.Info().Str("path", path).Str("saved", savedPath).Int64("bytes", written).Msg("downloaded")
				nav.notifications.Success(msgDownloadFinished + filepath.Base(savedPath))
			})
		})
	})
}

func (nav *Navigator) downloadTo(dir, path, name string) (savedPath string, written int64, err error) {
	body, _, err := nav.store.Download(nav.o.ctx, path)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		_ = body.Close()
	}()
	return fsutils.SaveStream(dir, name, body)
}

func (nav *Navigator) onEntrySelected(entry files.DirEntry) {
	if nav.o.autoPreview {
		nav.Preview(entry)
		return
	}
	nav.previewSeq++
	nav.preview.SetEntry(entry)
}

func (nav *Navigator) PreviewSelected() {
	if entry, ok := nav.files.SelectedEntry(); ok {
		nav.Preview(entry)
	}
}

// Preview fetches the head of a file. Failures are shown in the preview
// panel only.
func (nav *Navigator) Preview(entry files.DirEntry) {
	nav.previewSeq++
	seq := nav.previewSeq
	nav.preview.SetEntry(entry)
	if entry.IsDir() {
		return
	}
	nav.preview.SetText("[gray]Loading preview...[-]")
	path := entry.Path()
	nav.goWorker("preview", func() {
		data, err := nav.fetchPreview(path)
		nav.app.QueueUpdateDraw(func() {
			nav.guard("preview", func() {
				if seq != nav.previewSeq {
					return
				}
				if err != nil {
					nav.log.Debug().Err(err).Str("path", path).Msg("preview failed")
					nav.preview.SetErr(msgPreviewFailed + files.Reason(err))
					return
				}
				nav.preview.ShowData(entry, data)
			})
		})
	})
}

func (nav *Navigator) fetchPreview(path string) ([]byte, error) {
	body, _, err := nav.store.Download(nav.o.ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = body.Close()
	}()
	return io.ReadAll(io.LimitReader(body, viewers.MaxPreviewBytes))
}

// SelectUploadFiles acknowledges locally chosen files. Transferring them is
// not supported by the store API yet.
func (nav *Navigator) SelectUploadFiles(paths []string) {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		names = append(names, filepath.Base(fsutils.ExpandHome(p)))
	}
	if len(names) == 0 {
		return
	}
	nav.log.Info().Strs("files", names).Msg("files selected for upload")
	nav.notifications.Success(fmt.Sprintf("Selected %d file(s) for upload", len(names)))
}
