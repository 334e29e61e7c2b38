package remotetug

import (
	"github.com/datatug/remotetug/pkg/files"
)

const (
	msgRefreshed        = "Refreshed"
	msgFailedToLoad     = "Failed to load files: "
	msgUnexpectedError  = "An unexpected error occurred"
	msgDeleteSucceeded  = "File deleted successfully"
	msgDeleteFailed     = "Delete failed: "
	msgDownloadFailed   = "Download failed: "
	msgDownloadFinished = "Downloaded "
	msgPreviewFailed    = "Preview failed: "
)

// Load fetches stats and the listing of the current path concurrently.
func (nav *Navigator) Load() {
	nav.loadStats()
	nav.loadFiles()
}

// Refresh reloads the current path and acknowledges the request whatever
// the outcome of the fetch.
func (nav *Navigator) Refresh() {
	nav.Load()
	nav.notifications.Success(msgRefreshed)
}

func (nav *Navigator) loadStats() {
	nav.statsSeq++
	seq := nav.statsSeq
	nav.goWorker("stats", func() {
		stats, err := nav.store.Stats(nav.o.ctx)
		nav.app.QueueUpdateDraw(func() {
			nav.guard("stats", func() {
				nav.applyStats(seq, stats, err)
			})
		})
	})
}

func (nav *Navigator) applyStats(seq uint64, stats files.Stats, err error) {
	if seq != nav.statsSeq {
		nav.log.Debug().Uint64("seq", seq).Uint64("latest", nav.statsSeq).Msg("dropping stale stats")
		return
	}
	if err != nil {
		nav.log.Warn().Err(err).Msg("stats unavailable")
		return
	}
	nav.stats.SetStats(stats)
}

func (nav *Navigator) loadFiles() {
	path := nav.state.CurrentPath()
	nav.listSeq++
	seq := nav.listSeq
	nav.files.SetLoading(true)
	nav.log.Debug().Str("path", path).Uint64("seq", seq).Msg("listing")
	nav.goWorker("list", func() {
		entries, err := nav.store.List(nav.o.ctx, path)
		nav.app.QueueUpdateDraw(func() {
			nav.guard("list", func() {
				nav.applyListing(seq, path, entries, err)
			})
		})
	})
}

// applyListing accepts only the response to the latest list request, so a
// slow answer for a folder the user already left never overwrites the view.
func (nav *Navigator) applyListing(seq uint64, path string, entries []files.DirEntry, err error) {
	if seq != nav.listSeq {
		nav.log.Debug().Str("path", path).Uint64("seq", seq).Uint64("latest", nav.listSeq).Msg("dropping stale listing")
		return
	}
	nav.files.SetLoading(false)
	if err != nil {
		nav.log.Error().Err(err).Str("path", path).Msg("list failed")
		nav.notifications.Error(msgFailedToLoad + files.Reason(err))
		nav.files.SetFailed(true)
		return
	}
	nav.current = files.NewDirContext(nav.store, path, entries).Sorted(nav.o.lang)
	nav.files.SetDir(nav.current)
	if len(entries) == 0 {
		nav.preview.Clear()
	}
}
