package cli

import (
	"fmt"

	"github.com/datatug/remotetug/pkg/remotetug"
	"github.com/datatug/remotetug/pkg/remotetug/navigator"
	"github.com/datatug/remotetug/pkg/remotetug/rtnav"
	"github.com/datatug/remotetug/pkg/remotetug/rtstate"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var newApp = func() navigator.App {
	return navigator.NewApp(tview.NewApplication())
}

var goAsync = func(f func()) {
	go f()
}

func runTUI(cmd *cobra.Command, flags *rootFlags, args []string) error {
	s, err := flags.open(nil)
	if err != nil {
		return err
	}
	defer s.Close()

	rtstate.SetFilePath(flags.stateFile)
	rtstate.SetErrorLogger(func(v ...any) {
		s.log.Warn().Msg(fmt.Sprint(v...))
	})

	storeKey := s.store.RootTitle()
	initialPath := rtstate.GetCurrentPath(storeKey)
	var currentFile string
	viewMode := s.settings.ViewMode
	if state, err := rtstate.GetState(); err != nil {
		s.log.Warn().Err(err).Msg("failed to read saved state")
	} else {
		if state.Store == storeKey {
			currentFile = state.CurrentFile
		}
		if state.ViewMode != "" && flags.viewMode == "" {
			viewMode = state.ViewMode
		}
	}
	if len(args) > 0 {
		initialPath = args[0]
		currentFile = ""
	}
	mode, err := rtnav.ParseViewMode(viewMode)
	if err != nil {
		s.log.Warn().Err(err).Msg("falling back to list view")
	}

	app := newApp()
	nav := remotetug.NewNavigator(app, s.store,
		remotetug.WithContext(cmd.Context()),
		remotetug.WithLocale(s.lang),
		remotetug.WithDownloadDir(s.settings.DownloadDir),
		remotetug.WithInitialPath(initialPath),
		remotetug.WithCurrentFile(currentFile),
		remotetug.WithViewMode(mode),
		remotetug.WithLogger(s.log),
		remotetug.WithStateSaver(rtstate.Saver{Store: storeKey}),
		remotetug.WithGoAsync(goAsync),
	)
	app.SetRoot(nav, true)
	app.EnableMouse(true)
	s.log.Info().
		Str("url", storeKey).
		Str("path", nav.CurrentPath()).
		Str("view", mode.String()).
		Msg("starting")
	nav.Start()

	ctx := cmd.Context()
	stopped := make(chan struct{})
	watching := make(chan struct{})
	go func() {
		defer close(watching)
		select {
		case <-ctx.Done():
			s.log.Info().Err(ctx.Err()).Msg("context done, stopping")
			app.Stop()
		case <-stopped:
		}
	}()
	err = app.Run()
	close(stopped)
	<-watching
	nav.SaveState()
	if err != nil {
		s.log.Error().Err(err).Msg("application stopped with error")
		return err
	}
	s.log.Info().Msg("stopped")
	return nil
}
