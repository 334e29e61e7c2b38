// Package cli is the remotetug command line: the interactive browser plus a
// few one-shot commands sharing the same store client.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"net/url"
	"os"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/datatug/remotetug/pkg/files/httpfile"
	"github.com/datatug/remotetug/pkg/fsutils"
	"github.com/datatug/remotetug/pkg/remotetug/rtsettings"
	"github.com/datatug/remotetug/pkg/rtlog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	getenv             = os.Getenv
	httpListenAndServe = http.ListenAndServe
	newStore           = func(root url.URL) files.Store {
		return httpfile.NewStore(root)
	}
)

type rootFlags struct {
	configFile  string
	url         string
	downloadDir string
	locale      string
	logLevel    string
	logFile     string
	stateFile   string
	viewMode    string
	pprofAddr   string
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "remotetug [path]",
		Short: "Browse a remote file store from the terminal",
		Long: `RemoteTug is a terminal client for a remote file store.

Without a subcommand it opens the interactive browser at the given path,
or where you left off last time.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			flags.startPprof(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "settings file (default ~/.remotetug/settings.yaml)")
	pf.StringVar(&flags.url, "url", "", "file server base URL, also "+rtsettings.EnvURL)
	pf.StringVar(&flags.downloadDir, "download-dir", "", "where downloads are saved, also "+rtsettings.EnvDownloadDir)
	pf.StringVar(&flags.locale, "locale", "", "collation locale for sorting names, e.g. en or sv")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFile, "log-file", "", "log file of the interactive browser (default ~/.remotetug/remotetug.log)")
	pf.StringVar(&flags.stateFile, "state", "", "file remembering the last visited folder")
	pf.StringVar(&flags.pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	_ = pf.MarkHidden("pprof")

	rootCmd.Flags().StringVar(&flags.viewMode, "view", "", "initial view mode: list or grid")

	rootCmd.AddCommand(
		newLsCmd(flags),
		newGetCmd(flags),
		newRmCmd(flags),
		newStatsCmd(flags),
	)
	return rootCmd
}

func (f *rootFlags) startPprof(stderr io.Writer) {
	if f.pprofAddr == "" {
		return
	}
	addr := f.pprofAddr
	go func() {
		if err := httpListenAndServe(addr, nil); err != nil {
			_, _ = fmt.Fprintf(stderr, "pprof server error: %v\n", err)
		}
	}()
}

// settings layers flags over environment over the settings file over defaults.
func (f *rootFlags) settings() (rtsettings.Settings, error) {
	filePath := f.configFile
	if filePath == "" {
		filePath = rtsettings.SettingsFilePath()
	}
	settings, err := rtsettings.Load(fsutils.ExpandHome(filePath))
	if err != nil {
		return settings, err
	}
	settings = settings.Merge(rtsettings.FromEnv(getenv))
	return settings.Merge(rtsettings.Settings{
		URL:         f.url,
		DownloadDir: f.downloadDir,
		Locale:      f.locale,
		LogLevel:    f.logLevel,
		LogFile:     f.logFile,
		ViewMode:    f.viewMode,
	}), nil
}

// session is what every command needs once settings are resolved.
type session struct {
	settings rtsettings.Settings
	store    files.Store
	lang     language.Tag
	log      zerolog.Logger
	closers  []io.Closer
}

func (s *session) Close() {
	for _, c := range s.closers {
		_ = c.Close()
	}
}

// open resolves settings and builds the store client. Logs go to logTo, or
// to the configured log file when logTo is nil.
func (f *rootFlags) open(logTo io.Writer) (*session, error) {
	settings, err := f.settings()
	if err != nil {
		return nil, err
	}
	s := &session{settings: settings}

	level, err := rtlog.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, err
	}
	if logTo == nil {
		logFile, err := rtlog.OpenFile(settings.LogFile)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, logFile)
		logTo = logFile
	}
	s.log = rtlog.New(logTo, level)

	if s.lang, err = language.Parse(settings.Locale); err != nil {
		s.Close()
		return nil, fmt.Errorf("invalid locale %q: %w", settings.Locale, err)
	}

	root, err := settings.StoreURL()
	if err != nil {
		s.Close()
		return nil, err
	}
	s.store = newStore(*root)
	s.log.Debug().Str("url", s.store.RootTitle()).Msg("store client ready")
	return s, nil
}
