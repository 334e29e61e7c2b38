package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/datatug/remotetug/pkg/fsutils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newGetCmd(flags *rootFlags) *cobra.Command {
	var (
		outputDir  string
		noProgress bool
	)
	cmd := &cobra.Command{
		Use:   "get <path>...",
		Short: "Download remote files",
		Long: `Download remote files into the download folder.

An existing local file is never overwritten: the copy gets a numbered name
such as "report (1).pdf".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			dir := s.settings.DownloadDir
			if outputDir != "" {
				dir = fsutils.ExpandHome(outputDir)
			}
			for _, arg := range args {
				path := files.CleanPath(arg)
				var progress io.Writer
				if !noProgress && isTerminal(cmd.ErrOrStderr()) {
					progress = cmd.ErrOrStderr()
				}
				savedPath, written, err := download(cmd.Context(), s.store, path, dir, progress)
				if err != nil {
					s.log.Error().Err(err).Str("path", path).Msg("download failed")
					return fmt.Errorf("failed to download %q: %w", path, err)
				}
				s.log.Debug().Str("path", path).Str("saved", savedPath).Int64("bytes", written).Msg("downloaded")
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %s (%s)\n", savedPath, fsutils.FormatFileSize(written))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "save into this folder instead of the download folder")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "do not show a progress bar even on a terminal")
	return cmd
}

// download saves the remote file at path into dir, reporting progress to
// progress when it is not nil.
func download(ctx context.Context, store files.Store, path, dir string, progress io.Writer) (savedPath string, written int64, err error) {
	if path == "" {
		return "", 0, errors.New("a file path is required")
	}
	body, size, err := store.Download(ctx, path)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		_ = body.Close()
	}()

	name := files.BaseName(path)
	var r io.Reader = body
	if progress != nil {
		bar := newProgressBar(size, name, progress)
		r = io.TeeReader(body, bar)
		defer func() {
			if err == nil {
				_ = bar.Finish()
			}
		}()
	}
	return fsutils.SaveStream(dir, name, r)
}
