package cli

import (
	"encoding/json"
	"fmt"

	"github.com/datatug/remotetug/pkg/fsutils"
	"github.com/spf13/cobra"
)

func newStatsCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show store usage totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			stats, err := s.store.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get stats: %w", err)
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}
			size := stats.TotalSizeFormatted
			if size == "" {
				size = fsutils.FormatFileSize(stats.TotalSize)
			}
			_, _ = fmt.Fprintf(out, "Files:   %d\nFolders: %d\nSize:    %s\n", stats.TotalFiles, stats.TotalFolders, size)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
