package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/datatug/remotetug/pkg/remotetug"
	"github.com/spf13/cobra"
)

func newLsCmd(flags *rootFlags) *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a remote folder",
		Long:  `List a remote folder, folders first. Without a path the store root is listed.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			var path string
			if len(args) > 0 {
				path = files.CleanPath(args[0])
			}
			entries, err := s.store.List(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("failed to list folder: %w", err)
			}
			entries = files.SortDirEntries(entries, s.lang)
			s.log.Debug().Str("path", path).Int("count", len(entries)).Msg("listed")

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "(empty folder)")
				return nil
			}
			if !long {
				for _, entry := range entries {
					name := entry.Name()
					if entry.IsDir() {
						name += "/"
					}
					_, _ = fmt.Fprintln(out, name)
				}
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, entry := range entries {
				typ := "-"
				if entry.IsDir() {
					typ = "d"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", typ, remotetug.SizeText(entry), entry.Modified(), entry.Name())
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show type, size and modification time")
	return cmd
}
