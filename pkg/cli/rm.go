package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/datatug/remotetug/pkg/remotetug/rtconfirm"
	"github.com/spf13/cobra"
)

var errRootDelete = errors.New("refusing to delete the store root")

func newRmCmd(flags *rootFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a remote file or folder",
		Long:  `Delete a remote file or folder after asking for confirmation.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := files.CleanPath(args[0])
			if path == "" {
				return errRootDelete
			}
			s, err := flags.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			var deleteErr error
			executed := false
			controllerOptions := []rtconfirm.Option{}
			if !yes {
				controllerOptions = append(controllerOptions, rtconfirm.WithPrompt(func(prompt rtconfirm.Prompt) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s [y/N] ", prompt.Title, prompt.Description)
				}))
			}
			confirm := rtconfirm.NewController(func(action rtconfirm.Action) {
				executed = true
				deleteErr = s.store.Delete(cmd.Context(), action.TargetPath)
			}, controllerOptions...)

			confirm.RequestConfirmation(rtconfirm.Action{
				Kind:       rtconfirm.KindDelete,
				TargetPath: path,
				TargetName: files.BaseName(path),
			})
			if yes || readYes(cmd.InOrStdin()) {
				confirm.Confirm()
			} else {
				confirm.Cancel()
			}

			out := cmd.OutOrStdout()
			if !executed {
				_, _ = fmt.Fprintln(out, "Cancelled")
				return nil
			}
			if deleteErr != nil {
				s.log.Error().Err(deleteErr).Str("path", path).Msg("delete failed")
				return fmt.Errorf("delete failed: %w", deleteErr)
			}
			s.log.Info().Str("path", path).Msg("deleted")
			_, _ = fmt.Fprintf(out, "Deleted %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func readYes(r io.Reader) bool {
	line, _ := bufio.NewReader(r).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
