// Package cli implements schedulectl, the offline companion of the scheduler
// API: it validates, generates and converts schedule documents on disk.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dosada05/tournament-scheduler/timing"
)

// ErrInvalidSchedule is returned when validate finds errors, so the process
// exits non-zero.
var ErrInvalidSchedule = errors.New("schedule has validation errors")

type globalOptions struct {
	gameDuration  int
	breakDuration int
	verbose       bool
}

func (o *globalOptions) engine() timing.Engine {
	return timing.NewEngine(o.gameDuration, o.breakDuration)
}

func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// NewRootCommand builds the schedulectl command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "schedulectl",
		Short:         "Validate, generate and convert tournament schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&opts.gameDuration, "game-duration", 70, "default game duration in minutes")
	root.PersistentFlags().IntVar(&opts.breakDuration, "break-duration", 10, "default break after a game in minutes")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log generator and import details to stderr")

	root.AddCommand(
		newValidateCmd(opts),
		newGenerateCmd(opts),
		newTemplatesCmd(),
		newExportCmd(opts),
		newImportCmd(opts),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, ErrInvalidSchedule) {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		}
		return 1
	}
	return 0
}

// readInput reads a file argument; "-" or no argument reads stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
