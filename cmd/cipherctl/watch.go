package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <mode> <file> <algorithm> <key>",
	Short: "Watch a file and transform it every time it is written",
	Long: `Watch a file and transform its contents every time it is written.

The file is transformed once on start. Results go to stdout, or replace the
contents of --out.

Example:
  cipherctl watch encrypt notes.md caesar - --markdown --out notes.enc.md`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := cipher.ParseMode(args[0])
		if err != nil {
			return err
		}
		filename := args[1]
		alg, err := cipher.ParseAlgorithm(args[2])
		if err != nil {
			return err
		}
		key := args[3]

		out, _ := cmd.Flags().GetString("out")
		normalize, _ := cmd.Flags().GetBool("normalize")
		markdown, _ := cmd.Flags().GetBool("markdown")
		if out != "" && filepath.Clean(out) == filepath.Clean(filename) {
			return fmt.Errorf("--out must differ from the watched file")
		}

		handle := func() error {
			content, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", filename, err)
			}
			result, err := transformText(mode, alg, string(content), key, normalize || cfg.Normalize, markdown)
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), result)
				return nil
			}
			return os.WriteFile(out, []byte(result), 0o644)
		}

		watcher, err := newFileWatcher(filename)
		if err != nil {
			return err
		}
		defer func() { _ = watcher.Close() }()

		if err := handle(); err != nil {
			return err
		}

		slog.Info("watching", "file", filename, "mode", mode, "algorithm", alg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, watcher, filename, handle)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().String("out", "", "file to write results to (default stdout)")
	watchCmd.Flags().Bool("normalize", false, "uppercase text and key before transforming")
	watchCmd.Flags().Bool("markdown", false, "treat the file as markdown and transform prose only")
}

// newFileWatcher watches the directory holding filename so that editors
// replacing the file do not end the watch.
func newFileWatcher(filename string) (*fsnotify.Watcher, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", filename, err)
	}
	return watcher, nil
}

// runWatch calls handle on every write to filename until ctx is done or the
// watcher is closed. Handler errors are logged and do not stop the watch.
func runWatch(ctx context.Context, watcher *fsnotify.Watcher, filename string, handle func() error) error {
	target := filepath.Clean(filename)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("file modified", "file", event.Name, "op", event.Op.String())
				if err := handle(); err != nil {
					slog.Error("transform failed", "file", filename, "error", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "error", err)
		case <-ctx.Done():
			return nil
		}
	}
}
