package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trackr/list"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the state directory and re-render lists on change",
	Long: `Watch the state directory and re-render lists on change.

Useful alongside another trackr process or a synced state directory.
Press Ctrl-C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(a.cfg.Storage.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", a.cfg.Storage.Dir, err)
	}

	renderWatched(a)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !isStateFile(event.Name) {
				continue
			}
			a.log.Debug("state changed", zap.String("file", event.Name))
			renderWatched(a)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", zap.Error(err))
		}
	}
}

// renderWatched reloads state through a fresh store and prints the table.
func renderWatched(a *app) {
	fresh := list.NewStore(a.kv, list.Options{
		MaxLists: a.cfg.Lists.Max,
		Logger:   a.log,
	})
	fresh.Hydrate()

	sorted := list.SortLists(fresh.Lists(), a.settings.Current().ListSortMode)
	fmt.Print("\n")
	printListTable(a, sorted)
}

func isStateFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, ".json") || base == "trackr.db"
}
