package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/meetlayout/pkg/io"
	"github.com/matzehuels/meetlayout/pkg/layout"
	"github.com/matzehuels/meetlayout/pkg/session"
)

// watchCommand recomputes a layout every time its state file changes.
func (c *CLI) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [state file]",
		Short: "Recompute the layout whenever a state file changes",
		Long: `Recompute the layout whenever a state file changes.

The state is loaded into a live session, so bursts of saves are throttled the
same way window resizes are in a browser. Every published output is printed to
stdout as one JSON line. Stop with Ctrl+C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd.Context(), cmd, args[0])
		},
	}
}

func (c *CLI) runWatch(ctx context.Context, cmd *cobra.Command, path string) error {
	logger := loggerFromContext(ctx)

	defaults, err := c.defaults()
	if err != nil {
		return fmt.Errorf("load defaults: %w", err)
	}
	state, err := pkgio.ImportState(path)
	if err != nil {
		return fmt.Errorf("load state %s: %w", path, err)
	}

	sess, err := session.New(ctx, state.DeviceClass, state.Window,
		session.WithDefaults(defaults), session.WithLogger(logger))
	if err != nil {
		return err
	}
	defer sess.Close()

	var (
		mu      sync.Mutex
		printed bool
	)
	enc := json.NewEncoder(cmd.OutOrStdout())
	emit := func(out layout.Output) {
		mu.Lock()
		defer mu.Unlock()
		printed = true
		if err := enc.Encode(out); err != nil {
			logger.Error("write output", "err", err)
		}
	}
	unsubscribe := sess.Store().SubscribeOutput(layout.OutputObserverFunc(func(_, next layout.Output) { emit(next) }))
	defer unsubscribe()

	if err := sess.Replace(state); err != nil {
		return err
	}
	view, err := sess.Settle()
	if err != nil {
		return err
	}
	mu.Lock()
	first := !printed
	mu.Unlock()
	if first {
		emit(view.Output)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing it, which drops a
	// watch on the file itself.
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching", "path", path, "session", sess.ID)

	return watchLoop(ctx, watcher, abs, logger, func() {
		next, err := pkgio.ImportState(path)
		if err != nil {
			logger.Warn("state file not applied", "err", err)
			return
		}
		if err := sess.Replace(next); err != nil {
			logger.Warn("state file not applied", "err", err)
		}
	})
}

// watchLoop calls reload for every write or create of path until ctx is
// done or the watcher fails.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, logger *log.Logger, reload func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			logger.Debug("state file changed", "op", ev.Op)
			reload()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
}
