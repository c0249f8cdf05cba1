package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/pipeline"
)

// watchDebounce collapses bursts of file events into one layout pass.
const watchDebounce = 150 * time.Millisecond

// stdoutPath selects stdout as the layout output.
const stdoutPath = "-"

// watchedExts are the file types that trigger a new pass in watch mode.
var watchedExts = []string{".toml", ".json", ".csv", ".xlsx"}

// layoutCommand creates the layout command for computing chart layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		watch  bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "layout [chart.toml]",
		Short: "Compute the shape layout of a chart",
		Long: `Compute the shape layout of a chart.

The layout command reads a chart definition (TOML or JSON, with inline series
or a CSV/XLSX/JSON data file) and computes group indices, stacked offsets,
bar blocks and traced line/area paths. The result is a layout document
(-f json) or one SVG path per series (-f paths).

With --watch the chart directory is watched and the layout is recomputed
whenever the chart or its data changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			if output == "" {
				output = defaultOutput(args[0], opts.Format)
			}
			if watch {
				return c.watchLayout(cmd.Context(), opts, output)
			}
			return c.runLayout(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format, "output format: json (default), paths")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "frame height")
	cmd.Flags().Float64Var(&opts.TickInterval, "tick-interval", 0, "pixel distance between x ticks (default: derived from data)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "recompute when the chart or its data changes")

	return cmd
}

// runLayout computes one layout and reports it.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string) error {
	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	res, err := c.layoutOnce(ctx, opts, output)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if output == stdoutPath {
		return nil
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(res.Stats.SeriesCount, res.Stats.ShapeCount)
	printNewline()
	printNextStep("Test a pointer", fmt.Sprintf("%s hit %s --x %g --y %g", appName, opts.Input, opts.Width/2, opts.Height/2))

	return nil
}

// layoutOnce executes the pipeline and writes its output.
func (c *CLI) layoutOnce(ctx context.Context, opts pipeline.Options, output string) (*pipeline.Result, error) {
	opts.Logger = c.Logger
	res, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("compute layout: %w", err)
	}
	if err := writeOutput(output, res.Output); err != nil {
		return nil, fmt.Errorf("write output %s: %w", output, err)
	}
	return res, nil
}

// watchLayout lays out once, then again after every relevant change in the
// chart's directory until ctx is cancelled. Passes run one at a time on
// the calling goroutine.
func (c *CLI) watchLayout(ctx context.Context, opts pipeline.Options, output string) error {
	if err := c.runLayout(ctx, opts, output); err != nil {
		if ctx.Err() != nil {
			return err
		}
		printWarning("%v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(opts.Input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	printInfo("Watching %s for changes (ctrl+c to stop)", dir)

	skip := ""
	if output != stdoutPath {
		skip, _ = filepath.Abs(output)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantChange(ev, skip) {
				continue
			}
			c.Logger.Debug("change detected", "file", ev.Name, "op", ev.Op.String())
			pending = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.Logger.Warn("watch error", "err", err)
		case <-pending:
			pending = nil
			prog := newProgress(c.Logger)
			res, err := c.layoutOnce(ctx, opts, output)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.Logger.Error("layout failed", "err", err)
				continue
			}
			prog.done(fmt.Sprintf("Re-laid out %d series", res.Stats.SeriesCount))
		}
	}
}

// relevantChange reports whether ev touches a chart or data file other
// than skip.
func relevantChange(ev fsnotify.Event, skip string) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	if skip != "" {
		if abs, err := filepath.Abs(ev.Name); err == nil && abs == skip {
			return false
		}
	}
	ext := strings.ToLower(filepath.Ext(ev.Name))
	for _, e := range watchedExts {
		if ext == e {
			return true
		}
	}
	return false
}

func writeOutput(path string, data []byte) error {
	if path == stdoutPath {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
