package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"hongdown.dev/hongdown"
	"hongdown.dev/hongdown/internal/config"
	"hongdown.dev/hongdown/internal/width"
)

const defaultWidth = 80

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		write       bool
		check       bool
		diff        bool
		lineWidth   int
		configPath  string
		useStdin    bool
		concurrency int
		verbose     bool
	)

	flags := pflag.NewFlagSet("hongdown", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&write, "write", "w", false, "Write the formatted output back to each input file")
	flags.BoolVar(&check, "check", false, "Exit 1 if any input would be changed by formatting, without writing")
	flags.BoolVar(&diff, "diff", false, "Print an inline diff of what would change, without writing")
	flags.IntVar(&lineWidth, "line-width", 0, "Line width override in display columns (0 uses config/default)")
	flags.StringVar(&configPath, "config", "", "Path to a .hongdown.toml config file (default: discovered from cwd upward)")
	flags.BoolVar(&useStdin, "stdin", false, "Read Markdown from stdin regardless of positional arguments")
	flags.IntVar(&concurrency, "jobs", 4, "Maximum number of files formatted concurrently")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log formatter warnings and config resolution at debug level")

	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: hongdown [flags] [files...]")
		fmt.Fprintln(stderr, "\nWith no files, the files named by the config file's include patterns are")
		fmt.Fprintln(stderr, "formatted. If there are none (or with --stdin or a single \"-\" argument),")
		fmt.Fprintln(stderr, "Markdown is read from stdin and the formatted result is written to stdout.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	inputs := flags.Args()
	if !useStdin && len(inputs) == 0 {
		if collected := tryCollectFromConfig(configPath, logger); len(collected) > 0 {
			inputs = collected
		}
	}
	if useStdin || len(inputs) == 0 || (len(inputs) == 1 && inputs[0] == "-") {
		return runStdin(stdin, stdout, logger, resolveOptions(configPath, lineWidth, ".", logger))
	}

	if (write || check) && diff {
		fmt.Fprintln(stderr, "hongdown: --diff cannot be combined with --write or --check")
		return 2
	}

	return runFiles(inputs, stdout, logger, fileJobOptions{
		write:      write,
		check:      check,
		diff:       diff,
		configPath: configPath,
		lineWidth:  lineWidth,
		jobs:       concurrency,
	})
}

// runStdin formats a single stdin stream to stdout. --write/--check/--diff
// have no meaning without a named file, so this path only ever formats.
func runStdin(stdin io.Reader, stdout io.Writer, logger *slog.Logger, opts hongdown.Options) int {
	source, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hongdown: read stdin: %v\n", err)
		return 2
	}
	out, warnings, err := hongdown.FormatWithWarnings(source, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hongdown: %v\n", err)
		return 2
	}
	logWarnings(logger, "<stdin>", warnings)
	if _, err := io.WriteString(stdout, out); err != nil {
		fmt.Fprintf(os.Stderr, "hongdown: write stdout: %v\n", err)
		return 2
	}
	return 0
}

type fileJobOptions struct {
	write      bool
	check      bool
	diff       bool
	configPath string
	lineWidth  int
	jobs       int
}

type fileResult struct {
	path    string
	output  string
	changed bool
	diff    string
	err     error
}

// runFiles formats each input file independently, distributing the work
// across a bounded worker pool: each invocation's serializer state is its
// own, so results only need to be collected in argument order once every
// worker has finished.
func runFiles(paths []string, stdout io.Writer, logger *slog.Logger, jobOpts fileJobOptions) int {
	concurrency := jobOpts.jobs
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(paths) {
		concurrency = len(paths)
	}

	sem := make(chan struct{}, concurrency)
	results := make([]fileResult, len(paths))
	done := make(chan int, len(paths))

	for i, p := range paths {
		go func(i int, p string) {
			sem <- struct{}{}
			defer func() { <-sem; done <- i }()
			results[i] = formatFile(p, logger, jobOpts)
		}(i, p)
	}
	for range paths {
		<-done
	}

	colorDiff := isTerminal(stdout)
	rule := strings.Repeat("-", terminalWidth(defaultWidth))

	exitCode := 0
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "hongdown: %s: %v\n", r.path, r.err)
			exitCode = 2
			continue
		}
		if jobOpts.diff && r.diff != "" {
			fmt.Fprintf(stdout, "%s\n%s\n", rule, r.path)
			d := r.diff
			if !colorDiff {
				d = width.StripANSI(d)
			}
			io.WriteString(stdout, d)
		}
		if !jobOpts.diff && !jobOpts.check && !jobOpts.write {
			io.WriteString(stdout, r.output)
		}
		if (jobOpts.check || jobOpts.diff) && r.changed && exitCode < 2 {
			exitCode = 1
		}
	}
	return exitCode
}

// formatFile owns everything about formatting one input: option resolution,
// reading, serializing, and (depending on jobOpts) writing back, checking,
// or diffing. It never touches shared state, so callers may run it from any
// number of goroutines concurrently.
func formatFile(path string, logger *slog.Logger, jobOpts fileJobOptions) fileResult {
	opts := resolveOptions(jobOpts.configPath, jobOpts.lineWidth, filepath.Dir(path), logger)

	source, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	out, warnings, err := hongdown.FormatWithWarnings(source, opts)
	if err != nil {
		return fileResult{path: path, err: err}
	}
	logWarnings(logger, path, warnings)

	changed := out != string(source)

	if jobOpts.diff {
		var d string
		if changed {
			d = renderDiff(string(source), out)
		}
		return fileResult{path: path, changed: changed, diff: d}
	}

	if jobOpts.check {
		return fileResult{path: path, changed: changed}
	}

	if jobOpts.write {
		if changed {
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return fileResult{path: path, err: err}
			}
		}
		return fileResult{path: path, changed: changed}
	}

	return fileResult{path: path, output: out, changed: changed}
}

func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

// resolveOptions layers built-in defaults, an optional discovered or
// explicit config file, and CLI flag overrides, in that precedence order
// (flags win). Failure to discover or load a config file is logged and
// falls back to defaults rather than aborting the whole run.
func resolveOptions(explicitConfig string, lineWidthFlag int, searchDir string, logger *slog.Logger) hongdown.Options {
	opts := hongdown.DefaultOptions()

	path := explicitConfig
	if path == "" {
		found, err := config.Discover(searchDir)
		if err != nil {
			logger.Debug("config discovery failed", "dir", searchDir, "error", err)
		}
		path = found
	}
	if path != "" {
		fc, err := config.Load(path)
		if err != nil {
			logger.Warn("ignoring config file", "path", path, "error", err)
		} else {
			opts = config.Merge(opts, fc)
			logger.Debug("loaded config", "path", path)
		}
	}

	if lineWidthFlag > 0 {
		opts.LineWidth = lineWidthFlag
	}
	return opts
}

// tryCollectFromConfig expands a discovered or explicit config file's
// include/exclude patterns into a file list, letting "hongdown" with no
// positional arguments format a project's pinned file set instead of
// falling back to stdin. Any error or an empty include list is silent:
// the caller falls back to the stdin path exactly as it did before this
// existed.
func tryCollectFromConfig(explicitConfig string, logger *slog.Logger) []string {
	path := explicitConfig
	if path == "" {
		found, err := config.Discover(".")
		if err != nil || found == "" {
			return nil
		}
		path = found
	}
	fc, err := config.Load(path)
	if err != nil {
		logger.Debug("ignoring config file for file collection", "path", path, "error", err)
		return nil
	}
	files, err := config.CollectFiles(filepath.Dir(path), fc)
	if err != nil {
		logger.Warn("collecting files from config", "path", path, "error", err)
		return nil
	}
	if len(files) > 0 {
		logger.Debug("collected files from config", "path", path, "count", len(files))
	}
	return files
}

func logWarnings(logger *slog.Logger, path string, warnings []hongdown.Warning) {
	for _, w := range warnings {
		logger.Debug("formatter warning", "path", path, "line", w.Line, "kind", w.Kind, "message", w.Message)
	}
}

// terminalWidth reports the terminal's current column count, falling back
// to fallback when stdout is not a terminal or the ioctl fails. Used to
// size the rule line --diff prints between files.
func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

// isTerminal reports whether w is a terminal, so --diff can drop the color
// escapes DiffPrettyText emits once output is redirected to a file or pipe.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

