package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/wehoop/logomaker/internal/app"
	"github.com/wehoop/logomaker/internal/render"
	"github.com/wehoop/logomaker/internal/teams"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const (
	envStdioLog = "LOGOMAKER_STDIO_LOG"
	envFont     = "LOGOMAKER_FONT"
)

var redirectOutput = redirectStdIO

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("logomaker", flag.ContinueOnError)
	flags.SetOutput(stderr)
	debug := flags.Bool("debug", false, "enable debug logging to ./logomaker-debug.log")
	stdioLog := flags.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	fontPath := flags.String("font", "", "font file tried before the system fonts; also configurable via "+envFont)
	keepGoing := flags.Bool("keep-going", false, "continue after a failed logo and report every failure at the end")
	only := flags.String("only", "", "comma-separated team ids to render (default: all teams)")
	preview := flags.Bool("preview", false, "also write "+render.PreviewFilename+" tiling the generated logos")
	flags.Usage = func() { printUsage(flags) }
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := parsePositional(flags.Args())
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		flags.Usage()
		return exitUsage
	}
	selected, err := teams.Select(teams.Default(), splitIDs(*only))
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		flags.Usage()
		return exitUsage
	}

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectOutput(logPath); err != nil {
			fmt.Fprintln(stderr, "stdio log redirect error:", err)
		} else {
			// Pick up the redirected files; on non-unix platforms os.Stdout is replaced, not dup'd.
			stdout, stderr = os.Stdout, os.Stderr
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./logomaker-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(stderr, "debug log open error:", err)
		}
	}

	font := *fontPath
	if font == "" {
		font = os.Getenv(envFont)
	}
	cfg.Fonts = fontCandidates(font)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(selected, cfg, stdout)
	a.Logger = logger
	a.FailFast = !*keepGoing
	a.Preview = *preview
	if _, err := a.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "\nlogomaker: %v\n", err)
		var usage *app.UsageError
		if errors.As(err, &usage) {
			return exitUsage
		}
		return exitFailure
	}
	return exitOK
}

// parsePositional reads [size] [outputDirectory].
func parsePositional(args []string) (render.Config, error) {
	cfg := render.Config{Size: render.DefaultSize, OutputDir: render.DefaultOutputDir}
	if len(args) > 2 {
		return cfg, app.Usagef("too many arguments: %s", strings.Join(args, " "))
	}
	if len(args) > 0 {
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return cfg, app.Usagef("size must be an integer, got %q", args[0])
		}
		if size <= 0 {
			return cfg, app.Usagef("size must be positive, got %d", size)
		}
		cfg.Size = size
	}
	if len(args) > 1 {
		cfg.OutputDir = args[1]
	}
	return cfg, nil
}

func splitIDs(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	return strings.Split(list, ",")
}

func fontCandidates(extra string) []render.FontCandidate {
	candidates := render.DefaultFontCandidates()
	if extra == "" {
		return candidates
	}
	return append([]render.FontCandidate{{Name: filepath.Base(extra), Path: extra}}, candidates...)
}

func printUsage(flags *flag.FlagSet) {
	w := flags.Output()
	fmt.Fprintln(w, "Usage: logomaker [flags] [size] [output_dir]")
	fmt.Fprintf(w, "Example: logomaker %d %s\n\n", render.DefaultSize, render.DefaultOutputDir)
	flags.PrintDefaults()
}
