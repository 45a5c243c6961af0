package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/RefikCodes/raptorex-gcode/api"
	"github.com/RefikCodes/raptorex-gcode/config"
	"github.com/RefikCodes/raptorex-gcode/debugger"
	"github.com/RefikCodes/raptorex-gcode/gui"
	"github.com/RefikCodes/raptorex-gcode/loader"
	"github.com/RefikCodes/raptorex-gcode/rotate"
	"github.com/RefikCodes/raptorex-gcode/tools"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		debugMode   = flag.Bool("debug", false, "Start the trace debugger (CLI)")
		tuiMode     = flag.Bool("tui", false, "Use TUI (Text User Interface) trace debugger")
		guiMode     = flag.Bool("gui", false, "Open the desktop preview window")
		apiServer   = flag.Bool("api-server", false, "Start HTTP API server mode")
		apiPort     = flag.Int("port", 8080, "API server port (used with -api-server)")
		verboseMode = flag.Bool("verbose", false, "Verbose output")

		angle      = flag.Float64("angle", 0, "Arbitrary rotation angle in degrees (overrides the default quarter-turn)")
		clockwise  = flag.Bool("clockwise", false, "Rotate clockwise instead of counter-clockwise (quarter-turn mode only)")
		pivotFlag  = flag.String("pivot", "origin", "Pivot point: origin, bbox-min, bbox-center, or x,y")
		fitFlag    = flag.Bool("fit", false, "Normalize the result into non-negative coordinates")
		decimals   = flag.Int("decimals", 4, "Decimal places in rewritten coordinates")
		bboxOnly   = flag.Bool("bbox", false, "Print source and result bounding boxes and exit")
		outFile    = flag.String("out", "", "Write rewritten G-code to this file instead of stdout")
		header     = flag.Bool("header", false, "Prepend a G92 work-offset header documenting the fit shift")
		machinePos = flag.String("machine-pos", "0,0", "Current spindle machine position mx,my used in -header")

		formatMode  = flag.Bool("format", false, "Reformat the file instead of rotating it")
		formatStyle = flag.String("format-style", "default", "Formatting style: default, compact, expanded")
		lintMode    = flag.Bool("lint", false, "Lint the file instead of rotating it")
		xrefMode    = flag.Bool("xref", false, "Print a G/M code cross-reference instead of rotating")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("raptorex-gcode %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if *apiServer {
		runAPIServer(*apiPort)
		return
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	gcodeFile := flag.Arg(0)
	if _, err := os.Stat(gcodeFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", gcodeFile)
		os.Exit(1)
	}

	if *verboseMode {
		fmt.Printf("Loading G-code file: %s\n", gcodeFile)
	}

	program, err := loader.Load(gcodeFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading file: %v\n", err)
		os.Exit(1)
	}

	if *verboseMode {
		fmt.Printf("Loaded %d lines\n", len(program.Lines))
	}

	switch {
	case *formatMode:
		runFormat(program.Lines, *formatStyle, *outFile)
		return
	case *lintMode:
		runLint(program.Lines)
		return
	case *xrefMode:
		runXref(program.Lines)
		return
	}

	pivot, err := parsePivot(*pivotFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid pivot: %v\n", err)
		os.Exit(1)
	}

	var outcome rotate.Outcome
	if *angle != 0 {
		outcome = rotate.RotateArbitraryWithOutcome(program.Lines, *angle, *fitFlag, pivot, *decimals, nil)
	} else {
		outcome = rotate.RotateWithOutcome(program.Lines, *clockwise, *fitFlag, pivot, *decimals, nil)
	}

	if *bboxOnly {
		printBBox(outcome)
		return
	}

	if *verboseMode {
		fmt.Printf("Pivot: %s (%.4g, %.4g)\n", outcome.Pivot.Mode, outcome.Pivot.X, outcome.Pivot.Y)
		fmt.Printf("Source bbox: %+v\n", outcome.SourceBBox)
		fmt.Printf("Result bbox: %+v\n", outcome.ResultBBox)
	}

	if *debugMode || *tuiMode {
		runDebugger(outcome, *tuiMode)
		return
	}

	if *guiMode {
		if err := gui.RunPreview(outcome); err != nil {
			fmt.Fprintf(os.Stderr, "Error running preview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	lines := outcome.Lines
	if *header {
		mx, my, err := parseXY(*machinePos)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -machine-pos: %v\n", err)
			os.Exit(1)
		}
		lines = append(rotate.BuildHeader(outcome, mx, my, *decimals), lines...)
	}

	writeLines(lines, *outFile)
}

func runAPIServer(port int) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	server := api.NewServer(port, cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var shutdownOnce sync.Once
	performShutdown := func() {
		shutdownOnce.Do(func() {
			fmt.Println("\nShutting down API server...")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
				os.Exit(1)
			}

			fmt.Println("API server stopped")
			os.Exit(0)
		})
	}

	// Watches for the parent process (a desktop GUI, say) dying without
	// a clean shutdown, so the API never lingers as an orphan.
	monitor := api.NewProcessMonitor(performShutdown)
	monitor.Start()

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	performShutdown()
}

func runDebugger(outcome rotate.Outcome, useTUI bool) {
	dbg := debugger.NewDebugger(outcome)
	var err error
	if useTUI {
		err = debugger.RunTUI(dbg)
	} else {
		err = debugger.RunCLI(dbg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Debugger error: %v\n", err)
		os.Exit(1)
	}
}

func runFormat(lines []string, styleName, outFile string) {
	var style tools.FormatStyle
	switch styleName {
	case "compact":
		style = tools.FormatCompact
	case "expanded":
		style = tools.FormatExpanded
	default:
		style = tools.FormatDefault
	}

	formatted := tools.FormatLinesWithStyle(lines, style)
	writeLines(formatted, outFile)
}

func runLint(lines []string) {
	issues := tools.LintLines(lines)
	for _, issue := range issues {
		fmt.Println(issue.String())
	}
	if len(issues) == 0 {
		fmt.Println("no issues found")
	}
}

func runXref(lines []string) {
	report := tools.BuildXref(lines)
	for _, usage := range report.Codes() {
		fmt.Printf("%-6s %d use(s), line(s) %v\n", usage.Key(), len(usage.Lines), usage.Lines)
	}
}

func printBBox(outcome rotate.Outcome) {
	fmt.Printf("source: %+v\n", outcome.SourceBBox)
	fmt.Printf("result: %+v\n", outcome.ResultBBox)
	if outcome.Normalized {
		fmt.Printf("shift:  dx=%.4g dy=%.4g\n", outcome.ShiftDX, outcome.ShiftDY)
	}
}

func parsePivot(text string) (rotate.PivotSpec, error) {
	switch text {
	case "origin", "":
		return rotate.Origin(), nil
	case "bbox-min":
		return rotate.BoundingBoxMin(), nil
	case "bbox-center":
		return rotate.BoundingBoxCenter(), nil
	}

	x, y, err := parseXY(text)
	if err != nil {
		return rotate.PivotSpec{}, err
	}
	return rotate.Custom(x, y), nil
}

// parseXY parses a "x,y" flag value shared by -pivot's custom form and
// -machine-pos.
func parseXY(text string) (x, y float64, err error) {
	parts := strings.SplitN(text, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected x,y, got %q", text)
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x: %w", err)
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y: %w", err)
	}
	return x, y, nil
}

func writeLines(lines []string, outFile string) {
	if outFile == "" {
		for _, l := range lines {
			fmt.Println(l)
		}
		return
	}

	f, err := os.Create(outFile) // #nosec G304 -- user-specified output path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	for _, l := range lines {
		fmt.Fprintln(f, l)
	}
}

func printHelp() {
	fmt.Println(`raptorex-gcode - G-code geometric rewriter

Usage:
  raptorex-gcode [flags] <file.gcode>

Rotation flags:
  -angle DEG          Arbitrary rotation angle, overrides the default quarter-turn
  -clockwise          Rotate clockwise instead of counter-clockwise (quarter-turn mode)
  -pivot SPEC         origin, bbox-min, bbox-center, or "x,y" (default origin)
  -fit                Normalize result into non-negative coordinates
  -decimals N         Decimal places in rewritten coordinates (default 4)
  -bbox               Print bounding boxes and exit, without rewriting
  -out FILE           Write output to FILE instead of stdout
  -header             Prepend a G92 work-offset header documenting the fit shift
  -machine-pos X,Y    Spindle machine position used in -header (default 0,0)

Inspection flags:
  -format             Reformat the file (see -format-style)
  -format-style STYLE default, compact, or expanded
  -lint               Report suspicious or unparseable lines
  -xref               Print a G/M code cross-reference

Interactive modes:
  -debug              Step through the rotation trace (CLI)
  -tui                Step through the rotation trace (TUI)
  -gui                Open the desktop preview window

Server mode:
  -api-server         Start the HTTP API server
  -port N             API server port (default 8080)

Other:
  -verbose            Verbose output
  -version            Show version information
  -help               Show this help message`)
}
