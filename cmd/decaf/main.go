// Command decaf is the CLI driver around the semantic analysis core: for
// each source path given on the command line it lexes, parses, and runs
// the C4-C8 pipeline, printing accumulated diagnostics to stderr and the
// annotated scope tree to stdout. It exits 0 iff no file produced a
// diagnostic: load, analyze pass by pass, print errors to stderr, exit 1
// on failure, adapted to Decaf's single analyze() entry point and
// multi-file concurrency.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/petermattis/goid"
	"golang.org/x/sync/errgroup"

	"github.com/funvibe/decaf/internal/cache"
	"github.com/funvibe/decaf/internal/config"
	"github.com/funvibe/decaf/internal/pipeline"
	"github.com/funvibe/decaf/internal/scope"
)

func main() {
	os.Exit(Main())
}

// Main is the CLI's testable entry point: testscript registers it as the
// "decaf" command so golden-file tests exercise the same code path main()
// does, without main() itself forking a subprocess.
func Main() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("decaf", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "print per-file progress and cache timing")
	noColor := fs.Bool("no-color", false, "disable ANSI coloring of diagnostics")
	printScope := fs.Bool("print-scope", true, "print the annotated scope tree to stdout")
	cachePath := fs.String("cache", "", "path to the analysis cache database (empty disables caching)")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "usage: decaf [flags] file.decaf [file.decaf ...]")
		return 2
	}

	cliCfg, err := config.LoadCLIConfig(".decafrc.yaml")
	if err != nil {
		fmt.Fprintf(stderr, "decaf: reading .decafrc.yaml: %s\n", err)
		return 2
	}
	if cliCfg.Verbose {
		*verbose = true
	}
	if *cachePath == "" {
		*cachePath = cliCfg.CachePath
	}

	color := !*noColor && isatty.IsTerminal(stderr.Fd())
	if cliCfg.Color != nil {
		color = *cliCfg.Color
	}

	var fileCache *cache.Cache
	if *cachePath != "" {
		fileCache, err = cache.Open(*cachePath)
		if err != nil {
			fmt.Fprintf(stderr, "decaf: %s\n", err)
			return 2
		}
		defer fileCache.Close()
	}

	results := make([]fileResult, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = analyzeFile(path, fileCache, *verbose)
			return nil
		})
	}
	_ = g.Wait()

	exitCode := 0
	var totalLines, cacheHits int
	for _, res := range results {
		if res.loadErr != nil {
			fmt.Fprintf(stderr, "decaf: %s\n", res.loadErr)
			exitCode = 1
			continue
		}
		totalLines += res.lineCount
		if res.fromCache {
			cacheHits++
		}
		for _, d := range res.diagnostics {
			printDiagnostic(stderr, d.Format(), color)
			exitCode = 1
		}
		if *printScope && res.ctx != nil && res.ctx.ScopeRoot != nil {
			fmt.Fprintln(stdout, scope.Print(res.ctx.ScopeRoot))
		}
	}

	if *verbose {
		fmt.Fprintf(stderr, "analyzed %s files, %s lines, %d cache hit(s)\n",
			humanize.Comma(int64(len(paths))), humanize.Comma(int64(totalLines)), cacheHits)
	}

	return exitCode
}

type fileResult struct {
	ctx         *pipeline.Context
	diagnostics []diagnosticLike
	lineCount   int
	fromCache   bool
	loadErr     error
}

// diagnosticLike is satisfied by *diagnostics.Diagnostic; kept local so
// this file doesn't need to import the diagnostics package just to name
// the slice element type diagnostics.Diagnostic already provides via
// pipeline.Context.Diagnostics.
type diagnosticLike interface {
	Format() string
}

func analyzeFile(path string, fileCache *cache.Cache, verbose bool) fileResult {
	start := time.Now()
	src, err := os.ReadFile(path)
	if err != nil {
		return fileResult{loadErr: fmt.Errorf("reading %s: %w", path, err)}
	}
	source := string(src)
	lineCount := countLines(source)

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if fileCache != nil {
		digest := cache.Digest(source)
		ctx := context.Background()
		if cached, hit, err := fileCache.Lookup(ctx, abs, digest); err == nil && hit {
			diags := make([]diagnosticLike, len(cached))
			for i, d := range cached {
				diags[i] = d
			}
			if verbose {
				lastAnalyzed, err := fileCache.LastAnalyzed(ctx, abs)
				if err != nil || lastAnalyzed == "" {
					fmt.Fprintf(os.Stderr, "[g%d] %s: cache hit\n", goid.Get(), path)
				} else {
					if config.IsTestMode {
						lastAnalyzed = "<timestamp>"
					}
					fmt.Fprintf(os.Stderr, "[g%d] %s: cache hit (last analyzed %s)\n", goid.Get(), path, lastAnalyzed)
				}
			}
			return fileResult{diagnostics: diags, lineCount: lineCount, fromCache: true}
		}
	}

	pctx := pipeline.Run(path, source)

	if fileCache != nil {
		digest := cache.Digest(source)
		_ = fileCache.Store(context.Background(), abs, digest, pctx.Diagnostics)
	}

	diags := make([]diagnosticLike, 0, len(pctx.ParseErrors)+len(pctx.Diagnostics))
	for _, pe := range pctx.ParseErrors {
		diags = append(diags, pe)
	}
	for _, d := range pctx.Diagnostics {
		diags = append(diags, d)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[g%d] %s: analyzed in %s\n", goid.Get(), path, time.Since(start))
	}

	return fileResult{ctx: pctx, diagnostics: diags, lineCount: lineCount}
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

func printDiagnostic(w *os.File, formatted string, color bool) {
	if color {
		fmt.Fprintln(w, ansiRed+formatted+ansiReset)
		return
	}
	fmt.Fprintln(w, formatted)
}
