// Command pyparse is the CLI driver for internal/pyparser, mirroring
// the argv-dispatch shape of the teacher's cmd/funxy/main.go (no flag
// package/cobra, just os.Args inspection) while trading the teacher's
// run/compile/test surface for parse-and-report.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/emilte/ruff/internal/ast"
	"github.com/emilte/ruff/internal/config"
	"github.com/emilte/ruff/internal/parsecache"
	"github.com/emilte/ruff/internal/pyparser"
)

func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func readInputFromArgs(args []string) (string, string, error) {
	if len(args) == 1 {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", "", fmt.Errorf("usage: %s [-dump] [-strict] [-cache path] <file> or pipe from stdin", args[0])
		}
		input, err := io.ReadAll(os.Stdin)
		return string(input), "", err
	}

	var path string
	for i := 1; i < len(args); i++ {
		a := args[i]
		if a == "-cache" {
			i++ // skip the cache path
			continue
		}
		if !strings.HasPrefix(a, "-") {
			path = a
			break
		}
	}
	if path == "" {
		return "", "", fmt.Errorf("usage: %s [-dump] [-strict] [-cache path] <file>", args[0])
	}
	input, err := os.ReadFile(path)
	return string(input), path, err
}

func flagValue(args []string, name string) (string, bool) {
	for i, a := range args {
		if a == name && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

func colorize(useColor bool, code string, s string) string {
	if !useColor {
		return s
	}
	return code + s + "\033[0m"
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	args := os.Args
	source, path, err := readInputFromArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	if source == "" {
		return
	}
	if path != "" && !isSourceFile(path) && filepath.Ext(path) != "" {
		fmt.Fprintf(os.Stderr, "warning: %s does not look like a Python source file\n", path)
	}

	useColor := isatty.IsTerminal(os.Stdout.Fd())

	// -strict takes the first-error-as-failure contract instead of the
	// default best-effort report: print just that one error and stop,
	// skipping -dump/-cache entirely.
	if hasFlag(args, "-strict") {
		_, strictErr := pyparser.ParseStringStrict(source, pyparser.ModeModule)
		if strictErr != nil {
			fmt.Fprintln(os.Stderr, colorize(useColor, "\033[31m", strictErr.Error()))
			os.Exit(1)
		}
		fmt.Printf("parsed %s: 0 error(s)\n", humanize.Bytes(uint64(len(source))))
		return
	}

	var cache *parsecache.Cache
	if cachePath, ok := flagValue(args, "-cache"); ok {
		c, err := parsecache.Open(cachePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		defer c.Close()
		cache = c

		hash := parsecache.HashSource(source)
		if summary, hit, _ := cache.Lookup(hash); hit {
			fmt.Printf("cache hit: %s parsed %s ago, %d error(s), %s\n",
				hash[:12], humanize.Time(summary.ParsedAtUTC), summary.ErrorCount,
				humanize.Comma(int64(summary.NodeCount))+" node(s)")
		}
	}

	start := time.Now()
	prog := pyparser.ParseString(source, pyparser.ModeModule)
	elapsed := time.Since(start)

	dump := ast.Dump(prog.AST)
	if hasFlag(args, "-dump") {
		fmt.Print(dump)
	}

	for _, d := range prog.Errors {
		fmt.Fprintln(os.Stderr, colorize(useColor, "\033[31m", d.Error()))
	}

	nodeCount := strings.Count(dump, "\n")
	fmt.Printf("parsed %s in %s: %d error(s), %d node(s)\n",
		humanize.Bytes(uint64(len(source))), elapsed, len(prog.Errors), nodeCount)

	if cache != nil {
		_ = cache.Store(parsecache.Summary{
			Hash:        parsecache.HashSource(source),
			ErrorCount:  len(prog.Errors),
			NodeCount:   nodeCount,
			ParsedAtUTC: time.Now(),
		})
	}

	if len(prog.Errors) > 0 {
		os.Exit(1)
	}
}
