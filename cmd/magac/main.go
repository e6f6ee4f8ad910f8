// Package main implements the maga compiler entry point.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/you-not-fish/maga/internal/codegen"
	"github.com/you-not-fish/maga/internal/rtabi"
	"github.com/you-not-fish/maga/internal/syntax"
)

// Compiler flags
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	emitLL     = flag.Bool("emit-ll", false, "Output LLVM IR (default action)")
	output     = flag.String("o", "", "Output file")
	moduleName = flag.String("module", "", "LLVM module name (default: input file base name)")
	target     = flag.String("target", rtabi.TargetTriple, "Target triple")
	doctor     = flag.Bool("doctor", false, "Check toolchain")
	version    = flag.Bool("version", false, "Print version")
	trace      = flag.Bool("trace", false, "Output timing trace")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Maga Compiler %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: magac [options] <file.maga>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("magac version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	if *doctor {
		os.Exit(runDoctor())
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: magac [options] <file.maga>")
		os.Exit(1)
	}

	filename := args[0]

	// Handle -emit-tokens
	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}

	// Handle -emit-ast
	if *emitAST {
		os.Exit(runEmitAST(filename))
	}

	// -emit-ll and the bare invocation both produce LLVM IR.
	os.Exit(runEmitLL(filename))
}

// openOutput returns the artifact destination selected by -o.
func openOutput() (io.WriteCloser, error) {
	if *output == "" || *output == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(*output)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// phase runs fn and reports its duration on stderr when -trace is set.
func phase(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	if *trace {
		fmt.Fprintf(os.Stderr, "trace: %-8s %v\n", name, time.Since(start))
	}
	return err
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	out, err := openOutput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer out.Close()

	var errors []string
	errh := func(line, col uint32, msg string) {
		errors = append(errors, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}

	s := syntax.NewScanner(filename, f, errh)

	// Print header
	fmt.Fprintf(out, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(out, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	_ = phase("scan", func() error {
		for {
			s.Next()
			tok := s.Token()
			fmt.Fprintf(out, "%-20s %-12s %s\n", tok.Pos.String(), tok.Kind.String(), formatLiteral(tok.Lit))
			if s.IsEOF() {
				return nil
			}
		}
	})

	if len(errors) > 0 {
		for _, e := range errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return 1
	}

	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}

// parseInput tokenizes and parses filename, tracing both phases.
func parseInput(filename string) (*syntax.File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var toks []syntax.Token
	if err := phase("scan", func() (err error) {
		toks, err = syntax.Tokenize(filename, f)
		return err
	}); err != nil {
		return nil, err
	}

	var file *syntax.File
	err = phase("parse", func() (err error) {
		file, err = syntax.Parse(toks)
		return err
	})
	return file, err
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string) int {
	file, err := parseInput(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	out, err := openOutput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer out.Close()

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(out, file); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	case "text":
		syntax.Fprint(out, file)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown AST format %q\n", *astFormat)
		return 1
	}
	return 0
}

// runEmitLL compiles the input file and outputs the LLVM module.
func runEmitLL(filename string) int {
	file, err := parseInput(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg := codegen.DefaultConfig()
	cfg.ModuleName = *moduleName
	if cfg.ModuleName == "" {
		cfg.ModuleName = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	if *target != rtabi.TargetTriple {
		// The default data layout only describes the default triple.
		cfg.TargetTriple, cfg.DataLayout = *target, ""
	}

	g, err := codegen.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer g.Close()

	if err := phase("codegen", func() error { return g.Generate(file) }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	out, err := openOutput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer out.Close()

	if err := g.Module().Dump(out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runDoctor checks the toolchain that consumes emitted IR and returns an exit code.
func runDoctor() int {
	fmt.Println("Maga Toolchain Doctor")
	fmt.Println("=====================")
	fmt.Println()

	allOk := true

	goVersion := runtime.Version()
	fmt.Printf("Go:      %s", goVersion)
	if checkGoVersion(goVersion) {
		fmt.Println(" ✓")
	} else {
		fmt.Println(" ✗ (need 1.21+)")
		allOk = false
	}

	// clang compiles the emitted .ll files.
	clangVersion, clangOk := checkTool("clang", "--version")
	fmt.Printf("clang:   %s", clangVersion)
	if clangOk {
		fmt.Println(" ✓")
	} else {
		fmt.Println(" ✗ (not found)")
		allOk = false
	}

	llcVersion, llcOk := checkTool("llc", "--version")
	fmt.Printf("llc:     %s", llcVersion)
	if llcOk {
		fmt.Println(" ✓")
	} else {
		fmt.Println(" (optional, not found)")
	}

	fmt.Println()
	if allOk {
		fmt.Println("All required tools available!")
		return 0
	}

	fmt.Println("Some required tools are missing.")
	return 1
}

// checkGoVersion returns true if the Go version is 1.21 or higher.
func checkGoVersion(v string) bool {
	if !strings.HasPrefix(v, "go") {
		return false
	}
	parts := strings.Split(strings.TrimPrefix(v, "go"), ".")
	if len(parts) < 2 {
		return false
	}

	var major, minor int
	if _, err := fmt.Sscanf(parts[0], "%d", &major); err != nil {
		return false
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &minor); err != nil {
		return false
	}
	return major > 1 || (major == 1 && minor >= 21)
}

// checkTool runs a tool with the given arguments and returns the first line of output.
func checkTool(name string, args ...string) (string, bool) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", false
	}

	line, _, _ := strings.Cut(string(out), "\n")
	line = strings.TrimSpace(line)
	if len(line) > 60 {
		line = line[:57] + "..."
	}
	return line, true
}
