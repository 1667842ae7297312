package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/numconv/host"
)

func main() {
	var (
		op          = flag.String("op", "", "In-process conversion: encode, decode or parse")
		typ         = flag.String("type", "s64", "Value type for -op (s32, u32, s64, u64, f32, f64)")
		value       = flag.String("value", "", "Input text for -op")
		checked     = flag.Bool("checked", true, "Use the checked codec and parser")
		list        = flag.Bool("list", false, "List host module exports and exit")
		wasmFile    = flag.String("wasm", "", "Path to a core wasm guest importing \"numconv\" (default: built-in guest)")
		funcName    = flag.String("func", "", "Guest function to call")
		callArgs    = flag.String("args", "", "Function arguments (comma-separated)")
		wasi        = flag.Bool("wasi", true, "Provide wasi_snapshot_preview1 to the guest")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
		defer func() { _ = log.Sync() }()
	}
	host.SetLogger(log)

	switch {
	case *list:
		printExports(os.Stdout)

	case *op != "":
		out, err := convert(*op, *typ, *value, *checked)
		if err != nil {
			fail(err)
		}
		fmt.Println(out)

	case *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fail(fmt.Errorf("interactive mode requires a terminal"))
		}
		cfg := sessionConfig{wasmFile: *wasmFile, wasi: *wasi, checked: *checked}
		if err := runInteractive(cfg, log); err != nil {
			fail(err)
		}

	case *funcName != "":
		cfg := sessionConfig{wasmFile: *wasmFile, wasi: *wasi, checked: *checked}
		if err := run(cfg, *funcName, splitArgs(*callArgs), log); err != nil {
			fail(err)
		}

	default:
		fmt.Fprintln(os.Stderr, "Usage: numconv -op encode|decode|parse -type s64 -value 123 [-checked=false]")
		fmt.Fprintln(os.Stderr, "       numconv -list")
		fmt.Fprintln(os.Stderr, "       numconv [-wasm <file.wasm>] -func name [-args a,b]")
		fmt.Fprintln(os.Stderr, "       numconv [-wasm <file.wasm>] -i  (interactive mode)")
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func splitArgs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// run calls one guest function. With the built-in guest, arguments are read
// as a person types them; with a guest file they are raw core values.
func run(cfg sessionConfig, funcName string, args []string, log *zap.Logger) error {
	ctx := context.Background()

	s, err := newSession(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	if cfg.wasmFile == "" {
		f, ok := host.Lookup(funcName)
		if !ok {
			return fmt.Errorf("unknown function %q (see -list)", funcName)
		}
		out, err := s.invoke(ctx, describe(f), args)
		if err != nil {
			return fmt.Errorf("call %s: %w", funcName, err)
		}
		fmt.Printf("Result: %s\n", out)
		return nil
	}

	fmt.Printf("Guest: %s\n", cfg.wasmFile)
	fmt.Printf("\nExported functions:\n")
	defs := s.exports()
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s%s\n", name, signatureOf(defs[name].ParamTypes(), defs[name].ResultTypes()))
	}

	fmt.Printf("\nCalling %s(%s)...\n", funcName, strings.Join(args, ", "))
	out, err := s.callRaw(ctx, funcName, args)
	if err != nil {
		return fmt.Errorf("call %s: %w", funcName, err)
	}
	fmt.Printf("Result: %s\n", strings.Join(out, ", "))
	return nil
}

func printExports(w io.Writer) {
	fmt.Fprintf(w, "Host module %q exports:\n", host.ModuleName)
	for _, fi := range describeAll() {
		var params []string
		for _, p := range fi.fn.Params {
			params = append(params, p.Name+": "+witTypeStr(p.Type))
		}
		fmt.Fprintf(w, "  %s(%s) -> %s\n", fi.fn.Name, strings.Join(params, ", "), witTypeStr(fi.fn.Results[0]))
		fmt.Fprintf(w, "      %s\n", fi.fn.Doc)
	}
}
