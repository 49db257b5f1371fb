// Command typecheck is a small fixture-driven driver over the type
// core: it builds the hand-constructed fixtures of internal/fixtures,
// runs them through Resolve/Match/Extract, and prints the result.
// There is no parser in scope (spec §1), so every fixture here stands
// in for what a real compiler driver would hand the core after
// parsing an AST. Grounded on the teacher's own flag-based CLI
// (cmd/ailang/main.go) plus its liner-backed interactive loop
// (internal/repl/repl.go) for the -i flag.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/config"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/diag"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/fixtures"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/generics"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/match"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

func main() {
	configPath := flag.String("config", "", "path to an EngineConfig YAML file (default: built-in defaults)")
	interactive := flag.Bool("i", false, "start an interactive match session for pairs of basic scalar kinds")
	dumpConfig := flag.Bool("dump-config", false, "print the effective EngineConfig as YAML and exit")
	jsonDiag := flag.Bool("json", false, "emit interactive mismatches as newline-delimited JSON reports instead of colorized text")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, red("error:"), err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *dumpConfig {
		doc, err := cfg.MarshalYAMLDocument()
		if err != nil {
			fmt.Fprintln(os.Stderr, red("error:"), err)
			os.Exit(1)
		}
		fmt.Print(doc)
		return
	}

	if *interactive {
		var renderer *diag.Renderer
		if *jsonDiag {
			renderer = diag.NewJSONRenderer(os.Stdout)
		} else {
			renderer = diag.NewRenderer(os.Stdout)
		}
		runInteractive(cfg, renderer)
		return
	}

	runScenarios(cfg)
}

// runScenarios replays spec §8's end-to-end scenarios against the
// fixtures built in internal/fixtures and prints a pass/fail line for
// each, grounded on the teacher's demo-driver shape (a fixed sequence
// of named checks printed to stdout) rather than on a test harness,
// since this is meant to be read by a human exploring the engine.
func runScenarios(cfg *config.EngineConfig) {
	fmt.Println(bold("Type core scenario runner"))
	fmt.Println(strings.Repeat("-", 40))

	w := fixtures.NewWorld("demo")
	report := func(name string, got dtype.Result, wantOK bool) {
		status := green("ok")
		if got.OK != wantOK {
			status = red("FAIL")
		}
		fmt.Printf("%-45s %s", name, status)
		if !got.OK && got.Message != "" {
			fmt.Printf("  %s", dim(got.Message))
		}
		fmt.Println()
	}

	u8 := fixtures.Basic(dtype.KindU8)
	u64 := fixtures.Basic(dtype.KindU64)
	u16 := fixtures.Basic(dtype.KindU16)
	u32 := fixtures.Basic(dtype.KindU32)
	i32 := fixtures.Basic(dtype.KindI32)

	report("numeric widening: u64 <- u8", match.Match(w.Ctx, u64, u8, false), true)
	report("numeric widening: u8 <- u64 (should fail)", match.Match(w.Ctx, u8, u64, false), false)
	report("numeric widening: i32 <- u16", match.Match(w.Ctx, i32, u16, false), true)
	report("numeric widening: i32 <- u32 (should fail)", match.Match(w.Ctx, i32, u32, false), false)

	small := fixtures.SimpleInterface("Small", fixtures.Method("f", fixtures.Basic(dtype.KindVoid)))
	wide := fixtures.SimpleInterface("Wide",
		fixtures.Method("f", fixtures.Basic(dtype.KindVoid)),
		fixtures.MethodWithParams("g", []dtype.FunctionArgument{{Name: "x", Type: fixtures.Basic(dtype.KindU32)}}, fixtures.Basic(dtype.KindU32)),
	)
	report("interface width-subtyping (non-strict)", match.Match(w.Ctx, small, wide, false), true)
	report("interface width-subtyping (strict, should fail)", match.Match(w.Ctx, small, wide, true), false)

	vecDecl := w.Vec()
	inst1, err1 := vecDecl.Instantiate([]dtype.DataType{u32})
	inst2, err2 := vecDecl.Instantiate([]dtype.DataType{u32})
	if err1 != nil || err2 != nil {
		fmt.Printf("%-45s %s  %v/%v\n", "generic instantiation cache", red("FAIL"), err1, err2)
	} else {
		fmt.Printf("%-45s %s\n", "generic instantiation cache (pointer equality)", okOrFail(inst1 == inst2))
	}

	treeDecl := w.Tree()
	treeU32, _ := treeDecl.Instantiate([]dtype.DataType{u32})
	if variant, ok := treeU32.(*dtype.VariantType); ok {
		if err := variant.Resolve(w.Ctx); err != nil {
			fmt.Printf("%-45s %s  %v\n", "variant constructor matching", red("FAIL"), err)
		} else {
			node, _ := variant.Constructor("Node")
			report("variant constructor matching (Node <: Tree<u32>)", match.Match(w.Ctx, variant, node, false), true)
		}
	}

	bindings, err := generics.Extract(w.Ctx, dtype.NewArray(dtype.NewGeneric("T", nil, u32.Location()), u32.Location()), dtype.NewArray(u32, u32.Location()), []string{"T"})
	if err != nil {
		fmt.Printf("%-45s %s  %v\n", "generic extraction", red("FAIL"), err)
	} else {
		bound, ok := bindings["T"]
		fmt.Printf("%-45s %s\n", "generic extraction (Array<T> vs Array<u32>)", okOrFail(ok && bound.Hash() == u32.Hash()))
	}

	if cfg.LiteralIntRangeCheck {
		fmt.Println(dim("(literal-int range checking is enabled in the active config)"))
	}
}

func okOrFail(b bool) string {
	if b {
		return green("ok")
	}
	return red("FAIL")
}

// runInteractive starts a liner-backed loop that lets the user name
// two basic scalar kinds and see whether they match, in the mode set
// by cfg.StrictByDefault. It is intentionally narrow (full expression
// parsing is out of scope) — a pocket calculator for the widening
// table, not a REPL for the language.
func runInteractive(cfg *config.EngineConfig, renderer *diag.Renderer) {
	w := fixtures.NewWorld("demo")
	line := liner.NewLiner()
	defer line.Close()
	line.SetCompleter(func(s string) (c []string) {
		for _, k := range []string{"u8", "u16", "u32", "u64", "i8", "i16", "i32", "i64", "f32", "f64", "bool"} {
			if strings.HasPrefix(k, s) {
				c = append(c, k)
			}
		}
		return
	})

	fmt.Println(bold("typecheck interactive"), dim("— type 'expected actual', :q to quit"))
	for {
		input, err := line.Prompt("match> ")
		if err != nil {
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ":q" || input == ":quit" {
			return
		}
		line.AppendHistory(input)
		parts := strings.Fields(input)
		if len(parts) != 2 {
			fmt.Println(red("usage: <expected-kind> <actual-kind>"))
			continue
		}
		expected, ok1 := kindByName(parts[0])
		actual, ok2 := kindByName(parts[1])
		if !ok1 || !ok2 {
			fmt.Println(red("unknown basic kind name"))
			continue
		}
		result := match.Match(w.Ctx, expected, actual, cfg.StrictByDefault)
		if result.OK {
			fmt.Printf("match(%s, %s) -> %s\n", parts[0], parts[1], resultString(result))
			continue
		}
		rep := errors.New("TYP006", result.Message, expected.Location()).
			WithData("expected", parts[0]).
			WithData("actual", parts[1])
		if err := renderer.Write(rep); err != nil {
			fmt.Fprintln(os.Stderr, red("render error:"), err)
		}
	}
}

func resultString(r dtype.Result) string {
	if r.OK {
		return green("ok")
	}
	return red("err: " + r.Message)
}

func kindByName(name string) (dtype.DataType, bool) {
	kinds := map[string]dtype.Kind{
		"u8": dtype.KindU8, "u16": dtype.KindU16, "u32": dtype.KindU32, "u64": dtype.KindU64,
		"i8": dtype.KindI8, "i16": dtype.KindI16, "i32": dtype.KindI32, "i64": dtype.KindI64,
		"f32": dtype.KindF32, "f64": dtype.KindF64, "bool": dtype.KindBool, "void": dtype.KindVoid, "null": dtype.KindNull,
	}
	k, ok := kinds[name]
	if !ok {
		return nil, false
	}
	return fixtures.Basic(k), true
}
