package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/nanolang/nano/internal/config"
	"github.com/nanolang/nano/internal/diagnostics"
	"github.com/nanolang/nano/internal/evaluator"
	"github.com/nanolang/nano/internal/history"
	"github.com/nanolang/nano/internal/lexer"
	"github.com/nanolang/nano/internal/parser"
	"github.com/nanolang/nano/internal/pipeline"
)

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nano", flag.ContinueOnError)
	fs.SetOutput(stderr)
	exprFlag := fs.String("e", "", "evaluate the given expression and exit")
	configFlag := fs.String("config", "", "path to nano.yaml (default: auto-discover)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "nano: %v\n", err)
		return 2
	}

	useColor := colorEnabled(cfg.REPL.Color)

	eval := evaluator.New()
	eval.MaxDepth = cfg.MaxEvalDepth
	env := evaluator.NewPreludeEnvironment()

	if *exprFlag != "" {
		return evalAndPrint(*exprFlag, "<expr>", eval, env, stdout, stderr, useColor)
	}

	if fs.NArg() > 0 {
		path := fs.Arg(0)
		if !isSourceFile(path) {
			fmt.Fprintf(stderr, "nano: %s: not a %s file\n", path, config.SourceFileExt)
			return 2
		}
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "nano: %v\n", err)
			return 2
		}
		return evalAndPrint(string(src), path, eval, env, stdout, stderr, useColor)
	}

	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return repl(cfg, eval, env, stdin, stdout, stderr, useColor)
	}

	src, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "nano: %v\n", err)
		return 2
	}
	return evalAndPrint(string(src), "<stdin>", eval, env, stdout, stderr, useColor)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover()
}

// colorEnabled resolves the configured mode against the terminal.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// evaluate runs the lex/parse pipeline and the evaluator over one
// program. Parse diagnostics and runtime errors are both possible
// outcomes; runtime failures come back as evaluator Error objects.
func evaluate(src, file string, eval *evaluator.Evaluator, env *evaluator.Environment) (evaluator.Object, []*diagnostics.Error) {
	ctx := &pipeline.PipelineContext{FilePath: file, SourceCode: src}
	p := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{})
	ctx = p.Run(ctx)

	if ctx.HasErrors() {
		return nil, ctx.Errors
	}
	return eval.Eval(ctx.AstRoot, env), nil
}

func evalAndPrint(src, file string, eval *evaluator.Evaluator, env *evaluator.Environment, stdout, stderr io.Writer, useColor bool) int {
	result, diags := evaluate(src, file, eval, env)
	if len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprintln(stderr, paint(d.Error(), useColor))
		}
		return 1
	}
	fmt.Fprintln(stdout, result.Inspect())
	if result.Type() == evaluator.ERROR_OBJ {
		return 1
	}
	return 0
}

func paint(msg string, useColor bool) string {
	if useColor {
		return colorRed + msg + colorReset
	}
	return msg
}

func repl(cfg *config.Config, eval *evaluator.Evaluator, env *evaluator.Environment, stdin io.Reader, stdout, stderr io.Writer, useColor bool) int {
	var store *history.Store
	if cfg.REPL.History != "" {
		s, err := history.Open(config.ExpandHome(cfg.REPL.History))
		if err != nil {
			// History is a convenience; the REPL works without it.
			fmt.Fprintf(stderr, "nano: history disabled: %v\n", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, cfg.REPL.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			return 0
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case ":quit":
			return 0
		case ":history":
			printHistory(store, stdout, stderr)
			continue
		}

		var rendered string
		result, diags := evaluate(line, "<repl>", eval, env)
		if len(diags) > 0 {
			for _, d := range diags {
				fmt.Fprintln(stdout, paint(d.Error(), useColor))
			}
			rendered = diags[0].Error()
		} else {
			rendered = result.Inspect()
			if result.Type() == evaluator.ERROR_OBJ {
				fmt.Fprintln(stdout, paint(rendered, useColor))
			} else {
				fmt.Fprintln(stdout, rendered)
			}
		}

		if store != nil {
			if err := store.Append(line, rendered); err != nil {
				fmt.Fprintf(stderr, "nano: history write failed: %v\n", err)
			}
		}
	}
}

func printHistory(store *history.Store, stdout, stderr io.Writer) {
	if store == nil {
		fmt.Fprintln(stdout, "history is disabled")
		return
	}
	entries, err := store.Recent(20)
	if err != nil {
		fmt.Fprintf(stderr, "nano: %v\n", err)
		return
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Fprintf(stdout, "%s  %s => %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Input, e.Result)
	}
}
