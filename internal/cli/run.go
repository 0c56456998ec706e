package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/turing/internal/presentation/report"
	"github.com/aretw0/turing/internal/presentation/tape"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/calculator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tables"
	"github.com/muesli/termenv"
)

// RunOptions configures a single calculation from the command line.
type RunOptions struct {
	Left      string
	Right     string
	Operation string

	// JSON prints the record instead of the tape and report.
	JSON bool
	// Plain disables colors and markdown styling.
	Plain bool
	// Window overrides display.window when positive.
	Window int

	Input  io.Reader
	Output io.Writer
}

// RunCalculation acquires missing operands (prompting on a terminal), runs the
// calculation and prints the tapes before and after plus the result report.
func RunCalculation(ctx context.Context, env *Env, opts RunOptions) error {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	out := opts.Output
	interactive := isTerminal(opts.Input) && !opts.JSON

	if interactive && !opts.Plain {
		tui.PrintBanner(out, env.Profile)
	}

	prompter := NewPrompter(opts.Input, out, !interactive)
	if opts.Left == "" || opts.Right == "" {
		left, right, err := prompter.Operands()
		if err != nil {
			return err
		}
		opts.Left, opts.Right = left, right
	}

	var op domain.Operation
	if opts.Operation == "" {
		var err error
		if op, err = prompter.Operation(); err != nil {
			return err
		}
	} else {
		var err error
		if op, err = operationFor(opts.Operation); err != nil {
			return err
		}
	}

	store, err := env.OpenStore(ctx)
	if err != nil {
		return err
	}
	calc := env.NewCalculator(store)

	record, err := calc.Calculate(ctx, calculator.Request{Left: opts.Left, Right: opts.Right, Op: op})
	if err != nil {
		if record == nil {
			return err
		}
		env.Logger.Warn("Run finished but was not saved", "error", err)
	}

	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	profile := env.Profile
	if opts.Plain || !isTerminal(out) {
		profile = termenv.Ascii
	}
	window := env.Config.Display.Window
	if opts.Window > 0 {
		window = opts.Window
	}
	return printRecord(out, record, window, profile, !opts.Plain && isTerminal(out))
}

func printRecord(out io.Writer, record *domain.Record, window int, profile termenv.Profile, styled bool) error {
	initial, err := domain.NewTape(record.InputTape)
	if err != nil {
		return err
	}
	start := domain.NewConfiguration(initial)

	fmt.Fprintln(out, "Initial tape:")
	fmt.Fprintln(out, tape.Strip(start, window, profile))
	fmt.Fprintln(out, tape.Status(start))
	fmt.Fprintln(out)

	final := record.Configuration()
	fmt.Fprintf(out, "Result of operation %s:\n", record.Operation)
	fmt.Fprintln(out, tape.Strip(final, window, profile))
	fmt.Fprintln(out, tape.Status(final))
	fmt.Fprintln(out)

	render := tui.NewPlainRenderer()
	if styled {
		render = tui.NewRenderer(0)
	}
	md, err := render(report.Markdown(record))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Fprint(out, md)

	if record.Exhausted {
		printSystemMessage(out, "Warning: the step limit of %d was reached.", record.Steps)
	}
	return nil
}

// operationFor accepts an operator ("+") or a table name ("addition").
func operationFor(s string) (domain.Operation, error) {
	if op, err := domain.ParseOperation(s); err == nil {
		return op, nil
	}
	table, err := tables.ByName(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return table.Operation, nil
}
