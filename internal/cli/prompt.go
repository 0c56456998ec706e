package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/turing/pkg/arith"
	"github.com/aretw0/turing/pkg/domain"
	"golang.org/x/term"
)

// Prompter asks for operands and an operator, repeating each question until
// the answer is valid.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	quiet bool
}

// NewPrompter reads answers from in. Questions are written to out unless quiet.
func NewPrompter(in io.Reader, out io.Writer, quiet bool) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, quiet: quiet}
}

// Operands asks for two binary numbers separated by a space.
func (p *Prompter) Operands() (left, right string, err error) {
	for {
		line, err := p.ask("Enter two binary numbers separated by a space: ")
		if err != nil {
			return "", "", err
		}
		if line, err = arith.SanitizeInput(line); err != nil {
			p.complain(err)
			continue
		}
		left, right, err := arith.ParseOperands(line)
		if err == nil {
			return left, right, nil
		}
		p.complain(err)
	}
}

// Operation asks for one of + - * /.
func (p *Prompter) Operation() (domain.Operation, error) {
	for {
		line, err := p.ask("Enter the operation (+, -, *, /): ")
		if err != nil {
			return "", err
		}
		if line, err = arith.SanitizeInput(line); err != nil {
			p.complain(err)
			continue
		}
		op, err := domain.ParseOperation(line)
		if err == nil {
			return op, nil
		}
		p.complain(errors.New("unrecognized operation"))
	}
}

func (p *Prompter) ask(question string) (string, error) {
	if !p.quiet {
		fmt.Fprint(p.out, question)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("input ended: %w", err)
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) complain(err error) {
	fmt.Fprintf(p.out, "Error: %v\n", err)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
