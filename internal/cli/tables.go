package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tables"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteTables.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WriteTables prints the named table, or every table when name is empty.
func WriteTables(out io.Writer, name, format string) error {
	list := tables.All()
	if name != "" {
		t, err := tables.ByName(name)
		if err != nil {
			return err
		}
		list = []*domain.Table{t}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		for i, t := range list {
			if i > 0 {
				fmt.Fprintln(out)
			}
			writeTableText(out, t)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func writeTableText(out io.Writer, t *domain.Table) {
	fmt.Fprintf(out, "%s (%s): %d states, terminal %d\n", t.Name, t.Operation, t.States(), t.Terminal)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tREAD 0\tREAD 1")
	for state, row := range t.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", state, row[0], row[1])
	}
	tw.Flush()
	if report, err := validator.ValidateTable(t); err != nil {
		fmt.Fprintf(out, "invalid: %v\n", err)
	} else {
		fmt.Fprintln(out, report)
	}
}

// WriteGraph prints the Mermaid diagram of a table, marking currentState when
// it is not negative.
func WriteGraph(out io.Writer, name string, currentState int) error {
	t, err := tables.ByName(name)
	if err != nil {
		return err
	}
	var overlay *graph.GraphOverlay
	if currentState >= 0 {
		overlay = &graph.GraphOverlay{CurrentState: currentState}
	}
	fmt.Fprint(out, graph.GenerateMermaid(t, overlay))
	return nil
}

// WriteRunGraph prints the Mermaid diagram of a stored run's table with the
// states it visited and the state it halted in highlighted.
func WriteRunGraph(ctx context.Context, env *Env, out io.Writer, id string) error {
	store, err := env.OpenStore(ctx)
	if err != nil {
		return err
	}
	rec, err := env.NewCalculator(store).Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load run %s: %w", id, err)
	}
	t, err := tables.ByName(rec.Table)
	if err != nil {
		return err
	}
	fmt.Fprint(out, graph.GenerateMermaid(t, graph.RunOverlay(rec)))
	return nil
}
