package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/pkg/domain"
)

// PrintHistory lists stored runs, newest first.
func PrintHistory(ctx context.Context, env *Env, out io.Writer, jsonMode bool) error {
	store, err := env.OpenStore(ctx)
	if err != nil {
		return err
	}
	records, err := env.NewCalculator(store).History(ctx)
	if err != nil {
		return err
	}

	if jsonMode {
		if records == nil {
			records = []*domain.Record{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		if env.Config.Store.Backend == config.BackendMemory {
			printSystemMessage(out, "No runs recorded. The memory store only lives for one process; set store.backend to redis to keep history.")
		} else {
			printSystemMessage(out, "No runs recorded.")
		}
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tEXPRESSION\tHALT\tSTEPS\tEXPECTED")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s %s %s\t%s\t%d\t%s\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Left, r.Operation, r.Right, r.Reason, r.Steps, r.ExpectedBinary)
	}
	return tw.Flush()
}
