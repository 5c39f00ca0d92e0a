package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"consorcio-simulator/report"
)

type simulateCmd struct {
	contractFlags
	format  string
	plain   bool
	explain bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "simulate a consórcio contract" }
func (*simulateCmd) Usage() string {
	return `consorcio simulate -credit <R$> -months <n> [-contemplation <n>] [flags]

  Computes the installment schedule, the real cost and, with
  -strategy leveraged, the leverage analysis of a consórcio contract.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.contractFlags.SetFlags(f)
	f.StringVar(&c.format, "format", "md", "Output format: md, json or html")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering it for the terminal")
	f.BoolVar(&c.explain, "explain", false, "Add a written explanation (uses GEMINI_API_KEY when set)")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sims, _, err := newServices(ctx, c.explain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	sim, err := sims.Simulate(ctx, c.Contract())
	if err != nil {
		return exitStatus(err)
	}

	switch c.format {
	case "md":
		var b strings.Builder
		if err := report.Markdown(&b, sim); err != nil {
			return exitStatus(err)
		}
		printMarkdown(os.Stdout, b.String(), c.plain)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.NewView(sim)); err != nil {
			return exitStatus(err)
		}
	case "html":
		if err := report.HTML(os.Stdout, sim); err != nil {
			return exitStatus(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
