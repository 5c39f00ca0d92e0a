package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"consorcio-simulator/domain"
	"consorcio-simulator/report"
	"consorcio-simulator/service"
)

type scenariosCmd struct {
	contractFlags
	from  int
	to    int
	plain bool
}

func (*scenariosCmd) Name() string { return "scenarios" }
func (*scenariosCmd) Synopsis() string {
	return "compare contemplation months of a consórcio contract"
}
func (*scenariosCmd) Usage() string {
	return `consorcio scenarios -credit <R$> -months <n> -from <month> -to <month> [flags]

  Simulates the contract for every contemplation month in [from, to] and
  ranks the outcomes. -contemplation is ignored.
`
}

func (c *scenariosCmd) SetFlags(f *flag.FlagSet) {
	c.contractFlags.SetFlags(f)
	f.IntVar(&c.from, "from", 0, "First contemplation month")
	f.IntVar(&c.to, "to", 0, "Last contemplation month")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering it for the terminal")
}

func (c *scenariosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sims, logger, err := newServices(ctx, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	contract := c.Contract()
	contract.ContemplationMonth = c.from

	res, err := service.NewScenarioService(sims, logger).CompareContemplation(domain.ScenarioInput{
		Contract:              contract,
		MinContemplationMonth: c.from,
		MaxContemplationMonth: c.to,
	})
	if err != nil {
		return exitStatus(err)
	}

	var b strings.Builder
	if err := report.Scenarios(&b, res); err != nil {
		return exitStatus(err)
	}
	printMarkdown(os.Stdout, b.String(), c.plain)
	return subcommands.ExitSuccess
}
