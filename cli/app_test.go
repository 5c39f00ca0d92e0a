package cli

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/google/subcommands"

	"consorcio-simulator/domain"
	"consorcio-simulator/service"
)

func parseContract(t *testing.T, args ...string) domain.ContractInput {
	t.Helper()
	var c contractFlags
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	return c.Contract()
}

func TestContractFlags_Traditional(t *testing.T) {
	in := parseContract(t,
		"-credit", "100000", "-admin-fee", "18", "-reserve-fund", "2",
		"-months", "120", "-contemplation", "12",
	)

	if in.CreditValue != 100000 || in.TotalMonths != 120 || in.ContemplationMonth != 12 {
		t.Errorf("unexpected contract %+v", in)
	}
	if in.AdminFeeRate != 0.18 || in.ReserveFundRate != 0.02 {
		t.Errorf("percentages should become fractions, got %+v", in)
	}
	if in.Strategy != domain.StrategyTraditional || in.AssetType != domain.AssetRealEstate {
		t.Errorf("unexpected defaults %+v", in)
	}
	if in.Investment != nil {
		t.Error("traditional contracts carry no investment")
	}
	if err := service.ValidateContract(in); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestContractFlags_Leveraged(t *testing.T) {
	in := parseContract(t,
		"-credit", "50000", "-admin-fee", "15", "-months", "60", "-contemplation", "6",
		"-asset", "vehicle", "-strategy", "leveraged",
		"-investment", "cdi_linked", "-cdi-percentage", "110", "-cdi", "10",
	)

	if in.Investment == nil {
		t.Fatal("expected investment parameters")
	}
	if in.Investment.Type != domain.InvestmentCDILinked || in.Investment.CDIPercentage != 1.1 || in.Investment.EstimatedCDI != 0.1 {
		t.Errorf("unexpected investment %+v", *in.Investment)
	}
}

func TestExitStatus(t *testing.T) {
	if got := exitStatus(&service.ValidationError{Err: errors.New("inválido")}); got != subcommands.ExitUsageError {
		t.Errorf("validation errors are usage errors, got %v", got)
	}
	if got := exitStatus(&service.BidExceedsBalanceError{Bid: 2, Balance: 1}); got != subcommands.ExitFailure {
		t.Errorf("expected failure, got %v", got)
	}
}

func TestPrintMarkdown_Plain(t *testing.T) {
	var buf bytes.Buffer
	printMarkdown(&buf, "# Título\n", true)
	if buf.String() != "# Título\n" {
		t.Errorf("plain output should be unchanged, got %q", buf.String())
	}
}
