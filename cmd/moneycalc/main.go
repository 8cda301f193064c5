// Command moneycalc performs exact monetary arithmetic from the command line.
//
// Usage:
//
//	moneycalc [flags] add  CURR A B
//	moneycalc [flags] sub  CURR A B
//	moneycalc [flags] mul  CURR A FACTOR
//	moneycalc [flags] fmt  CURR AMOUNT [PREC]
//	moneycalc [flags] conv BASE QUOTE A
//
// Amounts A and B are written with the configured separator, FACTOR always
// uses '.'. AMOUNT is the integer amount scaled by 10^PREC.
//
// Settings come from the TOML file given by -config. The variables
// MONEYCALC_SEPARATOR, MONEYCALC_PRECISION and MONEYCALC_LOG_LEVEL override
// it, either from the environment or from the file given by -env.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	money "github.com/govalues/scaledmoney"
)

var errUsage = errors.New("usage: moneycalc [-config path] [-env path] [-round] <add|sub|mul|fmt|conv> args...")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("moneycalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a TOML config file")
	envPath := fs.String("env", ".env", "path to an optional env file")
	round := fs.Bool("round", false, "round the result to the scale of its currency")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath, *envPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("config loaded", "path", *configPath, "separator", cfg.Separator, "rates", len(cfg.Rates))

	m, err := execute(ctx, cfg, fs.Args())
	if errors.Is(err, errUsage) {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err != nil {
		logger.Error("command failed", "args", fs.Args(), "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *round {
		m = m.RoundToCurr()
	}
	fmt.Fprintln(stdout, m.Curr().Code()+" "+m.Text(cfg.Separator))
	return 0
}

func execute(ctx context.Context, cfg Config, args []string) (money.ScaledMoney, error) {
	if len(args) == 0 {
		return money.ScaledMoney{}, errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "add", "sub":
		if len(args) != 3 {
			return money.ScaledMoney{}, errUsage
		}
		a, err := money.ParseScaled(args[0], args[1], cfg.Separator)
		if err != nil {
			return money.ScaledMoney{}, err
		}
		b, err := money.ParseScaled(args[0], args[2], cfg.Separator)
		if err != nil {
			return money.ScaledMoney{}, err
		}
		if cmd == "sub" {
			return a.Sub(b)
		}
		return a.Add(b)

	case "mul":
		if len(args) != 3 {
			return money.ScaledMoney{}, errUsage
		}
		a, err := money.ParseScaled(args[0], args[1], cfg.Separator)
		if err != nil {
			return money.ScaledMoney{}, err
		}
		return a.Mul(args[2])

	case "fmt":
		if len(args) != 2 && len(args) != 3 {
			return money.ScaledMoney{}, errUsage
		}
		amount, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return money.ScaledMoney{}, fmt.Errorf("parsing amount: %w", err)
		}
		prec := cfg.Precision
		if len(args) == 3 {
			if prec, err = strconv.Atoi(args[2]); err != nil {
				return money.ScaledMoney{}, fmt.Errorf("parsing precision: %w", err)
			}
		}
		return money.NewScaled(args[0], amount, prec)

	case "conv":
		if len(args) != 3 {
			return money.ScaledMoney{}, errUsage
		}
		a, err := money.ParseScaled(args[0], args[2], cfg.Separator)
		if err != nil {
			return money.ScaledMoney{}, err
		}
		quote, err := money.ParseCurr(args[1])
		if err != nil {
			return money.ScaledMoney{}, err
		}
		rates, err := cfg.RateTable()
		if err != nil {
			return money.ScaledMoney{}, err
		}
		r, err := rates.Rate(ctx, a.Curr(), quote)
		if err != nil {
			return money.ScaledMoney{}, err
		}
		return r.ConvScaled(a)
	}
	return money.ScaledMoney{}, fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}
