// Command exchange converts an amount of one currency into another using
// a file of exchange prices.
//
// Usage:
//
//	exchange [flags] <amount> <currency> <to>
//
// For example:
//
//	exchange --prices prices.txt --round 2 100 USD RUB
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/govalues/measurement/internal/config"
	"github.com/govalues/measurement/internal/pricebook"
	"github.com/govalues/measurement/money"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("exchange", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	round := fs.Int("round", 0, "round the result half away from zero to this many digits")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: exchange [flags] <amount> <currency> <to>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("Failed to load config", slog.String("error", err.Error()))
		return 1
	}
	logger := newLogger(cfg, stderr).With(slog.String("run_id", uuid.NewString()))

	book, err := loadBook(cfg.PricesFile)
	if err != nil {
		logger.Error("Failed to load prices", slog.String("file", cfg.PricesFile), slog.String("error", err.Error()))
		return 1
	}
	logger.Debug("Prices loaded", slog.Int("pairs", book.Len()), slog.Any("symbols", book.Pairs()))

	a, err := money.ParseAmount(fs.Arg(1), fs.Arg(0))
	if err != nil {
		logger.Error("Invalid amount", slog.String("error", err.Error()))
		return 1
	}
	to, err := money.ParseCurr(fs.Arg(2))
	if err != nil {
		logger.Error("Invalid target currency", slog.String("error", err.Error()))
		return 1
	}

	got, err := book.Convert(a, to)
	if err != nil {
		logger.Error("Conversion failed", slog.String("amount", a.String()), slog.String("to", to.Code()), slog.String("error", err.Error()))
		return 1
	}
	if fs.Changed("round") {
		got = got.Round(*round)
	}
	logger.Info("Converted", slog.String("from", a.String()), slog.String("to", got.String()))
	fmt.Fprintln(stdout, got)
	return 0
}

func loadBook(path string) (*pricebook.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pricebook.Load(f)
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
