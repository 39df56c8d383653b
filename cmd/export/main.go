// Command export converts the dictionary file into an embeddable C++
// header, a JSON object or the marker-free word list the game reads.
//
// Flags:
//
//	-in      dictionary file (default: dictionary.txt)
//	-out     output file, "-" for stdout (default: dictionary.hpp)
//	-format  cpp, json or text (default: cpp)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/silverhammermba/bananagrams/internal/app"
	"github.com/silverhammermba/bananagrams/internal/config"
	"github.com/silverhammermba/bananagrams/internal/export"
	"github.com/silverhammermba/bananagrams/internal/store"
)

func main() {
	inFlag := flag.String("in", "dictionary.txt", "dictionary file to read")
	outFlag := flag.String("out", "dictionary.hpp", `output file, "-" for stdout`)
	formatFlag := flag.String("format", string(export.FormatCPP), "output format: cpp, json or text")
	flag.Parse()

	logger := app.NewLogger(config.LogConfig{Level: "info", Format: "text"})

	if err := run(*inFlag, *outFlag, *formatFlag, logger); err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(in, out, formatName string, logger *slog.Logger) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	dict, err := store.Load(in)
	if err != nil {
		return err
	}
	entries := dict.Entries()

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, entries, format); err != nil {
		return err
	}

	if c, ok := w.(io.Closer); ok && out != "-" {
		if err := c.Close(); err != nil {
			return fmt.Errorf("close %s: %w", out, err)
		}
	}

	counts := dict.Counts()
	logger.Info("dictionary exported",
		slog.String("out", out),
		slog.String("format", string(format)),
		slog.Int("entries", len(entries)),
		slog.Int("resolved", counts.Resolved),
		slog.Int("not_found", counts.NotFound),
		slog.Int("unresolved", counts.Unresolved),
	)
	return nil
}
