package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/export"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/ingest"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/review"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/run"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/segment"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir      = flag.String("dir", "", "directory of documents to process (required)")
		tmplPath = flag.String("template", "./templates/v1_template.json", "field template JSON")
		modeStr  = flag.String("mode", "full", "run mode: quick or full")
		out      = flag.String("out", "", "output file path (optional, defaults to parent directory)")
		format   = flag.String("format", "csv", "output format: csv or xlsx")
		workers  = flag.Int("workers", 4, "parallel document workers")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	mode, ok := constants.ParseJobMode(*modeStr)
	if !ok {
		printError("Error: --mode must be quick or full\n")
		os.Exit(1)
	}
	if *format != "csv" && *format != "xlsx" {
		printError("Error: --format must be csv or xlsx\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "review."+*format)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// In-memory engine: nothing survives the process, which is the point of
	// a one-shot run.
	store := run.NewMemStore(review.NewMemStore())
	inventory := ingest.NewInventory(*dir, "", logger)
	orchestrator := run.NewOrchestrator(inventory, store, segment.New(logger), logger,
		run.WithWorkers(*workers),
		run.WithTemplatePath(*tmplPath),
	)

	handle, err := orchestrator.Submit(ctx, mode, "")
	if err != nil {
		printError("Error: submitting run: %v\n", err)
		os.Exit(1)
	}
	job, err := handle.Wait(ctx)
	if err != nil {
		printError("Error: waiting for run: %v\n", err)
		os.Exit(1)
	}
	if job.Status != constants.JobStatusSucceeded {
		msg := ""
		if job.ErrorMessage != nil {
			msg = *job.ErrorMessage
		}
		printError("Error: job %s: %s\n", job.Status, msg)
		os.Exit(1)
	}
	for _, docErr := range job.DocumentErrors {
		logger.Warn("document skipped",
			slog.String("identifier", docErr.Identifier),
			slog.String("error", docErr.Message))
	}

	table, err := orchestrator.Result(ctx, job.ID)
	if err != nil {
		printError("Error: assembling table: %v\n", err)
		os.Exit(1)
	}

	exporter := export.NewService(logger)
	var content []byte
	if *format == "xlsx" {
		content, err = exporter.ExportXLSX(table)
	} else {
		content, err = exporter.ExportCSV(table)
	}
	if err != nil {
		printError("Error: rendering export: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, content, 0o644); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("job %s: %d fields x %d documents -> %s\n",
		job.ID, len(table.Fields), len(table.Documents), *out)
}
