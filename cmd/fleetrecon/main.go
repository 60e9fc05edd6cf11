package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"fleetrecon/internal/config"
	"fleetrecon/internal/gateway"
	"fleetrecon/internal/observability"
	"fleetrecon/internal/usecase"
)

func main() {
	// Define command-line flags
	fleetFile := flag.String("fleet", "", "Path to the fleet-card ledger CSV file (required)")
	acquirerFile := flag.String("acquirer", "", "Path to the acquirer/processor ledger CSV file (required)")
	configFile := flag.String("config", "", "Path to the YAML run configuration (optional)")
	bufferHours := flag.Int("buffer", -1, "Time buffer in whole hours; overrides the config value when >= 0")
	matchedOut := flag.String("matched-out", "", "Optional path for the matched-pair CSV export")
	annotatedOut := flag.String("annotated-out", "", "Optional path for the annotated ledger CSV export")
	flag.Parse()

	if *fleetFile == "" || *acquirerFile == "" {
		fmt.Fprintln(os.Stderr, "Error: flags -fleet and -acquirer are required.")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *bufferHours >= 0 {
		cfg.TimeBufferHours = *bufferHours
	}

	logger := observability.NewLogger(cfg.Logging)
	logger = logger.With("run_id", uuid.NewString())

	policy, err := cfg.DomainPolicy()
	if err != nil {
		logger.Error("invalid policy", "error", err)
		os.Exit(1)
	}
	schemaA, schemaB := cfg.Schemas()

	// Manual wiring, same as a DI container would do in a larger app.
	source := gateway.NewCSVRecordSource()
	uc := usecase.NewReconciliationUseCase(source)

	logger.Info("starting reconciliation",
		"fleet", *fleetFile,
		"acquirer", *acquirerFile,
		"buffer_hours", cfg.TimeBufferHours,
		"require_site_match", policy.RequireSiteMatch,
	)

	report, err := uc.Run(context.Background(), *fleetFile, *acquirerFile, schemaA, schemaB, cfg.TimeBufferHours, policy)
	if err != nil {
		logger.Error("reconciliation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("reconciliation finished",
		"total_a", report.Summary.TotalA,
		"total_b", report.Summary.TotalB,
		"total_matched", report.Summary.TotalMatched,
		"dropped_a", report.Summary.DroppedA,
		"dropped_b", report.Summary.DroppedB,
	)

	writer := gateway.NewReportWriter()
	if *matchedOut != "" {
		if err := writer.WriteMatchedPairs(*matchedOut, report.Matched); err != nil {
			logger.Error("matched-pair export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote matched-pair export", "path", *matchedOut)
	}
	if *annotatedOut != "" {
		if err := writer.WriteAnnotated(*annotatedOut, report.Annotated); err != nil {
			logger.Error("annotated export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote annotated export", "path", *annotatedOut)
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error("failed to render JSON report", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(output))
}
