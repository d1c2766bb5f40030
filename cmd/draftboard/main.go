package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/fpltools/draftboard/internal/fpl"
	"github.com/fpltools/draftboard/internal/report"
	"github.com/fpltools/draftboard/internal/services"
	"github.com/fpltools/draftboard/pkg/config"
)

func main() {
	snapshotPath := flag.String("snapshot", "", "path to a local bootstrap-static JSON file (skips the API fetch)")
	outPath := flag.String("out", "", "report output path (overrides OUTPUT_PATH)")
	csvPath := flag.String("csv", "", "optional CSV export path")
	jsonPath := flag.String("json", "", "optional JSON dataset export path")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	runID := uuid.New().String()[:8]
	started := time.Now()
	logrus.Infof("Starting draft board generation (run %s)", runID)

	// Connect to Redis if a snapshot cache is configured. The cache is a
	// convenience for repeated runs, so failure downgrades to no caching.
	var cache fpl.CacheProvider
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Warnf("Invalid Redis URL, continuing without snapshot cache: %v", err)
		} else {
			redisClient := redis.NewClient(opt)
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				logrus.Warnf("Redis unreachable, continuing without snapshot cache: %v", err)
			} else {
				defer redisClient.Close()
				cache = services.NewCacheService(redisClient)
			}
		}
	}

	// Acquire the season snapshot
	var snapshot *fpl.Bootstrap
	if *snapshotPath != "" {
		snapshot, err = fpl.LoadSnapshot(*snapshotPath)
		if err != nil {
			logrus.Fatalf("Failed to load snapshot: %v", err)
		}
		logrus.Infof("Loaded snapshot from %s: %d teams, %d players", *snapshotPath, len(snapshot.Teams), len(snapshot.Elements))
	} else {
		client := fpl.NewClient(fpl.ClientOptions{
			BaseURL:         cfg.FPLBaseURL,
			UserAgent:       cfg.FPLUserAgent,
			Timeout:         cfg.FPLTimeout,
			RateLimit:       cfg.FPLRateLimit,
			BreakerMaxFails: cfg.BreakerMaxFails,
			Cache:           cache,
			CacheTTL:        cfg.SnapshotCacheTTL,
		}, logrus.StandardLogger())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.FPLTimeout+5*time.Second)
		defer cancel()

		snapshot, err = client.Bootstrap(ctx)
		if err != nil {
			logrus.Fatalf("Failed to fetch snapshot: %v", err)
		}
	}

	// Build the scored dataset; order follows the roster.
	dataset := report.BuildDataset(snapshot)

	output := cfg.OutputPath
	if *outPath != "" {
		output = *outPath
	}

	if err := writeReport(output, dataset, report.ReportMeta{
		Title:       cfg.ReportTitle,
		RunID:       runID,
		GeneratedAt: started,
	}); err != nil {
		logrus.Fatalf("Failed to write report: %v", err)
	}
	logrus.Infof("Wrote report: %s", output)

	if *csvPath != "" {
		if err := writeCSV(*csvPath, dataset); err != nil {
			logrus.Fatalf("Failed to write CSV export: %v", err)
		}
		logrus.Infof("Wrote CSV export: %s", *csvPath)
	}

	if *jsonPath != "" {
		if err := writeJSON(*jsonPath, dataset); err != nil {
			logrus.Fatalf("Failed to write JSON export: %v", err)
		}
		logrus.Infof("Wrote JSON export: %s", *jsonPath)
	}

	logrus.Infof("Done: %d players scored in %s (run %s)", len(dataset), time.Since(started).Round(time.Millisecond), runID)
}

func writeReport(path string, ds report.Dataset, meta report.ReportMeta) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.RenderHTML(f, ds, meta)
}

// writeCSV exports the dataset ranked by draft score, matching the report's
// default view. The in-memory dataset keeps roster order.
func writeCSV(path string, ds report.Dataset) error {
	ranked := append(report.Dataset{}, ds...)
	report.SortByColumn(ranked, report.ColumnDraftScore)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteCSV(f, ranked)
}

func writeJSON(path string, ds report.Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
