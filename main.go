package main

import (
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

func main() {
	history := flag.Int("history", 0, "print the N most recent runs and exit")
	flag.Parse()

	cfg := LoadConfig()
	setupLogging(cfg.LogFolder)

	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()

	if *history > 0 {
		printHistory(db, *history)
		return
	}

	log.Println("Starting Ausbildungsnachweis generator...")
	if StartGenerateScheduler(cfg, func() {
		if err := runGenerate(cfg, db); err != nil {
			log.Printf("Generation failed: %v", err)
		}
	}) {
		select {} // run until killed
	}

	if err := runGenerate(cfg, db); err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
}

func runGenerate(cfg Config, db *sql.DB) error {
	startedAt := time.Now()

	records, err := LoadRecords(cfg.InputCSV)
	if err != nil {
		return err
	}

	// LLM suggestions are merged into a per-run copy of the activity map.
	runCfg := cfg
	runCfg.Activities = make(map[string]string, len(cfg.Activities))
	for key, label := range cfg.Activities {
		runCfg.Activities[key] = label
	}
	EnrichActivityMap(&runCfg, db, records)

	doc, err := OpenDocxTemplate(runCfg.Template)
	if err != nil {
		return err
	}
	defer doc.Close()

	events := &runEvents{}
	proc, err := NewWeekProcessor(runCfg, events, doc, records)
	if err != nil {
		return err
	}
	proc.ProcessAllWeeks()

	outPath, err := doc.Save(runCfg.OutputFolder)
	if err != nil {
		return err
	}
	log.Printf("Document saved to %s", outPath)

	if backup, err := BackupDocument(outPath, runCfg.OutputBackup); err != nil {
		log.Printf("Error writing backup copy: %v", err)
	} else if backup != "" {
		log.Printf("Backup copy saved to %s", backup)
	}

	weekCount := len(proc.Weeks())
	runID, err := InsertRun(db, RunRecord{
		CSVPath:     runCfg.InputCSV,
		OutputPath:  outPath,
		RecordCount: len(records),
		WeekCount:   weekCount,
		Warnings:    events.Warnings,
		Errors:      events.Errors,
		StartedAt:   startedAt,
	})
	if err != nil {
		log.Printf("Error recording run: %v", err)
	} else if _, err := InsertActivityRecords(db, runID, records); err != nil {
		log.Printf("Error archiving records: %v", err)
	}

	if err := NotifySlack(runCfg, outPath, len(records), weekCount); err != nil {
		log.Printf("Slack notification error (non-fatal): %v", err)
	}

	log.Printf("Run complete: %d records, %d weeks, %d warnings, %d errors",
		len(records), weekCount, events.Warnings, events.Errors)
	return nil
}

// setupLogging mirrors log output into a timestamped file in the
// configured log folder.
func setupLogging(logFolder string) {
	if logFolder == "" {
		return
	}
	if err := os.MkdirAll(logFolder, 0755); err != nil {
		log.Printf("Error creating log folder: %v", err)
		return
	}
	path := filepath.Join(logFolder, fmt.Sprintf("log_%s.log", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		log.Printf("Error creating log file: %v", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
}

func printHistory(db *sql.DB, limit int) {
	runs, err := GetRecentRuns(db, limit)
	if err != nil {
		log.Fatalf("Failed to load run history: %v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}
	for _, run := range runs {
		fmt.Printf("%s  %-40s  records=%d weeks=%d warnings=%d errors=%d\n",
			run.StartedAt.Format("2006-01-02 15:04"), filepath.Base(run.OutputPath),
			run.RecordCount, run.WeekCount, run.Warnings, run.Errors)
	}
}
