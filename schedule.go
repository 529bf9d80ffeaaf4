package main

import (
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser accepts standard 5-field cron expressions
// (minute hour day-of-month month day-of-week).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// StartGenerateScheduler re-runs generation on the configured cron
// schedule. Examples: "0 18 * * 5" (Fridays 6pm), "0 7 1 * *" (monthly).
// Returns false when no schedule is configured; the expression itself
// was validated at config load.
func StartGenerateScheduler(cfg Config, generate func()) bool {
	schedule := strings.TrimSpace(cfg.GenerateSchedule)
	if schedule == "" {
		return false
	}
	sched, err := cronParser.Parse(schedule)
	if err != nil {
		log.Printf("Invalid generate_schedule '%s': %v, scheduling disabled", schedule, err)
		return false
	}
	log.Printf("Generation scheduled (cron: %s)", schedule)

	go func() {
		for {
			now := time.Now()
			next := sched.Next(now)
			log.Printf("Next generation at %s (in %s)", next.Format("Mon Jan 2 15:04"), next.Sub(now).Round(time.Minute))

			time.Sleep(next.Sub(now))
			generate()
		}
	}()
	return true
}
