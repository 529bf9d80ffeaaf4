package main

import "testing"

func TestStartGenerateSchedulerDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.GenerateSchedule = ""

	if StartGenerateScheduler(cfg, func() { t.Fatal("generate must not run") }) {
		t.Fatal("expected scheduler to stay disabled without a schedule")
	}
}

func TestCronParserAcceptsFiveFieldExpressions(t *testing.T) {
	for _, expr := range []string{"0 18 * * 5", "30 7 1 * *", "*/15 * * * *"} {
		if _, err := cronParser.Parse(expr); err != nil {
			t.Fatalf("expected %q to parse: %v", expr, err)
		}
	}
	if _, err := cronParser.Parse("not a schedule"); err == nil {
		t.Fatal("expected parse error for invalid expression")
	}
}
