package main

import "testing"

func TestNotifySlackDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.SlackBotToken = ""
	cfg.SlackChannelID = ""

	// Without credentials the notification is a configured no-op.
	if err := NotifySlack(cfg, "does-not-exist.docx", 5, 1); err != nil {
		t.Fatalf("expected nil for disabled notification, got %v", err)
	}
}

func TestNotifySlackMissingFile(t *testing.T) {
	cfg := testConfig()
	cfg.SlackBotToken = "xoxb-test"
	cfg.SlackChannelID = "C123"

	if err := NotifySlack(cfg, "does-not-exist.docx", 5, 1); err == nil {
		t.Fatal("expected error for missing generated file")
	}
}
