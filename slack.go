package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/slack-go/slack"
)

// NotifySlack uploads the generated document to the configured channel.
// Disabled unless a bot token and channel are configured.
func NotifySlack(cfg Config, filePath string, recordCount, weekCount int) error {
	if cfg.SlackBotToken == "" || cfg.SlackChannelID == "" {
		log.Println("Slack notification disabled (slack_bot_token/slack_channel_id not set)")
		return nil
	}

	fi, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("stat generated file: %w", err)
	}
	if fi.Size() <= 0 {
		return fmt.Errorf("generated file is empty: %s", filePath)
	}

	api := slack.New(cfg.SlackBotToken)
	_, err = api.UploadFileV2(slack.UploadFileV2Parameters{
		File:           filePath,
		FileSize:       int(fi.Size()),
		Filename:       filepath.Base(filePath),
		Channel:        cfg.SlackChannelID,
		Title:          filepath.Base(filePath),
		InitialComment: fmt.Sprintf("Ausbildungsnachweis generated from %d records across %d weeks", recordCount, weekCount),
	})
	if err != nil {
		return fmt.Errorf("upload generated file: %w", err)
	}
	log.Printf("Uploaded %s to Slack channel %s", filepath.Base(filePath), cfg.SlackChannelID)
	return nil
}
