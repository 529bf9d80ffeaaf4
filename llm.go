package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

// EnrichActivityMap resolves activity descriptions that have no exact
// entry in the activity map through the suggestion cache and, when an
// API key is configured, the Anthropic API. Accepted suggestions are
// merged into this run's activity map and cached. Purely additive:
// without a key the classifier fallback chain is unchanged.
func EnrichActivityMap(cfg *Config, db *sql.DB, records []ActivityRecord) {
	if cfg.AnthropicAPIKey == "" {
		return
	}
	unknown := unknownActivities(*cfg, records)
	if len(unknown) == 0 {
		return
	}

	// Cached suggestions pass the same label filter as fresh ones, so a
	// label removed from config cannot re-enter via the cache.
	valid := make(map[string]bool)
	for _, label := range activityLabels(*cfg) {
		valid[label] = true
	}

	var uncached []string
	for _, activity := range unknown {
		if db != nil {
			suggestion, ok, err := GetSuggestion(db, activity)
			if err == nil && ok && valid[suggestion] {
				cfg.Activities[activity] = suggestion
				log.Printf("Activity %q typed as %q (cached suggestion)", activity, suggestion)
				continue
			}
			if ok && !valid[suggestion] {
				log.Printf("Ignoring cached suggestion %q for %q: label not configured", suggestion, activity)
			}
		}
		uncached = append(uncached, activity)
	}
	if len(uncached) == 0 {
		return
	}

	suggestions, err := SuggestActivityTypes(*cfg, uncached)
	if err != nil {
		log.Printf("LLM suggestion error (non-fatal): %v", err)
		return
	}
	model := cfg.LLMModel
	if model == "" {
		model = defaultAnthropicModel
	}
	for activity, label := range suggestions {
		cfg.Activities[activity] = label
		log.Printf("Activity %q typed as %q (llm suggestion)", activity, label)
		if db != nil {
			if err := PutSuggestion(db, activity, label, model); err != nil {
				log.Printf("Error caching suggestion for %q: %v", activity, err)
			}
		}
	}
}

// SuggestActivityTypes asks the Anthropic API to map unknown activity
// descriptions onto the configured type labels. Suggestions are
// advisory: only labels already present in the activity map are
// accepted.
func SuggestActivityTypes(cfg Config, activities []string) (map[string]string, error) {
	if len(activities) == 0 {
		return nil, nil
	}
	labels := activityLabels(cfg)
	if len(labels) == 0 {
		return nil, nil
	}

	systemPrompt := "You map German vocational-training activity descriptions onto a fixed set of activity type labels. " +
		"Respond with a single JSON object mapping each description to exactly one of the allowed labels, " +
		"or to \"\" when none fits. No prose, no code fences."

	var b strings.Builder
	b.WriteString("Allowed labels:\n")
	for _, label := range labels {
		fmt.Fprintf(&b, "- %s\n", label)
	}
	b.WriteString("\nDescriptions:\n")
	for _, activity := range activities {
		fmt.Fprintf(&b, "- %s\n", activity)
	}

	model := cfg.LLMModel
	if model == "" {
		model = defaultAnthropicModel
	}
	log.Printf("llm suggest-types model=%s activities=%d labels=%d", model, len(activities), len(labels))

	responseText, err := callAnthropic(cfg.AnthropicAPIKey, model, systemPrompt, b.String())
	if err != nil {
		return nil, err
	}
	parsed, err := parseSuggestionResponse(responseText)
	if err != nil {
		return nil, err
	}

	valid := make(map[string]bool, len(labels))
	for _, label := range labels {
		valid[label] = true
	}
	out := make(map[string]string)
	for activity, label := range parsed {
		activity = strings.ToUpper(strings.TrimSpace(activity))
		label = strings.TrimSpace(label)
		if activity == "" || label == "" || !valid[label] {
			continue
		}
		out[activity] = label
	}
	return out, nil
}

// unknownActivities returns the deduplicated upper-cased descriptions
// without an exact activity-map entry, in first-seen order.
func unknownActivities(cfg Config, records []ActivityRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range records {
		key := strings.ToUpper(strings.TrimSpace(rec.Activity))
		if key == "" || key == "NA" || seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := cfg.Activities[key]; !ok {
			out = append(out, key)
		}
	}
	return out
}

// activityLabels returns the distinct configured type labels, the
// unknown literal excluded.
func activityLabels(cfg Config) []string {
	seen := make(map[string]bool)
	var labels []string
	for key, label := range cfg.Activities {
		if key == "NA" || label == "" || label == cfg.UnknownType || seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func parseSuggestionResponse(text string) (map[string]string, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("parse llm response: %w", err)
	}
	return out, nil
}

func callAnthropic(apiKey, model, systemPrompt, userPrompt string) (string, error) {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	message, err := client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 2048,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}
	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in Anthropic response")
}
