package main

import (
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Values substituted into the template.
	Name         string `yaml:"name"`          // trainee name, {NAME}
	Year         string `yaml:"year"`          // training year, {ABJ}
	DefaultHours string `yaml:"default_hours"` // {<DAY>_STUNDEN<week>}

	InputCSV     string `yaml:"input_csv"`
	Template     string `yaml:"template"`
	OutputFolder string `yaml:"output_folder"`
	OutputBackup string `yaml:"output_backup"`
	LogFolder    string `yaml:"log_folder"`
	DBPath       string `yaml:"db_path"`

	// Days is the ordered set of report days; Activities maps an
	// upper-cased activity description to its type label, with "NA" as
	// the fallback entry.
	Days        []string          `yaml:"days"`
	Activities  map[string]string `yaml:"activities"`
	UnknownType string            `yaml:"unknown_type"`

	GenerateSchedule string `yaml:"generate_schedule"`

	SlackBotToken  string `yaml:"slack_bot_token"`
	SlackChannelID string `yaml:"slack_channel_id"`

	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	LLMModel        string `yaml:"llm_model"`
}

var defaultDays = []string{"MONTAG", "DIENSTAG", "MITTWOCH", "DONNERSTAG", "FREITAG"}

func defaultActivities() map[string]string {
	return map[string]string{
		"NE-NICHT-PRÄMIENWIRKSAME AUSBILDUNG": "Betrieb",
		"AS-KRANKHEIT":                        "Krank",
		"AH-URLAUB":                           "Urlaub",
		"NA":                                  "TAETIGKEIT_UNBEKANNT",
	}
}

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.Name, "NACHWEIS_NAME")
	envOverride(&cfg.Year, "NACHWEIS_YEAR")
	envOverride(&cfg.DefaultHours, "NACHWEIS_DEFAULT_HOURS")
	envOverride(&cfg.InputCSV, "INPUT_CSV")
	envOverride(&cfg.Template, "TEMPLATE_PATH")
	envOverride(&cfg.OutputFolder, "OUTPUT_FOLDER")
	envOverride(&cfg.OutputBackup, "OUTPUT_BACKUP")
	envOverride(&cfg.LogFolder, "LOG_FOLDER")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.GenerateSchedule, "GENERATE_SCHEDULE")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.SlackChannelID, "SLACK_CHANNEL_ID")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.LLMModel, "LLM_MODEL")

	// Defaults
	if cfg.DefaultHours == "" {
		cfg.DefaultHours = "8"
	}
	if cfg.InputCSV == "" {
		cfg.InputCSV = "Vorlagen/data.csv"
	}
	if cfg.Template == "" {
		cfg.Template = "Vorlagen/VorlageMonat.docx"
	}
	if cfg.OutputFolder == "" {
		cfg.OutputFolder = "Ausgabe"
	}
	if cfg.LogFolder == "" {
		cfg.LogFolder = "logs"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./nachweisbot.db"
	}
	if len(cfg.Days) == 0 {
		cfg.Days = append([]string(nil), defaultDays...)
	}
	if cfg.UnknownType == "" {
		cfg.UnknownType = "TAETIGKEIT_UNBEKANNT"
	}
	if len(cfg.Activities) == 0 {
		cfg.Activities = defaultActivities()
	}

	// Activity keys and day names are matched against upper-cased input.
	normalized := make(map[string]string, len(cfg.Activities))
	for key, value := range cfg.Activities {
		normalized[strings.ToUpper(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	cfg.Activities = normalized
	for i, day := range cfg.Days {
		cfg.Days[i] = strings.ToUpper(strings.TrimSpace(day))
	}

	// Validate
	if cfg.SlackBotToken != "" && cfg.SlackChannelID == "" {
		log.Fatalf("slack_channel_id is required when slack_bot_token is set")
	}
	if schedule := strings.TrimSpace(cfg.GenerateSchedule); schedule != "" {
		if _, err := cronParser.Parse(schedule); err != nil {
			log.Fatalf("invalid generate_schedule '%s': %v", schedule, err)
		}
	}

	return cfg
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
