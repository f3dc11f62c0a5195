// Package config loads runtime settings from the environment, with an
// optional .env file loaded first.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultContextPrompt is used when no per-guild context has been set and
// DEFAULT_CONTEXT is empty.
const defaultContextPrompt = "You are a helpful assistant that provides concise initial answers. " +
	"This is a Machine Learning club and any other topic than machine learning is discouraged. " +
	"You should be extra polite and if people go off topic make a sentence that is friendly " +
	"saying that the topic should be about machine learning only. Use emojis if necessary. " +
	"Always make sure people don't get offended. If a person is off topic try not to ask a follow up question."

// Config holds all runtime settings.
type Config struct {
	DiscordToken      string `env:"DISCORD_TOKEN,required"`
	StoragePath       string `env:"STORAGE_PATH" envDefault:"data/warden.json"`
	WelcomeLogPath    string `env:"WELCOME_LOG_PATH" envDefault:"data/welcomes.db"`
	StatusAddr        string `env:"STATUS_ADDR" envDefault:":3000"`
	InitSlashCommands bool   `env:"INIT_SLASH_COMMANDS" envDefault:"true"`

	AIProvider   string `env:"AI_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	BotAccessRole  string `env:"BOT_ACCESS_ROLE" envDefault:"botAccess"`
	VerifyRoleName string `env:"VERIFY_ROLE" envDefault:"Students"`
	QuestionsForum string `env:"QUESTIONS_FORUM" envDefault:"questions"`
	DefaultContext string `env:"DEFAULT_CONTEXT"`

	// CommandClasses overrides the default permission class of individual
	// commands, e.g. COMMAND_CLASSES="verify:admin,getcontext:botaccess".
	CommandClasses map[string]string `env:"COMMAND_CLASSES"`
}

// New loads the configuration. A missing .env file is not an error.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DefaultContext == "" {
		cfg.DefaultContext = defaultContextPrompt
	}

	// Override keys are matched case-insensitively against command names.
	if len(cfg.CommandClasses) > 0 {
		normalized := make(map[string]string, len(cfg.CommandClasses))
		for name, class := range cfg.CommandClasses {
			normalized[strings.ToLower(strings.TrimSpace(name))] = strings.ToLower(strings.TrimSpace(class))
		}
		cfg.CommandClasses = normalized
	}

	return &cfg, nil
}
