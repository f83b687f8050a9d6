package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone = "UTC"
	configPathEnv   = "NEWSBRIEF_CONFIG"

	databaseDSNEnv     = "DATABASE_DSN"
	marketauxTokenEnv  = "MARKETAUX_API_TOKEN"
	fmpKeyEnv          = "FMP_API_KEY"
	finnhubKeyEnv      = "FINNHUB_API_KEY"
	ollamaBaseURLEnv   = "OLLAMA_BASE_URL"
	ollamaModelEnv     = "OLLAMA_MODEL"
	smtpHostEnv        = "SMTP_HOST"
	smtpUserEnv        = "SMTP_USER"
	smtpPasswordEnv    = "SMTP_PASSWORD"
	emailFromEnv       = "EMAIL_FROM"
	emailRecipientsEnv = "EMAIL_RECIPIENTS"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	News      NewsConfig      `yaml:"news"`
	Ollama    OllamaConfig    `yaml:"ollama"`
	Email     EmailConfig     `yaml:"email"`
	Database  DatabaseConfig  `yaml:"database"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Digest    DigestConfig    `yaml:"digest"`
	Broadcast BroadcastConfig `yaml:"broadcast"`
	Trace     TraceConfig     `yaml:"trace"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// NewsConfig selects and parameterizes article providers.
type NewsConfig struct {
	Providers []string        `yaml:"providers"`
	Limit     int             `yaml:"limit"`
	MarketAux MarketAuxConfig `yaml:"marketaux"`
	FMP       FMPConfig       `yaml:"fmp"`
	Finnhub   FinnhubConfig   `yaml:"finnhub"`
	Feeds     []string        `yaml:"feeds"`
}

type MarketAuxConfig struct {
	BaseURL  string `yaml:"baseUrl"`
	APIToken string `yaml:"apiToken"`
}

type FMPConfig struct {
	BaseURL string `yaml:"baseUrl"`
	APIKey  string `yaml:"apiKey"`
}

type FinnhubConfig struct {
	APIKey string `yaml:"apiKey"`
}

// OllamaConfig defines how to contact the local model server.
type OllamaConfig struct {
	BaseURL string `yaml:"baseUrl"`
	Model   string `yaml:"model"`
}

// EmailConfig wires SMTP delivery.
type EmailConfig struct {
	Host       string   `yaml:"host"`
	Port       int      `yaml:"port"`
	User       string   `yaml:"user"`
	Password   string   `yaml:"password"`
	From       string   `yaml:"from"`
	Recipients []string `yaml:"recipients"`
}

// DatabaseConfig describes Postgres connection details.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// SchedulerConfig defines when the digest should run.
type SchedulerConfig struct {
	CronExpression string         `yaml:"cronExpression"`
	Timezone       string         `yaml:"timezone"`
	location       *time.Location `yaml:"-"`
}

// Location resolves the scheduler timezone string to a time.Location.
func (s SchedulerConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// DigestConfig tunes excerpt selection.
type DigestConfig struct {
	CharBudget    int `yaml:"charBudget"`
	MinParagraphs int `yaml:"minParagraphs"`
}

// BroadcastConfig controls optional radio-script generation.
type BroadcastConfig struct {
	Enabled         bool    `yaml:"enabled"`
	OutputDir       string  `yaml:"outputDir"`
	DurationMinutes float64 `yaml:"durationMinutes"`
	WordsPerMinute  int     `yaml:"wordsPerMinute"`
}

// TraceConfig controls model-call tracing.
type TraceConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Load reads .env, then YAML configuration (if present), and applies
// environment overrides on top.
func Load() Config {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(marketauxTokenEnv); v != "" {
		c.News.MarketAux.APIToken = v
	}
	if v := os.Getenv(fmpKeyEnv); v != "" {
		c.News.FMP.APIKey = v
	}
	if v := os.Getenv(finnhubKeyEnv); v != "" {
		c.News.Finnhub.APIKey = v
	}

	if v := os.Getenv(ollamaBaseURLEnv); v != "" {
		c.Ollama.BaseURL = v
	}
	if v := os.Getenv(ollamaModelEnv); v != "" {
		c.Ollama.Model = v
	}

	if v := os.Getenv(smtpHostEnv); v != "" {
		c.Email.Host = v
	}
	if v := os.Getenv(smtpUserEnv); v != "" {
		c.Email.User = v
	}
	if v := os.Getenv(smtpPasswordEnv); v != "" {
		c.Email.Password = v
	}
	if v := os.Getenv(emailFromEnv); v != "" {
		c.Email.From = v
	}
	if v := os.Getenv(emailRecipientsEnv); v != "" {
		c.Email.Recipients = splitList(v)
	}
}

func (c *Config) bindTimezone() {
	tz := c.Scheduler.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Scheduler.location = loc
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if len(override.News.Providers) > 0 {
		base.News.Providers = override.News.Providers
	}
	if override.News.Limit > 0 {
		base.News.Limit = override.News.Limit
	}
	if override.News.MarketAux.BaseURL != "" {
		base.News.MarketAux.BaseURL = override.News.MarketAux.BaseURL
	}
	if override.News.MarketAux.APIToken != "" {
		base.News.MarketAux.APIToken = override.News.MarketAux.APIToken
	}
	if override.News.FMP.BaseURL != "" {
		base.News.FMP.BaseURL = override.News.FMP.BaseURL
	}
	if override.News.FMP.APIKey != "" {
		base.News.FMP.APIKey = override.News.FMP.APIKey
	}
	if override.News.Finnhub.APIKey != "" {
		base.News.Finnhub.APIKey = override.News.Finnhub.APIKey
	}
	if len(override.News.Feeds) > 0 {
		base.News.Feeds = override.News.Feeds
	}

	if override.Ollama.BaseURL != "" {
		base.Ollama.BaseURL = override.Ollama.BaseURL
	}
	if override.Ollama.Model != "" {
		base.Ollama.Model = override.Ollama.Model
	}

	if override.Email.Host != "" {
		base.Email.Host = override.Email.Host
	}
	if override.Email.Port > 0 {
		base.Email.Port = override.Email.Port
	}
	if override.Email.User != "" {
		base.Email.User = override.Email.User
	}
	if override.Email.Password != "" {
		base.Email.Password = override.Email.Password
	}
	if override.Email.From != "" {
		base.Email.From = override.Email.From
	}
	if len(override.Email.Recipients) > 0 {
		base.Email.Recipients = override.Email.Recipients
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Scheduler.CronExpression != "" {
		base.Scheduler.CronExpression = override.Scheduler.CronExpression
	}
	if override.Scheduler.Timezone != "" {
		base.Scheduler.Timezone = override.Scheduler.Timezone
	}

	if override.Digest.CharBudget > 0 {
		base.Digest.CharBudget = override.Digest.CharBudget
	}
	if override.Digest.MinParagraphs > 0 {
		base.Digest.MinParagraphs = override.Digest.MinParagraphs
	}

	if override.Broadcast.Enabled {
		base.Broadcast.Enabled = true
	}
	if override.Broadcast.OutputDir != "" {
		base.Broadcast.OutputDir = override.Broadcast.OutputDir
	}
	if override.Broadcast.DurationMinutes > 0 {
		base.Broadcast.DurationMinutes = override.Broadcast.DurationMinutes
	}
	if override.Broadcast.WordsPerMinute > 0 {
		base.Broadcast.WordsPerMinute = override.Broadcast.WordsPerMinute
	}

	if override.Trace.Enabled {
		base.Trace.Enabled = true
	}
	if override.Trace.Dir != "" {
		base.Trace.Dir = override.Trace.Dir
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		News: NewsConfig{
			Providers: []string{"marketaux", "rss"},
			Limit:     20,
			Feeds: []string{
				"https://feeds.content.dowjones.io/public/rss/mw_topstories",
			},
		},
		Ollama:    OllamaConfig{BaseURL: "http://localhost:11434", Model: "llama3"},
		Email:     EmailConfig{Host: "smtp.gmail.com", Port: 587},
		Database:  DatabaseConfig{DSN: ""},
		Scheduler: SchedulerConfig{CronExpression: "0 7 * * *", Timezone: defaultTimezone, location: tz},
		Digest:    DigestConfig{CharBudget: 4000, MinParagraphs: 3},
		Broadcast: BroadcastConfig{
			OutputDir:       "broadcasts",
			DurationMinutes: 2.0,
			WordsPerMinute:  150,
		},
		Trace: TraceConfig{Dir: "traces"},
	}
}
