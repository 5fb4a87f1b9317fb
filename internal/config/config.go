package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// Config holds the server settings, each bound to an environment variable
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	JWTSecret string

	MailgunDomain string
	MailgunAPIKey string
	MailFrom      string
	AdminEmail    string

	LogLevel string

	LinkRetryAttempts int
	ReconcileInterval time.Duration
	FanoutQueueSize   int
	EmailConcurrency  int
	SubscriberBuffer  int
}

// Flags returns the serve command flags
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "port", Value: "8080", EnvVars: []string{"PORT"}, Usage: "port to run the API on"},
		&cli.StringFlag{Name: "mongo_uri", Value: "", EnvVars: []string{"MONGO_URI"}, Usage: "MongoDB connection string, empty runs on the in-memory store"},
		&cli.StringFlag{Name: "mongo_db", Value: "auction", EnvVars: []string{"MONGO_DB"}, Usage: "MongoDB database name"},

		&cli.StringFlag{Name: "jwt_secret", Value: "", EnvVars: []string{"JWT_SECRET"}, Usage: "HS256 secret for access tokens, empty disables identity checks"},

		&cli.StringFlag{Name: "mailgun_domain", Value: "", EnvVars: []string{"MAILGUN_DOMAIN"}, Usage: "Domain used for MailGun"},
		&cli.StringFlag{Name: "mailgun_api_key", Value: "", EnvVars: []string{"MAILGUN_API_KEY"}, Usage: "MailGun API key, empty disables email"},
		&cli.StringFlag{Name: "mail_from", Value: "noreply@moawin-usa.org", EnvVars: []string{"MAIL_FROM"}, Usage: "Address bid emails are sent from"},
		&cli.StringFlag{Name: "admin_email", Value: "", EnvVars: []string{"ADMIN_EMAIL"}, Usage: "Address notified of every accepted bid"},

		&cli.StringFlag{Name: "log_level", Value: "info", EnvVars: []string{"LOG_LEVEL"}, Usage: "logrus level (debug, info, warn, error)"},

		&cli.IntFlag{Name: "link_retry_attempts", Value: 3, EnvVars: []string{"LINK_RETRY_ATTEMPTS"}, Usage: "attempts to link a committed bid to its product"},
		&cli.DurationFlag{Name: "reconcile_interval", Value: time.Minute, EnvVars: []string{"RECONCILE_INTERVAL"}, Usage: "how often unlinked bids are repaired"},
		&cli.IntFlag{Name: "fanout_queue_size", Value: 1024, EnvVars: []string{"FANOUT_QUEUE_SIZE"}, Usage: "accepted bid events buffered for fan-out"},
		&cli.IntFlag{Name: "email_concurrency", Value: 8, EnvVars: []string{"EMAIL_CONCURRENCY"}, Usage: "emails sent in parallel"},
		&cli.IntFlag{Name: "subscriber_buffer", Value: 32, EnvVars: []string{"SUBSCRIBER_BUFFER"}, Usage: "messages buffered per live observer"},
	}
}

// FromContext reads the parsed flags
func FromContext(c *cli.Context) (Config, error) {
	cfg := Config{
		Port:              c.String("port"),
		MongoURI:          c.String("mongo_uri"),
		MongoDB:           c.String("mongo_db"),
		JWTSecret:         c.String("jwt_secret"),
		MailgunDomain:     c.String("mailgun_domain"),
		MailgunAPIKey:     c.String("mailgun_api_key"),
		MailFrom:          c.String("mail_from"),
		AdminEmail:        c.String("admin_email"),
		LogLevel:          c.String("log_level"),
		LinkRetryAttempts: c.Int("link_retry_attempts"),
		ReconcileInterval: c.Duration("reconcile_interval"),
		FanoutQueueSize:   c.Int("fanout_queue_size"),
		EmailConcurrency:  c.Int("email_concurrency"),
		SubscriberBuffer:  c.Int("subscriber_buffer"),
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the server cannot run with
func (c Config) Validate() error {
	switch {
	case c.Port == "":
		return errors.New("config: port is required")
	case c.LinkRetryAttempts < 1:
		return fmt.Errorf("config: link_retry_attempts must be at least 1, got %d", c.LinkRetryAttempts)
	case c.ReconcileInterval <= 0:
		return fmt.Errorf("config: reconcile_interval must be positive, got %s", c.ReconcileInterval)
	case c.FanoutQueueSize < 1 || c.EmailConcurrency < 1 || c.SubscriberBuffer < 1:
		return errors.New("config: fan-out sizes must be at least 1")
	case c.MongoURI != "" && c.MongoDB == "":
		return errors.New("config: mongo_db is required with mongo_uri")
	}
	return nil
}

// MailEnabled reports whether Mailgun credentials are present
func (c Config) MailEnabled() bool {
	return c.MailgunDomain != "" && c.MailgunAPIKey != ""
}

// Addr is the listen address
func (c Config) Addr() string {
	return ":" + c.Port
}

// LoadDotEnv loads variables from the given files into the environment. Missing
// files are ignored and variables already set are never overridden.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return nil
}
