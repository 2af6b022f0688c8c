package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, TTLs, poll budgets)
// -----------------------------------------------------------------------------

const (
	minCodeTTL = time.Minute
	maxCodeTTL = 30 * time.Minute
)

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Verification VerificationConfig
	Capture      CaptureConfig
	Payment      PaymentConfig
	Jobs         JobsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:""`
}

// Codes are compared by keyed digest; rotating CODE_DIGEST_KEY invalidates all open codes.
type VerificationConfig struct {
	CodeTTL           time.Duration `envconfig:"CODE_TTL" default:"10m"`
	DigestKey         string        `envconfig:"CODE_DIGEST_KEY" required:"true"`
	MaxFailedAttempts int           `envconfig:"MAX_FAILED_ATTEMPTS" default:"5"`
	Lockout           time.Duration `envconfig:"ATTEMPT_LOCKOUT" default:"15m"`
}

type CaptureConfig struct {
	PollInterval time.Duration `envconfig:"CAPTURE_POLL_INTERVAL" default:"2s"`
	PollAttempts int           `envconfig:"CAPTURE_POLL_ATTEMPTS" default:"15"`
}

type PaymentConfig struct {
	// "http" talks to the Transaction service, "stub" keeps transactions in memory.
	Mode          string        `envconfig:"PAYMENT_MODE" default:"http"`
	BaseURL       string        `envconfig:"PAYMENT_BASE_URL" default:"http://localhost:9090"`
	APIKey        string        `envconfig:"PAYMENT_API_KEY" default:""`
	Timeout       time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"5s"`
	StatusCache   int           `envconfig:"PAYMENT_STATUS_CACHE_SIZE" default:"1024"`
	WebhookSecret string        `envconfig:"PAYMENT_WEBHOOK_SECRET" default:""`
}

type JobsConfig struct {
	Enabled              bool          `envconfig:"JOBS_ENABLED" default:"true"`
	CaptureDispatchSpec  string        `envconfig:"JOB_CAPTURE_DISPATCH_SPEC" default:"@every 15s"`
	CaptureReconcileSpec string        `envconfig:"JOB_CAPTURE_RECONCILE_SPEC" default:"@every 1m"`
	ExpirySweepSpec      string        `envconfig:"JOB_EXPIRY_SWEEP_SPEC" default:"*/5 * * * *"`
	MeetupExpiryGrace    time.Duration `envconfig:"MEETUP_EXPIRY_GRACE" default:"24h"`
	BatchSize            int32         `envconfig:"JOB_BATCH_SIZE" default:"50"`
	MaxCaptureAttempts   int32         `envconfig:"CAPTURE_MAX_ATTEMPTS" default:"10"`
	CaptureClaimLease    time.Duration `envconfig:"CAPTURE_CLAIM_LEASE" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	if c.Verification.CodeTTL < minCodeTTL || c.Verification.CodeTTL > maxCodeTTL {
		return fmt.Errorf("CODE_TTL must be between %s and %s, got %s", minCodeTTL, maxCodeTTL, c.Verification.CodeTTL)
	}
	if c.Verification.MaxFailedAttempts < 1 {
		return fmt.Errorf("MAX_FAILED_ATTEMPTS must be positive, got %d", c.Verification.MaxFailedAttempts)
	}
	if c.Verification.Lockout <= 0 {
		return fmt.Errorf("ATTEMPT_LOCKOUT must be positive, got %s", c.Verification.Lockout)
	}
	if len(c.Verification.DigestKey) < 16 {
		return fmt.Errorf("CODE_DIGEST_KEY must be at least 16 bytes")
	}
	if c.Jobs.BatchSize <= 0 || c.Jobs.MaxCaptureAttempts <= 0 {
		return fmt.Errorf("JOB_BATCH_SIZE and CAPTURE_MAX_ATTEMPTS must be positive")
	}
	if c.Capture.PollInterval <= 0 || c.Capture.PollAttempts <= 0 {
		return fmt.Errorf("capture poll interval and attempts must be positive")
	}
	switch c.Payment.Mode {
	case "http", "stub":
	default:
		return fmt.Errorf("PAYMENT_MODE must be http or stub, got %q", c.Payment.Mode)
	}
	return nil
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-meetup-capture",
		},
		Verification: VerificationConfig{
			CodeTTL:           10 * time.Minute,
			DigestKey:         "test-digest-key-0123456789",
			MaxFailedAttempts: 5,
			Lockout:           15 * time.Minute,
		},
		Capture: CaptureConfig{
			PollInterval: 10 * time.Millisecond,
			PollAttempts: 15,
		},
		Payment: PaymentConfig{
			Mode:          "stub",
			Timeout:       time.Second,
			StatusCache:   128,
			WebhookSecret: "test-webhook-secret",
		},
		Jobs: JobsConfig{
			Enabled:            false,
			MeetupExpiryGrace:  24 * time.Hour,
			BatchSize:          50,
			MaxCaptureAttempts: 10,
			CaptureClaimLease:  time.Minute,
		},
	}
}
