package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ObjectStoreMemory = "memory"
	ObjectStoreS3     = "s3"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	DatabaseDSN   string `env:"DB_DSN"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"catcollector.db"`

	ObjectStore   string        `env:"OBJECT_STORE" envDefault:"memory"`
	S3BaseURL     string        `env:"S3_BASE_URL" envDefault:"https://s3.us-east-2.amazonaws.com/"`
	S3Bucket      string        `env:"S3_BUCKET" envDefault:"catcollector"`
	S3Region      string        `env:"S3_REGION" envDefault:"us-east-2"`
	S3Endpoint    string        `env:"S3_ENDPOINT"`
	S3AccessKey   string        `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey   string        `env:"S3_SECRET_ACCESS_KEY"`
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT" envDefault:"10s"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`

	// DevAuth habilita X-Debug-User-ID y desactiva la cookie de sesión.
	DevAuth bool `env:"DEV_AUTH" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"cat-collector"`
}

// ParseEnv carga la configuración desde variables de entorno.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load lee .env si existe (opcional en prod) y luego el entorno.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseDSN) == "" {
			errs = append(errs, errors.New("DB_DSN is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver))
	}

	switch c.ObjectStore {
	case ObjectStoreMemory:
	case ObjectStoreS3:
		if strings.TrimSpace(c.S3Bucket) == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for the s3 object store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown OBJECT_STORE %q", c.ObjectStore))
	}

	// Con DEV_AUTH el usuario de X-Debug-User-ID no existe en la tabla users
	// y la FK de cats.owner_user_id lo rechazaría.
	if c.DevAuth && c.StorageDriver != DriverMemory {
		errs = append(errs, fmt.Errorf("DEV_AUTH requires STORAGE_DRIVER=%s, got %q", DriverMemory, c.StorageDriver))
	}
	if !c.DevAuth && len(c.SessionSecret) < 32 {
		errs = append(errs, errors.New("SESSION_SECRET must be at least 32 bytes unless DEV_AUTH is set"))
	}
	if c.UploadTimeout <= 0 {
		errs = append(errs, errors.New("UPLOAD_TIMEOUT must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
