package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App            AppConfig
	DB             DBConfig
	Redis          RedisConfig
	JWT            JWTConfig
	Password       PasswordConfig
	Admin          AdminConfig
	LoginRateLimit LoginRateLimitConfig
	FeatureFlags   FeatureFlagsConfig
	GCP            GCPConfig
	GCS            GCSConfig
	PubSub         PubSubConfig
	Storefront     StorefrontConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	if err := cfg.Storefront.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STOREFRONT_DB_DSN"`
	Driver string `envconfig:"STOREFRONT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"STOREFRONT_DB_HOST"`
	LegacyPort     int    `envconfig:"STOREFRONT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STOREFRONT_DB_USER"`
	LegacyPassword string `envconfig:"STOREFRONT_DB_PASSWORD"`
	LegacyName     string `envconfig:"STOREFRONT_DB_NAME"`
	LegacySSLMode  string `envconfig:"STOREFRONT_DB_SSLMODE" default:"disable"`

	SQLitePath string `envconfig:"STOREFRONT_SQLITE_PATH" default:"storefront.db"`

	MaxOpenConns    int           `envconfig:"STOREFRONT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STOREFRONT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"STOREFRONT_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"STOREFRONT_JWT_ISSUER" default:"emberwick"`
	ExpirationMinutes int    `envconfig:"STOREFRONT_JWT_EXPIRATION_MINUTES" default:"120"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"STOREFRONT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"STOREFRONT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"STOREFRONT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"STOREFRONT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"STOREFRONT_ARGON_KEY_LEN" default:"32"`
}

// AdminConfig describes the single back-office account allowed to manage the catalog.
type AdminConfig struct {
	Email        string `envconfig:"STOREFRONT_ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"STOREFRONT_ADMIN_PASSWORD_HASH" required:"true"`
}

type LoginRateLimitConfig struct {
	Window     time.Duration `envconfig:"STOREFRONT_LOGIN_RATE_LIMIT_WINDOW" default:"1m"`
	EmailLimit int           `envconfig:"STOREFRONT_LOGIN_RATE_LIMIT_EMAIL_LIMIT" default:"5"`
	IPLimit    int           `envconfig:"STOREFRONT_LOGIN_RATE_LIMIT_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"STOREFRONT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"STOREFRONT_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"STOREFRONT_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"STOREFRONT_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"STOREFRONT_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName    string `envconfig:"STOREFRONT_GCS_BUCKET_NAME"`
	PublicBaseURL string `envconfig:"STOREFRONT_GCS_PUBLIC_BASE_URL" default:"https://storage.googleapis.com"`
	ObjectPrefix  string `envconfig:"STOREFRONT_GCS_OBJECT_PREFIX" default:"products"`
}

type PubSubConfig struct {
	OrdersTopic string `envconfig:"STOREFRONT_PUBSUB_ORDERS_TOPIC"`
}

type StorefrontConfig struct {
	PublicBaseURL         string        `envconfig:"STOREFRONT_PUBLIC_BASE_URL" default:"http://localhost:3000"`
	ShippingFee           string        `envconfig:"STOREFRONT_SHIPPING_FEE" default:"5.99"`
	FreeShippingThreshold string        `envconfig:"STOREFRONT_FREE_SHIPPING_THRESHOLD" default:"50"`
	LedgerTTL             time.Duration `envconfig:"STOREFRONT_LEDGER_TTL" default:"720h"`
	MaxImageMB            int           `envconfig:"STOREFRONT_MAX_IMAGE_MB" default:"10"`
	CORSOrigins           []string      `envconfig:"STOREFRONT_CORS_ORIGINS" default:"http://localhost:3000"`
}

// ShippingFeeAmount parses the configured flat shipping fee.
func (s StorefrontConfig) ShippingFeeAmount() decimal.Decimal {
	return decimal.RequireFromString(s.ShippingFee)
}

// FreeShippingThresholdAmount parses the subtotal above which shipping is free.
func (s StorefrontConfig) FreeShippingThresholdAmount() decimal.Decimal {
	return decimal.RequireFromString(s.FreeShippingThreshold)
}

// MaxImageBytes returns the image upload cap in bytes.
func (s StorefrontConfig) MaxImageBytes() int64 {
	if s.MaxImageMB <= 0 {
		return 0
	}
	return int64(s.MaxImageMB) << 20
}

func (s StorefrontConfig) validate() error {
	fee, err := decimal.NewFromString(s.ShippingFee)
	if err != nil {
		return fmt.Errorf("%s: %w", EnvShippingFee, err)
	}
	if fee.IsNegative() {
		return fmt.Errorf("%s must be non-negative", EnvShippingFee)
	}
	threshold, err := decimal.NewFromString(s.FreeShippingThreshold)
	if err != nil {
		return fmt.Errorf("%s: %w", EnvFreeShippingThreshold, err)
	}
	if threshold.IsNegative() {
		return fmt.Errorf("%s must be non-negative", EnvFreeShippingThreshold)
	}
	return nil
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if useSQLite {
		db.Driver = DriverSQLite
		if db.DSN == "" {
			db.DSN = db.SQLitePath
		}
		return nil
	}
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
