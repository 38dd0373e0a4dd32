package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Share         ShareConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DORMPACK_APP_ENV" required:"true"`
	Port         string `envconfig:"DORMPACK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DORMPACK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DORMPACK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DORMPACK_DB_DSN"`
	Driver string `envconfig:"DORMPACK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"DORMPACK_DB_HOST"`
	LegacyPort     int    `envconfig:"DORMPACK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"DORMPACK_DB_USER"`
	LegacyPassword string `envconfig:"DORMPACK_DB_PASSWORD"`
	LegacyName     string `envconfig:"DORMPACK_DB_NAME"`
	LegacySSLMode  string `envconfig:"DORMPACK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DORMPACK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DORMPACK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DORMPACK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DORMPACK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"DORMPACK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"DORMPACK_REDIS_ADDR"`
	Password     string        `envconfig:"DORMPACK_REDIS_PASSWORD"`
	DB           int           `envconfig:"DORMPACK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"DORMPACK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"DORMPACK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DORMPACK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"DORMPACK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"DORMPACK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"DORMPACK_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"DORMPACK_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"DORMPACK_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"DORMPACK_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"DORMPACK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"DORMPACK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"DORMPACK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"DORMPACK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"DORMPACK_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"DORMPACK_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"DORMPACK_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"DORMPACK_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"DORMPACK_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"DORMPACK_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"DORMPACK_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"DORMPACK_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"DORMPACK_AUTO_MIGRATE" default:"false"`
}

// ShareConfig controls how shared-list links are minted.
type ShareConfig struct {
	// BaseURL is the public web origin used when building share links,
	// e.g. https://dormpack.app.
	BaseURL string `envconfig:"DORMPACK_SHARE_BASE_URL" default:"http://localhost:3000"`
	// TokenLength is the number of characters in a share token.
	TokenLength int `envconfig:"DORMPACK_SHARE_TOKEN_LENGTH" default:"8"`
}

func (db *DBConfig) ensureDSN() error {
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
