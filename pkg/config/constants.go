package config

const EnvPrefix = "DORMPACK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv  = "DORMPACK_APP_ENV"
	EnvPort    = "DORMPACK_APP_PORT"
	EnvDBDSN   = "DORMPACK_DB_DSN"
	EnvDBHost  = "DORMPACK_DB_HOST"
	EnvDBUser  = "DORMPACK_DB_USER"
	EnvDBName  = "DORMPACK_DB_NAME"
	EnvDBPort  = "DORMPACK_DB_PORT"
	EnvDBPass  = "DORMPACK_DB_PASSWORD"
	EnvDBSSL   = "DORMPACK_DB_SSLMODE"
	EnvRedisURL = "DORMPACK_REDIS_URL"

	EnvJWTSecret              = "DORMPACK_JWT_SECRET"
	EnvJWTIssuer              = "DORMPACK_JWT_ISSUER"
	EnvJWTExpMins             = "DORMPACK_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "DORMPACK_REFRESH_TOKEN_TTL_MINUTES"

	EnvShareBaseURL = "DORMPACK_SHARE_BASE_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
