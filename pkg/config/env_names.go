package config

// EnvPrefix is passed to envconfig; each field carries its full variable
// name in its tag, so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv     = "MKULIMA_APP_ENV"
	EnvPort       = "MKULIMA_APP_PORT"
	EnvDBDSN      = "MKULIMA_DB_DSN"
	EnvDBHost     = "MKULIMA_DB_HOST"
	EnvDBUser     = "MKULIMA_DB_USER"
	EnvDBName     = "MKULIMA_DB_NAME"
	EnvRedisURL   = "MKULIMA_REDIS_URL"
	EnvJWTSecret  = "MKULIMA_JWT_SECRET"
	EnvJWTIssuer  = "MKULIMA_JWT_ISSUER"
	EnvJWTExpMins = "MKULIMA_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
