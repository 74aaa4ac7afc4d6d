package config

const (
	EnvPrefix = "STOREFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvAppEnv                = "STOREFRONT_APP_ENV"
	EnvPort                  = "STOREFRONT_APP_PORT"
	EnvDBDSN                 = "STOREFRONT_DB_DSN"
	EnvDBHost                = "STOREFRONT_DB_HOST"
	EnvDBUser                = "STOREFRONT_DB_USER"
	EnvDBName                = "STOREFRONT_DB_NAME"
	EnvUseSQLite             = "STOREFRONT_USE_SQLITE"
	EnvRedisURL              = "STOREFRONT_REDIS_URL"
	EnvJWTSecret             = "STOREFRONT_JWT_SECRET"
	EnvAdminEmail            = "STOREFRONT_ADMIN_EMAIL"
	EnvAdminPasswordHash     = "STOREFRONT_ADMIN_PASSWORD_HASH"
	EnvShippingFee           = "STOREFRONT_SHIPPING_FEE"
	EnvFreeShippingThreshold = "STOREFRONT_FREE_SHIPPING_THRESHOLD"
	EnvLedgerTTL             = "STOREFRONT_LEDGER_TTL"
	EnvGCSBucket             = "STOREFRONT_GCS_BUCKET_NAME"
	EnvPubSubOrdersTopic     = "STOREFRONT_PUBSUB_ORDERS_TOPIC"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
