package config

const (
	DefaultServerAddr   = ":8080"
	DefaultDBPort       = 5432
	DefaultSSLMode      = "disable"
	DefaultMaxOpenConns = 10
	DefaultMaxIdleConns = 5
	DefaultRedisAddr    = "localhost:6379"
	DefaultKafkaTopic   = "transaction_applied"
)
