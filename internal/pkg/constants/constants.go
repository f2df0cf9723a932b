package constants

// viper keys
const (
	ViperAddrKey      = "addr"
	ViperDSNKey       = "dsn"
	ViperSecretKey    = "jwt_secret"
	ViperAPIUserKey   = "api_user"
	ViperAPIPassKey   = "api_pass"
	ViperCORSOrigin   = "cors_origin"
	ViperLogLevelKey  = "log_level"
	ViperSeedDemoData = "seed_demo_data"
)

// context keys
const (
	CtxKeyUserID    = "user_id"
	CtxKeyRequestID = "request_id"
)
