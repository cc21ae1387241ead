package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"
	IDENTITY_KEY   = "username"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":5000"

	//uploads
	UploadDirName  = "uploads"
	MaxUploadSize  = 32 << 20 //32mb
	PDFPageTimeout = 10 * time.Second

	//gemini - the vision model transcribes document pages, the text model
	//is the name/gender oracle
	GeminiModelName       = "gemini-2.5-flash-lite-preview-09-2025"
	GeminiVisionModelName = "gemini-2.5-flash-lite-preview-09-2025"
	OracleTimeout         = 10 * time.Second

	//auth
	JWTIssuer   = "data-diggers"
	JWTAudience = "data-diggers-api"
	TokenTTL    = 24 * time.Hour

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisProfileStore = 0
	RedisUserStore    = 1
)

// secrets come from the environment, never from this file
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func JWTSigningKey() string {
	key := os.Getenv("JWT_SECRET_KEY")
	if key == "" {
		key = "default-secret-key"
	}
	return key
}
