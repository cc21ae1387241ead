// @title           Data Diggers API
// @version         1.0
// @description     Identity-document upload, OCR field extraction and profile reconciliation
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ajinkya1806/Data-Diggers/internal/auth"
	"github.com/ajinkya1806/Data-Diggers/internal/config"
	"github.com/ajinkya1806/Data-Diggers/internal/data/store"
	"github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"
	"github.com/ajinkya1806/Data-Diggers/internal/domain/userModel"
	"github.com/ajinkya1806/Data-Diggers/internal/enrich"
	enrichGemini "github.com/ajinkya1806/Data-Diggers/internal/enrich/gemini"
	"github.com/ajinkya1806/Data-Diggers/internal/extract"
	"github.com/ajinkya1806/Data-Diggers/internal/handlers"
	"github.com/ajinkya1806/Data-Diggers/internal/middleware"
	"github.com/ajinkya1806/Data-Diggers/internal/ocr"
	ocrGemini "github.com/ajinkya1806/Data-Diggers/internal/ocr/gemini"
	"github.com/ajinkya1806/Data-Diggers/internal/pipeline"
	"github.com/ajinkya1806/Data-Diggers/internal/reconcile"
	"github.com/ajinkya1806/Data-Diggers/internal/server"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//stores, with in-memory fallback when redis is offline
	var profileStore docModel.ProfileStore
	if redisProfiles := store.GetRedisProfileStore(serviceContext); redisProfiles != nil {
		profileStore = redisProfiles
	} else {
		logger.Error("Redis profile store is offline, falling back to in-memory store")
		profileStore = store.InitInMemoryProfileStore()
	}

	var userStore userModel.UserStore
	if redisUsers := store.GetRedisUserStore(serviceContext); redisUsers != nil {
		userStore = redisUsers
	} else {
		logger.Error("Redis user store is offline, falling back to in-memory store")
		userStore = store.InitInMemoryUserStore()
	}

	//gemini clients - both optional, the pipeline degrades without them
	apikey := config.GeminiAPIKey()
	oracle := enrichGemini.GetGeminiOracle(serviceContext, config.GeminiModelName, apikey)
	vision := ocrGemini.GetGeminiVision(serviceContext, config.GeminiVisionModelName, apikey)
	if oracle == nil {
		logger.Warn("Text oracle unavailable, names stay raw and PAN gender falls back")
	}
	if vision == nil {
		logger.Warn("Vision client unavailable, image uploads will fail (PDF still works)")
	}

	//assemble the pipeline
	normalizer := enrich.NewNormalizer(oracle)
	extractor := extract.NewExtractor(normalizer)
	engine := reconcile.NewEngine(profileStore)
	reader := ocr.NewReader(vision)
	documentService := pipeline.NewService(reader, extractor, engine)

	jwtService := auth.NewJWTService(config.JWTSigningKey(), config.JWTIssuer, config.JWTAudience)
	middleware.InitAuth(jwtService)
	handlers.InitHandlers(documentService, userStore, jwtService)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
