package handlers

import (
	"sync"

	"github.com/ajinkya1806/Data-Diggers/internal/auth"
	"github.com/ajinkya1806/Data-Diggers/internal/domain/userModel"
	"github.com/ajinkya1806/Data-Diggers/internal/pipeline"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

var (
	handlerInstance *DocumentHandler //private singleton
	once            sync.Once
	logRH           *logger_i.Logger
	logAH           *logger_i.Logger
)

type DocumentHandler struct {
	service    pipeline.Service
	userStore  userModel.UserStore
	jwtService *auth.JWTService
}

func InitHandlers(service pipeline.Service, userStore userModel.UserStore, jwtService *auth.JWTService) {
	once.Do(func() {
		handlerInstance = &DocumentHandler{
			service:    service,
			userStore:  userStore,
			jwtService: jwtService,
		}

		logRH = logger_i.NewLogger("RequestHandler")
		logAH = logger_i.NewLogger("AuthHandler")
		logRH.Info("Starting request handlers")
	})
}
