package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/devconnector/backend/internal/api"
	"github.com/devconnector/backend/internal/middleware"
	"github.com/devconnector/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	logger *zap.Logger
}

// New assembles the gin engine with all middleware and routes.
func New(db *gorm.DB, auth *service.AuthService, profile *service.ProfileService, logger *zap.Logger) *Server {
	router := gin.Default()
	router.Use(middleware.CORS())

	api.RegisterRoutes(router, auth, profile, logger)

	return &Server{
		router: router,
		db:     db,
		logger: logger,
	}
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start begins serving on the given address. It blocks until the listener
// fails or the server is shut down.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	s.logger.Info("server listening", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
