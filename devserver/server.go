// Package devserver runs a local stand-in for the remote Spana admin API,
// close enough for the dashboard's full login → OTP → fetch cycle: OTPs
// live in an embedded redis with a short TTL, tokens are HS256 JWTs, and
// the collections are seeded fixtures held in memory.
package devserver

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"spana-admin/config"
	"spana-admin/models"
)

// Server is the dev API instance.
type Server struct {
	logger *zap.Logger
	rdb    *redis.Client
	mini   *miniredis.Miniredis
	router *gin.Engine

	adminEmail    string
	adminPassHash []byte

	mu       sync.Mutex
	users    []models.User
	bookings []models.Booking
	services []models.Service
	nextID   int
}

// New starts the embedded redis, seeds the fixture data and wires the
// router. Close must be called when done.
func New(logger *zap.Logger) (*Server, error) {
	mini, err := miniredis.Run()
	if err != nil {
		return nil, fmt.Errorf("start embedded redis: %w", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mini.Addr()})

	email := config.AppConfig.AdminEmail
	if email == "" {
		email = "admin@spana.local"
	}
	password := config.AppConfig.AdminPassword
	if password == "" {
		password = "spana-admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		mini.Close()
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	s := &Server{
		logger:        logger,
		rdb:           rdb,
		mini:          mini,
		adminEmail:    strings.ToLower(email),
		adminPassHash: hash,
	}
	s.seed()
	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(rateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	// The dashboard runs on its own origin, so cross-origin requests must
	// be allowed, auth header included.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "Accept", "X-Request-ID"},
	}))

	auth := router.Group("/auth")
	auth.POST("/login", s.loginHandler)
	auth.POST("/verify-otp", s.verifyOTPHandler)

	admin := router.Group("/admin")
	admin.Use(jwtAuthAdminMiddleware())
	admin.GET("/users", s.listUsersHandler)
	admin.GET("/bookings", s.listBookingsHandler)
	admin.GET("/services", s.listServicesHandler)
	admin.POST("/services", s.createServiceHandler)
	admin.DELETE("/services/:id", s.deleteServiceHandler)

	return router
}

// Router exposes the gin engine, mainly so tests can mount it on httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves on the given address until the process is stopped.
func (s *Server) Run(addr string) error {
	s.logger.Sugar().Infof("dev server listening on %s (admin: %s)", addr, s.adminEmail)
	return s.router.Run(addr)
}

// Close releases the embedded redis.
func (s *Server) Close() {
	if err := s.rdb.Close(); err != nil {
		s.logger.Warn("failed to close redis client", zap.Error(err))
	}
	s.mini.Close()
}
