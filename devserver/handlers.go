package devserver

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"spana-admin/models"
	"spana-admin/utils"
)

const (
	otpPrefix = "otp:"
	otpTTL    = 5 * time.Minute
	tokenTTL  = 24 * time.Hour
)

func otpKey(email string) string {
	return otpPrefix + strings.ToLower(email)
}

// generateOTP produces a numeric one-time code of the given length.
func generateOTP(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	digits := make([]byte, length)
	for i, b := range buf {
		digits[i] = '0' + b%10
	}
	return string(digits), nil
}

// loginHandler checks the admin credentials and issues an OTP. The code is
// cached with a TTL and written to the server log in place of a real
// delivery channel.
func (s *Server) loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != s.adminEmail ||
		bcrypt.CompareHashAndPassword(s.adminPassHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	otp, err := generateOTP(6)
	if err != nil {
		s.logger.Error("Failed to generate OTP", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate OTP"})
		return
	}
	if err := s.rdb.Set(c.Request.Context(), otpKey(email), otp, otpTTL).Err(); err != nil {
		s.logger.Error("Failed to cache OTP", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate OTP"})
		return
	}
	s.logger.Sugar().Infof("OTP for %s: %s (expires in %s)", email, otp, otpTTL)

	c.JSON(http.StatusOK, gin.H{
		"message":     "OTP sent",
		"requiresOTP": true,
		"email":       email,
		"nextStep":    "verify-otp",
	})
}

// verifyOTPHandler checks the submitted code against the cached one and
// issues the bearer token.
func (s *Server) verifyOTPHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	stored, err := s.rdb.Get(c.Request.Context(), otpKey(email)).Result()
	if err == redis.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "OTP expired or not found"})
		return
	}
	if err != nil {
		s.logger.Error("Failed to read cached OTP", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify OTP"})
		return
	}
	if stored != req.OTP {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OTP"})
		return
	}
	// One shot: a verified code cannot be replayed.
	s.rdb.Del(c.Request.Context(), otpKey(email))

	token, err := utils.GenerateToken("admin", email, tokenTTL)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"token": token,
			"user": gin.H{
				"id":    "admin",
				"email": email,
				"name":  "Spana Admin",
			},
		},
	})
}

// The collection handlers deliberately answer with the different envelope
// conventions the production API has been observed to use.

func (s *Server) listUsersHandler(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": s.users})
}

func (s *Server) listBookingsHandler(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"bookings": s.bookings})
}

func (s *Server) listServicesHandler(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.services)
}

func (s *Server) createServiceHandler(c *gin.Context) {
	var req struct {
		Title       string  `json:"title" binding:"required"`
		Description string  `json:"description" binding:"required"`
		Price       float64 `json:"price" binding:"required,gt=0"`
		MediaURL    string  `json:"mediaUrl"`
		Status      string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "active"
	}
	svc := models.Service{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		MediaURL:    req.MediaURL,
		Status:      status,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.services = append(s.services, svc)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"message": "Service created", "data": svc})
}

func (s *Server) deleteServiceHandler(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Service deleted", "id": id})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
}
