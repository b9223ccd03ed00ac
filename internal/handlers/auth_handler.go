package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/chair-scheduler/internal/config"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/middleware"
)

type AuthHandler struct {
	config *config.Config
	now    func() time.Time
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg, now: time.Now}
}

// --------- Requests ---------

type LoginRequest struct {
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if h.config.AuthEnabled() {
		if err := bcrypt.CompareHashAndPassword(
			[]byte(h.config.OperatorPasswordHash),
			[]byte(req.Password),
		); err != nil {
			httperr.Unauthorized(c, "invalid_credentials", "Senha inválida.")
			return
		}
	}

	token, expires, err := h.generateToken()
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expires,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken() (string, time.Time, error) {
	now := h.now()
	exp := now.Add(24 * time.Hour)

	claims := jwt.MapClaims{
		"sub": middleware.OperatorSubject,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	return signed, exp, err
}
