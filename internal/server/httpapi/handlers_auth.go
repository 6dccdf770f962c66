package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cantina-pos/internal/common"
	"cantina-pos/internal/server/models"
)

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleRegister creates the account and then logs it in, so the response
// carries a usable token while the registration itself stays token-free.
func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx := c.Request.Context()

	user, err := s.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorDuplicateEmail):
			respondError(c, http.StatusBadRequest, "email already registered")
		case errors.Is(err, common.ErrorValidation):
			respondError(c, http.StatusBadRequest, "name, email and password are required")
		default:
			s.logger.Error(ctx, "register failed", "error", err)
			respondError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	_, token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Error(ctx, "post-register login failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx := c.Request.Context()

	if s.limiter != nil {
		if err := s.limiter.Allow(ctx, req.Email, c.ClientIP()); err != nil {
			if errors.Is(err, common.ErrorTooManyAttempts) {
				respondError(c, http.StatusTooManyRequests, "too many login attempts, try again later")
				return
			}
			// limiter trouble must not lock users out
			s.logger.Warn(ctx, "login limiter unavailable", "error", err)
		}
	}

	user, token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		s.logger.Error(ctx, "login failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

// handleVerify and handleProfile both return the summary the guard already
// resolved from the store.
func (s *Server) handleVerify(c *gin.Context) {
	c.JSON(http.StatusOK, s.currentUser(c))
}

func (s *Server) handleProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.currentUser(c))
}

func (s *Server) currentUser(c *gin.Context) *models.UserSummary {
	v, _ := c.Get(currentUserKey)
	u, _ := v.(*models.UserSummary)
	return u
}
