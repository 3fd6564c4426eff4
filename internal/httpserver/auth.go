package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopapi/internal/domain"
	authsvc "shopapi/internal/service/auth"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType"`
	ExpiresIn   int         `json:"expiresIn"`
	User        domain.User `json:"user"`
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	session, err := h.deps.AuthSvc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			respondErrorCode(c, http.StatusUnauthorized, codeUnauthorized, "Invalid email or password")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{
		AccessToken: session.Token,
		TokenType:   "Bearer",
		ExpiresIn:   session.ExpiresIn,
		User:        session.User,
	})
}

func (h *handlers) logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		h.deps.AuthSvc.Logout(token)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *handlers) me(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		respondErrorCode(c, http.StatusUnauthorized, codeUnauthorized, "Invalid or expired token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
