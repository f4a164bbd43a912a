package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"prodea_gateway/api"
	"prodea_gateway/board"
	"prodea_gateway/middleware"
	"prodea_gateway/models"
	"prodea_gateway/session"
)

type AuthHandler struct {
	client   *api.Client
	sessions *session.Store
	boards   *board.Manager
}

func NewAuthHandler(client *api.Client, sessions *session.Store, boards *board.Manager) *AuthHandler {
	return &AuthHandler{client: client, sessions: sessions, boards: boards}
}

// Login forwards the credentials to the backend, stores the returned
// token and profile fields under the session, and invalidates the
// session's board state so the next view starts from a fresh fetch.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.client.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		upstreamError(c, "Login failed", err)
		return
	}

	sid := middleware.SessionID(c)
	rec := session.Record{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		UserID:      resp.UserID,
		Username:    resp.Username,
		Email:       resp.Email,
	}
	if err := h.sessions.Put(sid, rec); err != nil {
		log.Printf("Error storing session %s: %v", sid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store session"})
		return
	}
	h.boards.Drop(sid)

	c.JSON(http.StatusOK, resp)
}

// Register validates locally before any request goes out: mismatched or
// short passwords never reach the backend.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}

	resp, err := h.client.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		upstreamError(c, "Registration failed", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sid := middleware.SessionID(c)
	if err := h.sessions.Delete(sid); err != nil {
		log.Printf("Error deleting session %s: %v", sid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}
	h.boards.Drop(sid)

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// SessionInfo reports the auth state the way the views decide it: a
// stored access token means authenticated, anything else means
// anonymous. Token claims are decoded unverified, only to surface the
// expiry.
func (h *AuthHandler) SessionInfo(c *gin.Context) {
	rec, ok := middleware.Record(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	resp := gin.H{
		"authenticated": true,
		"user_id":       rec.UserID,
		"username":      rec.Username,
		"email":         rec.Email,
	}

	claims := &models.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rec.AccessToken, claims); err == nil {
		if claims.ExpiresAt != nil {
			resp["expires_at"] = claims.ExpiresAt.Time
		}
	} else {
		log.Printf("Error decoding token claims: %v", err)
	}

	c.JSON(http.StatusOK, resp)
}
