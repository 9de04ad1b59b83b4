package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/portfolio/internal/server/config"
	"github.com/dmitrijs2005/portfolio/internal/server/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *services.UserService
	cfg   *config.Config
}

func NewAuthHandler(users *services.UserService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// setAuthCookie mirrors the token lifetime so browser sessions and the
// token itself expire together. Cross-site frontends need SameSite=None,
// which browsers only accept over HTTPS, so that mode is production-only.
func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	if h.cfg.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(authCookieName, token, int(h.cfg.TokenValidityDuration.Seconds()), "/", "", h.cfg.IsProduction(), true)
}

func (h *AuthHandler) clearAuthCookie(c *gin.Context) {
	if h.cfg.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(authCookieName, "", -1, "/", "", h.cfg.IsProduction(), true)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	user, token, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	user, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
}

// Logout only clears the cookie. Issued tokens stay valid until they
// expire, so clients must also drop any copy they stored themselves.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearAuthCookie(c)
	respondMessage(c, http.StatusOK, "Logged out successfully")
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
