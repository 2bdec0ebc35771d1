package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/NgChau9803/RG-Ecom-BE/internal/auth/provider"
	"github.com/NgChau9803/RG-Ecom-BE/internal/auth/reconcile"
	"github.com/NgChau9803/RG-Ecom-BE/internal/auth/token"
	"github.com/NgChau9803/RG-Ecom-BE/internal/authstate"
	"github.com/NgChau9803/RG-Ecom-BE/internal/logger"
	"github.com/NgChau9803/RG-Ecom-BE/internal/middleware"
	"github.com/NgChau9803/RG-Ecom-BE/internal/models"
	"github.com/NgChau9803/RG-Ecom-BE/internal/store"
)

// UserFinder is the read side the profile endpoint needs. The
// implementation must exclude refreshTokens from the returned record.
type UserFinder interface {
	FindByID(ctx context.Context, hexID string) (*models.User, error)
}

type Handler struct {
	providers   *provider.Registry
	states      authstate.Store
	reconciler  *reconcile.Reconciler
	tokens      *token.Issuer
	users       UserFinder
	frontendURL string
}

func NewHandler(
	registry *provider.Registry,
	states authstate.Store,
	reconciler *reconcile.Reconciler,
	tokens *token.Issuer,
	users UserFinder,
	frontendURL string,
) *Handler {
	return &Handler{
		providers:   registry,
		states:      states,
		reconciler:  reconciler,
		tokens:      tokens,
		users:       users,
		frontendURL: frontendURL,
	}
}

// RegisterRoutes mounts the auth surface. Profile sits behind the
// bearer-token middleware; login and callback are public.
func (h *Handler) RegisterRoutes(r *gin.Engine, authMW *middleware.AuthMiddleware) {
	grp := r.Group("/auth")
	grp.GET("/google", h.login)
	grp.GET("/google/callback", h.callback)
	grp.GET("/profile", middleware.GinRequireAuth(authMW), h.profile)
}

// login begins the external handshake: persist state + PKCE verifier
// server-side, then redirect to the provider. No cookie is set.
func (h *Handler) login(c *gin.Context) {
	p, err := h.providers.Get("google")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "unknown oauth provider",
		})
		return
	}

	handshake, challenge, err := authstate.New()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to start login",
		})
		return
	}

	if err := h.states.Create(c.Request.Context(), handshake); err != nil {
		logger.Error("failed to persist oauth state", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to start login",
		})
		return
	}

	c.Redirect(http.StatusFound, p.AuthCodeURL(handshake.State, challenge))
}

// callback completes the handshake: consume the one-time state,
// exchange the code, reconcile the identity, issue a token, and hand
// the client back to the frontend.
func (h *Handler) callback(c *gin.Context) {
	p, err := h.providers.Get("google")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "unknown oauth provider",
		})
		return
	}

	state := c.Query("state")
	if state == "" {
		h.redirectLogin(c)
		return
	}

	handshake, err := h.states.Consume(c.Request.Context(), state)
	if err != nil {
		if !errors.Is(err, authstate.ErrNotFound) {
			logger.Error("oauth state lookup failed", map[string]any{
				"error": err.Error(),
			})
		}
		h.redirectLogin(c)
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"provider": p.Name(),
			"error":    errParam,
			"desc":     c.Query("error_description"),
		})
		h.redirectLogin(c)
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("oauth callback missing code and error", nil)
		h.redirectLogin(c)
		return
	}

	identity, err := p.ExchangeCode(c.Request.Context(), code, handshake.CodeVerifier)
	if err != nil {
		logger.Warn("oauth code exchange failed", map[string]any{
			"provider": p.Name(),
			"error":    err.Error(),
		})
		h.redirectLogin(c)
		return
	}

	user, err := h.reconciler.Reconcile(c.Request.Context(), identity)
	if err != nil {
		if errors.Is(err, reconcile.ErrBadProfile) || errors.Is(err, reconcile.ErrConflict) {
			logger.Warn("identity reconciliation rejected", map[string]any{
				"error": err.Error(),
			})
			h.redirectLogin(c)
			return
		}
		logger.Error("identity reconciliation failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to resolve user",
		})
		return
	}

	jwt, err := h.tokens.Issue(user)
	if err != nil {
		logger.Error("token issuance failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to issue token",
		})
		return
	}

	logger.Info("login succeeded", map[string]any{
		"user_id": user.ID.Hex(),
		"role":    user.Role,
	})

	c.Redirect(
		http.StatusFound,
		h.frontendURL+"/auth/callback?token="+url.QueryEscape(jwt),
	)
}

// profile returns the authenticated user's record. The repository
// projection guarantees refreshTokens never appears in the payload.
func (h *Handler) profile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "unauthorized",
		})
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
		return
	}
	if err != nil {
		logger.Error("profile lookup failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching user profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

func (h *Handler) redirectLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, h.frontendURL+"/login")
}
