package session

import (
	"errors"
	"net/http"
	"strings"

	"motionklub/internal/domain"
	"motionklub/internal/middleware"
	"motionklub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const ClientIDHeader = "X-Client-ID"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/guest/login", h.LoginGuest)
		authGroup.POST("/animator/login", h.LoginAnimator)
	}
}

// RegisterProtectedRoutes expects a group that already ran JWTAuth and
// SessionRequired.
func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/session", h.GetSession)
	}
}

// clientID lets a browser keep its identity across logins when it proves
// ownership with its current token.
func (h *Handler) clientID(c *gin.Context) string {
	bearer := ""
	if parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		bearer = strings.TrimSpace(parts[1])
	}
	return h.service.ResolveClientID(c.GetHeader(ClientIDHeader), bearer)
}

func (h *Handler) LoginGuest(c *gin.Context) {
	var req GuestLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Reservation number and email are required")
		return
	}

	id := h.clientID(c)
	sess, token, err := h.service.LoginGuest(c.Request.Context(), id, req.ReservationRef, req.Email)
	if err != nil {
		h.writeLoginError(c, err)
		return
	}

	c.Header(ClientIDHeader, id)
	response.Success(c, http.StatusOK, LoginResponse{
		ClientID: id,
		Token:    token,
		Role:     sess.Role(),
		Session:  sess,
	})
}

func (h *Handler) LoginAnimator(c *gin.Context) {
	var req AnimatorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Animator id and secret are required")
		return
	}

	id := h.clientID(c)
	sess, token, err := h.service.LoginAnimator(c.Request.Context(), id, req.AnimatorID, req.Secret)
	if err != nil {
		h.writeLoginError(c, err)
		return
	}

	c.Header(ClientIDHeader, id)
	response.Success(c, http.StatusOK, LoginResponse{
		ClientID: id,
		Token:    token,
		Role:     sess.Role(),
		Session:  sess,
	})
}

func (h *Handler) writeLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Credentials must not be empty")
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, response.CodeInvalidCredentials, "Animator id or secret is incorrect")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to login")
	}
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.ClientID(c)); err != nil {
		if errors.Is(err, ErrNoSession) {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "No active session")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to logout")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

func (h *Handler) GetSession(c *gin.Context) {
	v, _ := c.Get(middleware.ContextSession)
	sess, ok := v.(domain.Session)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "No active session")
		return
	}
	response.Success(c, http.StatusOK, SessionResponse{Role: sess.Role(), Session: sess})
}
