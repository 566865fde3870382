package v1

import (
	"net/http"

	"github.com/adamcc31/devconnect-api/config"
	"github.com/adamcc31/devconnect-api/internal/delivery/http/middleware"
	"github.com/adamcc31/devconnect-api/internal/delivery/http/response"
	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the identity routes
func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC}

	// Credential endpoints carry the stricter rate limit.
	public.POST("/users", middleware.StrictRateLimitMiddleware(cfg), handler.Register)
	public.POST("/auth", middleware.StrictRateLimitMiddleware(cfg), handler.Login)
	protected.GET("/auth", handler.Me)
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account and return a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      domain.RegisterInput  true  "Registration details"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var in domain.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	tok, err := h.authUC.Register(c.Request.Context(), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User registered", gin.H{"token": tok})
}

// Login godoc
// @Summary      Authenticate a user
// @Description  Verify credentials and return a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      domain.LoginInput  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var in domain.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	tok, err := h.authUC.Login(c.Request.Context(), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in", gin.H{"token": tok})
}

// Me godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}
