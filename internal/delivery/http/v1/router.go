package v1

import (
	"net/http"

	"github.com/adamcc31/devconnect-api/config"
	"github.com/adamcc31/devconnect-api/internal/delivery/http/middleware"
	"github.com/adamcc31/devconnect-api/internal/delivery/http/response"
	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	ProfileUC domain.ProfileUsecase
	AccountUC domain.AccountUsecase
	GithubUC  domain.GithubUsecase
	Tokens    *token.Manager
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.GlobalRateLimitMiddleware(deps.Config))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(api, protected, deps.AuthUC, deps.Config)
		NewProfileHandler(api, protected, deps.ProfileUC, deps.AccountUC, deps.GithubUC)
	}

	return r
}
