package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"listings-media-api/internal/application/ports"
	"listings-media-api/internal/application/services"
	agentDB "listings-media-api/internal/infrastructure/db/postgres/agent"
	agentDTO "listings-media-api/internal/interface/api/rest/dto/agent"
	"listings-media-api/internal/interface/api/rest/dto/auth"
	"listings-media-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger       *zap.Logger
	agentService ports.AgentService
	authService  ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	agentService ports.AgentService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:       logger,
		agentService: agentService,
		authService:  authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteRegister, ac.RegisterHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.agentService.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get an agent"},
		)
		ac.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "agent not found"},
		)
		return
	}

	token, err := ac.authService.GenerateToken(a, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("agent_uuid", a.UUID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.agentService.RegisterAgent(
		c.Request.Context(),
		agentDTO.ToDomainAgent(req.Email, req.Name, req.Phone),
		req.Password,
	)
	if err != nil {
		if errors.Is(err, agentDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register an agent"},
		)
		ac.logger.Error("RegisterAgent() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, agentDTO.ToResponseAgent(*a))
}
