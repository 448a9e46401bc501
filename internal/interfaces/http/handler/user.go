package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/sharelist/backend/internal/application/identity"
	"github.com/sharelist/backend/internal/interfaces/http/middleware"
)

// UserHandler handles user-related API endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUserRequest represents a request to register a new user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=5,max=100"`
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-user", h.Create)
}

// Create registers a new user account
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), identityapp.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}
