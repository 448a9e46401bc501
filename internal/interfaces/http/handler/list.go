package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sharingapp "github.com/sharelist/backend/internal/application/sharing"
	"github.com/sharelist/backend/internal/interfaces/http/middleware"
)

// ListHandler handles shopping list API endpoints
type ListHandler struct {
	BaseHandler
	listService *sharingapp.ListService
}

// NewListHandler creates a new ListHandler
func NewListHandler(listService *sharingapp.ListService) *ListHandler {
	return &ListHandler{
		listService: listService,
	}
}

// CreateListRequest represents a request to create a new list
type CreateListRequest struct {
	Name  string   `json:"name" binding:"required,min=3,max=200"`
	Items []string `json:"items" binding:"omitempty,dive,min=1,max=200"`
}

// InviteRequest represents a request to invite a user to a list
type InviteRequest struct {
	InviteeUserID string `json:"inviteeUserId" binding:"required,uuid"`
}

// AddItemRequest represents a request to add an item to a list
type AddItemRequest struct {
	ItemName string `json:"itemName" binding:"required,min=1,max=200"`
}

// RegisterRoutes registers list routes
func (h *ListHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-list", h.Create)
	rg.GET("/list", h.ListAll)
	rg.GET("/list/:listId", h.Get)
	rg.DELETE("/list/:listId", h.Delete)
	rg.POST("/list/:listId/invite", h.Invite)
	rg.POST("/list/:listId/add-item", h.AddItem)
	rg.DELETE("/list/:listId/item/:itemId", h.RemoveItem)
}

// Create creates a new list owned by the caller
func (h *ListHandler) Create(c *gin.Context) {
	ident, err := getIdentity(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	list, err := h.listService.Create(c.Request.Context(), ident, sharingapp.CreateListInput{
		Name:  req.Name,
		Items: req.Items,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, list)
}

// ListAll returns every list the caller owns or collaborates on
func (h *ListHandler) ListAll(c *gin.Context) {
	ident, err := getIdentity(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	lists, err := h.listService.ListForUser(c.Request.Context(), ident)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lists)
}

// Get returns a single list by ID
func (h *ListHandler) Get(c *gin.Context) {
	ident, err := getIdentity(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listID, err := uuid.Parse(c.Param("listId"))
	if err != nil {
		h.BadRequest(c, "Invalid list ID")
		return
	}

	list, err := h.listService.Get(c.Request.Context(), ident, listID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, list)
}

// Delete removes a list together with its items and invites
func (h *ListHandler) Delete(c *gin.Context) {
	ident, err := getIdentity(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listID, err := uuid.Parse(c.Param("listId"))
	if err != nil {
		h.BadRequest(c, "Invalid list ID")
		return
	}

	if err := h.listService.Delete(c.Request.Context(), ident, listID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"deleted": true})
}

// Invite grants another user collaborator access to a list
func (h *ListHandler) Invite(c *gin.Context) {
	ident, err := getIdentity(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listID, err := uuid.Parse(c.Param("listId"))
	if err != nil {
		h.BadRequest(c, "Invalid list ID")
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	inviteeID, err := uuid.Parse(req.InviteeUserID)
	if err != nil {
		h.BadRequest(c, "Invalid invitee user ID")
		return
	}

	list, err := h.listService.Invite(c.Request.Context(), ident, listID, inviteeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, list)
}

// AddItem appends an item to a list
func (h *ListHandler) AddItem(c *gin.Context) {
	ident, err := getIdentity(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listID, err := uuid.Parse(c.Param("listId"))
	if err != nil {
		h.BadRequest(c, "Invalid list ID")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.listService.AddItem(c.Request.Context(), ident, listID, req.ItemName)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// RemoveItem deletes an item from a list
func (h *ListHandler) RemoveItem(c *gin.Context) {
	ident, err := getIdentity(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listID, err := uuid.Parse(c.Param("listId"))
	if err != nil {
		h.BadRequest(c, "Invalid list ID")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.listService.RemoveItem(c.Request.Context(), ident, listID, itemID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"deleted": true})
}
