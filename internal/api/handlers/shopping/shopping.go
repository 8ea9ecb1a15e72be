package shopping

import (
	"net/http"
	"strings"

	"nutrismart/internal/core/recipe"
	"nutrismart/internal/core/shopping"
	"nutrismart/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler exposes the shopping list over HTTP.
type Handler struct {
	manager *shopping.Manager
	store   *recipe.Store
}

// NewHandler creates a shopping list handler.
func NewHandler(manager *shopping.Manager, store *recipe.Store) *Handler {
	return &Handler{
		manager: manager,
		store:   store,
	}
}

// HandleGetList returns the aggregated shopping list view.
func (h *Handler) HandleGetList(c *gin.Context) {
	c.JSON(http.StatusOK, h.manager.View())
}

// HandleToggleRecipe flips whether a recipe contributes to the list.
func (h *Handler) HandleToggleRecipe(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Get(id); !ok {
		c.JSON(http.StatusNotFound, common.ErrorResponse{
			Code:    common.ErrRecipeNotFound.Code,
			Message: common.ErrRecipeNotFound.Message,
		})
		return
	}
	h.manager.ToggleRecipe(c.Request.Context(), id)
	c.JSON(http.StatusOK, h.manager.View())
}

type quantityRequest struct {
	Label string `json:"label" binding:"required"`
	Delta int    `json:"delta"`
}

// HandleSetQuantity adjusts an item quantity by a signed delta. The
// quantity never drops below one.
func (h *Handler) HandleSetQuantity(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "invalid request body",
			Details: err.Error(),
		})
		return
	}
	if strings.TrimSpace(req.Label) == "" {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "label must not be empty",
		})
		return
	}
	h.manager.SetQuantity(c.Request.Context(), req.Label, req.Delta)
	c.JSON(http.StatusOK, h.manager.View())
}

type checkRequest struct {
	Label   string `json:"label" binding:"required"`
	Checked *bool  `json:"checked" binding:"required"`
}

// HandleSetChecked marks an item as picked up or not.
func (h *Handler) HandleSetChecked(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "invalid request body",
			Details: err.Error(),
		})
		return
	}
	h.manager.SetChecked(c.Request.Context(), req.Label, *req.Checked)
	c.JSON(http.StatusOK, h.manager.View())
}

// HandleReset restores the default selection and clears all overrides.
func (h *Handler) HandleReset(c *gin.Context) {
	h.manager.Reset(c.Request.Context())
	c.JSON(http.StatusOK, h.manager.View())
}
