package recipes

import (
	"net/http"

	"nutrismart/internal/core/recipe"
	"nutrismart/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves recipe browsing, search and generation.
type Handler struct {
	store     *recipe.Store
	generator *recipe.Generator
}

// NewHandler creates a recipe handler. generator may be nil when AI
// generation is disabled.
func NewHandler(store *recipe.Store, generator *recipe.Generator) *Handler {
	return &Handler{
		store:     store,
		generator: generator,
	}
}

// ListResponse is the recipe listing payload.
type ListResponse struct {
	Recipes    []recipe.Recipe `json:"recipes"`
	Total      int             `json:"total"`
	Categories []string        `json:"categories"`
}

// HandleList returns recipes filtered by the q, category and tag query
// parameters.
func (h *Handler) HandleList(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")
	tag := c.Query("tag")

	results := h.store.Search(query, category, tag)
	c.JSON(http.StatusOK, ListResponse{
		Recipes:    results,
		Total:      len(results),
		Categories: h.store.Categories(),
	})
}

// HandleGet returns one recipe by id.
func (h *Handler) HandleGet(c *gin.Context) {
	id := c.Param("id")
	r, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, common.ErrorResponse{
			Code:    common.ErrRecipeNotFound.Code,
			Message: common.ErrRecipeNotFound.Message,
		})
		return
	}
	c.JSON(http.StatusOK, r)
}

// HandleGenerate creates a recipe through the AI service and stores it.
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	if h.generator == nil {
		c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{
			Code:    common.ErrAIServiceError.Code,
			Message: "recipe generation is disabled",
		})
		return
	}

	var req recipe.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("invalid generation request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "invalid request body",
			Details: err.Error(),
		})
		return
	}

	common.LogInfo("processing recipe generation request",
		zap.String("request_id", requestID),
		zap.String("dish_name", req.DishName),
	)

	generated, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		common.LogError("recipe generation failed",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{
			Code:    common.ErrAIServiceError.Code,
			Message: common.ErrAIServiceError.Message,
		})
		return
	}

	c.JSON(http.StatusOK, generated)
}
