package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"github.com/pizzamaker/pizzamaker-api/internal/services"
)

// CatalogController handles administrator CRUD for ingredient groups
// and ingredients
type CatalogController interface {
	ListGroups(c *gin.Context)
	CreateGroup(c *gin.Context)
	UpdateGroup(c *gin.Context)
	DeleteGroup(c *gin.Context)
	ListIngredients(c *gin.Context)
	CreateIngredient(c *gin.Context)
	UpdateIngredient(c *gin.Context)
	DeleteIngredient(c *gin.Context)
}

// GroupRequest is the payload for creating or renaming a group
type GroupRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

// IngredientRequest is the payload for creating or updating an ingredient
type IngredientRequest struct {
	Name    string  `json:"name" binding:"required,max=64"`
	GroupID uint    `json:"group_id" binding:"required"`
	Cost    float64 `json:"cost" binding:"gte=0"`
}

type catalogController struct {
	service services.CatalogService
}

// NewCatalogController creates a new instance of CatalogController
func NewCatalogController(service services.CatalogService) CatalogController {
	return &catalogController{service: service}
}

// uintParam parses a numeric path parameter, responding 400 on failure
func uintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid "+name+" format"))
		return 0, false
	}
	return uint(value), true
}

// ListGroups godoc
// @Summary List ingredient groups
// @Tags catalog
// @Produce json
// @Success 200 {array} models.IngredientGroup
// @Security BearerAuth
// @Router /group [get]
func (c *catalogController) ListGroups(ctx *gin.Context) {
	groups, err := c.service.ListGroups()
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// CreateGroup godoc
// @Summary Create an ingredient group
// @Tags catalog
// @Accept json
// @Produce json
// @Param group body controllers.GroupRequest true "Group"
// @Success 201 {object} models.IngredientGroup
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /group [post]
func (c *catalogController) CreateGroup(ctx *gin.Context) {
	var req GroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid group data"))
		return
	}

	group, err := c.service.CreateGroup(req.Name)
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, group)
}

// UpdateGroup godoc
// @Summary Rename an ingredient group
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param group body controllers.GroupRequest true "Group"
// @Success 200 {object} models.IngredientGroup
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /group/{id} [put]
func (c *catalogController) UpdateGroup(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req GroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid group data"))
		return
	}

	group, err := c.service.UpdateGroup(id, req.Name)
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, group)
}

// DeleteGroup godoc
// @Summary Delete an ingredient group
// @Description Delete a group. The deletion cascades to the group's ingredients and to pizza line items referencing them.
// @Tags catalog
// @Param id path int true "Group ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /group/{id} [delete]
func (c *catalogController) DeleteGroup(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteGroup(id); err != nil {
		respondWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// ListIngredients godoc
// @Summary List ingredients
// @Tags catalog
// @Produce json
// @Param group_id query int false "Filter by group"
// @Success 200 {array} models.Ingredient
// @Security BearerAuth
// @Router /ingredient [get]
func (c *catalogController) ListIngredients(ctx *gin.Context) {
	var groupID *uint
	if raw := ctx.Query("group_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid group_id format"))
			return
		}
		value := uint(parsed)
		groupID = &value
	}

	ingredients, err := c.service.ListIngredients(groupID)
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ingredients)
}

// CreateIngredient godoc
// @Summary Create an ingredient
// @Tags catalog
// @Accept json
// @Produce json
// @Param ingredient body controllers.IngredientRequest true "Ingredient"
// @Success 201 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /ingredient [post]
func (c *catalogController) CreateIngredient(ctx *gin.Context) {
	var req IngredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid ingredient data"))
		return
	}

	ingredient, err := c.service.CreateIngredient(models.Ingredient{
		Name:    req.Name,
		GroupID: req.GroupID,
		Cost:    req.Cost,
	})
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, ingredient)
}

// UpdateIngredient godoc
// @Summary Update an ingredient
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body controllers.IngredientRequest true "Ingredient"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /ingredient/{id} [put]
func (c *catalogController) UpdateIngredient(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req IngredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid ingredient data"))
		return
	}

	ingredient, err := c.service.UpdateIngredient(models.Ingredient{
		ID:      id,
		Name:    req.Name,
		GroupID: req.GroupID,
		Cost:    req.Cost,
	})
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Description Delete an ingredient. The deletion cascades to pizza line items referencing it.
// @Tags catalog
// @Param id path int true "Ingredient ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /ingredient/{id} [delete]
func (c *catalogController) DeleteIngredient(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteIngredient(id); err != nil {
		respondWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
