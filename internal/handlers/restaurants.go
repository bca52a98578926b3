package handlers

import (
	"net/http"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/store"
	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	restaurants *store.RestaurantStore
}

func NewRestaurantHandler(restaurants *store.RestaurantStore) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants}
}

type CreateRestaurantRequest struct {
	Name    string  `json:"name" binding:"required"`
	Path    string  `json:"path" binding:"required"`
	Cuisine string  `json:"cuisine"`
	OwnerID *string `json:"owner_id"`
}

type UpdateRestaurantRequest struct {
	Name    *string `json:"name"`
	Path    *string `json:"path"`
	Cuisine *string `json:"cuisine"`
	OwnerID *string `json:"owner_id"`
}

type UpdateRatingRequest struct {
	ID     string   `json:"id" binding:"required"`
	Rating *float64 `json:"rating" binding:"required,gte=0,lte=5"`
}

func (h *RestaurantHandler) Create(ctx *gin.Context) {
	var req CreateRestaurantRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.restaurants.Create(ctx.Request.Context(), store.NewRestaurant{
		Name:    req.Name,
		Path:    req.Path,
		Cuisine: req.Cuisine,
		OwnerID: req.OwnerID,
	})

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"restaurant": restaurant})
}

func (h *RestaurantHandler) List(ctx *gin.Context) {
	restaurants, err := h.restaurants.List(ctx.Request.Context())

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

func (h *RestaurantHandler) Get(ctx *gin.Context) {
	restaurant, err := h.restaurants.ByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

func (h *RestaurantHandler) GetByPath(ctx *gin.Context) {
	restaurant, err := h.restaurants.ByPath(ctx.Request.Context(), ctx.Param("path"))

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

func (h *RestaurantHandler) Update(ctx *gin.Context) {
	var req UpdateRestaurantRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.restaurants.Update(ctx.Request.Context(), ctx.Param("id"), store.RestaurantPatch{
		Name:    req.Name,
		Path:    req.Path,
		Cuisine: req.Cuisine,
		OwnerID: req.OwnerID,
	})

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

func (h *RestaurantHandler) UpdateRating(ctx *gin.Context) {
	var req UpdateRatingRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.restaurants.UpdateRating(ctx.Request.Context(), req.ID, *req.Rating)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

func (h *RestaurantHandler) Delete(ctx *gin.Context) {
	if err := h.restaurants.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
