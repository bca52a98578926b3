package handlers

import (
	"net/http"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/store"
	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venues *store.VenueStore
}

func NewVenueHandler(venues *store.VenueStore) *VenueHandler {
	return &VenueHandler{venues: venues}
}

type CreateVenueRequest struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Photo        string `json:"photo"`
	Phone        string `json:"phone"`
	OpenHour     string `json:"open_hour"`
	CloseHour    string `json:"close_hour"`
	RestaurantID string `json:"restaurant_id" binding:"required"`
}

type UpdateVenueRequest struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Photo        *string `json:"photo"`
	Phone        *string `json:"phone"`
	OpenHour     *string `json:"open_hour"`
	CloseHour    *string `json:"close_hour"`
	RestaurantID *string `json:"restaurant_id"`
}

func (h *VenueHandler) Create(ctx *gin.Context) {
	var req CreateVenueRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.venues.Create(ctx.Request.Context(), store.NewVenue{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		Photo:        req.Photo,
		Phone:        req.Phone,
		OpenHour:     req.OpenHour,
		CloseHour:    req.CloseHour,
		RestaurantID: req.RestaurantID,
	})

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"venue": venue})
}

func (h *VenueHandler) List(ctx *gin.Context) {
	venues, err := h.venues.ListActive(ctx.Request.Context())

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"venues": venues})
}

func (h *VenueHandler) Get(ctx *gin.Context) {
	venue, err := h.venues.ByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"venue": venue})
}

func (h *VenueHandler) Update(ctx *gin.Context) {
	var req UpdateVenueRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.venues.Update(ctx.Request.Context(), ctx.Param("id"), store.VenuePatch{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		Photo:        req.Photo,
		Phone:        req.Phone,
		OpenHour:     req.OpenHour,
		CloseHour:    req.CloseHour,
		RestaurantID: req.RestaurantID,
	})

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"venue": venue})
}

func (h *VenueHandler) Delete(ctx *gin.Context) {
	if err := h.venues.Deactivate(ctx.Request.Context(), ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Venue deactivated successfully"})
}
