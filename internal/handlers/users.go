package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/services"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	users  *store.UserStore
	mailer *services.Mailer
}

func NewUserHandler(users *store.UserStore, mailer *services.Mailer) *UserHandler {
	return &UserHandler{users: users, mailer: mailer}
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Name           string `json:"name" binding:"required"`
	LastName       string `json:"last_name"`
	City           string `json:"city"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	DateOfBirth    string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`

	ContactEmail    bool `json:"contact_email"`
	ContactSMS      bool `json:"contact_sms"`
	ContactWhatsApp bool `json:"contact_whatsapp"`

	Role string `json:"role" binding:"omitempty,oneof=user admin restaurant_admin"`

	PhoneNumber string `json:"phone_number" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

type PhonePatchRequest struct {
	ID    string  `json:"id" binding:"required"`
	Phone *string `json:"phone"`
}

type AddressPatchRequest struct {
	ID      string  `json:"id" binding:"required"`
	Label   *string `json:"label"`
	Address *string `json:"address"`
	City    *string `json:"city"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	City     *string `json:"city"`

	ContactEmail    *bool `json:"contact_email"`
	ContactSMS      *bool `json:"contact_sms"`
	ContactWhatsApp *bool `json:"contact_whatsapp"`

	PhoneNumbers []PhonePatchRequest   `json:"phone_numbers" binding:"omitempty,dive"`
	Addresses    []AddressPatchRequest `json:"addresses" binding:"omitempty,dive"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	City     string `json:"city"`
	Role     string `json:"role"`
}

func userResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		LastName: user.LastName,
		City:     user.City,
		Role:     user.Role,
	}
}

func (h *UserHandler) Create(ctx *gin.Context) {
	var req CreateUserRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dateOfBirth time.Time

	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_of_birth"})
			return
		}
		dateOfBirth = parsed
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user, err := h.users.Create(ctx.Request.Context(), store.NewUser{
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:    string(passwordHash),
		Name:            req.Name,
		LastName:        req.LastName,
		City:            req.City,
		DocumentType:    req.DocumentType,
		DocumentNumber:  req.DocumentNumber,
		DateOfBirth:     dateOfBirth,
		ContactEmail:    req.ContactEmail,
		ContactSMS:      req.ContactSMS,
		ContactWhatsApp: req.ContactWhatsApp,
		Role:            req.Role,
		Phone:           req.PhoneNumber,
		Address:         req.Address,
	})

	if err != nil {
		writeError(ctx, err)
		return
	}

	h.mailer.WelcomeEmail(user)

	ctx.JSON(http.StatusCreated, gin.H{"user": userResponse(user)})
}

func (h *UserHandler) List(ctx *gin.Context) {
	users, err := h.users.List(ctx.Request.Context())

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) Get(ctx *gin.Context) {
	user, err := h.users.ByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Update(ctx *gin.Context) {
	var req UpdateUserRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.UserPatch{
		Email:           req.Email,
		Name:            req.Name,
		LastName:        req.LastName,
		City:            req.City,
		ContactEmail:    req.ContactEmail,
		ContactSMS:      req.ContactSMS,
		ContactWhatsApp: req.ContactWhatsApp,
	}

	if req.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*req.Email))
		patch.Email = &normalized
	}

	if req.Password != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		hashed := string(passwordHash)
		patch.PasswordHash = &hashed
	}

	for _, phone := range req.PhoneNumbers {
		patch.PhoneNumbers = append(patch.PhoneNumbers, store.PhonePatch{
			ID:    phone.ID,
			Phone: phone.Phone,
		})
	}

	for _, address := range req.Addresses {
		patch.Addresses = append(patch.Addresses, store.AddressPatch{
			ID:      address.ID,
			Label:   address.Label,
			Address: address.Address,
			City:    address.City,
		})
	}

	user, err := h.users.Update(ctx.Request.Context(), ctx.Param("id"), patch)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

func (h *UserHandler) Delete(ctx *gin.Context) {
	if err := h.users.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
