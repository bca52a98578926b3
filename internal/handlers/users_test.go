package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/services"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&models.User{},
		&models.PhoneNumber{},
		&models.Address{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Review{},
		&models.Reservation{},
		&models.Restaurant{},
		&models.RestaurantVenue{},
	))

	users := store.NewUserStore(conn)
	venues := store.NewVenueStore(conn)

	userHandler := NewUserHandler(users, services.NewMailer(""))
	venueHandler := NewVenueHandler(venues)

	r := gin.New()
	r.POST("/api/users", userHandler.Create)
	r.GET("/api/users/:id", userHandler.Get)
	r.PATCH("/api/users/:id", userHandler.Update)
	r.DELETE("/api/users/:id", userHandler.Delete)
	r.GET("/api/venues", venueHandler.List)
	r.GET("/api/venues/:id", venueHandler.Get)
	r.DELETE("/api/venues/:id", venueHandler.Delete)

	return r, conn
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCreateBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"email":        email,
		"password":     "secret-password",
		"name":         "Nora",
		"last_name":    "Vega",
		"city":         "Bogota",
		"phone_number": "+57 300 555 0101",
		"address":      "Calle 93 #12-34",
	}
}

func TestCreateUserHandler(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", validCreateBody("nora@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		User UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.User.ID)
	assert.Equal(t, "nora@example.com", response.User.Email)
	assert.Equal(t, models.RoleUser, response.User.Role)
}

func TestCreateUserHandlerDuplicateEmailConflict(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", validCreateBody("a@x.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users", validCreateBody("a@x.com"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateUserHandlerValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	body := validCreateBody("bad-email")
	w := doJSON(t, r, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = validCreateBody("ok@x.com")
	delete(body, "password")
	w = doJSON(t, r, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserHandlerPartial(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", validCreateBody("nora@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		User UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPatch, "/api/users/"+created.User.ID, map[string]interface{}{
		"city": "Medellin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		User UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Medellin", updated.User.City)
	assert.Equal(t, "nora@example.com", updated.User.Email)
	assert.Equal(t, "Nora", updated.User.Name)
}

func TestDeleteUserHandlerForbiddenForAdmins(t *testing.T) {
	r, conn := newTestRouter(t)

	admin := models.User{
		ID:           "admin-1",
		Email:        "admin@x.com",
		PasswordHash: "hash",
		Name:         "Ann",
		Role:         models.RoleAdmin,
	}
	require.NoError(t, conn.Create(&admin).Error)

	w := doJSON(t, r, http.MethodDelete, "/api/users/admin-1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, conn.Model(&models.User{}).Where("id = ?", "admin-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteUserHandlerNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/users/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserHandlerHidesPasswordHash(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", validCreateBody("nora@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		User UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/users/"+created.User.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), "Primary Address")
}
