package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/VisKlo/furniture-inventory/config"
	"github.com/VisKlo/furniture-inventory/internal/handler"
	"github.com/VisKlo/furniture-inventory/internal/models"
	"github.com/VisKlo/furniture-inventory/internal/utils"
	"github.com/VisKlo/furniture-inventory/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest gives each test its own in-memory database and a router with the
// full route table. The shared-cache DSN keeps the database alive across the
// pooled connections gorm opens.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{
		Server: config.ServerConfig{
			JWTSecret:          "test-secret",
			JWTExpirationHours: 1,
		},
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.Material{},
		&models.Furniture{},
		&models.FurnitureMaterial{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db

	r := gin.New()
	handler.RegisterRoutes(r)
	return r
}

// createTestUser inserts a user and returns a valid bearer token for it.
func createTestUser(t *testing.T) string {
	t.Helper()

	hashed, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{Name: "tester", Email: "tester@example.com", Password: hashed}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func doRequest(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func materialStock(t *testing.T, id uint) int {
	t.Helper()
	var material models.Material
	if err := database.DB.First(&material, id).Error; err != nil {
		t.Fatalf("failed to load material %d: %v", id, err)
	}
	return material.Quantity
}
