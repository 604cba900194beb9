package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	companyModel "hotel-reservation/models/company"
	userModel "hotel-reservation/models/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.User{}, &userModel.UserRole{}, &companyModel.Company{}))

	app := fiber.New()
	ctrl := NewAuthController(db)
	app.Post("/register", ctrl.Register)
	app.Post("/login", ctrl.Login)
	app.Post("/logout", ctrl.LogOut)
	return app, db
}

func doPost(t *testing.T, app *fiber.App, path string, payload any) (int, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestRegisterCustomer(t *testing.T) {
	app, db := setupApp(t)

	status, body := doPost(t, app, "/register", fiber.Map{
		"username": "amira",
		"email":    "amira@example.com",
		"password": "super-secret",
		"city":     "Cairo",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.NotEmpty(t, body["token"])

	var u userModel.User
	require.NoError(t, db.Preload("Roles").Where("username = ?", "amira").First(&u).Error)
	require.Len(t, u.Roles, 1)
	assert.Equal(t, "customer", u.Roles[0].Role)
	assert.NotEqual(t, "super-secret", u.PasswordHash, "passwords are stored hashed")
}

func TestRegisterCompanyCreatesCompanyRow(t *testing.T) {
	app, db := setupApp(t)

	status, _ := doPost(t, app, "/register", fiber.Map{
		"username":     "stays",
		"email":        "owner@stays.example",
		"password":     "super-secret",
		"company_name": "Stays Ltd",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var u userModel.User
	require.NoError(t, db.Preload("Roles").Where("username = ?", "stays").First(&u).Error)
	require.Len(t, u.Roles, 1)
	assert.Equal(t, "company", u.Roles[0].Role)

	var co companyModel.Company
	require.NoError(t, db.Where("user_name = ?", "stays").First(&co).Error)
	assert.Equal(t, "Stays Ltd", co.Name)
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	app, _ := setupApp(t)

	status, _ := doPost(t, app, "/register", fiber.Map{
		"username": "amira", "email": "amira@example.com", "password": "super-secret",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = doPost(t, app, "/register", fiber.Map{
		"username": "amira", "email": "other@example.com", "password": "super-secret",
	})
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = doPost(t, app, "/register", fiber.Map{
		"username": "someone", "email": "amira@example.com", "password": "super-secret",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestLoginHappyPathAndBadPassword(t *testing.T) {
	app, _ := setupApp(t)

	status, _ := doPost(t, app, "/register", fiber.Map{
		"username": "karim", "email": "karim@example.com", "password": "super-secret",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doPost(t, app, "/login", fiber.Map{"username": "karim", "password": "super-secret"})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["token"])

	status, _ = doPost(t, app, "/login", fiber.Map{"username": "karim", "password": "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doPost(t, app, "/login", fiber.Map{"username": "ghost", "password": "super-secret"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginLockedAccountForbidden(t *testing.T) {
	app, db := setupApp(t)

	status, _ := doPost(t, app, "/register", fiber.Map{
		"username": "locked", "email": "locked@example.com", "password": "super-secret",
	})
	require.Equal(t, fiber.StatusCreated, status)

	until := time.Now().AddDate(100, 0, 0)
	require.NoError(t, db.Model(&userModel.User{}).Where("username = ?", "locked").Update("lockout_end", until).Error)

	status, _ = doPost(t, app, "/login", fiber.Map{"username": "locked", "password": "super-secret"})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestLoginExpiredLockoutAdmits(t *testing.T) {
	app, db := setupApp(t)

	status, _ := doPost(t, app, "/register", fiber.Map{
		"username": "freed", "email": "freed@example.com", "password": "super-secret",
	})
	require.Equal(t, fiber.StatusCreated, status)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&userModel.User{}).Where("username = ?", "freed").Update("lockout_end", past).Error)

	status, _ = doPost(t, app, "/login", fiber.Map{"username": "freed", "password": "super-secret"})
	assert.Equal(t, fiber.StatusOK, status)
}
