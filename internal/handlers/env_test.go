package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/spicekitchen/backend/internal/hash"
	"github.com/spicekitchen/backend/internal/models"
	"github.com/spicekitchen/backend/internal/service"
)

const testAdminPassword = "spicy-secret"

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	DB       *gorm.DB
	Menu     *MenuHandler
	Reviews  *ReviewHandler
	Chat     *ChatHandler
	Search   *SearchHandler
	Checkout *CheckoutHandler
	Auth     *AuthHandler
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuItem{}, &models.Review{}))

	passwordHash, err := hash.HashPassword(testAdminPassword)
	require.NoError(t, err)
	tokens := &service.TokenService{
		Credentials: service.BcryptCredentials{Hash: passwordHash},
		JWTSecret:   []byte("test-secret"),
	}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		DB:       db,
		Menu:     &MenuHandler{DB: db},
		Reviews:  &ReviewHandler{DB: db},
		Chat:     &ChatHandler{Now: func() time.Time { return time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local) }},
		Search:   &SearchHandler{DB: db},
		Checkout: &CheckoutHandler{WhatsAppNumber: "919310153299"},
		Auth:     &AuthHandler{Tokens: tokens},
	}
}

func (env *testEnv) doJSONRequest(method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) doRawRequest(method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createMenuItem(item models.MenuItem) models.MenuItem {
	require.NoError(env.T, env.DB.Create(&item).Error)
	return item
}
