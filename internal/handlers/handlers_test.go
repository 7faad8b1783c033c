package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fabclean/laundry-api/internal/config"
	"github.com/fabclean/laundry-api/internal/db"
	"github.com/fabclean/laundry-api/internal/qr"
	"github.com/fabclean/laundry-api/internal/routes"
	"github.com/fabclean/laundry-api/internal/session"
)

const adminPassword = "test-admin-pass"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	qrDir  string
}

// newTestEnv wires a full router against an in-memory database, an
// in-process redis and a throwaway QR directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		AdminName:       "Administrator",
		AdminEmail:      "admin@fabclean.local",
		AdminPassword:   adminPassword,
		AdminSessionTTL: time.Hour,
	}
	require.NoError(t, db.Seed(gdb, cfg, logger))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := session.NewStore(rdb, cfg.AdminSessionTTL)

	qrDir := t.TempDir()
	gen := qr.NewGenerator(qrDir, 256, logger)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:       gdb,
		Config:   cfg,
		Logger:   logger,
		Sessions: sessions,
		QR:       gen,
	})

	return &testEnv{router: r, db: gdb, cfg: cfg, qrDir: qrDir}
}

func (e *testEnv) request(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// signup registers a customer and returns the issued JWT.
func (e *testEnv) signup(t *testing.T, name, email string) string {
	t.Helper()

	w := e.request(t, http.MethodPost, "/auth/signup", gin.H{
		"name":     name,
		"email":    email,
		"phone":    "5551234",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	decode(t, w, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

// adminLogin authenticates the seeded bootstrap admin.
func (e *testEnv) adminLogin(t *testing.T) string {
	t.Helper()

	w := e.request(t, http.MethodPost, "/admin/login", gin.H{
		"email":    e.cfg.AdminEmail,
		"password": adminPassword,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	decode(t, w, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

// placeOrder goes through the public order endpoint and returns the order id.
func (e *testEnv) placeOrder(t *testing.T, email string, serviceIDs ...string) string {
	t.Helper()

	w := e.request(t, http.MethodPost, "/api/orders", gin.H{
		"customerName":  "Test Customer",
		"customerPhone": "5551234",
		"customerEmail": email,
		"serviceIds":    serviceIDs,
		"pickupDate":    "2025-09-25",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Order struct {
			ID string `json:"id"`
		} `json:"order"`
	}
	decode(t, w, &body)
	require.NotEmpty(t, body.Order.ID)
	return body.Order.ID
}
