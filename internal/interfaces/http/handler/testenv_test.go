package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	identityapp "github.com/estoque/backend/internal/application/identity"
	ledgerapp "github.com/estoque/backend/internal/application/ledger"
	reportapp "github.com/estoque/backend/internal/application/report"
	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/infrastructure/auth"
	"github.com/estoque/backend/internal/infrastructure/persistence"
	"github.com/estoque/backend/internal/interfaces/http/middleware"
	"github.com/estoque/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires handlers, services and an in-memory database behind the
// real router and middleware stack.
type testEnv struct {
	engine     *gin.Engine
	adminToken string
	userToken  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	db := &persistence.Database{DB: gormDB}
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })

	log := zap.NewNop()
	dailyRepo := persistence.NewGormDailyRecordRepository(db.DB)
	orderRepo := persistence.NewGormWorkOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	txManager := persistence.NewTxManager(db.DB)

	materialCatalog := catalog.Default()
	jwtService := auth.NewJWTService(auth.Config{
		Secret:     "handler-test-secret",
		Expiration: time.Hour,
		Issuer:     "estoque-test",
	})

	balanceService := ledgerapp.NewBalanceService(materialCatalog, dailyRepo, txManager, log)
	consumptionService := ledgerapp.NewConsumptionService(materialCatalog, orderRepo, txManager, log)
	reportService := reportapp.NewReportService(materialCatalog, dailyRepo, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	userService := identityapp.NewUserService(userRepo, log)
	require.NoError(t, userService.SeedDefaults(context.Background()))

	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.JWTAuthMiddleware(jwtService))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(NewSystemHandler(db.Ping)).
		Register(NewAuthHandler(authService)).
		Register(NewUserHandler(userService)).
		Register(NewMaterialHandler(materialCatalog)).
		Register(NewDailyHandler(balanceService, materialCatalog)).
		Register(NewWorkOrderHandler(consumptionService)).
		Register(NewReportHandler(reportService))
	r.Setup()

	env := &testEnv{engine: engine}
	env.adminToken = env.login(t, "admin@admin.com", "123")
	env.userToken = env.login(t, "user@user.com", "123")
	return env
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	w := e.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the envelope's data field into out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Warning string          `json:"warning"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Error.Code
}
