package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"captable/internal/handlers"
	"captable/internal/logger"
	"captable/internal/middleware"
	"captable/internal/models"
	"captable/internal/services"
	"captable/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Company{},
		&models.Shareholder{},
		&models.Holding{},
		&models.SafeNote{},
		&models.Scenario{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	shareholderService := services.NewShareholderService(db)
	safeNoteService := services.NewSafeNoteService(db)
	capTableService := services.NewCapTableService(db)
	scenarioService := services.NewScenarioService(db, capTableService)

	// Handlers
	shareholderHandler := handlers.NewShareholderHandler(shareholderService)
	safeNoteHandler := handlers.NewSafeNoteHandler(safeNoteService, scenarioService)
	capTableHandler := handlers.NewCapTableHandler(capTableService)
	scenarioHandler := handlers.NewScenarioHandler(scenarioService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	captable := v1.Group("/captable")
	captable.GET("/company", capTableHandler.GetCompany)
	captable.PUT("/company", capTableHandler.UpdateCompany)
	captable.GET("/summary", capTableHandler.GetSummary)

	shareholders := v1.Group("/shareholders")
	shareholders.POST("", shareholderHandler.CreateShareholder)
	shareholders.GET("", shareholderHandler.GetShareholders)
	shareholders.GET("/:id", shareholderHandler.GetShareholderByID)
	shareholders.PUT("/:id", shareholderHandler.UpdateShareholder)
	shareholders.DELETE("/:id", shareholderHandler.DeleteShareholder)
	shareholders.POST("/:id/holdings", shareholderHandler.AddHolding)
	shareholders.GET("/:id/holdings", shareholderHandler.GetShareholderHoldings)

	holdings := v1.Group("/holdings")
	holdings.PUT("/:id", shareholderHandler.UpdateHolding)
	holdings.DELETE("/:id", shareholderHandler.DeleteHolding)

	safes := v1.Group("/safes")
	safes.POST("", safeNoteHandler.CreateSafeNote)
	safes.GET("", safeNoteHandler.GetSafeNotes)
	safes.POST("/conversions", safeNoteHandler.ResolveConversions)
	safes.GET("/:id", safeNoteHandler.GetSafeNoteByID)
	safes.PUT("/:id", safeNoteHandler.UpdateSafeNote)
	safes.POST("/:id/cancel", safeNoteHandler.CancelSafeNote)
	safes.DELETE("/:id", safeNoteHandler.DeleteSafeNote)

	scenarios := v1.Group("/scenarios")
	scenarios.POST("", scenarioHandler.CreateScenario)
	scenarios.GET("", scenarioHandler.GetScenarios)
	scenarios.POST("/evaluate", scenarioHandler.EvaluateScenario)
	scenarios.GET("/:id", scenarioHandler.GetScenarioByID)
	scenarios.PUT("/:id", scenarioHandler.UpdateScenario)
	scenarios.DELETE("/:id", scenarioHandler.DeleteScenario)
	scenarios.POST("/:id/evaluate", scenarioHandler.EvaluateScenarioByID)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createShareholder creates a shareholder and returns its ID.
func (app *testApp) createShareholder(t *testing.T, name, holderType string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"type":%q}`, name, holderType)
	rec := app.request("POST", "/api/v1/shareholders", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create shareholder failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	sh := result["shareholder"].(map[string]interface{})
	return sh["id"].(string)
}

// addHolding grants a shareholder shares of the given class.
func (app *testApp) addHolding(t *testing.T, shareholderID, shareClass string, shareCount int64) string {
	t.Helper()
	body := fmt.Sprintf(`{"share_class":%q,"share_count":%d}`, shareClass, shareCount)
	rec := app.request("POST", "/api/v1/shareholders/"+shareholderID+"/holdings", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add holding failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	holding := result["holding"].(map[string]interface{})
	return holding["id"].(string)
}
