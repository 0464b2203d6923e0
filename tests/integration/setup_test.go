package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studioledger/internal/handlers"
	"studioledger/internal/logger"
	"studioledger/internal/middleware"
	"studioledger/internal/models"
	"studioledger/internal/services"
	"studioledger/internal/validator"
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
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Studio{},
		&models.Account{},
		&models.Category{},
		&models.Contractor{},
		&models.Project{},
		&models.Transaction{},
		&models.ActivityLog{},
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
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	studioService := services.NewStudioService(db)
	accountService := services.NewAccountService(db)
	categoryService := services.NewCategoryService(db)
	contractorService := services.NewContractorService(db)
	projectService := services.NewProjectService(db)
	transactionService := services.NewTransactionService(db)
	reportService := services.NewReportService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	studioHandler := handlers.NewStudioHandler(studioService, auditService)
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	contractorHandler := handlers.NewContractorHandler(contractorService, auditService)
	projectHandler := handlers.NewProjectHandler(projectService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	reportHandler := handlers.NewReportHandler(reportService)
	activityHandler := handlers.NewActivityHandler(auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Identity())

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)

	studios := api.Group("/studios")
	studios.GET("", studioHandler.GetStudios)
	studios.POST("", studioHandler.CreateStudio)
	studios.PUT("/:id", studioHandler.UpdateStudio)
	studios.DELETE("/:id", studioHandler.DeleteStudio)

	accounts := api.Group("/accounts")
	accounts.GET("", accountHandler.GetAccounts)
	accounts.POST("", accountHandler.CreateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)

	categories := api.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	contractors := api.Group("/contractors")
	contractors.GET("", contractorHandler.GetContractors)
	contractors.POST("", contractorHandler.CreateContractor)
	contractors.PUT("/:id", contractorHandler.UpdateContractor)
	contractors.DELETE("/:id", contractorHandler.DeleteContractor)

	projects := api.Group("/projects")
	projects.GET("", projectHandler.GetProjects)
	projects.POST("", projectHandler.CreateProject)
	projects.PUT("/:id", projectHandler.UpdateProject)
	projects.DELETE("/:id", projectHandler.DeleteProject)

	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	reports := api.Group("/reports")
	reports.GET("/cashflow", reportHandler.GetCashflow)
	reports.GET("/pnl", reportHandler.GetPnl)

	api.GET("/activity-logs", activityHandler.GetActivityLogs)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
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

// parseJSONArray parses the response body into a slice.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createUser inserts a user directly and returns it with a signed token.
func (app *testApp) createUser(t *testing.T, username, password string) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  "Test User",
		IsActive:     true,
	}
	if err := app.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user, token
}
