// Package router wires handlers and middleware into a Gin engine.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"expensetracker/internal/docs"
	"expensetracker/internal/handlers"
	"expensetracker/internal/metrics"
	"expensetracker/internal/middleware"
	"expensetracker/internal/services"
)

// Options controls optional router behaviour.
type Options struct {
	CORSAllowOrigins []string
	EnablePprof      bool
}

// Deps holds everything the routes need.
type Deps struct {
	Users      services.UserServicer
	Categories services.CategoryServicer
	Expenses   services.ExpenseServicer
	Reports    services.ReportServicer
	JWT        *middleware.JWTManager
	Metrics    *metrics.Metrics
	DB         handlers.Pinger
}

// New builds the API engine.
func New(opts Options, deps Deps) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	r.Use(middleware.Recovery())
	r.Use(requestid.New())
	r.Use(middleware.RequestLogging())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	r.Use(cors.New(corsConfig(opts.CORSAllowOrigins)))
	r.Use(middleware.ErrorHandler())
	r.NoRoute(middleware.NoRoute())

	authHandler := handlers.NewAuthHandler(deps.Users, deps.JWT)
	categoryHandler := handlers.NewCategoryHandler(deps.Categories)
	expenseHandler := handlers.NewExpenseHandler(deps.Expenses)
	reportHandler := handlers.NewReportHandler(deps.Reports)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Swagger documentation
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	if opts.EnablePprof {
		pprof.RouteRegister(r.Group("/"), "debug/pprof")
	}

	api := r.Group("/api")
	api.GET("/health", healthHandler.Health)

	// Public routes
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWT))

	protected.GET("/profile", authHandler.GetProfile)

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.GetAllCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.GetAllExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/date-range", expenseHandler.GetExpensesByDateRange)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	reports := protected.Group("/reports")
	reports.GET("/monthly", reportHandler.GetMonthlyReport)
	reports.GET("/weekly", reportHandler.GetWeeklyReport)
	reports.GET("/category-wise", reportHandler.GetCategoryWiseReport)
	reports.GET("/yearly", reportHandler.GetYearlyReport)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
