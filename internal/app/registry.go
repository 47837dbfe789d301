package app

import (
	"go-ems/internal/dashboard"
	"go-ems/internal/department"
	"go-ems/internal/employee"
	"go-ems/internal/shared/jsonstore"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	employeeStore *jsonstore.Store[employee.Employee],
	departmentRepo department.Repository,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(employeeStore)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, employeeRepo, logger)
	employeeService := employee.NewService(employeeRepo, departmentRepo, logger)
	dashboardService := dashboard.NewService(employeeService, employeeRepo, departmentService, logger)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler, logger)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return nil
}
