package app

import (
	"context"
	"path/filepath"

	"go-ems/internal/config"
	"go-ems/internal/department"
	"go-ems/internal/employee"
	"go-ems/internal/shared/jsonstore"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp constructs the stores, wires the modules, and registers all
// routes on the given engine.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	// One store instance per entity type for the process lifetime. Every
	// repository touching an entity type must go through its store, or
	// the access serialization means nothing.
	employeeStore := jsonstore.New[employee.Employee](
		filepath.Join(cfg.DataDir, "employees.json"), logger,
	)
	departmentStore := jsonstore.New[department.Department](
		filepath.Join(cfg.DataDir, "departments.json"), logger,
	)

	departmentRepo := department.NewRepository(departmentStore)
	if err := departmentRepo.EnsureDefaults(context.Background()); err != nil {
		return err
	}
	logger.Info("department store ready", zap.String("data_dir", cfg.DataDir))

	return registerModules(router, employeeStore, departmentRepo, logger)
}
