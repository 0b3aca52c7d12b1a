package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerDocumentRoutes(v1, services.Document)
	registerMemberRoutes(v1, services.Member)
	registerAssetRoutes(v1, services.Asset, services.Document, services.Formatter)
	registerLiabilityRoutes(v1, services.Liability, services.Document, services.Formatter)
	registerIncomeRoutes(v1, services.Income, services.Document, services.Formatter)
	registerReportingRoutes(v1, services.Reporting, services.Formatter, cfg.ReminderWindowDays)
}
