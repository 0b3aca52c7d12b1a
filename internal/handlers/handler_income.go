package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/dto"
	"github.com/SscSPs/household_finance/internal/middleware"
	"github.com/SscSPs/household_finance/internal/utils"
	"github.com/gin-gonic/gin"
)

// incomeHandler handles HTTP requests related to incomes.
type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
	documents     portssvc.DocumentReaderSvc
	formatter     *utils.Formatter
}

// registerIncomeRoutes registers routes related to incomes.
func registerIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade, documents portssvc.DocumentReaderSvc, f *utils.Formatter) {
	h := &incomeHandler{
		incomeService: incomeService,
		documents:     documents,
		formatter:     f,
	}

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", h.createIncome)
		incomes.GET("", h.listIncomes)
		incomes.DELETE("/:incomeID", h.deleteIncome)
	}
}

func (h *incomeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLogger(c)
	var req dto.CreateIncomeRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	income, err := h.incomeService.AddIncome(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create income")
		return
	}

	logger.Info("Income created", slog.String("income_id", income.ID))
	c.JSON(http.StatusCreated, dto.ToIncomeResponse(*income, memberName(c, h.documents, income.MemberID), h.formatter))
}

func (h *incomeHandler) listIncomes(c *gin.Context) {
	doc, err := h.documents.GetDocument(c.Request.Context())
	if err != nil {
		respondError(c, middleware.GetLogger(c), err, "Failed to list incomes")
		return
	}

	c.JSON(http.StatusOK, dto.ToListIncomeResponse(doc, h.formatter))
}

func (h *incomeHandler) deleteIncome(c *gin.Context) {
	logger := middleware.GetLogger(c)
	incomeID := c.Param("incomeID")

	if err := h.incomeService.DeleteIncome(c.Request.Context(), incomeID); err != nil {
		respondError(c, logger, err, "Failed to delete income")
		return
	}

	logger.Info("Income deleted", slog.String("income_id", incomeID))
	c.Status(http.StatusNoContent)
}
