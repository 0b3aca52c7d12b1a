package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/household_finance/internal/core/domain"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/dto"
	"github.com/SscSPs/household_finance/internal/middleware"
	"github.com/SscSPs/household_finance/internal/utils"
	"github.com/gin-gonic/gin"
)

// liabilityHandler handles HTTP requests related to liabilities and their installments.
type liabilityHandler struct {
	liabilityService portssvc.LiabilitySvcFacade
	documents        portssvc.DocumentReaderSvc
	formatter        *utils.Formatter
}

// newLiabilityHandler creates a new liabilityHandler.
func newLiabilityHandler(ls portssvc.LiabilitySvcFacade, documents portssvc.DocumentReaderSvc, f *utils.Formatter) *liabilityHandler {
	return &liabilityHandler{
		liabilityService: ls,
		documents:        documents,
		formatter:        f,
	}
}

// registerLiabilityRoutes registers routes related to liabilities.
func registerLiabilityRoutes(rg *gin.RouterGroup, liabilityService portssvc.LiabilitySvcFacade, documents portssvc.DocumentReaderSvc, f *utils.Formatter) {
	h := newLiabilityHandler(liabilityService, documents, f)

	liabilities := rg.Group("/liabilities")
	{
		liabilities.POST("", h.createLiability)
		liabilities.GET("", h.listLiabilities)
		liabilities.GET("/:liabilityID", h.getLiability)
		liabilities.DELETE("/:liabilityID", h.deleteLiability)
		liabilities.POST("/:liabilityID/installments/:installmentID/toggle", h.toggleInstallment)
		liabilities.PUT("/:liabilityID/installments/:installmentID", h.updateInstallmentAmount)
	}
}

// createLiability records a liability; its installment schedule is generated server-side.
func (h *liabilityHandler) createLiability(c *gin.Context) {
	logger := middleware.GetLogger(c)
	var req dto.CreateLiabilityRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	logger.Info("Received request to create liability",
		slog.String("member_id", req.MemberID),
		slog.String("repayment_type", string(req.RepaymentType)),
		slog.Int("installment_count", req.Count()),
	)

	liability, err := h.liabilityService.AddLiability(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create liability")
		return
	}

	logger.Info("Liability created", slog.String("liability_id", liability.ID), slog.Int("installments", len(liability.Installments)))
	c.JSON(http.StatusCreated, h.toResponse(c, liability))
}

func (h *liabilityHandler) listLiabilities(c *gin.Context) {
	doc, err := h.documents.GetDocument(c.Request.Context())
	if err != nil {
		respondError(c, middleware.GetLogger(c), err, "Failed to list liabilities")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLiabilityResponse(doc, h.formatter))
}

func (h *liabilityHandler) getLiability(c *gin.Context) {
	logger := middleware.GetLogger(c).With(slog.String("liability_id", c.Param("liabilityID")))

	liability, err := h.liabilityService.GetLiability(c.Request.Context(), c.Param("liabilityID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve liability")
		return
	}

	c.JSON(http.StatusOK, h.toResponse(c, liability))
}

func (h *liabilityHandler) deleteLiability(c *gin.Context) {
	logger := middleware.GetLogger(c)
	liabilityID := c.Param("liabilityID")

	if err := h.liabilityService.DeleteLiability(c.Request.Context(), liabilityID); err != nil {
		respondError(c, logger, err, "Failed to delete liability")
		return
	}

	logger.Info("Liability deleted", slog.String("liability_id", liabilityID))
	c.Status(http.StatusNoContent)
}

func (h *liabilityHandler) toggleInstallment(c *gin.Context) {
	logger := middleware.GetLogger(c).With(
		slog.String("liability_id", c.Param("liabilityID")),
		slog.String("installment_id", c.Param("installmentID")),
	)

	liability, err := h.liabilityService.ToggleInstallmentPaid(c.Request.Context(), c.Param("liabilityID"), c.Param("installmentID"))
	if err != nil {
		respondError(c, logger, err, "Failed to toggle installment")
		return
	}

	logger.Info("Installment paid flag toggled")
	c.JSON(http.StatusOK, h.toResponse(c, liability))
}

// updateInstallmentAmount accepts either an integer amount or digit-grouped text.
func (h *liabilityHandler) updateInstallmentAmount(c *gin.Context) {
	logger := middleware.GetLogger(c).With(
		slog.String("liability_id", c.Param("liabilityID")),
		slog.String("installment_id", c.Param("installmentID")),
	)
	var req dto.UpdateInstallmentAmountRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	amount, ok := req.Value()
	if !ok {
		logger.Warn("Installment amount missing")
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount or amountText is required"})
		return
	}

	liability, err := h.liabilityService.UpdateInstallmentAmount(c.Request.Context(), c.Param("liabilityID"), c.Param("installmentID"), amount)
	if err != nil {
		respondError(c, logger, err, "Failed to update installment")
		return
	}

	logger.Info("Installment amount updated", slog.Int64("amount", amount), slog.Int64("total_amount", liability.TotalAmount))
	c.JSON(http.StatusOK, h.toResponse(c, liability))
}

func (h *liabilityHandler) toResponse(c *gin.Context, l *domain.Liability) dto.LiabilityResponse {
	return dto.ToLiabilityResponse(*l, memberName(c, h.documents, l.MemberID), h.formatter)
}
