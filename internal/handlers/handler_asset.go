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

// assetHandler handles HTTP requests related to assets.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
	documents    portssvc.DocumentReaderSvc
	formatter    *utils.Formatter
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(as portssvc.AssetSvcFacade, documents portssvc.DocumentReaderSvc, f *utils.Formatter) *assetHandler {
	return &assetHandler{
		assetService: as,
		documents:    documents,
		formatter:    f,
	}
}

// registerAssetRoutes registers routes related to assets.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade, documents portssvc.DocumentReaderSvc, f *utils.Formatter) {
	h := newAssetHandler(assetService, documents, f)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.PATCH("/:assetID", h.updateAssetAmount)
		assets.DELETE("/:assetID", h.deleteAsset)
	}
}

func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLogger(c)
	var req dto.CreateAssetRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	asset, err := h.assetService.AddAsset(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create asset")
		return
	}

	logger.Info("Asset created", slog.String("asset_id", asset.ID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(*asset, memberName(c, h.documents, asset.MemberID), h.formatter))
}

// listAssets renders every asset from one document snapshot so member names match.
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLogger(c)

	doc, err := h.documents.GetDocument(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list assets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetResponse(doc, h.formatter))
}

func (h *assetHandler) updateAssetAmount(c *gin.Context) {
	logger := middleware.GetLogger(c).With(slog.String("asset_id", c.Param("assetID")))
	var req dto.UpdateAssetAmountRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	asset, err := h.assetService.UpdateAssetAmount(c.Request.Context(), c.Param("assetID"), *req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to update asset")
		return
	}

	logger.Info("Asset amount updated", slog.Int64("amount", asset.Amount))
	c.JSON(http.StatusOK, dto.ToAssetResponse(*asset, memberName(c, h.documents, asset.MemberID), h.formatter))
}

func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLogger(c)
	assetID := c.Param("assetID")

	if err := h.assetService.DeleteAsset(c.Request.Context(), assetID); err != nil {
		respondError(c, logger, err, "Failed to delete asset")
		return
	}

	logger.Info("Asset deleted", slog.String("asset_id", assetID))
	c.Status(http.StatusNoContent)
}
