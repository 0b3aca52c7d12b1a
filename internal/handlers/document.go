package handlers

import (
	"net/http"

	"github.com/SscSPs/household_finance/internal/core/domain"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerDocumentRoutes exposes the raw financial document.
func registerDocumentRoutes(rg *gin.RouterGroup, documents portssvc.DocumentReaderSvc) {
	rg.GET("/document", func(c *gin.Context) {
		doc, err := documents.GetDocument(c.Request.Context())
		if err != nil {
			respondError(c, middleware.GetLogger(c), err, "Failed to load document")
			return
		}
		c.JSON(http.StatusOK, doc)
	})
}

// memberName resolves a member's display name for a single-entity response.
// A failed lookup falls back to the unknown-member placeholder.
func memberName(c *gin.Context, documents portssvc.DocumentReaderSvc, memberID string) string {
	doc, err := documents.GetDocument(c.Request.Context())
	if err != nil {
		return domain.UnknownMemberName
	}
	return doc.MemberName(memberID)
}
