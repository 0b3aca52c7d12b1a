package dto

import (
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/utils"
)

// CreateAssetRequest defines the data needed to record an asset.
type CreateAssetRequest struct {
	MemberID string           `json:"memberId" binding:"required"`
	Type     domain.AssetType `json:"type" binding:"required,oneof=cash bank_account gold_currency real_estate vehicle other"`
	Title    string           `json:"title" binding:"required,max=200"`
	Amount   int64            `json:"amount" binding:"min=0"`
}

// UpdateAssetAmountRequest sets a new value for an existing asset.
// Amount is a pointer so that an explicit zero can be told apart from a missing field.
type UpdateAssetAmountRequest struct {
	Amount *int64 `json:"amount" binding:"required,min=0"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	ID              string           `json:"id"`
	MemberID        string           `json:"memberId"`
	MemberName      string           `json:"memberName"`
	Type            domain.AssetType `json:"type"`
	TypeLabel       string           `json:"typeLabel"`
	Title           string           `json:"title"`
	Amount          int64            `json:"amount"`
	AmountFormatted string           `json:"amountFormatted"`
}

// ToAssetResponse converts a domain.Asset to AssetResponse DTO
func ToAssetResponse(a domain.Asset, memberName string, f *utils.Formatter) AssetResponse {
	return AssetResponse{
		ID:              a.ID,
		MemberID:        a.MemberID,
		MemberName:      memberName,
		Type:            a.Type,
		TypeLabel:       a.Type.Label(),
		Title:           a.Title,
		Amount:          a.Amount,
		AmountFormatted: f.FormatCurrency(a.Amount),
	}
}

// ToListAssetResponse converts the assets of doc to AssetResponse DTOs
func ToListAssetResponse(doc domain.FinancialDocument, f *utils.Formatter) []AssetResponse {
	res := make([]AssetResponse, len(doc.Assets))
	for i, a := range doc.Assets {
		res[i] = ToAssetResponse(a, doc.MemberName(a.MemberID), f)
	}
	return res
}
