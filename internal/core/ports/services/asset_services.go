package services

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/dto"
)

// AssetReaderSvc defines read operations for assets
type AssetReaderSvc interface {
	// ListAssets retrieves all assets in insertion order.
	ListAssets(ctx context.Context) ([]domain.Asset, error)
}

// AssetWriterSvc defines write operations for assets
type AssetWriterSvc interface {
	// AddAsset records a new asset owned by an existing member.
	AddAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error)

	// UpdateAssetAmount sets the current value of an asset.
	UpdateAssetAmount(ctx context.Context, assetID string, amount int64) (*domain.Asset, error)

	// DeleteAsset removes an asset.
	DeleteAsset(ctx context.Context, assetID string) error
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
