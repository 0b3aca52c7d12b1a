// Package redis stores the financial document under a single Redis key.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	"github.com/SscSPs/household_finance/internal/utils/mapping"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "household_finance:document:"

// Config holds Redis connection configuration
type Config struct {
	Addr     string
	Password string
	DB       int
}

// client is the part of the go-redis API the repository needs.
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// DocumentRepository keeps the encoded document as a plain Redis string without expiry.
type DocumentRepository struct {
	client client
	key    string
}

// NewDocumentRepository connects to Redis and checks the connection.
func NewDocumentRepository(ctx context.Context, cfg Config, documentKey string) (*DocumentRepository, *redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewDocumentRepositoryWithClient(rdb, documentKey), rdb, nil
}

// NewDocumentRepositoryWithClient creates a repository on an existing client.
func NewDocumentRepositoryWithClient(c client, documentKey string) *DocumentRepository {
	return &DocumentRepository{client: c, key: keyPrefix + documentKey}
}

var _ portsrepo.DocumentRepositoryFacade = (*DocumentRepository)(nil)

// LoadDocument reads the stored document.
func (r *DocumentRepository) LoadDocument(ctx context.Context) (*domain.FinancialDocument, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load document %s: %w", r.key, err)
	}
	doc, err := mapping.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", r.key, err)
	}
	return doc, nil
}

// SaveDocument replaces the stored document.
func (r *DocumentRepository) SaveDocument(ctx context.Context, doc domain.FinancialDocument) error {
	data, err := mapping.EncodeDocument(doc)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document %s: %w", r.key, err)
	}
	return nil
}
