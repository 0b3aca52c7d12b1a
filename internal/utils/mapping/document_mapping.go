package mapping

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// EncodeDocument serializes a document into the JSON blob stored by every
// persistence backend.
func EncodeDocument(doc domain.FinancialDocument) ([]byte, error) {
	data, err := json.Marshal(doc.Clone())
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// DecodeDocument parses and validates a stored JSON blob. Missing collections
// come back empty. Structural problems are reported as apperrors.ErrValidation.
func DecodeDocument(data []byte) (*domain.FinancialDocument, error) {
	var doc domain.FinancialDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode document: %v", apperrors.ErrValidation, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: stored document is invalid: %v", apperrors.ErrValidation, err)
	}
	doc = doc.Clone()
	return &doc, nil
}

// ToModelDocument wraps an encoded document in its storage row.
func ToModelDocument(key string, doc domain.FinancialDocument, now time.Time) (models.FinanceDocument, error) {
	payload, err := EncodeDocument(doc)
	if err != nil {
		return models.FinanceDocument{}, err
	}
	return models.FinanceDocument{
		DocumentKey: key,
		Payload:     payload,
		UpdatedAt:   now,
	}, nil
}

// ToDomainDocument decodes the payload of a storage row.
func ToDomainDocument(m models.FinanceDocument) (*domain.FinancialDocument, error) {
	return DecodeDocument(m.Payload)
}
