package models

import "time"

// FinanceDocument is the storage row holding one serialized financial document.
type FinanceDocument struct {
	DocumentKey string    `gorm:"column:document_key;primaryKey" json:"documentKey"`
	Payload     []byte    `gorm:"column:payload;not null" json:"payload"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName overrides the gorm default table name.
func (FinanceDocument) TableName() string {
	return "finance_documents"
}
