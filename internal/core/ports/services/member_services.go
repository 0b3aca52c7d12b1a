package services

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/dto"
)

// MemberReaderSvc defines read operations for household members
type MemberReaderSvc interface {
	// ListMembers retrieves all members in insertion order.
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

// MemberWriterSvc defines write operations for household members
type MemberWriterSvc interface {
	// AddMember adds a member with a generated id.
	AddMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)

	// DeleteMember removes a member along with all of its assets, liabilities and incomes.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberSvcFacade combines all member-related service interfaces
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
