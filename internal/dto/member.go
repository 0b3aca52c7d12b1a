package dto

import "github.com/SscSPs/household_finance/internal/core/domain"

// CreateMemberRequest defines the data needed to add a household member.
type CreateMemberRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToMemberResponse converts a domain.Member to MemberResponse DTO
func ToMemberResponse(m domain.Member) MemberResponse {
	return MemberResponse{ID: m.ID, Name: m.Name}
}

// ToListMemberResponse converts a slice of domain.Member to MemberResponse DTOs
func ToListMemberResponse(members []domain.Member) []MemberResponse {
	res := make([]MemberResponse, len(members))
	for i, m := range members {
		res[i] = ToMemberResponse(m)
	}
	return res
}
