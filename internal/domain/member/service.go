package member

import "context"

// MemberService defines business logic for gym members
type MemberService interface {
	CreateMember(ctx context.Context, req CreateMemberRequest) (MemberResponse, error)
	GetMember(ctx context.Context, id string) (MemberResponse, error)
	ListMembers(ctx context.Context, q ListMembersQuery) ([]MemberResponse, error)
	UpdateMember(ctx context.Context, req UpdateMemberRequest) error
	DeleteMember(ctx context.Context, id string) error
	// ExpireOverdueMembers is invoked by the scheduler to flip active
	// members past their expiry date to expired.
	ExpireOverdueMembers(ctx context.Context) error
}
