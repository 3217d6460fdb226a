package member

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/member"
)

type MemberServiceImpl struct {
	memberRepo member.MemberRepository
}

func NewMemberService(memberRepo member.MemberRepository) member.MemberService {
	return &MemberServiceImpl{memberRepo: memberRepo}
}

func (s *MemberServiceImpl) CreateMember(ctx context.Context, req member.CreateMemberRequest) (member.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return member.MemberResponse{}, err
	}

	joinDate, _ := time.Parse(time.DateOnly, req.JoinDate)
	var expireDate *time.Time
	if req.ExpireDate != nil {
		d, _ := time.Parse(time.DateOnly, *req.ExpireDate)
		expireDate = &d
	}

	entity := member.Member{
		Name:          req.Name,
		Phone:         req.Phone,
		CenterID:      req.CenterID,
		TrainerID:     req.TrainerID,
		JoinDate:      joinDate,
		ExpireDate:    expireDate,
		TotalSessions: req.TotalSessions,
		FreeSessions:  req.FreeSessions,
		Memo:          req.Memo,
		Status:        member.StatusActive,
	}

	if err := s.memberRepo.Create(ctx, &entity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return member.MemberResponse{}, member.ErrMemberPhoneExists
		}
		return member.MemberResponse{}, fmt.Errorf("failed to create member: %w", err)
	}

	return member.ToResponse(entity), nil
}

func (s *MemberServiceImpl) GetMember(ctx context.Context, id string) (member.MemberResponse, error) {
	entity, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return member.MemberResponse{}, err
	}
	return member.ToResponse(entity), nil
}

func (s *MemberServiceImpl) ListMembers(ctx context.Context, q member.ListMembersQuery) ([]member.MemberResponse, error) {
	entities, err := s.memberRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	responses := make([]member.MemberResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, member.ToResponse(entity))
	}
	return responses, nil
}

func (s *MemberServiceImpl) UpdateMember(ctx context.Context, req member.UpdateMemberRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.memberRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Phone != nil {
		entity.Phone = *req.Phone
	}
	if req.TrainerID != nil {
		entity.TrainerID = req.TrainerID
	}
	if req.ExpireDate != nil {
		d, _ := time.Parse(time.DateOnly, *req.ExpireDate)
		entity.ExpireDate = &d
	}
	if req.TotalSessions != nil {
		entity.TotalSessions = *req.TotalSessions
	}
	if req.FreeSessions != nil {
		entity.FreeSessions = *req.FreeSessions
	}
	if req.Memo != nil {
		entity.Memo = req.Memo
	}
	if req.Status != nil {
		entity.Status = member.MemberStatus(*req.Status)
	}

	return s.memberRepo.Update(ctx, &entity)
}

func (s *MemberServiceImpl) DeleteMember(ctx context.Context, id string) error {
	if _, err := s.memberRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.Delete(ctx, id)
}

func (s *MemberServiceImpl) ExpireOverdueMembers(ctx context.Context) error {
	expired, err := s.memberRepo.ExpireOverdue(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire overdue members: %w", err)
	}
	if expired > 0 {
		slog.Info("expired overdue memberships", "count", expired)
	}
	return nil
}
