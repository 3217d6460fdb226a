package ptsession

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/member"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/ptsession"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
	"github.com/vitalfit/vitalfit-backend-go/internal/repository/postgresql"
)

type SessionServiceImpl struct {
	db          *database.DB
	sessionRepo ptsession.SessionRepository
	memberRepo  member.MemberRepository
}

func NewSessionService(
	db *database.DB,
	sessionRepo ptsession.SessionRepository,
	memberRepo member.MemberRepository,
) ptsession.SessionService {
	return &SessionServiceImpl{
		db:          db,
		sessionRepo: sessionRepo,
		memberRepo:  memberRepo,
	}
}

func (s *SessionServiceImpl) CreateSession(ctx context.Context, req ptsession.CreateSessionRequest) (ptsession.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return ptsession.SessionResponse{}, err
	}

	// Retried submissions return the original row.
	if req.IdempotencyKey != nil {
		existing, err := s.sessionRepo.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err == nil {
			return ptsession.ToResponse(existing), nil
		}
		if !errors.Is(err, ptsession.ErrSessionNotFound) {
			return ptsession.SessionResponse{}, err
		}
	}

	mbr, err := s.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		return ptsession.SessionResponse{}, err
	}

	sessionType := ptsession.SessionType(req.SessionType)
	switch sessionType {
	case ptsession.TypeRegular:
		if mbr.RemainingSessions() <= 0 {
			return ptsession.SessionResponse{}, member.ErrNoRemainingSession
		}
	case ptsession.TypeFree:
		if mbr.FreeSessions <= 0 {
			return ptsession.SessionResponse{}, member.ErrNoRemainingSession
		}
	}

	sessionDate, _ := time.Parse(time.DateOnly, req.SessionDate)

	entity := ptsession.Session{
		MemberID:       req.MemberID,
		TrainerID:      req.TrainerID,
		CenterID:       mbr.CenterID,
		SessionType:    sessionType,
		SessionDate:    sessionDate,
		SignatureData:  req.SignatureData,
		IdempotencyKey: req.IdempotencyKey,
		Notes:          req.Notes,
	}
	if req.SignatureData != nil {
		now := time.Now()
		entity.SignatureTime = &now
	}

	// Logging the session and consuming the package must land together.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.sessionRepo.Create(txCtx, &entity); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				return ptsession.ErrDuplicateSession
			}
			return fmt.Errorf("failed to log session: %w", err)
		}

		usedDelta, freeDelta := 1, 0
		if sessionType == ptsession.TypeFree {
			usedDelta, freeDelta = 0, -1
		}
		if err := s.memberRepo.AdjustSessions(txCtx, req.MemberID, usedDelta, freeDelta); err != nil {
			return fmt.Errorf("failed to adjust member sessions: %w", err)
		}
		return nil
	})
	if err != nil {
		// A concurrent retry may have slipped in; surface the original.
		if errors.Is(err, ptsession.ErrDuplicateSession) && req.IdempotencyKey != nil {
			if existing, getErr := s.sessionRepo.GetByIdempotencyKey(ctx, *req.IdempotencyKey); getErr == nil {
				return ptsession.ToResponse(existing), nil
			}
		}
		return ptsession.SessionResponse{}, err
	}

	return ptsession.ToResponse(entity), nil
}

func (s *SessionServiceImpl) GetSession(ctx context.Context, id string) (ptsession.SessionResponse, error) {
	entity, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return ptsession.SessionResponse{}, err
	}
	return ptsession.ToResponse(entity), nil
}

func (s *SessionServiceImpl) ListSessions(ctx context.Context, q ptsession.ListSessionsQuery) ([]ptsession.SessionResponse, error) {
	entities, err := s.sessionRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	responses := make([]ptsession.SessionResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, ptsession.ToResponse(entity))
	}
	return responses, nil
}

func (s *SessionServiceImpl) CountByTrainerMonth(ctx context.Context, trainerID string, year, month int) (ptsession.MonthlyCounts, error) {
	return s.sessionRepo.CountByTrainerMonth(ctx, trainerID, year, month)
}

func (s *SessionServiceImpl) DeleteSession(ctx context.Context, id string) error {
	entity, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Undo the package consumption along with the row.
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.sessionRepo.Delete(txCtx, id); err != nil {
			return err
		}

		usedDelta, freeDelta := -1, 0
		if entity.SessionType == ptsession.TypeFree {
			usedDelta, freeDelta = 0, 1
		}
		return s.memberRepo.AdjustSessions(txCtx, entity.MemberID, usedDelta, freeDelta)
	})
}
