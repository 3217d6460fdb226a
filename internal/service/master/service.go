package master

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/master/position"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/master/team"
)

type MasterService interface {
	// Position operations
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetPosition(ctx context.Context, id string) (position.PositionResponse, error)
	ListPositions(ctx context.Context, activeOnly bool) ([]position.PositionResponse, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error
	DeletePosition(ctx context.Context, id string) error

	// Team operations
	CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error)
	GetTeam(ctx context.Context, id string) (team.TeamResponse, error)
	ListTeams(ctx context.Context, centerID *string) ([]team.TeamResponse, error)
	UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) error
	DeleteTeam(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	positionRepo position.PositionRepository
	teamRepo     team.TeamRepository
}

func NewMasterService(
	positionRepo position.PositionRepository,
	teamRepo team.TeamRepository,
) MasterService {
	return &masterServiceImpl{
		positionRepo: positionRepo,
		teamRepo:     teamRepo,
	}
}

// ==================== POSITION OPERATIONS ====================

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	effectiveDate, _ := time.Parse(time.DateOnly, req.EffectiveDate)

	entity := position.Position{
		Code:          req.Code,
		Name:          req.Name,
		Level:         req.Level,
		BaseSalary:    req.BaseSalary,
		EffectiveDate: effectiveDate,
		Description:   req.Description,
		IsActive:      true,
	}

	if err := s.positionRepo.Create(ctx, &entity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return position.PositionResponse{}, position.ErrPositionCodeExists
		}
		return position.PositionResponse{}, fmt.Errorf("failed to create position: %w", err)
	}

	return position.ToResponse(entity), nil
}

func (s *masterServiceImpl) GetPosition(ctx context.Context, id string) (position.PositionResponse, error) {
	entity, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return position.ToResponse(entity), nil
}

func (s *masterServiceImpl) ListPositions(ctx context.Context, activeOnly bool) ([]position.PositionResponse, error) {
	entities, err := s.positionRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, position.ToResponse(entity))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.positionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Level != nil {
		entity.Level = *req.Level
	}
	if req.BaseSalary != nil {
		entity.BaseSalary = *req.BaseSalary
	}
	if req.Description != nil {
		entity.Description = req.Description
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	return s.positionRepo.Update(ctx, &entity)
}

func (s *masterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	if _, err := s.positionRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.positionRepo.Delete(ctx, id)
}

// ==================== TEAM OPERATIONS ====================

func (s *masterServiceImpl) CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	entity := team.Team{
		Name:     req.Name,
		CenterID: req.CenterID,
		LeaderID: req.LeaderID,
		IsActive: true,
	}

	if err := s.teamRepo.Create(ctx, &entity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return team.TeamResponse{}, team.ErrTeamNameExists
		}
		return team.TeamResponse{}, fmt.Errorf("failed to create team: %w", err)
	}

	return team.ToResponse(entity), nil
}

func (s *masterServiceImpl) GetTeam(ctx context.Context, id string) (team.TeamResponse, error) {
	entity, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.TeamResponse{}, err
	}
	return team.ToResponse(entity), nil
}

func (s *masterServiceImpl) ListTeams(ctx context.Context, centerID *string) ([]team.TeamResponse, error) {
	entities, err := s.teamRepo.List(ctx, centerID)
	if err != nil {
		return nil, err
	}

	responses := make([]team.TeamResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, team.ToResponse(entity))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.teamRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.LeaderID != nil {
		entity.LeaderID = req.LeaderID
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	return s.teamRepo.Update(ctx, &entity)
}

func (s *masterServiceImpl) DeleteTeam(ctx context.Context, id string) error {
	if _, err := s.teamRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.teamRepo.Delete(ctx, id)
}
