package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/bonus"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/commission"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/master/position"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/payment"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/ptsession"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/settlement"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/user"
)

// ==================== In-memory fakes ====================

type fakeSettlementRepo struct {
	// keyed user_id|year|month
	rows map[string]settlement.MonthlySettlement
}

func newFakeSettlementRepo() *fakeSettlementRepo {
	return &fakeSettlementRepo{rows: make(map[string]settlement.MonthlySettlement)}
}

func settlementKey(userID string, year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01") + "|" + userID
}

func (f *fakeSettlementRepo) Upsert(_ context.Context, s *settlement.MonthlySettlement) error {
	key := settlementKey(s.UserID, s.SettlementYear, s.SettlementMonth)
	if existing, ok := f.rows[key]; ok {
		s.ID = existing.ID
		s.Status = existing.Status
		s.Notes = existing.Notes
	} else if s.ID == "" {
		s.ID = "settlement-" + key
	}
	f.rows[key] = *s
	return nil
}

func (f *fakeSettlementRepo) GetByID(_ context.Context, id string) (settlement.MonthlySettlement, error) {
	for _, s := range f.rows {
		if s.ID == id {
			return s, nil
		}
	}
	return settlement.MonthlySettlement{}, settlement.ErrSettlementNotFound
}

func (f *fakeSettlementRepo) GetByUserPeriod(_ context.Context, userID string, year, month int) (settlement.MonthlySettlement, error) {
	if s, ok := f.rows[settlementKey(userID, year, month)]; ok {
		return s, nil
	}
	return settlement.MonthlySettlement{}, settlement.ErrSettlementNotFound
}

func (f *fakeSettlementRepo) List(_ context.Context, q settlement.ListSettlementsQuery) ([]settlement.MonthlySettlement, error) {
	var out []settlement.MonthlySettlement
	for _, s := range f.rows {
		if s.SettlementYear == q.Year && s.SettlementMonth == q.Month {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSettlementRepo) UpdateStatus(_ context.Context, id string, status settlement.Status) error {
	for key, s := range f.rows {
		if s.ID == id {
			s.Status = status
			f.rows[key] = s
			return nil
		}
	}
	return settlement.ErrSettlementNotFound
}

func (f *fakeSettlementRepo) UpdateNotes(_ context.Context, id string, notes *string) error {
	for key, s := range f.rows {
		if s.ID == id {
			s.Notes = notes
			f.rows[key] = s
			return nil
		}
	}
	return settlement.ErrSettlementNotFound
}

func (f *fakeSettlementRepo) Delete(_ context.Context, id string) error {
	for key, s := range f.rows {
		if s.ID == id {
			delete(f.rows, key)
			return nil
		}
	}
	return settlement.ErrSettlementNotFound
}

type fakePaymentRepo struct {
	payments []payment.Record
}

func (f *fakePaymentRepo) Create(_ context.Context, r payment.Record) (payment.Record, error) {
	f.payments = append(f.payments, r)
	return r, nil
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id string) (payment.Record, error) {
	return payment.Record{}, payment.ErrPaymentNotFound
}

func (f *fakePaymentRepo) ListByTrainerMonth(_ context.Context, trainerID string, year, month int) ([]payment.Record, error) {
	var out []payment.Record
	for _, p := range f.payments {
		if p.TrainerID == trainerID && p.PaymentDate.Year() == year && int(p.PaymentDate.Month()) == month {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByCenterMonth(_ context.Context, centerID string, year, month int) ([]payment.Record, error) {
	return nil, nil
}

func (f *fakePaymentRepo) Delete(_ context.Context, id string) error { return nil }

type fakeSessionRepo struct {
	counts ptsession.MonthlyCounts
}

func (f *fakeSessionRepo) Create(_ context.Context, s *ptsession.Session) error { return nil }
func (f *fakeSessionRepo) GetByID(_ context.Context, id string) (ptsession.Session, error) {
	return ptsession.Session{}, ptsession.ErrSessionNotFound
}
func (f *fakeSessionRepo) GetByIdempotencyKey(_ context.Context, key string) (ptsession.Session, error) {
	return ptsession.Session{}, ptsession.ErrSessionNotFound
}
func (f *fakeSessionRepo) List(_ context.Context, q ptsession.ListSessionsQuery) ([]ptsession.Session, error) {
	return nil, nil
}
func (f *fakeSessionRepo) CountByTrainerMonth(_ context.Context, trainerID string, year, month int) (ptsession.MonthlyCounts, error) {
	return f.counts, nil
}
func (f *fakeSessionRepo) Delete(_ context.Context, id string) error { return nil }

type fakeTierRepo struct {
	tiers []commission.Tier
}

func (f *fakeTierRepo) Create(_ context.Context, t commission.Tier) (commission.Tier, error) {
	return t, nil
}
func (f *fakeTierRepo) GetByID(_ context.Context, id string) (commission.Tier, error) {
	return commission.Tier{}, commission.ErrTierNotFound
}
func (f *fakeTierRepo) List(_ context.Context, filter commission.TierFilter) ([]commission.Tier, error) {
	return f.tiers, nil
}
func (f *fakeTierRepo) ListActive(_ context.Context) ([]commission.Tier, error) {
	return f.tiers, nil
}
func (f *fakeTierRepo) Update(_ context.Context, req commission.UpdateTierRequest) error { return nil }
func (f *fakeTierRepo) Delete(_ context.Context, id string) error                        { return nil }

type fakeRuleRepo struct {
	rules []bonus.Rule
}

func (f *fakeRuleRepo) Create(_ context.Context, r bonus.Rule) (bonus.Rule, error) { return r, nil }
func (f *fakeRuleRepo) GetByID(_ context.Context, id string) (bonus.Rule, error) {
	return bonus.Rule{}, bonus.ErrRuleNotFound
}
func (f *fakeRuleRepo) List(_ context.Context) ([]bonus.Rule, error)                { return f.rules, nil }
func (f *fakeRuleRepo) Update(_ context.Context, req bonus.UpdateRuleRequest) error { return nil }
func (f *fakeRuleRepo) Delete(_ context.Context, id string) error                   { return nil }

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) List(_ context.Context, q user.ListUsersQuery) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) ListTrainersByCenter(_ context.Context, centerID string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error                     { return nil }
func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error          { return nil }
func (f *fakeUserRepo) UpdateProfileImage(_ context.Context, id string, p *string) error { return nil }
func (f *fakeUserRepo) RecordLogin(_ context.Context, id string) error                   { return nil }
func (f *fakeUserRepo) RecordFailedLogin(_ context.Context, id string, attempts int, locked bool) error {
	return nil
}
func (f *fakeUserRepo) Delete(_ context.Context, id string) error { return nil }

type fakePositionRepo struct {
	positions map[string]position.Position
}

func (f *fakePositionRepo) Create(_ context.Context, p *position.Position) error { return nil }
func (f *fakePositionRepo) GetByID(_ context.Context, id string) (position.Position, error) {
	if p, ok := f.positions[id]; ok {
		return p, nil
	}
	return position.Position{}, position.ErrPositionNotFound
}
func (f *fakePositionRepo) List(_ context.Context, activeOnly bool) ([]position.Position, error) {
	return nil, nil
}
func (f *fakePositionRepo) Update(_ context.Context, p *position.Position) error { return nil }
func (f *fakePositionRepo) Delete(_ context.Context, id string) error            { return nil }

// ==================== Fixture ====================

const (
	testTrainerID  = "trainer-1"
	testCenterID   = "center-1"
	testPositionID = "position-1"
)

type fixture struct {
	settlements *fakeSettlementRepo
	payments    *fakePaymentRepo
	sessions    *fakeSessionRepo
	tiers       *fakeTierRepo
	rules       *fakeRuleRepo
	svc         settlement.SettlementService
}

func newFixture() *fixture {
	posID := testPositionID
	f := &fixture{
		settlements: newFakeSettlementRepo(),
		payments:    &fakePaymentRepo{},
		sessions:    &fakeSessionRepo{},
		tiers:       &fakeTierRepo{},
		rules:       &fakeRuleRepo{},
	}
	users := &fakeUserRepo{users: map[string]user.User{
		testTrainerID: {
			ID:         testTrainerID,
			Name:       "Trainer One",
			Role:       user.RoleTeamMember,
			PositionID: &posID,
			CenterID:   testCenterID,
			Status:     user.StatusActive,
		},
	}}
	positions := &fakePositionRepo{positions: map[string]position.Position{
		testPositionID: {ID: testPositionID, Code: "TRAINER", Name: "Trainer", BaseSalary: 2_000_000},
	}}
	f.svc = NewSettlementService(f.settlements, f.payments, f.sessions, f.tiers, f.rules, users, positions)
	return f
}

func (f *fixture) addPayment(date string, amount int64) {
	d, _ := time.Parse(time.DateOnly, date)
	f.payments.payments = append(f.payments.payments, payment.Record{
		TrainerID:     testTrainerID,
		CenterID:      testCenterID,
		PaymentAmount: amount,
		PaymentDate:   d,
	})
}

// ==================== Tests ====================

func TestGenerate_ComposesAllComponents(t *testing.T) {
	f := newFixture()

	// June settlement carries 500k into July.
	require.NoError(t, f.settlements.Upsert(context.Background(), &settlement.MonthlySettlement{
		UserID: testTrainerID, SettlementYear: 2024, SettlementMonth: 6,
		CarryoverFromPrev: 500_000,
	}))

	f.addPayment("2024-07-03", 3_000_000)
	f.addPayment("2024-07-10", 2_500_000)
	f.sessions.counts = ptsession.MonthlyCounts{Regular: 10, Free: 2}
	f.tiers.tiers = []commission.Tier{
		{ID: "tier-1", MinRevenue: 5_000_000, CommissionPerSession: 30_000, MonthlyCommission: 200_000, IsActive: true},
	}
	f.rules.rules = []bonus.Rule{
		{ID: "rule-1", Name: "daily 3M", TargetType: bonus.TargetDaily, ThresholdAmount: 3_000_000, AchievementCount: 1, BonusAmount: 100_000},
	}

	resp, err := f.svc.Generate(context.Background(), settlement.GenerateSettlementRequest{
		UserID: testTrainerID, Year: 2024, Month: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5_500_000), resp.ActualRevenue)
	assert.Equal(t, int64(500_000), resp.CarryoverFromPrev)
	assert.Equal(t, int64(6_000_000), resp.TotalRevenue)
	assert.Equal(t, int64(6_000_000), resp.SettlementRevenue)
	assert.Equal(t, int64(0), resp.RemainingAmount)
	assert.Equal(t, int64(2_000_000), resp.BaseSalary)
	assert.Equal(t, 10, resp.RegularPTCount)
	assert.Equal(t, 2, resp.FreePTCount)
	assert.Equal(t, int64(300_000), resp.PTCommissionTotal)
	assert.Equal(t, int64(200_000), resp.MonthlyCommission)
	assert.Equal(t, int64(100_000), resp.Bonus)
	assert.Equal(t, int64(2_600_000), resp.TotalSettlement)
	assert.True(t, resp.TierResolved)
	assert.Equal(t, settlement.StatusDraft, resp.Status)
}

func TestGenerate_NoPriorSettlementMeansZeroCarryover(t *testing.T) {
	f := newFixture()
	f.addPayment("2024-07-03", 1_000_000)

	resp, err := f.svc.Generate(context.Background(), settlement.GenerateSettlementRequest{
		UserID: testTrainerID, Year: 2024, Month: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.CarryoverFromPrev)
	assert.Equal(t, int64(1_000_000), resp.TotalRevenue)
}

func TestGenerate_JanuaryCarryoverReadsDecember(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.settlements.Upsert(context.Background(), &settlement.MonthlySettlement{
		UserID: testTrainerID, SettlementYear: 2023, SettlementMonth: 12,
		CarryoverFromPrev: 250_000,
	}))

	resp, err := f.svc.Generate(context.Background(), settlement.GenerateSettlementRequest{
		UserID: testTrainerID, Year: 2024, Month: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(250_000), resp.CarryoverFromPrev)
}

func TestGenerate_UnresolvedTierZeroesCommission(t *testing.T) {
	f := newFixture()
	f.addPayment("2024-07-03", 1_000_000)
	f.sessions.counts = ptsession.MonthlyCounts{Regular: 5}
	f.tiers.tiers = []commission.Tier{
		{ID: "tier-1", MinRevenue: 5_000_000, CommissionPerSession: 30_000, MonthlyCommission: 200_000, IsActive: true},
	}

	resp, err := f.svc.Generate(context.Background(), settlement.GenerateSettlementRequest{
		UserID: testTrainerID, Year: 2024, Month: 7,
	})
	require.NoError(t, err)

	assert.False(t, resp.TierResolved)
	assert.Equal(t, int64(0), resp.PTCommissionTotal)
	assert.Equal(t, int64(0), resp.MonthlyCommission)
	assert.Equal(t, int64(2_000_000), resp.TotalSettlement)
}

func TestGenerate_RegenerationOverwritesDraft(t *testing.T) {
	f := newFixture()
	f.addPayment("2024-07-03", 1_000_000)

	first, err := f.svc.Generate(context.Background(), settlement.GenerateSettlementRequest{
		UserID: testTrainerID, Year: 2024, Month: 7,
	})
	require.NoError(t, err)

	f.addPayment("2024-07-20", 2_000_000)
	second, err := f.svc.Generate(context.Background(), settlement.GenerateSettlementRequest{
		UserID: testTrainerID, Year: 2024, Month: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(3_000_000), second.ActualRevenue)
}

func TestGenerate_UnknownTrainer(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Generate(context.Background(), settlement.GenerateSettlementRequest{
		UserID: "missing", Year: 2024, Month: 7,
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateStatus_WorkflowTransitions(t *testing.T) {
	f := newFixture()
	f.addPayment("2024-07-03", 1_000_000)

	resp, err := f.svc.Generate(context.Background(), settlement.GenerateSettlementRequest{
		UserID: testTrainerID, Year: 2024, Month: 7,
	})
	require.NoError(t, err)

	// draft -> paid skips confirmation
	err = f.svc.UpdateStatus(context.Background(), settlement.UpdateStatusRequest{ID: resp.ID, Status: "paid"})
	assert.ErrorIs(t, err, settlement.ErrInvalidTransition)

	require.NoError(t, f.svc.UpdateStatus(context.Background(), settlement.UpdateStatusRequest{ID: resp.ID, Status: "confirmed"}))
	require.NoError(t, f.svc.UpdateStatus(context.Background(), settlement.UpdateStatusRequest{ID: resp.ID, Status: "paid"}))

	// paid is terminal
	err = f.svc.UpdateStatus(context.Background(), settlement.UpdateStatusRequest{ID: resp.ID, Status: "confirmed"})
	assert.ErrorIs(t, err, settlement.ErrAlreadyPaid)
}

func TestDelete_PaidSettlementIsImmutable(t *testing.T) {
	f := newFixture()
	f.addPayment("2024-07-03", 1_000_000)

	resp, err := f.svc.Generate(context.Background(), settlement.GenerateSettlementRequest{
		UserID: testTrainerID, Year: 2024, Month: 7,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateStatus(context.Background(), settlement.UpdateStatusRequest{ID: resp.ID, Status: "confirmed"}))
	require.NoError(t, f.svc.UpdateStatus(context.Background(), settlement.UpdateStatusRequest{ID: resp.ID, Status: "paid"}))

	assert.ErrorIs(t, f.svc.Delete(context.Background(), resp.ID), settlement.ErrAlreadyPaid)
}

func TestCalculateBonus_PreviewDoesNotPersist(t *testing.T) {
	f := newFixture()
	f.addPayment("2024-07-03", 3_000_000)
	f.rules.rules = []bonus.Rule{
		{ID: "rule-1", Name: "daily 3M", TargetType: bonus.TargetDaily, ThresholdAmount: 3_000_000, AchievementCount: 1, BonusAmount: 100_000},
	}

	resp, err := f.svc.CalculateBonus(context.Background(), testTrainerID, 2024, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(100_000), resp.TotalBonus)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "rule-1", resp.Details[0].RuleID)
	assert.Empty(t, f.settlements.rows)
}
