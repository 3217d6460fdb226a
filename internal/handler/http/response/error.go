package response

import (
	"errors"
	"net/http"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/auth"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/bonus"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/center"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/commission"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/master/position"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/master/team"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/member"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/notice"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/payment"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/ptsession"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/settlement"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/user"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, user.ErrAccountLocked):
		Forbidden(w, "Account is locked after too many failed logins")
	case errors.Is(err, user.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid refresh token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")

	// Center / master data errors
	case errors.Is(err, center.ErrCenterNotFound):
		NotFound(w, "Center not found")
	case errors.Is(err, center.ErrCenterNameExists):
		Conflict(w, "Center name already exists")
	case errors.Is(err, center.ErrCenterImageNotFound):
		NotFound(w, "Center image not found")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionCodeExists):
		Conflict(w, "Position code already exists")
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrTeamNameExists):
		Conflict(w, "Team name already exists in this center")

	// Member domain errors
	case errors.Is(err, member.ErrMemberNotFound):
		NotFound(w, "Member not found")
	case errors.Is(err, member.ErrMemberPhoneExists):
		Conflict(w, "Phone number already registered")
	case errors.Is(err, member.ErrNoRemainingSession):
		BadRequest(w, "Member has no remaining sessions", nil)

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrTrainerNotFound):
		NotFound(w, "Trainer not found")
	case errors.Is(err, payment.ErrInvalidPeriod):
		BadRequest(w, "Invalid settlement period", nil)

	// PT session domain errors
	case errors.Is(err, ptsession.ErrSessionNotFound):
		NotFound(w, "Session not found")
	case errors.Is(err, ptsession.ErrDuplicateSession):
		Conflict(w, "Session already recorded")

	// Commission / bonus domain errors
	case errors.Is(err, commission.ErrTierNotFound):
		NotFound(w, "Commission tier not found")
	case errors.Is(err, commission.ErrNoMatchingTier):
		NotFound(w, "No commission tier matches the given revenue")
	case errors.Is(err, bonus.ErrRuleNotFound):
		NotFound(w, "Bonus rule not found")

	// Settlement domain errors
	case errors.Is(err, settlement.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")
	case errors.Is(err, settlement.ErrAlreadyPaid):
		Conflict(w, "Settlement is already paid")
	case errors.Is(err, settlement.ErrInvalidTransition):
		Conflict(w, "Invalid settlement status transition")

	// Notice domain errors
	case errors.Is(err, notice.ErrNoticeNotFound):
		NotFound(w, "Notice not found")
	case errors.Is(err, notice.ErrCommentNotFound):
		NotFound(w, "Comment not found")
	case errors.Is(err, notice.ErrCommentDepthExceeded):
		BadRequest(w, "Comment nesting depth exceeded", nil)
	case errors.Is(err, notice.ErrNotNoticeRecipient):
		Forbidden(w, "Not a recipient of this notice")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
