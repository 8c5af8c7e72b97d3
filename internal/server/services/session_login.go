package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Login checks the password and either issues a session or, when step-up is
// on, sends a login code and reports StateStepUpPending. An unknown email
// and a wrong password both fail with common.ErrInvalidCredentials.
func (s *SessionService) Login(ctx context.Context, email, password string, origin models.Origin) (*LoginResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, validationError("credentials", "email and password are required")
	}

	acc, err := s.repos.Accounts(s.runner.Conn()).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.VerifySecret(password, s.dummyHash)
			s.audit.Record(ctx, "", models.EventLoginFailed, false,
				map[string]any{"email": email, "reason": "user_not_found"}, origin)
			return nil, common.ErrInvalidCredentials
		}
		return nil, internalError(err)
	}

	if !acc.IsActive {
		s.audit.Failure(ctx, acc.ID, models.EventLoginFailed, "account_inactive", origin)
		return nil, common.ErrAccountInactive
	}

	if !s.hasher.VerifySecret(password, acc.PasswordHash) {
		s.audit.Failure(ctx, acc.ID, models.EventLoginFailed, "invalid_password", origin)
		return nil, common.ErrInvalidCredentials
	}

	if acc.StepUpEnabled {
		code, err := s.secrets.Issue(ctx, acc.ID, models.PurposeLoginStepUp, s.cfg.OTPTTL)
		if err != nil {
			return nil, internalError(err)
		}
		s.deliver(ctx, acc.ID, acc.Phone, "Your login OTP is: "+code)
		s.audit.Record(ctx, acc.ID, models.EventLogin2FARequired, true, nil, origin)
		return &LoginResult{State: StateStepUpPending, AccountID: acc.ID, StepUpEnabled: true}, nil
	}

	pair, err := s.issueSession(ctx, acc, origin)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, acc.ID, models.EventLoginSuccess, true, nil, origin)
	return &LoginResult{State: StateAuthenticated, AccountID: acc.ID, Tokens: pair}, nil
}

// EnableStepUp sends an enable-step-up code to the phone on file.
func (s *SessionService) EnableStepUp(ctx context.Context, accountID string, origin models.Origin) error {
	acc, err := s.account(ctx, accountID)
	if err != nil {
		return err
	}
	if acc.StepUpEnabled {
		s.audit.Failure(ctx, acc.ID, models.Event2FAEnableFailed, "already_enabled", origin)
		return common.ErrAlreadyEnabled
	}
	if acc.Phone == "" {
		s.audit.Failure(ctx, acc.ID, models.Event2FAEnableFailed, "phone_required", origin)
		return common.ErrPhoneRequired
	}

	code, err := s.secrets.Issue(ctx, acc.ID, models.PurposeEnableStepUp, s.cfg.OTPTTL)
	if err != nil {
		return internalError(err)
	}
	s.deliver(ctx, acc.ID, acc.Phone, "Your 2FA setup OTP is: "+code)
	s.audit.Record(ctx, acc.ID, models.Event2FAEnableRequested, true, nil, origin)
	s.log.Info(ctx, "step-up enable requested", "account_id", acc.ID)
	return nil
}

// VerifyOneTimeSecret consumes a step-up code. For login-step-up it returns a
// new session; for enable-step-up it turns step-up on and returns nil tokens.
// Store failures are returned unchanged.
func (s *SessionService) VerifyOneTimeSecret(ctx context.Context, accountID, code string, purpose models.Purpose, origin models.Origin) (*TokenPair, error) {
	if !purpose.IsOTP() {
		return nil, validationError("purpose", "must be login-step-up or enable-step-up")
	}

	if err := s.secrets.Verify(ctx, accountID, purpose, code); err != nil {
		reason, business := otpFailureReason(err)
		if !business {
			return nil, internalError(err)
		}
		s.audit.Record(ctx, accountID, models.EventOTPVerifyFailed, false,
			map[string]any{"reason": reason, "purpose": string(purpose)}, origin)
		return nil, err
	}

	switch purpose {
	case models.PurposeEnableStepUp:
		if err := s.repos.Accounts(s.runner.Conn()).SetStepUpEnabled(ctx, accountID, true, s.now()); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.ErrorNotFound
			}
			return nil, internalError(err)
		}
		s.audit.Record(ctx, accountID, models.Event2FAEnabled, true, nil, origin)
		s.log.Info(ctx, "step-up enabled", "account_id", accountID)
		return nil, nil

	case models.PurposeLoginStepUp:
		acc, err := s.account(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if !acc.IsActive {
			s.audit.Failure(ctx, acc.ID, models.EventLoginFailed, "account_inactive", origin)
			return nil, common.ErrAccountInactive
		}
		pair, err := s.issueSession(ctx, acc, origin)
		if err != nil {
			return nil, err
		}
		s.audit.Record(ctx, acc.ID, models.EventLoginSuccessWith2FA, true, nil, origin)
		return pair, nil

	default:
		return nil, validationError("purpose", "must be login-step-up or enable-step-up")
	}
}

func otpFailureReason(err error) (string, bool) {
	switch {
	case errors.Is(err, common.ErrNotFoundSecret):
		return "not_found_or_expired", true
	case errors.Is(err, common.ErrAttemptsExceeded):
		return "max_attempts", true
	case errors.Is(err, common.ErrInvalidSecret):
		return "invalid_code", true
	default:
		return "", false
	}
}
