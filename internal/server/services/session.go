package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/audit"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/notify"
	"github.com/dmitrijs2005/gophauth/internal/server/obs"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginState is where a login attempt ended up.
type LoginState string

const (
	// StateAuthenticated means tokens were issued.
	StateAuthenticated LoginState = "authenticated"
	// StateStepUpPending means a code was sent and must be verified.
	StateStepUpPending LoginState = "step_up_pending"
)

// LoginResult is returned by a successful password check. Tokens is nil when
// State is StateStepUpPending.
type LoginResult struct {
	State         LoginState
	AccountID     string
	StepUpEnabled bool
	Tokens        *TokenPair
}

// Config holds the engine's policy knobs.
type Config struct {
	BcryptCost     int
	OTPTTL         time.Duration
	OTPMaxAttempts int
	ResetTTL       time.Duration
}

// Dependencies are the collaborators of SessionService. Metrics may be nil;
// Clock defaults to time.Now.
type Dependencies struct {
	Runner   dbx.Runner
	Repos    repomanager.RepositoryManager
	Tokens   *auth.Manager
	Notifier notify.Sender
	Audit    audit.Sink
	Metrics  *obs.Metrics
	Logger   logging.Logger
	Clock    func() time.Time
}

// SessionService is the credential and session engine: registration, login
// with optional step-up, token refresh, logout and password recovery.
type SessionService struct {
	cfg      Config
	runner   dbx.Runner
	repos    repomanager.RepositoryManager
	tokens   *auth.Manager
	notifier notify.Sender
	hasher   *cryptox.Hasher
	secrets  *OneTimeSecretStore
	ledger   *Ledger
	audit    *AuditRecorder
	log      logging.Logger
	now      func() time.Time

	// dummyHash keeps the unknown-email login path as slow as a real check.
	dummyHash string
}

// NewSessionService wires the engine from cfg and deps.
func NewSessionService(cfg Config, deps Dependencies) (*SessionService, error) {
	if deps.Runner == nil || deps.Repos == nil || deps.Tokens == nil || deps.Notifier == nil || deps.Audit == nil || deps.Logger == nil {
		return nil, errors.New("session service: missing dependency")
	}
	if cfg.OTPTTL <= 0 || cfg.ResetTTL <= 0 {
		return nil, errors.New("session service: secret lifetimes must be positive")
	}
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = cryptox.DefaultCost
	}

	hasher := cryptox.NewHasher(cfg.BcryptCost)
	dummy, err := hasher.HashSecret("gophauth-timing-equalizer")
	if err != nil {
		return nil, fmt.Errorf("session service: %w", err)
	}

	return &SessionService{
		cfg:       cfg,
		runner:    deps.Runner,
		repos:     deps.Repos,
		tokens:    deps.Tokens,
		notifier:  deps.Notifier,
		hasher:    hasher,
		secrets:   NewOneTimeSecretStore(deps.Runner, deps.Repos, hasher, cfg.OTPMaxAttempts, now),
		ledger:    NewLedger(deps.Runner, deps.Repos, now),
		audit:     NewAuditRecorder(deps.Audit, deps.Metrics, deps.Logger, now),
		log:       deps.Logger.With("module", "session"),
		now:       now,
		dummyHash: dummy,
	}, nil
}

// Register creates an account. It fails with common.ErrValidation on bad
// input and common.ErrAlreadyExists when the email is taken.
func (s *SessionService) Register(ctx context.Context, email, password, phone string, origin models.Origin) (*models.Profile, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := ValidatePhone(phone); err != nil {
		return nil, err
	}

	hash, err := s.hasher.HashSecret(password)
	if err != nil {
		return nil, internalError(err)
	}

	now := s.now()
	acc, err := s.repos.Accounts(s.runner.Conn()).Create(ctx, &models.Account{
		Email:        email,
		PasswordHash: hash,
		Phone:        phone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			s.audit.Record(ctx, "", models.EventRegisterFailed, false,
				map[string]any{"email": email, "reason": "email_taken"}, origin)
			return nil, common.ErrAlreadyExists
		}
		return nil, internalError(err)
	}

	s.audit.Record(ctx, acc.ID, models.EventRegistered, true, nil, origin)
	s.log.Info(ctx, "account registered", "account_id", acc.ID)
	return acc.Profile(), nil
}

// GetProfile returns the public view of the account or common.ErrorNotFound.
func (s *SessionService) GetProfile(ctx context.Context, accountID string) (*models.Profile, error) {
	acc, err := s.account(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return acc.Profile(), nil
}

// --- helpers below ---

func internalError(err error) error {
	return fmt.Errorf("%w: %v", common.ErrorInternal, err)
}

func (s *SessionService) account(ctx context.Context, accountID string) (*models.Account, error) {
	acc, err := s.repos.Accounts(s.runner.Conn()).GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, internalError(err)
	}
	return acc, nil
}

// issueSession mints both tokens and records the refresh digest.
func (s *SessionService) issueSession(ctx context.Context, acc *models.Account, origin models.Origin) (*TokenPair, error) {
	access, _, err := s.tokens.Mint(auth.KindAccess, acc.ID, acc.Email)
	if err != nil {
		return nil, internalError(err)
	}
	refresh, expiresAt, err := s.tokens.Mint(auth.KindRefresh, acc.ID, acc.Email)
	if err != nil {
		return nil, internalError(err)
	}
	if err := s.ledger.Record(ctx, s.runner.Conn(), acc.ID, cryptox.DigestToken(refresh), expiresAt, origin); err != nil {
		return nil, internalError(err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// deliver sends message out of band. Failures are logged only; the secret
// stays valid and the user can ask again.
func (s *SessionService) deliver(ctx context.Context, accountID, destination, message string) {
	ok, err := s.notifier.Send(ctx, destination, message)
	if err != nil || !ok {
		s.log.Warn(ctx, "notification not delivered", "account_id", accountID, "error", err)
	}
}
