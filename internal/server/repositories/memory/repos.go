package memory

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/google/uuid"
)

type accountRepo struct {
	s  *Store
	db dbx.DBTX
}

func (r *accountRepo) Create(_ context.Context, a *models.Account) (*models.Account, error) {
	defer r.s.lock(r.db)()

	key := strings.ToLower(a.Email)
	if _, ok := r.s.st.emails[key]; ok {
		return nil, common.ErrAlreadyExists
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	r.s.st.accounts[a.ID] = *a
	r.s.st.emails[key] = a.ID
	out := *a
	return &out, nil
}

func (r *accountRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	defer r.s.lock(r.db)()

	id, ok := r.s.st.emails[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	a := r.s.st.accounts[id]
	return &a, nil
}

func (r *accountRepo) GetByID(_ context.Context, id string) (*models.Account, error) {
	defer r.s.lock(r.db)()

	a, ok := r.s.st.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r *accountRepo) UpdatePassword(_ context.Context, id string, passwordHash string, at time.Time) error {
	defer r.s.lock(r.db)()

	a, ok := r.s.st.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.PasswordHash = passwordHash
	a.UpdatedAt = at
	r.s.st.accounts[id] = a
	return nil
}

func (r *accountRepo) SetStepUpEnabled(_ context.Context, id string, enabled bool, at time.Time) error {
	defer r.s.lock(r.db)()

	a, ok := r.s.st.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.StepUpEnabled = enabled
	a.UpdatedAt = at
	r.s.st.accounts[id] = a
	return nil
}

type refreshTokenRepo struct {
	s  *Store
	db dbx.DBTX
}

func (r *refreshTokenRepo) Create(_ context.Context, t *models.RefreshToken) error {
	defer r.s.lock(r.db)()

	if _, ok := r.s.st.tokens[t.TokenHash]; ok {
		return common.ErrAlreadyExists
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Revoked = false
	r.s.st.tokens[t.TokenHash] = *t
	return nil
}

func (r *refreshTokenRepo) FindByHash(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	defer r.s.lock(r.db)()

	t, ok := r.s.st.tokens[tokenHash]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *refreshTokenRepo) Revoke(_ context.Context, tokenHash string) error {
	defer r.s.lock(r.db)()

	if t, ok := r.s.st.tokens[tokenHash]; ok && !t.Revoked {
		t.Revoked = true
		r.s.st.tokens[tokenHash] = t
	}
	return nil
}

func (r *refreshTokenRepo) RevokeAllForAccount(_ context.Context, accountID string) (int64, error) {
	defer r.s.lock(r.db)()

	var n int64
	for k, t := range r.s.st.tokens {
		if t.AccountID == accountID && !t.Revoked {
			t.Revoked = true
			r.s.st.tokens[k] = t
			n++
		}
	}
	return n, nil
}

type secretRepo struct {
	s  *Store
	db dbx.DBTX
}

func (r *secretRepo) Create(_ context.Context, sec *models.OneTimeSecret) error {
	defer r.s.lock(r.db)()

	if sec.ID == "" {
		sec.ID = uuid.NewString()
	}
	sec.Used = false
	sec.Attempts = 0
	r.s.st.next++
	r.s.st.seq[sec.ID] = r.s.st.next
	r.s.st.secrets[sec.ID] = *sec
	return nil
}

func (r *secretRepo) FindLatestActive(_ context.Context, accountID string, purpose models.Purpose, now time.Time) (*models.OneTimeSecret, error) {
	defer r.s.lock(r.db)()

	var (
		best    models.OneTimeSecret
		bestSeq uint64
		found   bool
	)
	for id, sec := range r.s.st.secrets {
		if sec.AccountID != accountID || sec.Purpose != purpose || !sec.Active(now) {
			continue
		}
		seq := r.s.st.seq[id]
		if !found || sec.CreatedAt.After(best.CreatedAt) || (sec.CreatedAt.Equal(best.CreatedAt) && seq > bestSeq) {
			best, bestSeq, found = sec, seq, true
		}
	}
	if !found {
		return nil, common.ErrorNotFound
	}
	return &best, nil
}

func (r *secretRepo) FindActiveByHash(_ context.Context, secretHash string, purpose models.Purpose, now time.Time) (*models.OneTimeSecret, error) {
	defer r.s.lock(r.db)()

	for _, sec := range r.s.st.secrets {
		if sec.SecretHash == secretHash && sec.Purpose == purpose && sec.Active(now) {
			return &sec, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *secretRepo) ExpireActive(_ context.Context, accountID string, purpose models.Purpose, now time.Time) (int64, error) {
	defer r.s.lock(r.db)()

	var n int64
	for id, sec := range r.s.st.secrets {
		if sec.AccountID == accountID && sec.Purpose == purpose && sec.Active(now) {
			sec.ExpiresAt = now
			r.s.st.secrets[id] = sec
			n++
		}
	}
	return n, nil
}

func (r *secretRepo) ReserveAttempt(_ context.Context, id string, ceiling int) (int, error) {
	defer r.s.lock(r.db)()

	sec, ok := r.s.st.secrets[id]
	if !ok || sec.Attempts >= ceiling {
		return 0, common.ErrorNotFound
	}
	sec.Attempts++
	r.s.st.secrets[id] = sec
	return sec.Attempts, nil
}

func (r *secretRepo) MarkUsed(_ context.Context, id string) (bool, error) {
	defer r.s.lock(r.db)()

	sec, ok := r.s.st.secrets[id]
	if !ok || sec.Used {
		return false, nil
	}
	sec.Used = true
	r.s.st.secrets[id] = sec
	return true, nil
}

type auditRepo struct {
	s  *Store
	db dbx.DBTX
}

func (r *auditRepo) Append(_ context.Context, e *models.AuditEvent) error {
	defer r.s.lock(r.db)()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	r.s.st.audit = append(r.s.st.audit, *e)
	return nil
}
