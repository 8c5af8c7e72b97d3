package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/session"
)

const (
	purposeLogin  = "login-step-up"
	purposeEnable = "enable-step-up"
)

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}

func (a *App) Register(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	phone, err := a.prompt("Phone in E.164 form (optional, needed for 2FA)")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	p, err := a.client.Register(ctx, email, password, phone)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered %s (id %s). You can now log in.\n", p.Email, p.ID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	rctx, cancel := a.withTimeout(ctx)
	resp, err := a.client.Login(rctx, email, password)
	cancel()
	if err != nil {
		return err
	}

	a.sess = session.Session{Email: email, AccountID: resp.AccountId}
	if !resp.TwoFactorRequired {
		fmt.Fprintln(a.out, "Logged in.")
		return a.persist(ctx)
	}

	a.sess.PendingAccountID = resp.AccountId
	if err := a.persist(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "A login code was sent to your phone.")
	return a.Verify(ctx)
}

// Verify completes a pending step-up login.
func (a *App) Verify(ctx context.Context) error {
	if a.sess.PendingAccountID == "" {
		return fmt.Errorf("no login is waiting for a code")
	}
	code, err := a.prompt("Code")
	if err != nil {
		return err
	}

	rctx, cancel := a.withTimeout(ctx)
	_, err = a.client.VerifyOTP(rctx, a.sess.PendingAccountID, code, purposeLogin)
	cancel()
	if err != nil {
		return err
	}

	a.sess.PendingAccountID = ""
	fmt.Fprintln(a.out, "Logged in.")
	return a.persist(ctx)
}

func (a *App) EnableTwoFactor(ctx context.Context) error {
	if !a.isLoggedIn() {
		return session.ErrNoSession
	}

	rctx, cancel := a.withTimeout(ctx)
	msg, err := a.client.EnableTwoFactor(rctx)
	cancel()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)

	code, err := a.prompt("Code")
	if err != nil {
		return err
	}

	rctx, cancel = a.withTimeout(ctx)
	defer cancel()
	if _, err := a.client.VerifyOTP(rctx, a.sess.AccountID, code, purposeEnable); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Two-factor authentication enabled.")
	return a.persist(ctx)
}

func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return session.ErrNoSession
	}

	rctx, cancel := a.withTimeout(ctx)
	p, err := a.client.Profile(rctx)
	cancel()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID:      %s\nEmail:   %s\nPhone:   %s\nActive:  %t\n2FA:     %t\nCreated: %s\n",
		p.Id, p.Email, p.Phone, p.IsActive, p.TwoFactorEnabled, p.GetCreatedAt().AsTime().Format("2006-01-02 15:04:05"))

	// the client may have refreshed the access token on the way
	return a.persist(ctx)
}

func (a *App) Refresh(ctx context.Context) error {
	rctx, cancel := a.withTimeout(ctx)
	err := a.client.Refresh(rctx)
	cancel()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Access token refreshed.")
	return a.persist(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	rctx, cancel := a.withTimeout(ctx)
	err := a.client.Logout(rctx)
	cancel()

	a.sess = session.Session{}
	if perr := a.persist(ctx); perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Forgot(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Reset(ctx context.Context) error {
	token, err := a.prompt("Reset token")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.ResetPassword(ctx, token, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed. All sessions were signed out; please log in again.")
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Server is up.")
	return nil
}
