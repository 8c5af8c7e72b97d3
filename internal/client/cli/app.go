package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
)

// authClient is the part of client.GRPCClient the commands use.
type authClient interface {
	Register(ctx context.Context, email, password, phone string) (*pb.Profile, error)
	Login(ctx context.Context, email, password string) (*pb.LoginResponse, error)
	VerifyOTP(ctx context.Context, accountID, code, purpose string) (*pb.VerifyOTPResponse, error)
	EnableTwoFactor(ctx context.Context) (string, error)
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context) (*pb.Profile, error)
	Ping(ctx context.Context) error
	SetTokens(access, refresh string)
	Tokens() (string, string)
	Close() error
}

type sessionStore interface {
	Load(ctx context.Context) (session.Session, error)
	Save(ctx context.Context, s session.Session) error
	Close() error
}

type App struct {
	config *config.Config
	client authClient
	store  sessionStore
	sess   session.Session
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the session file and connects to the server.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	store, err := session.Open(ctx, c.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("error opening session file: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return newApp(ctx, c, apiClient, store, os.Stdin, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, ac authClient, store sessionStore, in io.Reader, out io.Writer) (*App, error) {
	sess, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	ac.SetTokens(sess.AccessToken, sess.RefreshToken)

	return &App{config: c, client: ac, store: store, sess: sess, reader: bufio.NewReader(in), out: out}, nil
}

func (a *App) isLoggedIn() bool {
	_, refresh := a.client.Tokens()
	return refresh != ""
}

func (a *App) status() string {
	switch {
	case a.sess.PendingAccountID != "":
		return fmt.Sprintf("(%s, code pending) ", a.sess.Email)
	case a.isLoggedIn():
		return fmt.Sprintf("(%s) ", a.sess.Email)
	default:
		return ""
	}
}

// persist copies the client's tokens into the session and saves it.
func (a *App) persist(ctx context.Context) error {
	a.sess.AccessToken, a.sess.RefreshToken = a.client.Tokens()
	return a.store.Save(ctx, a.sess)
}

// Run blocks in the REPL until the user exits, then saves the session.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.store.Close()

	fmt.Fprintln(a.out, "Welcome to gophauth CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)

	if err := a.persist(ctx); err != nil {
		fmt.Fprintln(a.out, "Error saving session:", err)
	}
}
