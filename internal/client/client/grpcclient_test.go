package client

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// fakeServer accepts "valid-access" only; "stale-access" reports expiry.
type fakeServer struct {
	pb.UnimplementedAuthServiceServer

	mu        sync.Mutex
	refreshes int
	loggedOut string
	twoFactor bool
}

func (f *fakeServer) token(ctx context.Context) string {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (f *fakeServer) authorize(ctx context.Context) error {
	switch f.token(ctx) {
	case "valid-access":
		return nil
	case "stale-access":
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	default:
		return status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}
}

func (f *fakeServer) Register(_ context.Context, r *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if r.Email == "taken@example.com" {
		return nil, status.Error(codes.AlreadyExists, common.ErrAlreadyExists.Error())
	}
	return &pb.RegisterResponse{User: &pb.Profile{Id: "acc-1", Email: r.Email}}, nil
}

func (f *fakeServer) Login(_ context.Context, r *pb.LoginRequest) (*pb.LoginResponse, error) {
	if r.Password != "good" {
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	}
	if f.twoFactor {
		return &pb.LoginResponse{TwoFactorRequired: true, AccountId: "acc-1"}, nil
	}
	return &pb.LoginResponse{AccountId: "acc-1", AccessToken: "stale-access", RefreshToken: "refresh-1"}, nil
}

func (f *fakeServer) VerifyOTP(_ context.Context, r *pb.VerifyOTPRequest) (*pb.VerifyOTPResponse, error) {
	if r.Code != "123456" {
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidSecret.Error())
	}
	return &pb.VerifyOTPResponse{AccessToken: "valid-access", RefreshToken: "refresh-2"}, nil
}

func (f *fakeServer) EnableTwoFactor(ctx context.Context, _ *pb.EnableTwoFactorRequest) (*pb.EnableTwoFactorResponse, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	return &pb.EnableTwoFactorResponse{Message: "sent"}, nil
}

func (f *fakeServer) RefreshToken(_ context.Context, r *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.RefreshToken == "" || r.RefreshToken == "revoked" {
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidOrExpired.Error())
	}
	f.refreshes++
	return &pb.RefreshTokenResponse{AccessToken: "valid-access"}, nil
}

func (f *fakeServer) Logout(_ context.Context, r *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loggedOut = r.RefreshToken
	return &pb.LogoutResponse{}, nil
}

func (f *fakeServer) ForgotPassword(context.Context, *pb.ForgotPasswordRequest) (*pb.ForgotPasswordResponse, error) {
	return &pb.ForgotPasswordResponse{Message: "check your inbox"}, nil
}

func (f *fakeServer) ResetPassword(_ context.Context, r *pb.ResetPasswordRequest) (*pb.ResetPasswordResponse, error) {
	if r.NewPassword == "weak" {
		return nil, status.Error(codes.InvalidArgument, "validation failed: password too short")
	}
	return &pb.ResetPasswordResponse{}, nil
}

func (f *fakeServer) GetProfile(ctx context.Context, _ *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	return &pb.GetProfileResponse{User: &pb.Profile{Id: "acc-1", Email: "user@example.com"}}, nil
}

func (f *fakeServer) Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func newTestClient(t *testing.T, f *fakeServer) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterAuthServiceServer(srv, f)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestLogin_StoresTokens(t *testing.T) {
	c := newTestClient(t, &fakeServer{})

	resp, err := c.Login(context.Background(), "user@example.com", "good")
	require.NoError(t, err)
	assert.False(t, resp.TwoFactorRequired)

	access, refresh := c.Tokens()
	assert.Equal(t, "stale-access", access)
	assert.Equal(t, "refresh-1", refresh)
}

func TestLogin_StepUpThenVerify(t *testing.T) {
	c := newTestClient(t, &fakeServer{twoFactor: true})
	ctx := context.Background()

	resp, err := c.Login(ctx, "user@example.com", "good")
	require.NoError(t, err)
	require.True(t, resp.TwoFactorRequired)
	access, _ := c.Tokens()
	assert.Empty(t, access)

	_, err = c.VerifyOTP(ctx, resp.AccountId, "000000", "login-step-up")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.VerifyOTP(ctx, resp.AccountId, "123456", "login-step-up")
	require.NoError(t, err)
	access, refresh := c.Tokens()
	assert.Equal(t, "valid-access", access)
	assert.Equal(t, "refresh-2", refresh)
}

func TestExpiredAccessTokenIsRefreshedOnce(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f)
	ctx := context.Background()

	_, err := c.Login(ctx, "user@example.com", "good")
	require.NoError(t, err)

	p, err := c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", p.Id)
	assert.Equal(t, 1, f.refreshes)

	access, _ := c.Tokens()
	assert.Equal(t, "valid-access", access)

	_, err = c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.refreshes, "fresh token needs no refresh")
}

func TestExpiredAccessToken_RefreshRejected(t *testing.T) {
	c := newTestClient(t, &fakeServer{})
	c.SetTokens("stale-access", "revoked")

	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), common.ErrTokenExpired.Error())
}

func TestInvalidAccessTokenIsNotRefreshed(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f)
	c.SetTokens("garbage", "refresh-1")

	_, err := c.EnableTwoFactor(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, f.refreshes)
}

func TestLogout_ClearsTokens(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f)
	c.SetTokens("valid-access", "refresh-9")

	require.NoError(t, c.Logout(context.Background()))
	assert.Equal(t, "refresh-9", f.loggedOut)
	access, refresh := c.Tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	// nothing to revoke
	require.NoError(t, c.Logout(context.Background()))
}

func TestRefresh_WithoutSession(t *testing.T) {
	c := newTestClient(t, &fakeServer{})
	assert.ErrorIs(t, c.Refresh(context.Background()), ErrUnauthorized)
}

func TestErrorsCarryServerMessage(t *testing.T) {
	c := newTestClient(t, &fakeServer{})
	ctx := context.Background()

	_, err := c.Register(ctx, "taken@example.com", "x", "")
	require.Error(t, err)
	assert.Equal(t, common.ErrAlreadyExists.Error(), err.Error())

	err = c.ResetPassword(ctx, "tok", "weak")
	assert.Contains(t, err.Error(), "password too short")

	require.NoError(t, c.Ping(ctx))
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.ResourceExhausted, "slow down")), ErrRateLimited)
	assert.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "inactive")), ErrUnauthorized)
	plain := errors.New("plain")
	assert.Equal(t, plain, c.mapError(plain))
	assert.NoError(t, c.mapError(nil))
}
