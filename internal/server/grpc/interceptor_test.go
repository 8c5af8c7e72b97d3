package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type stubVerifier struct {
	claims *auth.Claims
	err    error
}

func (s stubVerifier) Verify(auth.Kind, string) (*auth.Claims, error) { return s.claims, s.err }

func newInterceptorServer(v TokenVerifier) *GRPCServer {
	return NewGRPCServer("", logging.NewDiscardLogger(), nil, v, nil, RateLimits{})
}

func TestInterceptor_PublicMethodSkipsToken(t *testing.T) {
	s := newInterceptorServer(stubVerifier{err: errors.New("should not be called")})
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_Login_FullMethodName}

	called := false
	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		called = true
		return "ok", nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newInterceptorServer(stubVerifier{})
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_GetProfile_FullMethodName}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newInterceptorServer(stubVerifier{err: common.ErrInvalidToken})
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_EnableTwoFactor_FullMethodName}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, "bad"))

	_, err := s.accessTokenInterceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called")
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, common.ErrInvalidToken.Error(), status.Convert(err).Message())
}

func TestInterceptor_ExpiredTokenIsDistinguishable(t *testing.T) {
	s := newInterceptorServer(stubVerifier{err: fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)})
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_GetProfile_FullMethodName}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, "old"))

	_, err := s.accessTokenInterceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, common.ErrTokenExpired.Error(), status.Convert(err).Message())
}

func TestInterceptor_ValidTokenPutsClaimsInContext(t *testing.T) {
	claims := &auth.Claims{Email: "a@b.co"}
	claims.Subject = "acc-1"
	s := newInterceptorServer(stubVerifier{claims: claims})
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_GetProfile_FullMethodName}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, "good"))

	_, err := s.accessTokenInterceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		c, ok := auth.ClaimsFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "acc-1", c.AccountID())
		return nil, nil
	})
	require.NoError(t, err)
}

func TestOriginFrom(t *testing.T) {
	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP("198.51.100.4"), Port: 5555}})
	ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("user-agent", "cli/1.0"))

	o := originFrom(ctx)
	assert.Equal(t, "198.51.100.4", o.IPAddress)
	assert.Equal(t, "cli/1.0", o.UserAgent)

	assert.Empty(t, originFrom(context.Background()).IPAddress)
}

func TestToStatus(t *testing.T) {
	s := newInterceptorServer(nil)
	ctx := context.Background()

	tests := []struct {
		err  error
		want codes.Code
	}{
		{common.ErrValidation, codes.InvalidArgument},
		{common.ErrAlreadyExists, codes.AlreadyExists},
		{common.ErrInvalidCredentials, codes.Unauthenticated},
		{common.ErrAccountInactive, codes.PermissionDenied},
		{common.ErrPhoneRequired, codes.FailedPrecondition},
		{common.ErrAttemptsExceeded, codes.ResourceExhausted},
		{common.ErrInvalidOrExpired, codes.Unauthenticated},
		{errors.New("db down"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, status.Code(s.toStatus(ctx, "m", tt.err)), tt.err.Error())
	}

	// internal details never reach the caller
	assert.Equal(t, "internal error", status.Convert(s.toStatus(ctx, "m", errors.New("pq: secret"))).Message())
}

func TestPeerLimiter(t *testing.T) {
	l := newPeerLimiter(RateLimits{RPS: 1, Burst: 3, StrictRPS: 1, StrictBurst: 1})
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a", pb.AuthService_Login_FullMethodName))
	assert.False(t, l.Allow("a", pb.AuthService_Login_FullMethodName), "strict tier exhausted")
	assert.True(t, l.Allow("a", pb.AuthService_Ping_FullMethodName))
	assert.False(t, l.Allow("a", pb.AuthService_Ping_FullMethodName), "general tier exhausted")

	// peers are independent
	assert.True(t, l.Allow("b", pb.AuthService_Login_FullMethodName))

	now = now.Add(2 * time.Second)
	assert.True(t, l.Allow("a", pb.AuthService_Login_FullMethodName))
}

func TestPeerLimiter_Disabled(t *testing.T) {
	l := newPeerLimiter(RateLimits{})
	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("a", pb.AuthService_Login_FullMethodName))
	}
}
