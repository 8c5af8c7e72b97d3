// Package grpc exposes the session engine as the AuthService gRPC API.
package grpc

import (
	"context"
	"net"

		"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/obs"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// SessionEngine is the part of services.SessionService the API calls.
type SessionEngine interface {
	Register(ctx context.Context, email, password, phone string, origin models.Origin) (*models.Profile, error)
	Login(ctx context.Context, email, password string, origin models.Origin) (*services.LoginResult, error)
	VerifyOneTimeSecret(ctx context.Context, accountID, code string, purpose models.Purpose, origin models.Origin) (*services.TokenPair, error)
	EnableStepUp(ctx context.Context, accountID string, origin models.Origin) error
	RefreshAccessToken(ctx context.Context, refreshToken string, origin models.Origin) (string, error)
	Logout(ctx context.Context, refreshToken string, origin models.Origin) error
	RequestPasswordReset(ctx context.Context, email string, origin models.Origin) error
	CompletePasswordReset(ctx context.Context, rawToken, newPassword string, origin models.Origin) error
	GetProfile(ctx context.Context, accountID string) (*models.Profile, error)
}

// TokenVerifier checks access tokens for protected methods.
type TokenVerifier interface {
	Verify(kind auth.Kind, token string) (*auth.Claims, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer

	address string
	engine  SessionEngine
	tokens  TokenVerifier
	metrics *obs.Metrics
	limiter *peerLimiter
	logger  logging.Logger
}

// NewGRPCServer builds the API server. metrics may be nil.
func NewGRPCServer(address string, l logging.Logger, engine SessionEngine, tokens TokenVerifier, m *obs.Metrics, limits RateLimits) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		engine:  engine,
		tokens:  tokens,
		metrics: m,
		limiter: newPeerLimiter(limits),
	}
}

func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.rateLimitInterceptor, s.accessTokenInterceptor),
	)

	pb.RegisterAuthServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.AuthService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
