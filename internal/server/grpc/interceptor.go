package grpc

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// protectedMethods require a valid access token.
var protectedMethods = map[string]bool{
	pb.AuthService_EnableTwoFactor_FullMethodName: true,
	pb.AuthService_GetProfile_FullMethodName:      true,
}

// accessTokenFrom reads the token from the access_token key, falling back to
// "authorization: Bearer <token>".
func accessTokenFrom(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 && v[0] != "" {
		return v[0]
	}
	if v := md.Get("authorization"); len(v) > 0 {
		if t, ok := strings.CutPrefix(v[0], "Bearer "); ok {
			return strings.TrimSpace(t)
		}
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if protectedMethods[info.FullMethod] {

		accessToken := accessTokenFrom(ctx)
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		claims, err := s.tokens.Verify(auth.KindAccess, accessToken)
		if errors.Is(err, common.ErrTokenExpired) {
			// clients match this message to decide whether to refresh
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}

		ctx = auth.ContextWithClaims(ctx, claims)
	}

	return handler(ctx, req)
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.metrics.ObserveRPC(path.Base(info.FullMethod), status.Code(err).String(), time.Since(start))
	return resp, err
}

func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	method := path.Base(info.FullMethod)
	if !s.limiter.Allow(originFrom(ctx).IPAddress, info.FullMethod) {
		s.metrics.RateLimited(method)
		s.logger.Warn(ctx, "rate limited", "method", method)
		return nil, status.Error(codes.ResourceExhausted, "too many requests, please try again later")
	}
	return handler(ctx, req)
}
