package grpc

import (
	"context"
	"errors"

		"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/netx"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	msgTwoFactorSent = "OTP sent to your phone"
	msgResetSent     = "If the email exists, a reset token has been sent"
)

// errorCodes maps engine errors to status codes. Anything else is Internal.
var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrValidation, codes.InvalidArgument},
	{common.ErrAlreadyExists, codes.AlreadyExists},
	{common.ErrInvalidCredentials, codes.Unauthenticated},
	{common.ErrAccountInactive, codes.PermissionDenied},
	{common.ErrPhoneRequired, codes.FailedPrecondition},
	{common.ErrAlreadyEnabled, codes.FailedPrecondition},
	{common.ErrAttemptsExceeded, codes.ResourceExhausted},
	{common.ErrNotFoundSecret, codes.Unauthenticated},
	{common.ErrInvalidSecret, codes.Unauthenticated},
	{common.ErrInvalidOrExpired, codes.Unauthenticated},
	{common.ErrorNotFound, codes.NotFound},
}

func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	for _, m := range errorCodes {
		if errors.Is(err, m.err) {
			return status.Error(m.code, m.err.Error())
		}
	}
	s.logger.Error(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, "internal error")
}

// originFrom extracts the caller's address and user agent.
func originFrom(ctx context.Context) models.Origin {
	var o models.Origin
	if p, ok := peer.FromContext(ctx); ok {
		o.IPAddress = netx.ClientIP(p.Addr)
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get("user-agent"); len(v) > 0 {
			o.UserAgent = v[0]
		}
	}
	return o
}

func toPBProfile(p *models.Profile) *pb.Profile {
	if p == nil {
		return nil
	}
	return &pb.Profile{
		Id:               p.ID,
		Email:            p.Email,
		Phone:            p.Phone,
		IsActive:         p.IsActive,
		TwoFactorEnabled: p.StepUpEnabled,
		CreatedAt:        timestamppb.New(p.CreatedAt),
		UpdatedAt:        timestamppb.New(p.UpdatedAt),
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	profile, err := s.engine.Register(ctx, req.Email, req.Password, req.Phone, originFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, pb.AuthService_Register_FullMethodName, err)
	}

	s.logger.Info(ctx, "Registered", "account_id", profile.ID)
	return &pb.RegisterResponse{User: toPBProfile(profile)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	res, err := s.engine.Login(ctx, req.Email, req.Password, originFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, pb.AuthService_Login_FullMethodName, err)
	}

	if res.State == services.StateStepUpPending {
		return &pb.LoginResponse{TwoFactorRequired: true, AccountId: res.AccountID}, nil
	}

	return &pb.LoginResponse{
		AccountId:    res.AccountID,
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) VerifyOTP(ctx context.Context, req *pb.VerifyOTPRequest) (*pb.VerifyOTPResponse, error) {

	purpose, ok := models.ParsePurpose(req.Purpose)
	if !ok || !purpose.IsOTP() {
		return nil, status.Error(codes.InvalidArgument, "unknown purpose")
	}

	pair, err := s.engine.VerifyOneTimeSecret(ctx, req.AccountId, req.Code, purpose, originFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, pb.AuthService_VerifyOTP_FullMethodName, err)
	}

	if pair == nil {
		return &pb.VerifyOTPResponse{TwoFactorEnabled: true}, nil
	}
	return &pb.VerifyOTPResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) EnableTwoFactor(ctx context.Context, _ *pb.EnableTwoFactorRequest) (*pb.EnableTwoFactorResponse, error) {

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.engine.EnableStepUp(ctx, claims.AccountID(), originFrom(ctx)); err != nil {
		return nil, s.toStatus(ctx, pb.AuthService_EnableTwoFactor_FullMethodName, err)
	}

	return &pb.EnableTwoFactorResponse{Message: msgTwoFactorSent}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	access, err := s.engine.RefreshAccessToken(ctx, req.RefreshToken, originFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, pb.AuthService_RefreshToken_FullMethodName, err)
	}

	return &pb.RefreshTokenResponse{AccessToken: access}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	if err := s.engine.Logout(ctx, req.RefreshToken, originFrom(ctx)); err != nil {
		return nil, s.toStatus(ctx, pb.AuthService_Logout_FullMethodName, err)
	}

	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, req *pb.ForgotPasswordRequest) (*pb.ForgotPasswordResponse, error) {

	if err := s.engine.RequestPasswordReset(ctx, req.Email, originFrom(ctx)); err != nil {
		return nil, s.toStatus(ctx, pb.AuthService_ForgotPassword_FullMethodName, err)
	}

	return &pb.ForgotPasswordResponse{Message: msgResetSent}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.ResetPasswordResponse, error) {

	if err := s.engine.CompletePasswordReset(ctx, req.Token, req.NewPassword, originFrom(ctx)); err != nil {
		return nil, s.toStatus(ctx, pb.AuthService_ResetPassword_FullMethodName, err)
	}

	return &pb.ResetPasswordResponse{}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, _ *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	profile, err := s.engine.GetProfile(ctx, claims.AccountID())
	if err != nil {
		return nil, s.toStatus(ctx, pb.AuthService_GetProfile_FullMethodName, err)
	}

	return &pb.GetProfileResponse{User: toPBProfile(profile)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
