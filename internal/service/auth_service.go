package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"tutorhive-be/internal/config"
	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/specification"
	"tutorhive-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	authCfg    config.AuthConfig
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, authCfg config.AuthConfig) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		authCfg:    authCfg,
	}
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func (s *authService) signAccessToken(user *entity.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.authCfg.AccessTokenTTLMin) * time.Minute)
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.authCfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// issueTokens signs a fresh access token and rotates the refresh token.
// A user holds at most one active refresh token: all previous tokens are
// revoked before the new one is stored.
func (s *authService) issueTokens(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	accessToken, expiresAt, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	rawRefresh := uuid.NewString()
	if err := uow.UserRepository().RevokeAllRefreshTokens(ctx, user.Id); err != nil {
		return nil, err
	}

	refreshToken := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashToken(rawRefresh),
		ExpiresAt: time.Now().AddDate(0, 0, s.authCfg.RefreshTokenTTLDays),
		IpAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreateRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresAt:    expiresAt,
		User:         toUserResponse(user),
	}, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	resp := dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
	}
	if user.AvatarURL != nil {
		resp.AvatarURL = *user.AvatarURL
	}
	return resp
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		Role:         entity.UserRole(req.Role),
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	resp, err := s.issueTokens(ctx, uow, user, "", "")
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, fmt.Errorf("%w: account blocked", ErrForbidden)
	}
	if user.PasswordHash == nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	resp, err := s.issueTokens(ctx, uow, user, ipAddress, userAgent)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored, err := uow.UserRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashToken(refreshToken)})
	if err != nil || stored == nil {
		return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}
	if stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, fmt.Errorf("%w: refresh token expired", ErrUnauthorized)
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: stored.UserId})
	if err != nil || user == nil {
		return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, fmt.Errorf("%w: account blocked", ErrForbidden)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Rotation: the presented token is consumed, a new pair is issued.
	resp, err := s.issueTokens(ctx, uow, user, ipAddress, userAgent)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().RevokeRefreshToken(ctx, hashToken(refreshToken))
}
