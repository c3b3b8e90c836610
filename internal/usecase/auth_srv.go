package usecase

import (
	"context"
	"fmt"
	"time"

	"cinelog/internal/data/entity"
	"cinelog/internal/data/repository"
	"cinelog/internal/dto/request"
	"cinelog/internal/dto/response"
	"cinelog/pkg/database"
	"cinelog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	db     database.PgxIface
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		db:     db,
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Cek email sudah terdaftar
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 3. Cek username sudah dipakai
	_, err = s.repo.Profile.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, fmt.Errorf("username already taken")
	}
	if !database.IsNotFound(err) {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username")
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 5. Create user + profile dalam satu transaksi
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}
	profile := &entity.Profile{
		Base: entity.Base{
			ID:        user.ID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:    req.Username,
		DisplayName: req.DisplayName,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin register transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to create account")
	}
	defer tx.Rollback(ctx)

	if err := s.repo.User.Create(ctx, tx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}
	if err := s.repo.Profile.Create(ctx, tx, profile); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("username already taken")
		}
		s.log.Error("Failed to create profile", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to create account")
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit register transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to create account")
	}

	// 6. Auto login setelah register
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// Continue tanpa session
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", req.Username))

	return s.convertAuthResponse(user, profile.Username, session), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 4. Check if user is active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("account is deactivated")
	}

	// 5. Create session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	// Username dari profile
	username := ""
	if profile, err := s.repo.Profile.FindByID(ctx, user.ID); err == nil {
		username = profile.Username
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username))

	return s.convertAuthResponse(user, username, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("missing session token")
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     uuid.New().String(),
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *authService) convertAuthResponse(user *entity.User, username string, session *entity.Session) *response.AuthResponse {
	resp := &response.AuthResponse{
		UserID:   user.ID.String(),
		Username: username,
		Email:    user.Email,
	}

	if session != nil {
		resp.Token = session.Token
		resp.ExpiresAt = &session.ExpiresAt
	}

	return resp
}
