package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"basegraph.app/helpdesk/common"
	"basegraph.app/helpdesk/common/id"
	"basegraph.app/helpdesk/internal/auth"
	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/store"
)

const minPasswordLength = 6

// Session is a user together with a freshly issued bearer token.
type Session struct {
	User  *model.User
	Token string
}

type AuthService interface {
	// Register creates the user and their empty expert profile together.
	Register(ctx context.Context, username, password, confirmation string) (*Session, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	Refresh(ctx context.Context, user *model.User) (*Session, error)
	// Authenticate resolves a bearer token to its user.
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	stores StoreProvider
	tx     TxRunner
	tokens auth.TokenIssuer
	now    func() time.Time
}

func NewAuthService(stores StoreProvider, tx TxRunner, tokens auth.TokenIssuer) AuthService {
	return &authService{
		stores: stores,
		tx:     tx,
		tokens: tokens,
		now:    time.Now,
	}
}

func (s *authService) Register(ctx context.Context, username, password, confirmation string) (*Session, error) {
	username = strings.TrimSpace(username)

	var problems []string
	if common.IsBlank(username) {
		problems = append(problems, "Username can't be blank")
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		problems = append(problems, fmt.Sprintf("Password is too short (minimum is %d characters)", minPasswordLength))
	}
	if confirmation != "" && confirmation != password {
		problems = append(problems, "Password confirmation doesn't match Password")
	}
	if username != "" {
		if _, err := s.stores.Users().GetByUsername(ctx, username); err == nil {
			problems = append(problems, "Username has already been taken")
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("checking username: %w", err)
		}
	}
	if len(problems) > 0 {
		return nil, newValidationError(problems...)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.now()
	user := &model.User{
		ID:           id.New(),
		Username:     username,
		PasswordHash: hash,
		LastActiveAt: &now,
	}
	err = s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Users().Create(ctx, user); err != nil {
			return err
		}
		profile := &model.ExpertProfile{ID: id.New(), UserID: user.ID}
		if err := stores.ExpertProfiles().Create(ctx, profile); err != nil {
			return fmt.Errorf("creating expert profile: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, newValidationError("Username has already been taken")
		}
		slog.ErrorContext(ctx, "failed to register user", "error", err)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID)
	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.stores.Users().GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.stores.Users().TouchLastActive(ctx, user.ID, now); err != nil {
		slog.WarnContext(ctx, "failed to record login time", "error", err, "user_id", user.ID)
	} else {
		user.LastActiveAt = &now
	}

	return s.issue(user)
}

func (s *authService) Refresh(_ context.Context, user *model.User) (*Session, error) {
	return s.issue(user)
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		slog.DebugContext(ctx, "rejected bearer token", "error", err)
		return nil, ErrInvalidToken
	}
	user, err := s.stores.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return user, nil
}

func (s *authService) issue(user *model.User) (*Session, error) {
	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &Session{User: user, Token: token}, nil
}
