// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It holds no mutable state
// of its own; every operation is a single request/response unit of work and is
// safe to invoke concurrently.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete user registration process.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	// Every missing field is reported at once, keyed by field name.
	validation := domainerrors.NewValidationError()
	if input.Name == "" {
		validation.AddField("name", domainerrors.FieldEmptyMessage)
	}
	if input.Email == "" {
		validation.AddField("email", domainerrors.FieldEmptyMessage)
	}
	if input.Password == "" {
		validation.AddField("password", domainerrors.FieldEmptyMessage)
	}
	if input.ConfirmPassword == "" {
		validation.AddField("cPassword", domainerrors.FieldEmptyMessage)
	}
	if validation.HasErrors() {
		return nil, validation
	}

	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}

	srv.log(ctx).Info("Starting user registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to check email availability", slog.Any("error", err))

		return nil, domainerrors.ErrRepositoryUnavailable
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent signup can win the race between the lookup above and
		// this insert; the store's conflict detection closes that window.
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrEmailTaken
		}
		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrRepositoryUnavailable
	}

	srv.log(ctx).Debug("User registered successfully", slog.Any("userID", newUser.ID))

	return &usecase.SignUpOutput{User: newUser.ToProfile()}, nil
}

// SignIn orchestrates the user login process. An unknown email and a wrong
// password return the same error value so the response never reveals which
// factor failed.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}

	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to look up user for login", slog.Any("error", err))

		return nil, domainerrors.ErrRepositoryUnavailable
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID, user.Role, srv.tokenService.AccessTokenTTL())
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrRepositoryUnavailable
	}

	// Round-trip self-check: verify the freshly issued token before handing it
	// out. Failure here is an internal fault, never a client error.
	claims, err := srv.tokenService.Verify(token)
	if err != nil || claims.SubjectID != user.ID || claims.Role != user.Role {
		srv.log(ctx).Error("Issued token failed self-verification", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrRepositoryUnavailable
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.SignInOutput{
		Token:  token,
		UserID: user.ID,
		Role:   user.Role,
	}, nil
}

// CheckRole looks up the role of the given user.
func (srv *authService) CheckRole(ctx context.Context, userID uuid.UUID) (*usecase.RoleOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to look up user role", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrRepositoryUnavailable
	}

	return &usecase.RoleOutput{Role: user.Role}, nil
}

// ListUsers returns every registered user, projected without password digests.
func (srv *authService) ListUsers(ctx context.Context) (*usecase.ListUsersOutput, error) {
	users, err := srv.userRepo.FindAll(ctx, repository.ListFilter{})
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, domainerrors.ErrRepositoryUnavailable
	}

	profiles := make([]*entity.Profile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.ToProfile())
	}

	return &usecase.ListUsersOutput{Users: profiles}, nil
}
