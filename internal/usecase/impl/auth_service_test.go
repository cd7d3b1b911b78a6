package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	mockRepo "gatekeeper/internal/mocks/repository"
	mockSvc "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_SignUp_AllFieldsEmpty(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{})

	require.Error(t, err)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// All four missing fields are reported at once.
	assert.Equal(t, map[string]string{
		"name":      domainerrors.FieldEmptyMessage,
		"email":     domainerrors.FieldEmptyMessage,
		"password":  domainerrors.FieldEmptyMessage,
		"cPassword": domainerrors.FieldEmptyMessage,
	}, validationErr.Fields)
}

func TestAuthService_SignUp_SingleFieldEmpty(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Name:            "John",
		Email:           "john@x.com",
		Password:        "pw123",
		ConfirmPassword: "",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string]string{"cPassword": domainerrors.FieldEmptyMessage}, validationErr.Fields)
}

func TestAuthService_SignUp_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Name:            "John",
		Email:           "john@x.com",
		Password:        "pw123",
		ConfirmPassword: "pw124",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	existing := &entity.User{ID: uuid.New(), Email: "john@x.com", Role: entity.RoleUser}
	fx.userRepo.On("FindByEmail", ctx, "john@x.com").Return(existing, nil)

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Name:            "John",
		Email:           "john@x.com",
		Password:        "pw123",
		ConfirmPassword: "pw123",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "john@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "pw123").Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
			user.CreatedAt = time.Now()
		}).
		Return(nil)

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Name:            "John",
		Email:           "john@x.com",
		Password:        "pw123",
		ConfirmPassword: "pw123",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "John", output.User.Name)
	assert.Equal(t, "john@x.com", output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_SignUp_CreateConflictRace(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "john@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "pw123").Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrEmailTaken)

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Name:            "John",
		Email:           "john@x.com",
		Password:        "pw123",
		ConfirmPassword: "pw123",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_SignUp_RepositoryFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "john@x.com").Return(nil, errors.New("connection refused"))

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Name:            "John",
		Email:           "john@x.com",
		Password:        "pw123",
		ConfirmPassword: "pw123",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRepositoryUnavailable)
}

func TestAuthService_SignIn_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	for _, input := range []*usecase.SignInInput{
		{},
		{Email: "john@x.com"},
		{Password: "pw123"},
	} {
		output, err := fx.service.SignIn(context.Background(), input)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
	}
}

func TestAuthService_SignIn_UniformFailureShape(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	// Unknown email.
	fx.userRepo.On("FindByEmail", ctx, "ghost@x.com").Return(nil, repository.ErrUserNotFound)
	_, unknownEmailErr := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "ghost@x.com", Password: "pw123"})

	// Known email, wrong password.
	user := &entity.User{ID: uuid.New(), Email: "john@x.com", PasswordHash: "digest", Role: entity.RoleUser}
	fx.userRepo.On("FindByEmail", ctx, "john@x.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "digest").Return(false)
	_, wrongPasswordErr := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "john@x.com", Password: "wrong"})

	// Both factors fail with the identical error value.
	assert.ErrorIs(t, unknownEmailErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr, wrongPasswordErr)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "john@x.com", PasswordHash: "digest", Role: entity.RoleUser}
	ttl := 15 * time.Minute

	fx.userRepo.On("FindByEmail", ctx, "john@x.com").Return(user, nil)
	fx.hasher.On("Check", "pw123", "digest").Return(true)
	fx.tokenService.On("AccessTokenTTL").Return(ttl)
	fx.tokenService.On("Issue", user.ID, entity.RoleUser, ttl).Return("signed.token", nil)
	fx.tokenService.On("Verify", "signed.token").
		Return(&service.SessionClaims{SubjectID: user.ID, Role: entity.RoleUser}, nil)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "john@x.com", Password: "pw123"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.token", output.Token)
	assert.Equal(t, user.ID, output.UserID)
	assert.Equal(t, entity.RoleUser, output.Role)
}

func TestAuthService_SignIn_SelfCheckFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "john@x.com", PasswordHash: "digest", Role: entity.RoleUser}

	fx.userRepo.On("FindByEmail", ctx, "john@x.com").Return(user, nil)
	fx.hasher.On("Check", "pw123", "digest").Return(true)
	fx.tokenService.On("AccessTokenTTL").Return(time.Minute)
	fx.tokenService.On("Issue", user.ID, entity.RoleUser, time.Minute).Return("signed.token", nil)
	fx.tokenService.On("Verify", "signed.token").Return(nil, domainerrors.ErrTokenInvalid)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "john@x.com", Password: "pw123"})

	// An internal consistency fault, never surfaced as a client error.
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRepositoryUnavailable)
}

func TestAuthService_CheckRole_Admin(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	adminID := uuid.New()
	fx.userRepo.On("FindByID", ctx, adminID).
		Return(&entity.User{ID: adminID, Role: entity.RoleAdmin}, nil)

	output, err := fx.service.CheckRole(ctx, adminID)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.Role)
}

func TestAuthService_CheckRole_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	unknownID := uuid.New()
	fx.userRepo.On("FindByID", ctx, unknownID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.CheckRole(ctx, unknownID)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_ListUsers_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindAll", ctx, repository.ListFilter{}).Return([]*entity.User{
		{ID: uuid.New(), Name: "John", Email: "john@x.com", PasswordHash: "digest", Role: entity.RoleUser},
		{ID: uuid.New(), Name: "Jane", Email: "jane@x.com", PasswordHash: "digest", Role: entity.RoleAdmin},
	}, nil)

	output, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, output.Users, 2)
	assert.Equal(t, "John", output.Users[0].Name)
	assert.Equal(t, "Jane", output.Users[1].Name)
}

func TestAuthService_ListUsers_RepositoryFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindAll", ctx, repository.ListFilter{}).Return(nil, errors.New("database error"))

	output, err := fx.service.ListUsers(ctx)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRepositoryUnavailable)
}
