package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUserService(userRepo *mockRepo.MockUserRepository, hasher *mockService.MockPasswordHasher, tokenSvc *mockService.MockTokenService) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       discardLogger(),
	})
}

func TestUserService_Signup_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	hasher.EXPECT().Hash("password123").Return("hashed", nil)

	var created *entity.User
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			created = user
		}).
		Return(nil)

	view, err := svc.Signup(ctx, &usecase.SignupInput{Email: "new@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "new@example.com", created.Email)
	assert.Equal(t, "hashed", created.PasswordHash)
	assert.Equal(t, entity.RoleUser, created.Role)
	assert.False(t, created.Approved, "new accounts start unapproved")

	assert.Equal(t, created.ID.String(), view.ID)
	assert.Equal(t, "user", view.Role)
	assert.False(t, view.Approved)
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "taken@example.com"}

	userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(existing, nil)

	_, err := svc.Signup(ctx, &usecase.SignupInput{Email: "taken@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Signup_DuplicateEmailRace(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "raced@example.com").Return(nil, repository.ErrUserNotFound)
	hasher.EXPECT().Hash("password123").Return("hashed", nil)
	userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	_, err := svc.Signup(ctx, &usecase.SignupInput{Email: "raced@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Login_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "approved@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleUser,
		Approved:     true,
	}

	userRepo.EXPECT().FindByEmail(ctx, "approved@example.com").Return(user, nil)
	hasher.EXPECT().Check("password123", "hashed").Return(true)
	tokenSvc.EXPECT().Generate("approved@example.com").Return("signed-token", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "approved@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, "approved@example.com", output.User.Email)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := &entity.User{Email: "user@example.com", PasswordHash: "hashed", Approved: true}

	userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_PendingApproval(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := &entity.User{
		Email:        "pending@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleUser,
		Approved:     false,
	}

	userRepo.EXPECT().FindByEmail(ctx, "pending@example.com").Return(user, nil)
	hasher.EXPECT().Check("password123", "hashed").Return(true)

	// Correct credentials are still rejected while the account awaits
	// approval, with the dedicated pending error rather than 401.
	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "pending@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountPendingApproval)
}

func TestUserService_Login_AdminBypassesApproval(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	admin := &entity.User{
		Email:        "admin@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleAdmin,
		Approved:     false,
	}

	userRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(admin, nil)
	hasher.EXPECT().Check("password123", "hashed").Return(true)
	tokenSvc.EXPECT().Generate("admin@example.com").Return("signed-token", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "admin@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
}

func TestUserService_ApproveUser_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	userID := uuid.New()
	approved := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleUser, Approved: true}

	userRepo.EXPECT().SetApproved(ctx, userID, true).Return(nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(approved, nil)

	view, err := svc.ApproveUser(ctx, userID.String())
	require.NoError(t, err)
	assert.True(t, view.Approved)
}

func TestUserService_ApproveUser_MalformedID(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	_, err := svc.ApproveUser(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ApproveUser_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().SetApproved(ctx, userID, true).Return(repository.ErrUserNotFound)

	_, err := svc.ApproveUser(ctx, userID.String())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().Delete(ctx, userID).Return(nil)
	require.NoError(t, svc.DeleteUser(ctx, userID.String()))

	assert.ErrorIs(t, svc.DeleteUser(ctx, "bogus"), domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_RepositoryError(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	userRepo.EXPECT().List(ctx).Return(nil, errors.New("connection reset"))

	_, err := svc.ListUsers(ctx)
	assert.Error(t, err)
}
