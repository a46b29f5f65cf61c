package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-projection-api/infrastructure/repository/mocks"
	"github.com/vfg2006/brand-projection-api/internal/config"
	"github.com/vfg2006/brand-projection-api/internal/domain"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{
		SecretKey: "test-secret",
		Auth:      config.Auth{AdminPassword: "admin123", GuestPassword: "guest123"},
	}
	return &Service{userRepo: userRepo, cfg: cfg}, userRepo
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		setup    func(repo *mocks.MockUserRepository)
		wantErr  error
		wantCode string
	}{
		{
			name:     "campos vazios",
			username: "  ",
			password: "",
			wantErr:  ErrMissingRequiredData,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "usuário curto",
			username: "ab",
			password: "123456",
			wantErr:  ErrInvalidFormat,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "senha curta",
			username: "admin",
			password: "123",
			wantErr:  ErrInvalidFormat,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "usuário inexistente",
			username: "nobody",
			password: "123456",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(gomock.Any(), "nobody").Return(nil, nil)
			},
			wantErr:  ErrUserNotFound,
			wantCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "usuário desativado",
			username: "guest",
			password: "guest123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(gomock.Any(), "guest").Return(&domain.User{ID: "u2", Username: "guest", Active: false}, nil)
			},
			wantErr:  ErrUserDisabled,
			wantCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "senha incorreta",
			username: "admin",
			password: "wrong-password",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(&domain.User{ID: "u1", Username: "admin", Active: true, PasswordHash: hashPassword(t, "admin123")}, nil)
			},
			wantErr:  ErrInvalidCredentials,
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "erro no banco",
			username: "admin",
			password: "admin123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(nil, errors.New("connection refused"))
			},
			wantErr:  ErrDatabaseOperation,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			token, err := service.LoginUser(ctx, tt.username, tt.password)
			assert.Empty(t, token)
			assert.ErrorIs(t, err, tt.wantErr)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.wantCode, authErr.Code)
		})
	}
}

func TestService_LoginUserAndValidateToken(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetUserByUsername(gomock.Any(), "admin").
		Return(&domain.User{ID: "u1", Username: "admin", Name: "Administrador", Active: true, RoleID: domain.RoleAdmin, PasswordHash: hashPassword(t, "admin123")}, nil)

	token, err := service.LoginUser(ctx, "  ADMIN ", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := newTestService(t)
	user := &domain.User{ID: "u1", Username: "admin", RoleID: domain.RoleAdmin}

	t.Run("token expirado", func(t *testing.T) {
		token, err := generateJWT(user, "test-secret", time.Now().Add(-48*time.Hour))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("assinatura diferente", func(t *testing.T) {
		token, err := generateJWT(user, "outro-segredo", time.Now())
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("algoritmo inesperado", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{UserID: "u1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("lixo", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("cria guest por padrão", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByUsername(gomock.Any(), "maria").Return(nil, nil)
		repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, "maria", user.Username)
				assert.Equal(t, domain.RoleGuest, user.RoleID)
				assert.True(t, user.Active)
				assert.NotEmpty(t, user.ID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("segredo1")))
				return user, nil
			})

		user, err := service.CreateUser(ctx, &domain.CreateUserRequest{Username: " Maria ", Name: "Maria", Password: "segredo1"})
		require.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("usuário duplicado", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(&domain.User{ID: "u1"}, nil)

		_, err := service.CreateUser(ctx, &domain.CreateUserRequest{Username: "admin", Password: "segredo1"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("role inválido", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(ctx, &domain.CreateUserRequest{Username: "joao", Password: "segredo1", RoleID: 7})
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestService_EnsureDefaultUsers(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(&domain.User{ID: "u1"}, nil)
	repo.EXPECT().GetUserByUsername(gomock.Any(), "guest").Return(nil, nil)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "guest", user.Username)
			assert.Equal(t, domain.RoleGuest, user.RoleID)
			return user, nil
		})

	require.NoError(t, service.EnsureDefaultUsers(ctx))
}

func TestGenerateStrongPassword(t *testing.T) {
	password, err := generateStrongPassword(4)
	require.NoError(t, err)
	assert.Len(t, password, 8)
}
