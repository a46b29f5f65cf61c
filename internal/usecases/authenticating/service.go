package authenticating

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-projection-api/infrastructure/repository"
	"github.com/vfg2006/brand-projection-api/internal/config"
	"github.com/vfg2006/brand-projection-api/internal/domain"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"github.com/vfg2006/brand-projection-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
	tokenTTL          = 24 * time.Hour
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Authenticator interface {
	LoginUser(ctx context.Context, username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	CreateUser(ctx context.Context, request *domain.CreateUserRequest) (*domain.User, error)
	EnsureDefaultUsers(ctx context.Context) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func normalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *Service) LoginUser(ctx context.Context, username, password string) (string, error) {
	username = normalizeUsername(username)

	// Validação de entrada
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	if len(username) < minUsernameLength || len(password) < minPasswordLength {
		return "", NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Usuário ou senha em formato inválido")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	// Verificar se o usuário existe
	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	// Verificar se o usuário está ativo
	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := generateJWT(user, s.cfg.SecretKey, time.Now())
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.Error(err)
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	for _, user := range users {
		user.PasswordHash = ""
	}

	return users, nil
}

func (s *Service) CreateUser(ctx context.Context, request *domain.CreateUserRequest) (*domain.User, error) {
	if request == nil {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Corpo da requisição ausente")
	}

	username := normalizeUsername(request.Username)
	if username == "" || request.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	if len(username) < minUsernameLength || len(request.Password) < minPasswordLength {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Usuário deve ter ao menos 3 caracteres e senha ao menos 6")
	}

	roleID := request.RoleID
	if roleID == 0 {
		roleID = domain.RoleGuest
	}
	if roleID != domain.RoleAdmin && roleID != domain.RoleGuest {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, fmt.Sprintf("Role inválido: %d", roleID))
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Usuário já cadastrado")
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		name = username
	}

	return s.createUser(ctx, username, name, request.Password, roleID)
}

func (s *Service) createUser(ctx context.Context, username, name, password string, roleID int) (*domain.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		ID:           id,
		Username:     username,
		Name:         name,
		PasswordHash: string(hashedPassword),
		Active:       true,
		RoleID:       roleID,
	})
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	user.PasswordHash = ""
	return user, nil
}

// EnsureDefaultUsers cria os usuários admin e guest quando ainda não existem.
// Sem senha configurada, uma senha forte é gerada e registrada no log uma única vez.
func (s *Service) EnsureDefaultUsers(ctx context.Context) error {
	defaults := []struct {
		username string
		name     string
		password string
		roleID   int
	}{
		{username: "admin", name: "Administrador", password: s.cfg.Auth.AdminPassword, roleID: domain.RoleAdmin},
		{username: "guest", name: "Convidado", password: s.cfg.Auth.GuestPassword, roleID: domain.RoleGuest},
	}

	for _, d := range defaults {
		existing, err := s.userRepo.GetUserByUsername(ctx, d.username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		password := d.password
		if password == "" {
			password, err = generateStrongPassword(12)
			if err != nil {
				return err
			}
			logrus.WithField("username", d.username).Warnf("Senha gerada para usuário padrão: %s", password)
		}

		if _, err := s.createUser(ctx, d.username, d.name, password, d.roleID); err != nil {
			return err
		}

		logrus.WithField("username", d.username).Info("Usuário padrão criado")
	}

	return nil
}

func generateJWT(user *domain.User, secretKey string, issuedAt time.Time) (string, error) {
	claims := domain.Claims{
		UserID:     user.ID,
		Username:   user.Username,
		UserName:   user.Name,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	return claims, nil
}

// generateStrongPassword gera uma senha com letras maiúsculas, minúsculas,
// números e caracteres especiais
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*-_=+"
		allChars     = lowerChars + upperChars + numberChars + specialChars
	)

	password := make([]byte, length)
	for i, charset := range []string{lowerChars, upperChars, numberChars, specialChars} {
		c, err := getRandomChar(charset)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	for i := 4; i < length; i++ {
		c, err := getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	// Embaralhar para que os caracteres não fiquem em ordem previsível
	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randomInt gera um número aleatório seguro entre 0 e max-1
func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
