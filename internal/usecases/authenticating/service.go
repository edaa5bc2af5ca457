// Package authenticating cuida do login dos operadores do dashboard.
package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/config"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrOperatorDisabled   = errors.New("operador desativado")
	ErrOperatorNotFound   = errors.New("operador não encontrado")
	ErrMissingCredentials = errors.New("email e senha são obrigatórios")
	ErrNotAdmin           = errors.New("apenas administradores podem gerar senhas temporárias")
)

const (
	tokenLifetime = 24 * time.Hour

	// Alfabeto e tamanho das senhas temporárias geradas
	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	passwordLength   = 12
)

type Authenticator interface {
	Login(email, password string) (string, error)
	GetOperatorProfile(operatorID int) (*domain.Operator, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateTemporaryPassword(requestOperatorID, targetOperatorID int) (string, error)
}

type Service struct {
	operatorRepo repository.OperatorRepository
	cfg          *config.Config
}

func NewService(operatorRepo repository.OperatorRepository, cfg *config.Config) Authenticator {
	return &Service{
		operatorRepo: operatorRepo,
		cfg:          cfg,
	}
}

func (s *Service) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	email = normalizeEmail(email)

	operator, err := s.operatorRepo.GetOperatorByEmail(email)
	if err != nil {
		return "", errors.Wrap(err, "erro ao consultar operador")
	}

	if operator == nil {
		return "", ErrOperatorNotFound
	}

	if !operator.Active {
		return "", ErrOperatorDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := generateJWT(operator, s.cfg.SecretKey)
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetOperatorProfile(operatorID int) (*domain.Operator, error) {
	operator, err := s.operatorRepo.GetOperatorByID(operatorID)
	if err != nil {
		return nil, err
	}

	if operator == nil {
		return nil, ErrOperatorNotFound
	}

	operator.PasswordHash = ""
	return operator, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("token inválido")
	}

	return claims, nil
}

// GenerateTemporaryPassword gera e grava uma senha temporária para o
// operador alvo. Somente administradores podem gerar senhas.
func (s *Service) GenerateTemporaryPassword(requestOperatorID, targetOperatorID int) (string, error) {
	requester, err := s.operatorRepo.GetOperatorByID(requestOperatorID)
	if err != nil {
		return "", err
	}
	if requester == nil {
		return "", ErrOperatorNotFound
	}
	if requester.RoleID != domain.RoleAdmin {
		return "", ErrNotAdmin
	}

	target, err := s.operatorRepo.GetOperatorByID(targetOperatorID)
	if err != nil {
		return "", err
	}
	if target == nil {
		return "", ErrOperatorNotFound
	}

	password, err := gonanoid.Generate(passwordAlphabet, passwordLength)
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar senha temporária")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "erro ao criptografar senha")
	}

	if err := s.operatorRepo.UpdatePassword(target.ID, string(hash)); err != nil {
		return "", err
	}

	return password, nil
}

func normalizeEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	return strings.ReplaceAll(email, " ", "")
}

func generateJWT(operator *domain.Operator, secretKey string) (string, error) {
	claims := domain.Claims{
		OperatorID:     operator.ID,
		OperatorName:   operator.Name,
		OperatorEmail:  operator.Email,
		OperatorRoleID: operator.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
