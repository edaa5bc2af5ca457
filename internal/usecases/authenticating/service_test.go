package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository/mocks"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/config"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "segredo-de-teste"}
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOperatorRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	operator := &domain.Operator{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: hashedPassword(t, "senha-correta"),
		Active:       true,
		RoleID:       domain.RoleAdmin,
	}

	mockRepo.EXPECT().
		GetOperatorByEmail("ana@example.com").
		Return(operator, nil)

	token, err := service.Login("  Ana@Example.com ", "senha-correta")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	// O token emitido deve validar e carregar as claims do operador
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.OperatorID)
	assert.Equal(t, "ana@example.com", claims.OperatorEmail)
	assert.Equal(t, domain.RoleAdmin, claims.OperatorRoleID)
}

func TestService_Login_Falhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOperatorRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	tests := []struct {
		name     string
		email    string
		password string
		setup    func()
		expected error
	}{
		{
			name:     "credenciais ausentes",
			email:    "",
			password: "",
			setup:    func() {},
			expected: ErrMissingCredentials,
		},
		{
			name:     "operador não encontrado",
			email:    "ninguem@example.com",
			password: "qualquer",
			setup: func() {
				mockRepo.EXPECT().
					GetOperatorByEmail("ninguem@example.com").
					Return(nil, nil)
			},
			expected: ErrOperatorNotFound,
		},
		{
			name:     "operador desativado",
			email:    "inativo@example.com",
			password: "qualquer",
			setup: func() {
				mockRepo.EXPECT().
					GetOperatorByEmail("inativo@example.com").
					Return(&domain.Operator{
						ID:           2,
						Email:        "inativo@example.com",
						PasswordHash: hashedPassword(t, "qualquer"),
						Active:       false,
					}, nil)
			},
			expected: ErrOperatorDisabled,
		},
		{
			name:     "senha incorreta",
			email:    "ana@example.com",
			password: "senha-errada",
			setup: func() {
				mockRepo.EXPECT().
					GetOperatorByEmail("ana@example.com").
					Return(&domain.Operator{
						ID:           1,
						Email:        "ana@example.com",
						PasswordHash: hashedPassword(t, "senha-correta"),
						Active:       true,
					}, nil)
			},
			expected: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			_, err := service.Login(tt.email, tt.password)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestService_ValidateToken_TokenAdulterado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOperatorRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	_, err := service.ValidateToken("token-invalido")
	assert.Error(t, err)
}

func TestService_GenerateTemporaryPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOperatorRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	admin := &domain.Operator{ID: 1, RoleID: domain.RoleAdmin, Active: true}
	target := &domain.Operator{ID: 5, RoleID: domain.RoleOperator, Active: true}

	mockRepo.EXPECT().GetOperatorByID(1).Return(admin, nil)
	mockRepo.EXPECT().GetOperatorByID(5).Return(target, nil)
	mockRepo.EXPECT().UpdatePassword(5, gomock.Any()).Return(nil)

	password, err := service.GenerateTemporaryPassword(1, 5)

	require.NoError(t, err)
	assert.Len(t, password, passwordLength)
}

func TestService_GenerateTemporaryPassword_SomenteAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOperatorRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().
		GetOperatorByID(7).
		Return(&domain.Operator{ID: 7, RoleID: domain.RoleOperator, Active: true}, nil)

	_, err := service.GenerateTemporaryPassword(7, 5)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestService_GetOperatorProfile_OcultaHashDaSenha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOperatorRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().
		GetOperatorByID(1).
		Return(&domain.Operator{
			ID:           1,
			Name:         "Ana",
			PasswordHash: "hash-sensivel",
			Active:       true,
		}, nil)

	operator, err := service.GetOperatorProfile(1)

	require.NoError(t, err)
	assert.Empty(t, operator.PasswordHash)
}
