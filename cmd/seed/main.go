// Comando de bootstrap: cria o primeiro operador administrador.
//
// Uso:
//
//	SEED_ADMIN_NAME="Fulano" SEED_ADMIN_EMAIL="fulano@example.com" go run ./cmd/seed
//
// A senha temporária é gerada e impressa uma única vez na saída.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/database/postgres"
	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/config"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
)

const (
	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	passwordLength   = 12
)

func main() {
	name := os.Getenv("SEED_ADMIN_NAME")
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))

	if name == "" || email == "" {
		logrus.Fatal("SEED_ADMIN_NAME e SEED_ADMIN_EMAIL são obrigatórios")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	operatorRepo := repository.NewOperatorRepository(conn)

	existing, err := operatorRepo.GetOperatorByEmail(email)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao verificar operador existente")
	}
	if existing != nil {
		logrus.WithField("email", email).Fatal("Já existe um operador com este e-mail")
	}

	password, err := gonanoid.Generate(passwordAlphabet, passwordLength)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar senha temporária")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar hash da senha")
	}

	operator, err := operatorRepo.CreateOperator(&domain.Operator{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleAdmin,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar operador administrador")
	}

	logrus.WithFields(logrus.Fields{
		"id":    operator.ID,
		"email": operator.Email,
	}).Info("Operador administrador criado com sucesso")

	fmt.Printf("Senha temporária: %s\n", password)
}
