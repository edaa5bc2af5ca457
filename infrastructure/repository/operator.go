package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/database/postgres"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
)

const (
	operatorsTable = "operators"
)

type OperatorRepository interface {
	CreateOperator(operator *domain.Operator) (*domain.Operator, error)
	GetOperatorByEmail(email string) (*domain.Operator, error)
	GetOperatorByID(operatorID int) (*domain.Operator, error)
	UpdatePassword(operatorID int, passwordHash string) error
}

type operatorRepository struct {
	conn *postgres.Connection
}

func NewOperatorRepository(conn *postgres.Connection) OperatorRepository {
	return &operatorRepository{
		conn: conn,
	}
}

func (r *operatorRepository) CreateOperator(operator *domain.Operator) (*domain.Operator, error) {
	query, args, err := squirrel.
		Insert(operatorsTable).
		Columns("name", "email", "password_hash", "active", "role_id").
		Values(operator.Name, operator.Email, operator.PasswordHash, operator.Active, operator.RoleID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&operator.ID); err != nil {
		return nil, fmt.Errorf("erro ao criar operador: %w", err)
	}

	return operator, nil
}

// GetOperatorByEmail retorna nil sem erro quando o email não existe.
func (r *operatorRepository) GetOperatorByEmail(email string) (*domain.Operator, error) {
	query, args, err := squirrel.
		Select("id", "name", "email", "password_hash", "active", "role_id", "created_at", "updated_at").
		From(operatorsTable).
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	operator, err := r.scanOperator(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear operador: %w", err)
	}

	return operator, nil
}

func (r *operatorRepository) GetOperatorByID(operatorID int) (*domain.Operator, error) {
	query, args, err := squirrel.
		Select("id", "name", "email", "password_hash", "active", "role_id", "created_at", "updated_at").
		From(operatorsTable).
		Where(squirrel.Eq{"id": operatorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	operator, err := r.scanOperator(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear operador: %w", err)
	}

	return operator, nil
}

func (r *operatorRepository) UpdatePassword(operatorID int, passwordHash string) error {
	query, args, err := squirrel.
		Update(operatorsTable).
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": operatorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar senha: %w", err)
	}

	return nil
}

func (r *operatorRepository) scanOperator(row *sql.Row) (*domain.Operator, error) {
	operator := &domain.Operator{}

	err := row.Scan(
		&operator.ID,
		&operator.Name,
		&operator.Email,
		&operator.PasswordHash,
		&operator.Active,
		&operator.RoleID,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return operator, nil
}
