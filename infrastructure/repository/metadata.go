// Package repository contém as implementações dos repositórios de leitura
// sobre a base operacional da rede.
package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/database/postgres"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
)

const (
	storesTable   = "stores st"
	channelsTable = "channels c"
)

type MetadataRepository interface {
	ListActiveStores() ([]domain.Store, error)
	ListChannels() ([]domain.Channel, error)
}

type metadataRepository struct {
	conn *postgres.Connection
}

func NewMetadataRepository(conn *postgres.Connection) MetadataRepository {
	return &metadataRepository{
		conn: conn,
	}
}

// ListActiveStores retorna as lojas ativas; apenas elas são selecionáveis
// nos filtros do dashboard.
func (r *metadataRepository) ListActiveStores() ([]domain.Store, error) {
	query, args, err := squirrel.
		Select("st.id", "st.name").
		From(storesTable).
		Where(squirrel.Eq{"st.is_active": true}).
		OrderBy("st.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stores := make([]domain.Store, 0)
	for rows.Next() {
		var store domain.Store
		if err := rows.Scan(&store.ID, &store.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

func (r *metadataRepository) ListChannels() ([]domain.Channel, error) {
	query, args, err := squirrel.
		Select("c.id", "c.name").
		From(channelsTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	channels := make([]domain.Channel, 0)
	for rows.Next() {
		var channel domain.Channel
		if err := rows.Scan(&channel.ID, &channel.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear canal: %w", err)
		}
		channels = append(channels, channel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}
