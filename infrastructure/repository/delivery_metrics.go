package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/database/postgres"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
)

const (
	// Amostra mínima para um bairro aparecer na análise geográfica
	neighborhoodMinDeliveries = 10
)

// DeliveryMetricsRepository responde as perguntas de logística de entrega.
// Todas as consultas consideram apenas vendas concluídas com
// delivery_seconds preenchido.
type DeliveryMetricsRepository interface {
	PerformanceByTimeSlot(storeID int64) ([]domain.TimeSlotPerformance, error)
	PerformanceByNeighborhood(storeID int64) ([]domain.NeighborhoodPerformance, error)
	CompletedDeliveryMinutes(storeID int64) ([]float64, error)
}

type deliveryMetricsRepository struct {
	conn *postgres.Connection
}

func NewDeliveryMetricsRepository(conn *postgres.Connection) DeliveryMetricsRepository {
	return &deliveryMetricsRepository{
		conn: conn,
	}
}

// PerformanceByTimeSlot retorna média e P90 do tempo de entrega em minutos
// por bucket (dia da semana, hora), um bucket por combinação observada.
// O P90 usa percentil contínuo (interpolado) do Postgres.
func (r *deliveryMetricsRepository) PerformanceByTimeSlot(storeID int64) ([]domain.TimeSlotPerformance, error) {
	query, args, err := squirrel.
		Select(
			"EXTRACT(DOW FROM s.created_at)::int AS day_of_week_num",
			"EXTRACT(HOUR FROM s.created_at)::int AS hour_of_day",
			"AVG(s.delivery_seconds / 60.0) AS avg_delivery_minutes",
			"PERCENTILE_CONT(0.9) WITHIN GROUP (ORDER BY s.delivery_seconds / 60.0) AS p90_delivery_minutes",
		).
		From(salesTable).
		Where(squirrel.Eq{
			"s.store_id":         storeID,
			"s.sale_status_desc": completedStatus,
		}).
		Where("s.delivery_seconds IS NOT NULL").
		GroupBy("1", "2").
		OrderBy("1", "2").
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

	slots := make([]domain.TimeSlotPerformance, 0)
	for rows.Next() {
		var slot domain.TimeSlotPerformance
		err := rows.Scan(
			&slot.DayOfWeek,
			&slot.HourOfDay,
			&slot.AvgDeliveryMinutes,
			&slot.P90DeliveryMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear bucket de entrega: %w", err)
		}
		slots = append(slots, slot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return slots, nil
}

// PerformanceByNeighborhood retorna as métricas de entrega por bairro,
// restrito a bairros com pelo menos 10 entregas, do pior para o melhor
// tempo médio.
func (r *deliveryMetricsRepository) PerformanceByNeighborhood(storeID int64) ([]domain.NeighborhoodPerformance, error) {
	query, args, err := squirrel.
		Select(
			"da.neighborhood",
			"COUNT(s.id) AS delivery_count",
			"AVG(s.delivery_seconds / 60.0) AS avg_delivery_minutes",
			"PERCENTILE_CONT(0.9) WITHIN GROUP (ORDER BY s.delivery_seconds / 60.0) AS p90_delivery_minutes",
		).
		From(salesTable).
		Join("delivery_addresses da ON da.sale_id = s.id").
		Where(squirrel.Eq{
			"s.store_id":         storeID,
			"s.sale_status_desc": completedStatus,
		}).
		Where("s.delivery_seconds IS NOT NULL").
		GroupBy("da.neighborhood").
		Having("COUNT(s.id) >= ?", neighborhoodMinDeliveries).
		OrderBy("avg_delivery_minutes DESC").
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

	neighborhoods := make([]domain.NeighborhoodPerformance, 0)
	for rows.Next() {
		var neighborhood domain.NeighborhoodPerformance
		err := rows.Scan(
			&neighborhood.Neighborhood,
			&neighborhood.DeliveryCount,
			&neighborhood.AvgDeliveryMinutes,
			&neighborhood.P90DeliveryMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear bairro: %w", err)
		}
		neighborhoods = append(neighborhoods, neighborhood)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return neighborhoods, nil
}

// CompletedDeliveryMinutes retorna a duração em minutos de cada entrega
// concluída da loja, para o resumo geral calculado em memória.
func (r *deliveryMetricsRepository) CompletedDeliveryMinutes(storeID int64) ([]float64, error) {
	query, args, err := squirrel.
		Select("s.delivery_seconds / 60.0 AS delivery_minutes").
		From(salesTable).
		Where(squirrel.Eq{
			"s.store_id":         storeID,
			"s.sale_status_desc": completedStatus,
		}).
		Where("s.delivery_seconds IS NOT NULL").
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

	minutes := make([]float64, 0)
	for rows.Next() {
		var m float64
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("erro ao escanear duração de entrega: %w", err)
		}
		minutes = append(minutes, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return minutes, nil
}
