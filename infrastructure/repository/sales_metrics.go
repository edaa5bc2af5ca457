package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/database/postgres"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
)

const (
	salesTable        = "sales s"
	productSalesTable = "product_sales ps"

	// Apenas vendas concluídas entram em qualquer métrica de receita ou margem
	completedStatus = "COMPLETED"

	// Produtos com poucas unidades vendidas não têm amostra relevante
	// para estimativa de margem
	marginMinQuantity = 50

	topProductsLimit = 10
)

// SalesMetricsRepository responde as perguntas analíticas de vendas do
// dashboard, uma consulta agregada por pergunta.
type SalesMetricsRepository interface {
	TopProducts(filters domain.TopProductFilters) ([]domain.TopProduct, error)
	TicketAverageByChannel(period domain.DateRange) ([]domain.ChannelTicketAverage, error)
	TicketAverageByStore(period domain.DateRange) ([]domain.StoreDailyTicketAverage, error)
	MarginRanking(storeID int64) ([]domain.ProductMargin, error)
}

type salesMetricsRepository struct {
	conn *postgres.Connection
}

func NewSalesMetricsRepository(conn *postgres.Connection) SalesMetricsRepository {
	return &salesMetricsRepository{
		conn: conn,
	}
}

// TopProducts retorna até 10 produtos por quantidade vendida na loja,
// canal, dia da semana e janela de horário informados. Resultado vazio
// é um estado normal, não um erro.
func (r *salesMetricsRepository) TopProducts(filters domain.TopProductFilters) ([]domain.TopProduct, error) {
	query, args, err := squirrel.
		Select(
			"p.name AS product_name",
			"SUM(ps.quantity) AS total_quantity",
		).
		From(salesTable).
		Join("product_sales ps ON ps.sale_id = s.id").
		Join("products p ON p.id = ps.product_id").
		Join("channels c ON c.id = s.channel_id").
		Where(squirrel.Eq{
			"s.sale_status_desc": completedStatus,
			"s.store_id":         filters.StoreID,
			"c.name":             filters.ChannelName,
		}).
		Where("EXTRACT(DOW FROM s.created_at) = ?", filters.DayOfWeek).
		Where("EXTRACT(HOUR FROM s.created_at) BETWEEN ? AND ?", filters.HourMin, filters.HourMax).
		GroupBy("p.name").
		OrderBy("total_quantity DESC").
		Limit(topProductsLimit).
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

	products := make([]domain.TopProduct, 0)
	for rows.Next() {
		var product domain.TopProduct
		if err := rows.Scan(&product.ProductName, &product.TotalQuantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// TicketAverageByChannel retorna o ticket médio por dia e canal no
// período, com início e fim inclusivos, ordenado por data.
func (r *salesMetricsRepository) TicketAverageByChannel(period domain.DateRange) ([]domain.ChannelTicketAverage, error) {
	query, args, err := squirrel.
		Select(
			"DATE_TRUNC('day', s.created_at) AS sale_date",
			"c.name AS channel_name",
			"AVG(s.total_amount) AS avg_ticket",
		).
		From(salesTable).
		Join("channels c ON c.id = s.channel_id").
		Where(squirrel.Eq{"s.sale_status_desc": completedStatus}).
		Where("s.created_at >= ?", period.Start).
		Where("s.created_at < ?", period.End.AddDate(0, 0, 1)).
		GroupBy("1", "2").
		OrderBy("1").
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

	averages := make([]domain.ChannelTicketAverage, 0)
	for rows.Next() {
		var average domain.ChannelTicketAverage
		if err := rows.Scan(&average.Date, &average.ChannelName, &average.AvgTicket); err != nil {
			return nil, fmt.Errorf("erro ao escanear ticket médio: %w", err)
		}
		averages = append(averages, average)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return averages, nil
}

// TicketAverageByStore retorna o ticket médio por dia e loja no período.
// A consolidação em uma média única por loja é responsabilidade do
// chamador (média das médias diárias).
func (r *salesMetricsRepository) TicketAverageByStore(period domain.DateRange) ([]domain.StoreDailyTicketAverage, error) {
	query, args, err := squirrel.
		Select(
			"DATE_TRUNC('day', s.created_at) AS sale_date",
			"st.name AS store_name",
			"AVG(s.total_amount) AS avg_ticket",
		).
		From(salesTable).
		Join("stores st ON st.id = s.store_id").
		Where(squirrel.Eq{"s.sale_status_desc": completedStatus}).
		Where("s.created_at >= ?", period.Start).
		Where("s.created_at < ?", period.End.AddDate(0, 0, 1)).
		GroupBy("1", "2").
		OrderBy("1").
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

	averages := make([]domain.StoreDailyTicketAverage, 0)
	for rows.Next() {
		var average domain.StoreDailyTicketAverage
		if err := rows.Scan(&average.Date, &average.StoreName, &average.AvgTicket); err != nil {
			return nil, fmt.Errorf("erro ao escanear ticket médio: %w", err)
		}
		averages = append(averages, average)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return averages, nil
}

// MarginRanking retorna preço médio de venda, custo base médio e
// quantidade vendida por produto da loja, restrito a produtos com mais
// de 50 unidades vendidas. A margem estimada e a ordenação são derivadas
// pelo chamador a partir destes agregados.
func (r *salesMetricsRepository) MarginRanking(storeID int64) ([]domain.ProductMargin, error) {
	query, args, err := squirrel.
		Select(
			"p.name AS product_name",
			"AVG(ps.total_price / ps.quantity) AS avg_sale_price",
			"AVG(ps.base_price) AS avg_base_price",
			"SUM(ps.quantity) AS total_quantity_sold",
		).
		From(productSalesTable).
		Join("sales s ON s.id = ps.sale_id").
		Join("products p ON p.id = ps.product_id").
		Where(squirrel.Eq{
			"s.store_id":         storeID,
			"s.sale_status_desc": completedStatus,
		}).
		GroupBy("p.name").
		Having("SUM(ps.quantity) > ?", marginMinQuantity).
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

	margins := make([]domain.ProductMargin, 0)
	for rows.Next() {
		var margin domain.ProductMargin
		err := rows.Scan(
			&margin.ProductName,
			&margin.AvgSalePrice,
			&margin.AvgBasePrice,
			&margin.TotalQuantitySold,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear margem de produto: %w", err)
		}
		margins = append(margins, margin)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return margins, nil
}
