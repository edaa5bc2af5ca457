package repository

import (
	"fmt"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/database/postgres"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
)

// customerSummariesQuery agrega uma linha por cliente identificado com
// compras concluídas: data da última compra, total de compras e gasto
// acumulado. A recência é derivada depois, em memória, a partir da data
// de análise escolhida pelo operador.
const customerSummariesQuery = `
WITH customer_summary AS (
    SELECT
        c.id AS customer_id,
        c.customer_name,
        MAX(s.created_at) AS last_sale_date,
        COUNT(s.id) AS frequency,
        SUM(s.total_amount) AS monetary
    FROM customers c
    JOIN sales s ON s.customer_id = c.id
    WHERE s.sale_status_desc = 'COMPLETED'
    GROUP BY c.id, c.customer_name
)
SELECT
    customer_id,
    customer_name,
    last_sale_date,
    frequency,
    monetary
FROM customer_summary
WHERE frequency > 0
ORDER BY last_sale_date DESC;
`

// CustomerRFMRepository carrega os fatos base do modelo RFM.
type CustomerRFMRepository interface {
	CustomerSummaries() ([]domain.CustomerSummary, error)
}

type customerRFMRepository struct {
	conn *postgres.Connection
}

func NewCustomerRFMRepository(conn *postgres.Connection) CustomerRFMRepository {
	return &customerRFMRepository{
		conn: conn,
	}
}

func (r *customerRFMRepository) CustomerSummaries() ([]domain.CustomerSummary, error) {
	rows, err := r.conn.Query(customerSummariesQuery)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.CustomerSummary, 0)
	for rows.Next() {
		var summary domain.CustomerSummary
		err := rows.Scan(
			&summary.CustomerID,
			&summary.CustomerName,
			&summary.LastSaleDate,
			&summary.Frequency,
			&summary.Monetary,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de cliente: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}
