package domain

import "time"

// TopProduct é uma linha do ranking de produtos mais vendidos
// para a combinação de loja, canal, dia da semana e janela de horário.
type TopProduct struct {
	ProductName   string `json:"product_name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// TopProductFilters são os filtros do ranking de produtos.
// DayOfWeek segue a convenção do Postgres: 0 = domingo ... 6 = sábado.
type TopProductFilters struct {
	StoreID     int64
	ChannelName string
	DayOfWeek   int
	HourMin     int
	HourMax     int
}

// DateRange é um período de análise com início e fim inclusivos.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ChannelTicketAverage é o ticket médio de um canal em um dia.
type ChannelTicketAverage struct {
	Date        time.Time `json:"date"`
	ChannelName string    `json:"channel_name"`
	AvgTicket   float64   `json:"average_order_value"`
}

// StoreDailyTicketAverage é o ticket médio de uma loja em um dia,
// como retornado pela camada de agregação.
type StoreDailyTicketAverage struct {
	Date      time.Time `json:"date"`
	StoreName string    `json:"store_name"`
	AvgTicket float64   `json:"average_order_value"`
}

// StoreTicketAverage é o ticket médio de uma loja no período,
// calculado como média das médias diárias.
type StoreTicketAverage struct {
	StoreName string  `json:"store_name"`
	AvgTicket float64 `json:"average_order_value"`
	Days      int     `json:"days"`
}

// ProductMargin é uma linha do ranking de margem estimada por produto.
// EstimatedMarginPercent é derivada dos preços médios; produtos com menos
// de 50 unidades vendidas na loja não entram no ranking.
type ProductMargin struct {
	ProductName            string  `json:"product_name"`
	AvgSalePrice           float64 `json:"average_sale_price"`
	AvgBasePrice           float64 `json:"average_base_price"`
	TotalQuantitySold      int64   `json:"total_quantity_sold"`
	EstimatedMarginPercent float64 `json:"estimated_margin_percent"`
}
