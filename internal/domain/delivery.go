package domain

// TimeSlotPerformance é o desempenho de entrega de uma loja em um
// bucket (dia da semana, hora do dia). DayOfWeek: 0 = domingo ... 6 = sábado.
type TimeSlotPerformance struct {
	DayOfWeek          int     `json:"day_of_week_num"`
	HourOfDay          int     `json:"hour_of_day"`
	AvgDeliveryMinutes float64 `json:"average_delivery_minutes"`
	P90DeliveryMinutes float64 `json:"p90_delivery_minutes"`
}

// NeighborhoodPerformance é o desempenho de entrega por bairro.
// Apenas bairros com pelo menos 10 entregas entram no resultado.
type NeighborhoodPerformance struct {
	Neighborhood       string  `json:"neighborhood"`
	DeliveryCount      int64   `json:"delivery_count"`
	AvgDeliveryMinutes float64 `json:"average_delivery_minutes"`
	P90DeliveryMinutes float64 `json:"p90_delivery_minutes"`
}

// DeliveryOverview resume todas as entregas concluídas de uma loja.
type DeliveryOverview struct {
	DeliveryCount      int     `json:"delivery_count"`
	AvgDeliveryMinutes float64 `json:"average_delivery_minutes"`
	P90DeliveryMinutes float64 `json:"p90_delivery_minutes"`
}
