package domain

import "time"

// CustomerSummary é o fato base do modelo RFM por cliente identificado:
// data da última compra concluída, total de compras e gasto acumulado.
// É derivado por agregação, nunca persistido.
type CustomerSummary struct {
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	LastSaleDate time.Time `json:"last_sale_date"`
	Frequency    int       `json:"frequency"`
	Monetary     float64   `json:"monetary"`
}

// CustomerRFM é o fato RFM completo de um cliente para uma data de análise:
// o fato base acrescido da recência em dias.
type CustomerRFM struct {
	CustomerID   int64   `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Frequency    int     `json:"frequency"`
	Monetary     float64 `json:"monetary"`
	RecencyDays  int     `json:"recency_days"`
}

// SegmentCriteria são os limiares escolhidos pelo operador para a
// segmentação de clientes em risco: recência estritamente maior que
// RecencyThresholdDays E frequência maior ou igual a FrequencyThreshold.
type SegmentCriteria struct {
	RecencyThresholdDays int
	FrequencyThreshold   int
}

// SegmentSummary resume o gasto dos clientes de um segmento.
type SegmentSummary struct {
	Customers      int     `json:"customers"`
	MonetaryMean   float64 `json:"monetary_mean"`
	MonetaryMedian float64 `json:"monetary_median"`
	MonetaryP25    float64 `json:"monetary_p25"`
	MonetaryP75    float64 `json:"monetary_p75"`
}

// FrequencyBucket é uma faixa de lealdade da distribuição de frequência.
// O intervalo é fechado em Min e aberto em Max: [Min, Max).
type FrequencyBucket struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Count int    `json:"count"`
}
