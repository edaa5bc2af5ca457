package domain

// Store representa uma loja ativa da rede, como cadastrada na base operacional.
// Name carrega a razão social invertida ("Razão Social - Nome Fantasia");
// DisplayName é o nome já limpo para exibição.
type Store struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type Channel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Metadata agrupa os dados estáticos carregados uma vez por dia
// (lojas ativas e canais de venda) usados pelos filtros do dashboard.
type Metadata struct {
	Stores   []Store   `json:"stores"`
	Channels []Channel `json:"channels"`
}
