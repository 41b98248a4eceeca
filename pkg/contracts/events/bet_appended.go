package events

// Evento publicado no tópico "bet_appended" após gravar uma aposta na planilha
type BetAppended struct {
	BetID      string  `json:"bet_id"`
	DatePlaced string  `json:"date_placed"` // "DD-MM-YYYY"
	Stake      float64 `json:"stake"`
	EV         float64 `json:"ev"` // fração decimal (0.2 = 20%)
	Odds       string  `json:"odds"`
	ProfitLoss float64 `json:"profit_loss"`
	Result     string  `json:"result"`
	GameName   string  `json:"game_name"`
	Sport      string  `json:"sport"`
	TsUnixMs   int64   `json:"ts_unix_ms"`
}
