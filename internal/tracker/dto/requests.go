package dto

type AddBetRequest struct {
	DatePlaced string  `json:"datePlaced"` // "DD-MM-YYYY"
	Stake      float64 `json:"stake"`
	EV         float64 `json:"ev"` // fração decimal, ex: 0.2 = 20%
	Odds       string  `json:"odds"`
	ProfitLoss float64 `json:"profitLoss"`
	Result     string  `json:"result"` // "Win" | "Loss" | "Cashed Out" | "Pending"
	GameName   string  `json:"gameName"`
	Sport      string  `json:"sport"`
}
