package dto

type SummaryResponse struct {
	TotalProfit   float64 `json:"totalProfit"`
	TotalTurnover float64 `json:"totalTurnover"`
	YieldPct      float64 `json:"yieldPct"`
	ROIPct        float64 `json:"roiPct"`
	BetCount      int     `json:"betCount"`
}

type SeriesPointResponse struct {
	Date                     string  `json:"date"` // "YYYY-MM-DD"
	CumulativeRealProfit     float64 `json:"cumulativeRealProfit"`
	CumulativeExpectedProfit float64 `json:"cumulativeExpectedProfit"`
}

type BetResponse struct {
	DatePlaced     string  `json:"datePlaced"` // "DD-MM-YYYY"
	Stake          float64 `json:"stake"`
	EV             float64 `json:"ev"`
	Odds           string  `json:"odds"`
	ProfitLoss     float64 `json:"profitLoss"`
	Result         string  `json:"result"`
	GameName       string  `json:"gameName"`
	Sport          string  `json:"sport"`
	RealProfit     float64 `json:"realProfit"`
	ExpectedProfit float64 `json:"expectedProfit"`
	SheetRow       int     `json:"sheetRow"`
}

type DashboardResponse struct {
	Summary SummaryResponse       `json:"summary"`
	Series  []SeriesPointResponse `json:"series"`
	Bets    []BetResponse         `json:"bets"`
}

type FiltersResponse struct {
	Results        []string `json:"results"`
	Sports         []string `json:"sports"` // sem "Unknown"
	InitialCapital float64  `json:"initialCapital"`
}

type AddBetResponse struct {
	Status string `json:"status"` // "APPENDED"
}
