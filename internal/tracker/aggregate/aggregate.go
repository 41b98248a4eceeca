package aggregate

import (
	"sort"
	"time"

	"github.com/radieske/ev-tracker-dashboard/internal/tracker/normalize"
	"github.com/radieske/ev-tracker-dashboard/internal/tracker/profit"
)

// Selection são os filtros escolhidos pelo usuário.
// Results nil = todos os resultados presentes nos dados;
// Sports nil = todos os esportes presentes, menos "Unknown".
type Selection struct {
	Results []string
	Sports  []string
}

// Summary são as métricas do topo do dashboard
type Summary struct {
	TotalProfit   float64
	TotalTurnover float64
	YieldPct      float64
	ROIPct        float64
	BetCount      int
}

// SeriesPoint é um ponto da série acumulada (lucro real x esperado)
type SeriesPoint struct {
	Date                     time.Time
	CumulativeRealProfit     float64
	CumulativeExpectedProfit float64
}

// Bet é um registro filtrado com a data já interpretada, pronto pra tabela
type Bet struct {
	profit.Computed
	Date time.Time
}

// Result reúne a saída completa de uma agregação
type Result struct {
	Summary Summary
	Series  []SeriesPoint
	Bets    []Bet
}

// Layouts aceitos pra "Date Placed": dia primeiro, com hífen ou barra
var dateLayouts = []string{"02-01-2006", "2-1-2006", "02/01/2006", "2/1/2006"}

// ParseDayFirst interpreta uma data dia-mês-ano em texto
func ParseDayFirst(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DistinctResults lista os valores de Result presentes, na ordem de aparição
func DistinctResults(bets []profit.Computed) []string {
	return distinct(bets, func(b profit.Computed) string { return b.Result }, "")
}

// SportOptions lista os esportes presentes, excluindo "Unknown"
func SportOptions(bets []profit.Computed) []string {
	return distinct(bets, func(b profit.Computed) string { return b.Sport }, normalize.DefaultSport)
}

func distinct(bets []profit.Computed, field func(profit.Computed) string, skip string) []string {
	seen := make(map[string]bool, len(bets))
	var out []string
	for _, b := range bets {
		v := field(b)
		if v == skip || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Run filtra os registros pela seleção, calcula as métricas e a série
// acumulada por data. Registro com data ilegível é descartado em silêncio:
// não aparece nas métricas, no gráfico nem na tabela.
func Run(bets []profit.Computed, sel Selection, initialCapital float64) Result {
	results := sel.Results
	if results == nil {
		results = DistinctResults(bets)
	}
	sports := sel.Sports
	if sports == nil {
		sports = SportOptions(bets)
	}

	allowedResults := toSet(results)
	allowedSports := toSet(sports)

	var filtered []Bet
	for _, b := range bets {
		if !allowedResults[b.Result] || !allowedSports[b.Sport] {
			continue
		}
		d, ok := ParseDayFirst(b.DatePlaced)
		if !ok {
			continue
		}
		filtered = append(filtered, Bet{Computed: b, Date: d})
	}

	var sum Summary
	for _, b := range filtered {
		sum.TotalProfit += b.RealProfit
		sum.TotalTurnover += b.Stake
	}
	sum.BetCount = len(filtered)
	if sum.TotalTurnover != 0 {
		sum.YieldPct = sum.TotalProfit / sum.TotalTurnover * 100
	}
	if initialCapital != 0 {
		sum.ROIPct = sum.TotalProfit / initialCapital * 100
	}

	return Result{
		Summary: sum,
		Series:  series(filtered),
		Bets:    filtered,
	}
}

// series agrupa por data, soma por dia e acumula em ordem crescente
func series(filtered []Bet) []SeriesPoint {
	type daySum struct{ real, expected float64 }

	byDay := make(map[time.Time]daySum)
	for _, b := range filtered {
		s := byDay[b.Date]
		s.real += b.RealProfit
		s.expected += b.ExpectedProfit
		byDay[b.Date] = s
	}

	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]SeriesPoint, 0, len(days))
	var cumReal, cumExpected float64
	for _, d := range days {
		cumReal += byDay[d].real
		cumExpected += byDay[d].expected
		out = append(out, SeriesPoint{
			Date:                     d,
			CumulativeRealProfit:     cumReal,
			CumulativeExpectedProfit: cumExpected,
		})
	}
	return out
}

func toSet(vs []string) map[string]bool {
	m := make(map[string]bool, len(vs))
	for _, v := range vs {
		m[v] = true
	}
	return m
}
