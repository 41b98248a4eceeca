package profit

import "github.com/radieske/ev-tracker-dashboard/internal/tracker/normalize"

// Valores de Result reconhecidos no cálculo de lucro realizado.
// Qualquer outro texto conta como aposta em aberto (lucro 0).
const (
	ResultWin       = "Win"
	ResultLoss      = "Loss"
	ResultCashedOut = "Cashed Out"
	ResultPending   = "Pending"
)

// Computed é um registro com os lucros derivados anexados
type Computed struct {
	normalize.Record
	RealProfit     float64
	ExpectedProfit float64
}

// Real calcula o lucro realizado de uma aposta.
// "Cashed Out" liquida igual a "Win": retorno bruto menos stake.
func Real(r normalize.Record) float64 {
	switch r.Result {
	case ResultWin, ResultCashedOut:
		return r.ProfitLoss - r.Stake
	case ResultLoss:
		return -r.Stake
	}
	return 0
}

// Expected calcula o lucro esperado, independente do resultado
// (aposta pendente ainda tem lucro esperado se o EV for não-nulo)
func Expected(r normalize.Record) float64 {
	return r.Stake * r.EV
}

// Attach anexa os lucros derivados a cada registro
func Attach(rs []normalize.Record) []Computed {
	out := make([]Computed, len(rs))
	for i, r := range rs {
		out[i] = Computed{
			Record:         r,
			RealProfit:     Real(r),
			ExpectedProfit: Expected(r),
		}
	}
	return out
}
