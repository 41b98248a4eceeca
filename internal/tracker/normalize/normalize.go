package normalize

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyStore indica planilha sem linha de dados (só cabeçalho, ou nada)
var ErrEmptyStore = errors.New("no data rows in store")

// Nomes de coluna esperados no cabeçalho da planilha
const (
	ColDatePlaced = "Date Placed"
	ColStake      = "Stake ($)"
	ColEV         = "EV"
	ColOdds       = "Odds"
	ColProfitLoss = "Profit/Loss"
	ColResult     = "Result"
	ColGameName   = "Game Name"
	ColSport      = "Sport"
)

// ExpectedColumns é a ordem posicional das colunas ao gravar uma linha nova
var ExpectedColumns = []string{
	ColDatePlaced, ColStake, ColEV, ColOdds,
	ColProfitLoss, ColResult, ColGameName, ColSport,
}

// Valores padrão de campos enumerados quando a célula vem vazia
const (
	DefaultResult = "Pending"
	DefaultSport  = "Unknown"
)

// Record é uma aposta já tipada e saneada da planilha
type Record struct {
	DatePlaced string  // texto dia-mês-ano, coerção de data fica pro agregador
	Stake      float64 // sempre >= 0
	EV         float64 // fração decimal (0.2 = 20%)
	Odds       string  // texto opaco, não interpretado
	ProfitLoss float64 // retorno bruto informado pela fonte
	Result     string
	GameName   string
	Sport      string
	SourceRow  int // posição física na planilha; cabeçalho é a linha 1
}

// Rows transforma as linhas cruas da planilha em registros tipados.
// Linhas curtas são completadas com células vazias; colunas esperadas
// ausentes do cabeçalho viram vazio; colunas extras são descartadas.
func Rows(raw [][]string) ([]Record, error) {
	if len(raw) < 2 {
		return nil, ErrEmptyStore
	}

	headers := raw[0]
	out := make([]Record, 0, len(raw)-1)
	for i, row := range raw[1:] {
		cells := make(map[string]string, len(headers))
		for j, h := range headers {
			if j < len(row) {
				cells[h] = row[j]
			} else {
				cells[h] = ""
			}
		}

		stake := CleanCurrency(cells[ColStake])
		if stake < 0 {
			stake = 0
		}

		r := Record{
			DatePlaced: cells[ColDatePlaced],
			Stake:      stake,
			EV:         ParseEV(cells[ColEV]),
			Odds:       cells[ColOdds],
			ProfitLoss: CleanCurrency(cells[ColProfitLoss]),
			Result:     cells[ColResult],
			GameName:   cells[ColGameName],
			Sport:      cells[ColSport],
			SourceRow:  i + 2,
		}
		if r.Result == "" {
			r.Result = DefaultResult
		}
		if r.Sport == "" {
			r.Sport = DefaultSport
		}
		out = append(out, r)
	}
	return out, nil
}

// CleanCurrency remove "$" e "," e interpreta como float.
// Vazio ou ilegível vira 0; planilha suja nunca derruba o dashboard.
func CleanCurrency(s string) float64 {
	s = strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(s))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseEV interpreta o EV em dois estágios: primeiro como decimal direto,
// senão como percentual com sufixo "%" dividido por 100. Um número puro é
// sempre tratado como fração já decimal ("20" vira 20.0, nunca 0.2).
func ParseEV(s string) float64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	if t, ok := strings.CutSuffix(s, "%"); ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return v / 100
		}
	}
	return 0
}
