package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/ev-tracker-dashboard/internal/tracker/aggregate"
	"github.com/radieske/ev-tracker-dashboard/internal/tracker/dto"
	"github.com/radieske/ev-tracker-dashboard/internal/tracker/normalize"
	"github.com/radieske/ev-tracker-dashboard/internal/tracker/service"
)

// API expõe os endpoints REST do dashboard de apostas
type API struct {
	Log *zap.Logger
	Svc *service.Service
}

// Router retorna o roteador HTTP com os endpoints REST
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/v1/dashboard", a.getDashboard)
	r.Get("/v1/filters", a.getFilters)
	r.Post("/v1/bets", a.addBet)
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// getDashboard recarrega a planilha e agrega sob os filtros da query.
// ?results= e ?sports= aceitam valores repetidos ou separados por vírgula;
// ausentes, valem os defaults derivados dos dados. ?initial_capital=
// sobrescreve o capital configurado.
func (a *API) getDashboard(w http.ResponseWriter, r *http.Request) {
	bets, err := a.Svc.LoadAndCompute(r.Context())
	if err != nil {
		a.renderLoadError(w, err)
		return
	}

	q := r.URL.Query()
	sel := aggregate.Selection{
		Results: multiParam(q["results"]),
		Sports:  multiParam(q["sports"]),
	}

	capital := a.Svc.InitialCapital()
	if raw := q.Get("initial_capital"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "initial_capital must be a non-negative number"})
			return
		}
		capital = v
	}

	res := a.Svc.Aggregate(bets, sel, capital)

	out := dto.DashboardResponse{
		Summary: dto.SummaryResponse{
			TotalProfit:   res.Summary.TotalProfit,
			TotalTurnover: res.Summary.TotalTurnover,
			YieldPct:      res.Summary.YieldPct,
			ROIPct:        res.Summary.ROIPct,
			BetCount:      res.Summary.BetCount,
		},
		Series: make([]dto.SeriesPointResponse, 0, len(res.Series)),
		Bets:   make([]dto.BetResponse, 0, len(res.Bets)),
	}
	for _, p := range res.Series {
		out.Series = append(out.Series, dto.SeriesPointResponse{
			Date:                     p.Date.Format("2006-01-02"),
			CumulativeRealProfit:     p.CumulativeRealProfit,
			CumulativeExpectedProfit: p.CumulativeExpectedProfit,
		})
	}
	for _, b := range res.Bets {
		out.Bets = append(out.Bets, dto.BetResponse{
			DatePlaced:     b.DatePlaced,
			Stake:          b.Stake,
			EV:             b.EV,
			Odds:           b.Odds,
			ProfitLoss:     b.ProfitLoss,
			Result:         b.Result,
			GameName:       b.GameName,
			Sport:          b.Sport,
			RealProfit:     b.RealProfit,
			ExpectedProfit: b.ExpectedProfit,
			SheetRow:       b.SourceRow,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// getFilters devolve as opções de filtro derivadas dos dados atuais
func (a *API) getFilters(w http.ResponseWriter, r *http.Request) {
	bets, err := a.Svc.LoadAndCompute(r.Context())
	if err != nil {
		a.renderLoadError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.FiltersResponse{
		Results:        aggregate.DistinctResults(bets),
		Sports:         aggregate.SportOptions(bets),
		InitialCapital: a.Svc.InitialCapital(),
	})
}

// addBet valida o formulário e grava a aposta no fim da planilha
func (a *API) addBet(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
		return
	}

	placed, ok := aggregate.ParseDayFirst(req.DatePlaced)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "datePlaced must be DD-MM-YYYY"})
		return
	}

	err := a.Svc.SubmitNewBet(r.Context(), service.NewBet{
		DatePlaced: placed,
		Stake:      req.Stake,
		EV:         req.EV,
		Odds:       req.Odds,
		ProfitLoss: req.ProfitLoss,
		Result:     req.Result,
		GameName:   req.GameName,
		Sport:      req.Sport,
	})
	if err != nil {
		a.Log.Error("append bet failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, dto.AddBetResponse{Status: "APPENDED"})
}

// renderLoadError mapeia falha de carga: planilha vazia é 404, resto é 500
func (a *API) renderLoadError(w http.ResponseWriter, err error) {
	if errors.Is(err, normalize.ErrEmptyStore) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no data found in the store"})
		return
	}
	a.Log.Error("load failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

// multiParam aceita ?k=a&k=b e também ?k=a,b
func multiParam(vs []string) []string {
	if vs == nil {
		return nil
	}
	var out []string
	for _, v := range vs {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	if out == nil {
		// parâmetro presente mas vazio conta como seleção vazia
		out = []string{}
	}
	return out
}
