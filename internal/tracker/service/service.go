package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/ev-tracker-dashboard/internal/tracker/aggregate"
	"github.com/radieske/ev-tracker-dashboard/internal/tracker/normalize"
	"github.com/radieske/ev-tracker-dashboard/internal/tracker/profit"
	"github.com/radieske/ev-tracker-dashboard/internal/tracker/store"
	"github.com/radieske/ev-tracker-dashboard/pkg/contracts/events"
)

// DateLayout é o formato dia-mês-ano gravado na planilha,
// o mesmo que o lado de leitura interpreta
const DateLayout = "02-01-2006"

// Publisher emite o evento de aposta registrada; opcional
type Publisher interface {
	PublishBetAppended(context.Context, events.BetAppended) error
}

// Service liga planilha, normalização, cálculo de lucro e agregação
type Service struct {
	log            *zap.Logger
	store          store.RecordStore
	publ           Publisher // nil = sem publicação de eventos
	initialCapital float64
}

func New(log *zap.Logger, st store.RecordStore, publ Publisher, initialCapital float64) *Service {
	return &Service{log: log, store: st, publ: publ, initialCapital: initialCapital}
}

// InitialCapital é o capital inicial configurado, usado como default do ROI
func (s *Service) InitialCapital() float64 { return s.initialCapital }

// LoadAndCompute relê a planilha inteira, normaliza e anexa os lucros.
// Erro de I/O da planilha sobe intacto; planilha sem dados vira
// normalize.ErrEmptyStore. Nada é cacheado entre chamadas.
func (s *Service) LoadAndCompute(ctx context.Context) ([]profit.Computed, error) {
	raw, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	recs, err := normalize.Rows(raw)
	if err != nil {
		return nil, err
	}

	return profit.Attach(recs), nil
}

// Aggregate aplica a seleção de filtros sobre os registros carregados
func (s *Service) Aggregate(bets []profit.Computed, sel aggregate.Selection, initialCapital float64) aggregate.Result {
	return aggregate.Run(bets, sel, initialCapital)
}

// NewBet é o formulário de aposta nova, ainda não serializado
type NewBet struct {
	DatePlaced time.Time
	Stake      float64
	EV         float64
	Odds       string
	ProfitLoss float64
	Result     string
	GameName   string
	Sport      string
}

func (nb NewBet) validate() error {
	if nb.DatePlaced.IsZero() {
		return errors.New("date placed is required")
	}
	if nb.Stake < 0 || math.IsNaN(nb.Stake) || math.IsInf(nb.Stake, 0) {
		return errors.New("stake must be a non-negative number")
	}
	if nb.EV < 0 || math.IsNaN(nb.EV) || math.IsInf(nb.EV, 0) {
		return errors.New("ev must be a non-negative number")
	}
	if math.IsNaN(nb.ProfitLoss) || math.IsInf(nb.ProfitLoss, 0) {
		return errors.New("profit/loss must be a number")
	}
	return nil
}

// SubmitNewBet valida e grava uma aposta nova no fim da planilha.
// Falha de escrita volta pro chamador; o conjunto em memória não é
// atualizado de forma otimista, o próximo load enxerga a linha nova.
func (s *Service) SubmitNewBet(ctx context.Context, nb NewBet) error {
	if err := nb.validate(); err != nil {
		return err
	}
	if nb.Result == "" {
		nb.Result = normalize.DefaultResult
	}
	if nb.Sport == "" {
		nb.Sport = normalize.DefaultSport
	}

	cells := []string{
		nb.DatePlaced.Format(DateLayout),
		strconv.FormatFloat(nb.Stake, 'f', 2, 64),
		strconv.FormatFloat(nb.EV, 'f', 3, 64),
		nb.Odds,
		strconv.FormatFloat(nb.ProfitLoss, 'f', 2, 64),
		nb.Result,
		nb.GameName,
		nb.Sport,
	}

	if err := s.store.AppendRow(ctx, cells); err != nil {
		return fmt.Errorf("append row: %w", err)
	}

	// a linha já está gravada; falha de publicação só gera log
	if s.publ != nil {
		err := s.publ.PublishBetAppended(ctx, events.BetAppended{
			DatePlaced: cells[0],
			Stake:      nb.Stake,
			EV:         nb.EV,
			Odds:       nb.Odds,
			ProfitLoss: nb.ProfitLoss,
			Result:     nb.Result,
			GameName:   nb.GameName,
			Sport:      nb.Sport,
		})
		if err != nil {
			s.log.Warn("publish bet_appended failed", zap.Error(err))
		}
	}

	return nil
}
