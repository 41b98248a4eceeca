package normalize

import (
	"errors"
	"testing"
)

func TestCleanCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain number", "120", 120},
		{"dollar sign", "$120.50", 120.50},
		{"thousands separator", "$1,250.75", 1250.75},
		{"spaces around", " $20 ", 20},
		{"empty", "", 0},
		{"only symbols", "$,", 0},
		{"garbage", "abc", 0},
		{"negative kept", "-35", -35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCurrency(tt.in); got != tt.want {
				t.Errorf("CleanCurrency(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEV(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"decimal", "0.25", 0.25},
		{"percent suffix", "25%", 0.25},
		{"percent with space", " 12.5% ", 0.125},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"lone percent", "%", 0},
		// um número puro é fração já decimal, nunca dividido por 100
		{"bare integer stays decimal", "20", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseEV(tt.in); got != tt.want {
				t.Errorf("ParseEV(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func header() []string {
	return []string{
		"Date Placed", "Stake ($)", "EV", "Odds",
		"Profit/Loss", "Result", "Game Name", "Sport",
	}
}

func TestRowsEmptyStore(t *testing.T) {
	for _, raw := range [][][]string{
		nil,
		{},
		{header()},
	} {
		if _, err := Rows(raw); !errors.Is(err, ErrEmptyStore) {
			t.Errorf("Rows(%d rows): expected ErrEmptyStore, got %v", len(raw), err)
		}
	}
}

func TestRowsFullRow(t *testing.T) {
	raw := [][]string{
		header(),
		{"01-03-2024", "$100", "0.1", "+150", "120", "Win", "TeamA vs TeamB", "Basketball"},
	}

	recs, err := Rows(raw)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}

	r := recs[0]
	if r.DatePlaced != "01-03-2024" {
		t.Errorf("DatePlaced = %q", r.DatePlaced)
	}
	if r.Stake != 100 {
		t.Errorf("Stake = %v, want 100", r.Stake)
	}
	if r.EV != 0.1 {
		t.Errorf("EV = %v, want 0.1", r.EV)
	}
	if r.Odds != "+150" {
		t.Errorf("Odds = %q", r.Odds)
	}
	if r.ProfitLoss != 120 {
		t.Errorf("ProfitLoss = %v, want 120", r.ProfitLoss)
	}
	if r.Result != "Win" || r.GameName != "TeamA vs TeamB" || r.Sport != "Basketball" {
		t.Errorf("unexpected text fields: %+v", r)
	}
	if r.SourceRow != 2 {
		t.Errorf("SourceRow = %d, want 2", r.SourceRow)
	}
}

func TestRowsShortRowPadded(t *testing.T) {
	raw := [][]string{
		header(),
		{"01-03-2024", "50"},
	}

	recs, err := Rows(raw)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}

	r := recs[0]
	if r.Stake != 50 || r.EV != 0 || r.ProfitLoss != 0 {
		t.Errorf("numeric fields = %v/%v/%v", r.Stake, r.EV, r.ProfitLoss)
	}
	if r.Result != DefaultResult {
		t.Errorf("Result = %q, want %q", r.Result, DefaultResult)
	}
	if r.Sport != DefaultSport {
		t.Errorf("Sport = %q, want %q", r.Sport, DefaultSport)
	}
}

func TestRowsMissingColumnsSynthesized(t *testing.T) {
	// cabeçalho de uma planilha antiga, sem as colunas novas
	raw := [][]string{
		{"Date Placed", "Stake ($)"},
		{"05-06-2024", "25"},
	}

	recs, err := Rows(raw)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}

	r := recs[0]
	if r.Stake != 25 || r.EV != 0 || r.Odds != "" || r.ProfitLoss != 0 {
		t.Errorf("synthesized fields wrong: %+v", r)
	}
	if r.Result != DefaultResult || r.Sport != DefaultSport {
		t.Errorf("defaults wrong: %+v", r)
	}
}

func TestRowsExtraColumnsDropped(t *testing.T) {
	raw := [][]string{
		append(header(), "Notes"),
		{"01-03-2024", "10", "0.2", "2.00", "0", "Pending", "A vs B", "Football", "free text"},
	}

	recs, err := Rows(raw)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if recs[0].Sport != "Football" {
		t.Errorf("Sport = %q", recs[0].Sport)
	}
}

func TestRowsNegativeStakeClamped(t *testing.T) {
	raw := [][]string{
		header(),
		{"01-03-2024", "-40", "0.1", "", "-40", "Loss", "", "Basketball"},
	}

	recs, err := Rows(raw)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if recs[0].Stake != 0 {
		t.Errorf("Stake = %v, want 0", recs[0].Stake)
	}
	// profit/loss mantém o sinal
	if recs[0].ProfitLoss != -40 {
		t.Errorf("ProfitLoss = %v, want -40", recs[0].ProfitLoss)
	}
}

func TestRowsSourceRowNumbering(t *testing.T) {
	raw := [][]string{
		header(),
		{"01-03-2024", "10", "0.1", "", "0", "Pending", "", ""},
		{"02-03-2024", "20", "0.1", "", "0", "Pending", "", ""},
	}

	recs, err := Rows(raw)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if recs[0].SourceRow != 2 || recs[1].SourceRow != 3 {
		t.Errorf("SourceRow = %d,%d, want 2,3", recs[0].SourceRow, recs[1].SourceRow)
	}
}
