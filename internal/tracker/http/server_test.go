package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/ev-tracker-dashboard/internal/tracker/dto"
	"github.com/radieske/ev-tracker-dashboard/internal/tracker/service"
)

// memStore é uma planilha em memória pros testes de endpoint
type memStore struct{ rows [][]string }

func (m *memStore) ReadAll(_ context.Context) ([][]string, error) { return m.rows, nil }

func (m *memStore) AppendRow(_ context.Context, cells []string) error {
	m.rows = append(m.rows, cells)
	return nil
}

func newAPI(rows [][]string) (*API, *memStore) {
	st := &memStore{rows: rows}
	svc := service.New(zap.NewNop(), st, nil, 500)
	return &API{Log: zap.NewNop(), Svc: svc}, st
}

func seededRows() [][]string {
	return [][]string{
		{"Date Placed", "Stake ($)", "EV", "Odds", "Profit/Loss", "Result", "Game Name", "Sport"},
		{"01-03-2024", "100", "0.1", "+150", "120", "Win", "TeamA vs TeamB", "Basketball"},
		{"02-03-2024", "50", "0.2", "1.90", "0", "Loss", "TeamC vs TeamD", "Football"},
		{"03-03-2024", "30", "0.15", "2.10", "0", "", "TeamE vs TeamF", ""},
	}
}

func TestGetDashboard(t *testing.T) {
	api, _ := newAPI(seededRows())
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/v1/dashboard")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out dto.DashboardResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))

	// a terceira linha tem Sport vazio -> "Unknown" -> fora do filtro default
	assert.Equal(t, 2, out.Summary.BetCount)
	assert.Equal(t, -30.0, out.Summary.TotalProfit)
	assert.Equal(t, 150.0, out.Summary.TotalTurnover)
	require.Len(t, out.Series, 2)
	assert.Equal(t, "2024-03-01", out.Series[0].Date)
	assert.Equal(t, 20.0, out.Series[0].CumulativeRealProfit)
	assert.Equal(t, -10.0, out.Series[1].CumulativeRealProfit)
}

func TestGetDashboardResultFilter(t *testing.T) {
	api, _ := newAPI(seededRows())
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/v1/dashboard?results=Win&sports=Basketball,Football")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out dto.DashboardResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Equal(t, 1, out.Summary.BetCount)
	assert.Equal(t, 20.0, out.Summary.TotalProfit)
}

func TestGetDashboardEmptyStore(t *testing.T) {
	api, _ := newAPI([][]string{{"Date Placed", "Stake ($)"}})
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/v1/dashboard")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGetFilters(t *testing.T) {
	api, _ := newAPI(seededRows())
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/v1/filters")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out dto.FiltersResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Equal(t, []string{"Win", "Loss", "Pending"}, out.Results)
	assert.Equal(t, []string{"Basketball", "Football"}, out.Sports)
	assert.Equal(t, 500.0, out.InitialCapital)
}

func TestAddBet(t *testing.T) {
	api, st := newAPI(seededRows())
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	body := `{"datePlaced":"15-03-2024","stake":150,"ev":0.25,"odds":"+120","result":"Pending","gameName":"A vs B","sport":"Basketball"}`
	res, err := http.Post(srv.URL+"/v1/bets", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	last := st.rows[len(st.rows)-1]
	assert.Equal(t, []string{
		"15-03-2024", "150.00", "0.250", "+120", "0.00", "Pending", "A vs B", "Basketball",
	}, last)
}

func TestAddBetBadPayload(t *testing.T) {
	api, st := newAPI(seededRows())
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	for _, body := range []string{
		`{not json`,
		`{"datePlaced":"2024-03-15","stake":10}`, // data não é dia-primeiro
	} {
		res, err := http.Post(srv.URL+"/v1/bets", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	}

	assert.Len(t, st.rows, len(seededRows()))
}
