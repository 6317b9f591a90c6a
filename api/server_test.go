package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gregorydgoyins/comicmarket/journal"
	"github.com/gregorydgoyins/comicmarket/market"
	"github.com/gregorydgoyins/comicmarket/risk"
	"github.com/gregorydgoyins/comicmarket/valuation"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := NewServer(
		market.NewPriceBook(market.SeedPrices()),
		valuation.NewDefaultEngine(),
		risk.DefaultLimits(),
		100_000,
		journal.Nop{},
		zap.NewNop(),
	)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ts := testServer(t)
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/health", nil))
}

func TestGetPrice(t *testing.T) {
	t.Parallel()

	ts := testServer(t)

	var body struct {
		Symbol string  `json:"symbol"`
		Price  float64 `json:"price"`
	}
	status := getJSON(t, ts.URL+"/api/prices/ASM300", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ASM300", body.Symbol)
	assert.InDelta(t, 2500, body.Price, 1e-9)
}

func TestGetPrice_Unknown(t *testing.T) {
	t.Parallel()

	ts := testServer(t)
	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/prices/NOPE", nil))
}

func TestAllPrices(t *testing.T) {
	t.Parallel()

	ts := testServer(t)

	var body struct {
		Prices map[string]float64 `json:"prices"`
	}
	status := getJSON(t, ts.URL+"/api/prices", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body.Prices, len(market.Instruments))
}

func TestSetPrice(t *testing.T) {
	t.Parallel()

	ts := testServer(t)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/prices/ASM300",
		strings.NewReader(`{"price": 2750}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var body struct {
		Price float64 `json:"price"`
	}
	getJSON(t, ts.URL+"/api/prices/ASM300", &body)
	assert.InDelta(t, 2750, body.Price, 1e-9)
}

func TestSetPrice_Invalid(t *testing.T) {
	t.Parallel()

	ts := testServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"zero", `{"price": 0}`},
		{"negative", `{"price": -5}`},
		{"garbage", `not json`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/prices/ASM300",
				strings.NewReader(tt.body))
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	ts := testServer(t)

	var body struct {
		Adjusted float64 `json:"adjusted"`
		Spread   float64 `json:"spread"`
		Bid      float64 `json:"bid"`
		Ask      float64 `json:"ask"`
	}
	status := getJSON(t, ts.URL+"/api/quote/ASM300?grade=9.8&age=silver&sigs=VERIFIED", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.InDelta(t, 11250, body.Adjusted, 1e-9)
	assert.Less(t, body.Bid, body.Ask)
}

func TestQuote_Errors(t *testing.T) {
	t.Parallel()

	ts := testServer(t)

	assert.Equal(t, http.StatusNotFound,
		getJSON(t, ts.URL+"/api/quote/NOPE", nil))
	assert.Equal(t, http.StatusBadRequest,
		getJSON(t, ts.URL+"/api/quote/ASM300?age=jurassic", nil))
	assert.Equal(t, http.StatusBadRequest,
		getJSON(t, ts.URL+"/api/quote/ASM300?sigs=FORGED", nil))
}

func TestQuote_Defaults(t *testing.T) {
	t.Parallel()

	ts := testServer(t)

	// No attributes: raw grade, modern age.
	var body struct {
		Adjusted float64 `json:"adjusted"`
	}
	status := getJSON(t, ts.URL+"/api/quote/ASM300", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.InDelta(t, 2500*0.30, body.Adjusted, 1e-9)
}

func TestCheckOrder(t *testing.T) {
	t.Parallel()

	ts := testServer(t)

	tests := []struct {
		name             string
		body             string
		wantStatus       int
		wantOverLimit    bool
		wantInsufficient bool
	}{
		{
			"over limit only",
			`{"symbol":"ASM300","quantity":2000000,"price":1,"balance":5000000}`,
			http.StatusOK, true, false,
		},
		{
			"insufficient only",
			`{"symbol":"ASM300","quantity":10,"price":1000,"balance":5000}`,
			http.StatusOK, false, true,
		},
		{
			"clean",
			`{"symbol":"ASM300","quantity":10,"price":100,"balance":5000}`,
			http.StatusOK, false, false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := http.Post(ts.URL+"/api/orders/check", "application/json",
				strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tt.wantStatus, resp.StatusCode)

			var d risk.Decision
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
			assert.Equal(t, tt.wantOverLimit, d.OverLimit)
			assert.Equal(t, tt.wantInsufficient, d.InsufficientFunds)
		})
	}
}

func TestCheckOrder_BadInput(t *testing.T) {
	t.Parallel()

	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/orders/check", "application/json",
		strings.NewReader(`{"symbol":"ASM300","quantity":0,"price":100}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
