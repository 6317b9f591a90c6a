package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/gregorydgoyins/comicmarket/journal"
	"github.com/gregorydgoyins/comicmarket/market"
	"github.com/gregorydgoyins/comicmarket/pkg/id"
	"github.com/gregorydgoyins/comicmarket/risk"
	"github.com/gregorydgoyins/comicmarket/valuation"
)

// Server is the HTTP surface over the pricing core. Handlers are thin
// pass-throughs: they parse, call one core operation, map errors to
// status codes and encode the result. No pricing logic lives here.
type Server struct {
	book    *market.PriceBook
	engine  *valuation.Engine
	limits  risk.OrderLimits
	balance float64
	jnl     journal.Journal
	log     *zap.Logger
}

func NewServer(book *market.PriceBook, engine *valuation.Engine,
	limits risk.OrderLimits, balance float64,
	jnl journal.Journal, log *zap.Logger) *Server {
	return &Server{
		book:    book,
		engine:  engine,
		limits:  limits,
		balance: balance,
		jnl:     jnl,
		log:     log,
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/prices", s.handleAllPrices).Methods(http.MethodGet)
	r.HandleFunc("/api/prices/{symbol}", s.handleGetPrice).Methods(http.MethodGet)
	r.HandleFunc("/api/prices/{symbol}", s.handleSetPrice).Methods(http.MethodPut)
	r.HandleFunc("/api/quote/{symbol}", s.handleQuote).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/check", s.handleCheckOrder).Methods(http.MethodPost)
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAllPrices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"prices":      s.book.AllPrices(),
		"last_update": s.book.LastUpdate(),
	})
}

func (s *Server) handleGetPrice(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	price, err := s.book.Price(symbol)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"symbol": symbol,
		"price":  price,
	})
}

func (s *Server) handleSetPrice(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errBody("malformed request body"))
		return
	}

	// Old price is journaled as zero for a symbol the book never had.
	oldPrice, _ := s.book.Price(symbol)

	if err := s.book.SetPrice(symbol, body.Price); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.jnl.RecordPriceUpdate(journal.PriceUpdate{
		ID:       id.New(),
		Symbol:   symbol,
		OldPrice: oldPrice,
		NewPrice: body.Price,
		Time:     time.Now().UTC(),
	}); err != nil {
		s.log.Warn("journal price update", zap.Error(err))
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	q := r.URL.Query()

	grade := valuation.Grade(q.Get("grade"))
	if grade == "" {
		grade = valuation.GradeRaw
	}
	age := valuation.AgeBracket(q.Get("age"))
	if age == "" {
		age = valuation.AgeModern
	}
	var sigs []valuation.SignatureTag
	if raw := q.Get("sigs"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				sigs = append(sigs, valuation.SignatureTag(tag))
			}
		}
	}

	base, err := s.book.Price(symbol)
	if err != nil {
		s.writeError(w, err)
		return
	}

	quote, err := s.engine.QuoteFor(base, grade, age, sigs)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"symbol":   symbol,
		"base":     quote.Base,
		"adjusted": quote.Adjusted,
		"spread":   quote.Spread,
		"bid":      quote.Bid,
		"ask":      quote.Ask,
	})
}

func (s *Server) handleCheckOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Symbol   string  `json:"symbol"`
		Quantity float64 `json:"quantity"`
		Price    float64 `json:"price"`
		Balance  float64 `json:"balance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errBody("malformed request body"))
		return
	}
	if body.Quantity <= 0 || body.Price <= 0 {
		writeJSON(w, http.StatusBadRequest, errBody("quantity and price must be positive"))
		return
	}

	balance := body.Balance
	if balance == 0 {
		balance = s.balance
	}

	decision := risk.CheckOrder(risk.Order{
		Symbol:   body.Symbol,
		Quantity: body.Quantity,
		Price:    body.Price,
	}, s.limits, balance)

	if err := s.jnl.RecordOrderCheck(journal.OrderCheck{
		ID:                id.New(),
		Symbol:            body.Symbol,
		Quantity:          body.Quantity,
		Price:             body.Price,
		OrderValue:        decision.OrderValue,
		OverLimit:         decision.OverLimit,
		InsufficientFunds: decision.InsufficientFunds,
		Time:              time.Now().UTC(),
	}); err != nil {
		s.log.Warn("journal order check", zap.Error(err))
	}

	writeJSON(w, http.StatusOK, decision)
}

// writeError maps core sentinels onto status codes: unknown symbols
// are 404, bad input is 400, anything else 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, market.ErrSymbolNotFound):
		writeJSON(w, http.StatusNotFound, errBody(err.Error()))
	case errors.Is(err, market.ErrInvalidPrice),
		errors.Is(err, valuation.ErrInvalidBasePrice),
		errors.Is(err, valuation.ErrUnknownAgeBracket),
		errors.Is(err, valuation.ErrUnknownSignatureTag):
		writeJSON(w, http.StatusBadRequest, errBody(err.Error()))
	default:
		s.log.Error("unhandled error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errBody("internal error"))
	}
}

func errBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
