package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	updates *csv.Writer
	checks  *csv.Writer
	uf, cf  *os.File
}

func NewCSV(updatesPath, checksPath string) (*CSVJournal, error) {
	uf, err := os.Create(updatesPath)
	if err != nil {
		return nil, err
	}
	cf, err := os.Create(checksPath)
	if err != nil {
		uf.Close()
		return nil, err
	}

	uw := csv.NewWriter(uf)
	cw := csv.NewWriter(cf)

	if err := uw.Write([]string{"update_id", "symbol", "old_price", "new_price", "time"}); err != nil {
		return nil, err
	}
	if err := cw.Write([]string{"check_id", "symbol", "quantity", "price", "order_value", "over_limit", "insufficient_funds", "time"}); err != nil {
		return nil, err
	}

	uw.Flush()
	if err := uw.Error(); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{uw, cw, uf, cf}, nil
}

func (j *CSVJournal) RecordPriceUpdate(u PriceUpdate) error {
	j.updates.Write([]string{
		u.ID,
		u.Symbol,
		f(u.OldPrice),
		f(u.NewPrice),
		u.Time.Format(time.RFC3339Nano),
	})
	j.updates.Flush()
	return j.updates.Error()
}

func (j *CSVJournal) RecordOrderCheck(c OrderCheck) error {
	j.checks.Write([]string{
		c.ID,
		c.Symbol,
		f(c.Quantity),
		f(c.Price),
		f(c.OrderValue),
		strconv.FormatBool(c.OverLimit),
		strconv.FormatBool(c.InsufficientFunds),
		c.Time.Format(time.RFC3339Nano),
	})
	j.checks.Flush()
	return j.checks.Error()
}

func (j *CSVJournal) Close() error {
	j.updates.Flush()
	j.checks.Flush()
	if err := j.uf.Close(); err != nil {
		j.cf.Close()
		return err
	}
	return j.cf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
