package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordPriceUpdate(u PriceUpdate) error {
	_, err := j.db.Exec(`
		INSERT INTO price_updates
		(update_id, symbol, old_price, new_price, time)
		VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Symbol, u.OldPrice, u.NewPrice, u.Time,
	)
	return err
}

func (j *SQLiteJournal) RecordOrderCheck(c OrderCheck) error {
	_, err := j.db.Exec(`
		INSERT INTO order_checks
		(check_id, symbol, quantity, price, order_value, over_limit, insufficient_funds, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Symbol, c.Quantity, c.Price, c.OrderValue,
		c.OverLimit, c.InsufficientFunds, c.Time,
	)
	return err
}

// ListPriceUpdates returns the recorded updates for a symbol, oldest
// first. ULID primary keys sort by insertion time.
func (j *SQLiteJournal) ListPriceUpdates(symbol string) ([]PriceUpdate, error) {
	rows, err := j.db.Query(`
		SELECT update_id, symbol, old_price, new_price, time
		FROM price_updates WHERE symbol = ? ORDER BY update_id`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PriceUpdate
	for rows.Next() {
		var u PriceUpdate
		var ts time.Time
		if err := rows.Scan(&u.ID, &u.Symbol, &u.OldPrice, &u.NewPrice, &ts); err != nil {
			return nil, err
		}
		u.Time = ts
		out = append(out, u)
	}
	return out, rows.Err()
}

// ListOrderChecks returns the recorded checks for a symbol, oldest first.
func (j *SQLiteJournal) ListOrderChecks(symbol string) ([]OrderCheck, error) {
	rows, err := j.db.Query(`
		SELECT check_id, symbol, quantity, price, order_value, over_limit, insufficient_funds, time
		FROM order_checks WHERE symbol = ? ORDER BY check_id`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderCheck
	for rows.Next() {
		var c OrderCheck
		var ts time.Time
		if err := rows.Scan(&c.ID, &c.Symbol, &c.Quantity, &c.Price,
			&c.OrderValue, &c.OverLimit, &c.InsufficientFunds, &ts); err != nil {
			return nil, err
		}
		c.Time = ts
		out = append(out, c)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
