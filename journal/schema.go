package journal

const Schema = `
CREATE TABLE IF NOT EXISTS price_updates (
	update_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	old_price REAL NOT NULL,
	new_price REAL NOT NULL,
	time DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS order_checks (
	check_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	quantity REAL NOT NULL,
	price REAL NOT NULL,
	order_value REAL NOT NULL,
	over_limit INTEGER NOT NULL,
	insufficient_funds INTEGER NOT NULL,
	time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_price_updates_symbol ON price_updates(symbol);
CREATE INDEX IF NOT EXISTS idx_order_checks_symbol ON order_checks(symbol);
`
