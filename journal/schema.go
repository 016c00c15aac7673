// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS valuations (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	formula TEXT NOT NULL,
	rate REAL NOT NULL,
	periods REAL NOT NULL,
	amount REAL NOT NULL,
	flows INTEGER NOT NULL,
	result REAL, -- NULL for NaN
	currency TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	note TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_valuations_created_at ON valuations(created_at);
`
