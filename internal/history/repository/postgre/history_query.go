package postgre

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS history_records (
	owner      TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

	selectRecordQuery = `SELECT payload FROM history_records WHERE owner = $1`

	upsertRecordQuery = `INSERT INTO history_records (owner, payload, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (owner) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
)
