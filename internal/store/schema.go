package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    name                 TEXT NOT NULL,
    created_at           TEXT NOT NULL,
    input_json           TEXT NOT NULL,
    paradise_reached     INTEGER NOT NULL DEFAULT 0,
    paradise_age         INTEGER,
    years_until_paradise INTEGER,
    final_age            INTEGER NOT NULL,
    final_assets         INTEGER NOT NULL
);
`
