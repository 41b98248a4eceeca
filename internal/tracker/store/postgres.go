package store

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

// Postgres guarda cada linha da planilha como array de texto, ordenada por id
type Postgres struct{ db *sql.DB }

// NewPostgres retorna o backend Postgres da planilha
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Init cria a tabela de linhas se ainda não existir
func (p *Postgres) Init(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sheet_rows (
			id    BIGSERIAL PRIMARY KEY,
			cells TEXT[] NOT NULL
		)`)
	return err
}

// ReadAll devolve todas as linhas na ordem de inserção (cabeçalho primeiro)
func (p *Postgres) ReadAll(ctx context.Context) ([][]string, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT cells FROM sheet_rows ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var cells pq.StringArray
		if err := rows.Scan(&cells); err != nil {
			return nil, err
		}
		out = append(out, []string(cells))
	}
	return out, rows.Err()
}

// AppendRow insere uma linha nova no fim da planilha
func (p *Postgres) AppendRow(ctx context.Context, cells []string) error {
	_, err := p.db.ExecContext(ctx, `INSERT INTO sheet_rows (cells) VALUES ($1)`, pq.Array(cells))
	return err
}
