package store

import "context"

// RecordStore é a planilha de apostas vista como tabela de células de texto.
// A primeira linha retornada por ReadAll é sempre o cabeçalho.
type RecordStore interface {
	ReadAll(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, cells []string) error
}
