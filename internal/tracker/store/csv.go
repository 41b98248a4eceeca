package store

import (
	"context"
	"encoding/csv"
	"os"
)

// CSV guarda a planilha num arquivo local; útil pra rodar sem infraestrutura
type CSV struct{ path string }

// NewCSV retorna o backend CSV da planilha
func NewCSV(path string) *CSV { return &CSV{path: path} }

// ReadAll lê o arquivo inteiro (cabeçalho primeiro)
func (c *CSV) ReadAll(_ context.Context) ([][]string, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.FieldsPerRecord = -1 // linhas curtas são toleradas; o normalizador completa
	return rd.ReadAll()
}

// AppendRow acrescenta uma linha no fim do arquivo
func (c *CSV) AppendRow(_ context.Context, cells []string) error {
	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(cells); err != nil {
		_ = f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
