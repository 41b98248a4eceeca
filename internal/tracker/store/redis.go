package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Redis guarda a planilha numa lista; cada item é um array JSON de células
type Redis struct {
	rdb *redis.Client
	key string
}

// NewRedis retorna o backend Redis da planilha
func NewRedis(rdb *redis.Client, key string) *Redis {
	return &Redis{rdb: rdb, key: key}
}

// ReadAll devolve todas as linhas na ordem da lista (cabeçalho primeiro)
func (r *Redis) ReadAll(ctx context.Context) ([][]string, error) {
	items, err := r.rdb.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	out := make([][]string, 0, len(items))
	for _, it := range items {
		var cells []string
		if err := json.Unmarshal([]byte(it), &cells); err != nil {
			return nil, err
		}
		out = append(out, cells)
	}
	return out, nil
}

// AppendRow empurra uma linha nova pro fim da lista
func (r *Redis) AppendRow(ctx context.Context, cells []string) error {
	b, err := json.Marshal(cells)
	if err != nil {
		return err
	}
	return r.rdb.RPush(ctx, r.key, b).Err()
}
