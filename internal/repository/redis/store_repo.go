package redis

import (
	"context"
	"errors"

	"github.com/jimlawless/whereami"
	"github.com/khalil-js/VETANIMALIA/internal/cfg"
	"github.com/khalil-js/VETANIMALIA/pkg/clients"
	"github.com/khalil-js/VETANIMALIA/pkg/e"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
	r "github.com/redis/go-redis/v9"
)

// StoreRepo реализует usecase.SessionStore поверх Redis.
// Ключи сессии живут с TTL из конфигурации; чтение продлевает жизнь ключа,
// как это делает браузерный localStorage, не имеющий срока давности.
type StoreRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewStoreRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *StoreRepo {
	return &StoreRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Get возвращает содержимое ключа или nil, nil, если ключа нет.
func (s *StoreRepo) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrStoreUnavailable, err))
	}

	// Продление TTL при чтении; неудача не мешает вернуть данные
	if err := s.client.Client.Expire(ctx, key, s.cfg.SessionTTL).Err(); err != nil {
		s.logger.Warnf("Redis EXPIRE failed for %s: %v", key, err)
	}

	return data, nil
}

// Set полностью перезаписывает ключ. Последняя запись выигрывает:
// одновременные клиенты одной сессии не сериализуются.
func (s *StoreRepo) Set(ctx context.Context, key string, data []byte) error {
	if err := s.client.Client.Set(ctx, key, data, s.cfg.SessionTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrStoreUnavailable, err))
	}

	return nil
}
