package memory

import (
	"context"
	"sync"
)

// StoreRepo — реализация usecase.SessionStore в памяти процесса.
// Используется в тестах и как бэкенд STORE_BACKEND=memory для локального
// запуска без Redis. Данные не переживают перезапуск.
type StoreRepo struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewStoreRepo() *StoreRepo {
	return &StoreRepo{
		data: make(map[string][]byte),
	}
}

// Get возвращает копию содержимого ключа или nil, nil, если ключа нет.
func (s *StoreRepo) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, nil
	}

	result := make([]byte, len(data))
	copy(result, data)

	return result, nil
}

// Set полностью перезаписывает ключ копией данных.
func (s *StoreRepo) Set(_ context.Context, key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = stored

	return nil
}
