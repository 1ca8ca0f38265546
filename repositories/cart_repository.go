package repositories

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"tire-shop/models"
)

// CartStore persists one ordered line list per cart. Missing or corrupt
// data always reads as an empty cart.
type CartStore interface {
	AddOrIncrement(ctx context.Context, cartID string, line models.CartLine) error
	Lines(ctx context.Context, cartID string) ([]models.CartLine, error)
	TotalItemCount(ctx context.Context, cartID string) (int, error)
}

// mergeLine is the add-or-increment rule: at most one line per product id.
func mergeLine(lines []models.CartLine, line models.CartLine) []models.CartLine {
	for i := range lines {
		if lines[i].ID == line.ID {
			lines[i].Quantity++
			return lines
		}
	}
	line.Quantity = 1
	return append(lines, line)
}

func decodeLines(raw []byte) []models.CartLine {
	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil || lines == nil {
		return []models.CartLine{}
	}
	return lines
}

func sumQuantities(lines []models.CartLine) int {
	total := 0
	for i := range lines {
		total += lines[i].Quantity
	}
	return total
}

const cartKeyPrefix = "cart:"

// RedisCartStore keeps each cart as one JSON value. Mutations run under a
// WATCH transaction so concurrent increments from separate clients never
// lose each other.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) AddOrIncrement(ctx context.Context, cartID string, line models.CartLine) error {
	key := cartKeyPrefix + cartID

	txn := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil && err != redis.Nil {
			return err
		}
		lines := mergeLine(decodeLines(raw), line)

		encoded, err := json.Marshal(lines)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, s.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < 5; attempt++ {
		err := s.client.Watch(ctx, txn, key)
		if err != redis.TxFailedErr {
			return err
		}
	}
	return redis.TxFailedErr
}

func (s *RedisCartStore) Lines(ctx context.Context, cartID string) ([]models.CartLine, error) {
	raw, err := s.client.Get(ctx, cartKeyPrefix+cartID).Bytes()
	if err == redis.Nil {
		return []models.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeLines(raw), nil
}

func (s *RedisCartStore) TotalItemCount(ctx context.Context, cartID string) (int, error) {
	lines, err := s.Lines(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return sumQuantities(lines), nil
}

// FileCartStore keeps one JSON file per cart under a directory. Writes go
// through a temp file and rename. In-process access is serialized by a
// mutex; concurrent writers from separate processes can still lose an
// increment, which matches the original local-storage behavior.
type FileCartStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileCartStore(dir string) (*FileCartStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return &FileCartStore{dir: dir}, nil
}

func (s *FileCartStore) path(cartID string) string {
	// cart IDs are server-issued UUIDs, but never trust them as paths
	return filepath.Join(s.dir, filepath.Base(cartID)+".json")
}

func (s *FileCartStore) read(cartID string) []models.CartLine {
	raw, err := os.ReadFile(s.path(cartID))
	if err != nil {
		return []models.CartLine{}
	}
	return decodeLines(raw)
}

func (s *FileCartStore) write(cartID string, lines []models.CartLine) error {
	encoded, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "cart-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(cartID))
}

func (s *FileCartStore) AddOrIncrement(ctx context.Context, cartID string, line models.CartLine) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := mergeLine(s.read(cartID), line)
	return s.write(cartID, lines)
}

func (s *FileCartStore) Lines(ctx context.Context, cartID string) ([]models.CartLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(cartID), nil
}

func (s *FileCartStore) TotalItemCount(ctx context.Context, cartID string) (int, error) {
	lines, err := s.Lines(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return sumQuantities(lines), nil
}

// MemoryCartStore keeps carts in process memory. It is the fallback for
// environments with neither Redis nor a writable directory; carts do not
// survive a restart.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartLine
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: map[string][]models.CartLine{}}
}

func (s *MemoryCartStore) AddOrIncrement(ctx context.Context, cartID string, line models.CartLine) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cartID] = mergeLine(s.carts[cartID], line)
	return nil
}

func (s *MemoryCartStore) Lines(ctx context.Context, cartID string) ([]models.CartLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.CartLine, len(s.carts[cartID]))
	copy(lines, s.carts[cartID])
	return lines, nil
}

func (s *MemoryCartStore) TotalItemCount(ctx context.Context, cartID string) (int, error) {
	lines, err := s.Lines(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return sumQuantities(lines), nil
}

var _ CartStore = (*RedisCartStore)(nil)
var _ CartStore = (*FileCartStore)(nil)
var _ CartStore = (*MemoryCartStore)(nil)
