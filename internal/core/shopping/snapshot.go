package shopping

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nutrismart/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// Snapshot is the persisted shopping-list state.
type Snapshot struct {
	SelectedIDs  []string        `json:"selectedIds"`
	Quantities   map[string]int  `json:"quantities"`
	CheckedItems map[string]bool `json:"checkedItems"`
	SavedAt      string          `json:"savedAt,omitempty"` // write-only, informational
}

// SnapshotStore persists shopping-list snapshots. Load returns (nil, nil)
// when no snapshot exists; a non-nil error covers unreadable or malformed
// data, which callers treat the same as absence.
type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Clear(ctx context.Context) error
}

// MemorySnapshotStore keeps the snapshot in process memory. Used in tests
// and as the no-persistence backend.
type MemorySnapshotStore struct {
	snap *Snapshot
}

// NewMemorySnapshotStore creates an empty in-memory store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (s *MemorySnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	return s.snap, nil
}

func (s *MemorySnapshotStore) Save(ctx context.Context, snap *Snapshot) error {
	s.snap = snap
	return nil
}

func (s *MemorySnapshotStore) Clear(ctx context.Context) error {
	s.snap = nil
	return nil
}

// FileSnapshotStore persists the snapshot as a JSON file.
type FileSnapshotStore struct {
	path string
}

// NewFileSnapshotStore creates a file-backed store at path.
func NewFileSnapshotStore(path string) *FileSnapshotStore {
	return &FileSnapshotStore{path: path}
}

func (s *FileSnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := common.ParseJSONBytesStrict(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

func (s *FileSnapshotStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := common.ToJSON(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(data), 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *FileSnapshotStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}

// RedisSnapshotStore persists the snapshot under a single well-known key.
type RedisSnapshotStore struct {
	client *redis.Client
	key    string
}

// NewRedisSnapshotStore creates a Redis-backed store and verifies the
// connection.
func NewRedisSnapshotStore(addr, password string, db int, key string) (*RedisSnapshotStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisSnapshotStore{client: client, key: key}, nil
}

func (s *RedisSnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := common.ParseJSONBytesStrict(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := common.ToJSON(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *RedisSnapshotStore) Close() error {
	return s.client.Close()
}
