package registry

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/layout"
)

// DefaultPrefix is the key prefix used when none is configured.
const DefaultPrefix = "layout"

const scanCount = 1000

// Options configures a Redis connection for Connect.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RedisStore keeps layouts in Redis. The client is owned by the caller
// unless the store was created by Connect.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	owned  bool
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore returns a store using rdb with keys under prefix.
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

// Connect dials Redis and verifies the connection with PING.
func Connect(ctx context.Context, opts Options) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(errors.PhaseStore, errors.KindInvalidInput, err,
			"connect to redis at "+opts.Addr)
	}

	s := NewRedisStore(rdb, opts.Prefix)
	s.owned = true
	Logger().Debug("registry connected", zap.String("addr", opts.Addr), zap.String("prefix", s.prefix))
	return s, nil
}

// Close closes the client if the store created it.
func (s *RedisStore) Close() error {
	if !s.owned {
		return nil
	}
	return s.rdb.Close()
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

func (s *RedisStore) Put(ctx context.Context, name string, l *layout.Layout) error {
	data, err := encodeLayout(name, l)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key(name), data, 0).Err(); err != nil {
		return s.failed("put", name, err)
	}
	Logger().Debug("layout stored", zap.String("name", name), zap.Int("bytes", len(data)))
	return nil
}

func (s *RedisStore) Get(ctx context.Context, name string) (*layout.Layout, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	data, err := s.rdb.Get(ctx, s.key(name)).Bytes()
	if err == redis.Nil {
		return nil, errors.NotFound(errors.PhaseStore, "layout", name)
	}
	if err != nil {
		return nil, s.failed("get", name, err)
	}
	return decodeLayout(name, data)
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	n, err := s.rdb.Del(ctx, s.key(name)).Result()
	if err != nil {
		return s.failed("delete", name, err)
	}
	if n == 0 {
		return errors.NotFound(errors.PhaseStore, "layout", name)
	}
	Logger().Debug("layout deleted", zap.String("name", name))
	return nil
}

// List scans the key space under the store prefix. SCAN may report a key
// more than once; duplicates are removed.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	match := s.prefix + ":*"
	seen := make(map[string]struct{})
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, match, scanCount).Result()
		if err != nil {
			return nil, s.failed("list", "", err)
		}
		for _, k := range keys {
			seen[strings.TrimPrefix(k, s.prefix+":")] = struct{}{}
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (s *RedisStore) failed(op, name string, err error) error {
	Logger().Debug("registry operation failed", zap.String("op", op), zap.String("name", name), zap.Error(err))
	b := errors.New(errors.PhaseStore, errors.KindInvalidInput).Cause(err)
	if name != "" {
		return b.Detail("%s layout %q", op, name).Build()
	}
	return b.Detail("%s layouts", op).Build()
}
