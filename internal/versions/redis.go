package versions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"resume-analyzer/resume/model"
)

// DefaultRedisPrefix namespaces every key the store writes.
const DefaultRedisPrefix = "resume:versions:"

// RedisStore keeps each version as a JSON string and the newest-first order
// in a list. Append writes both in one MULTI/EXEC transaction.
type RedisStore struct {
	client *redis.Client
	prefix string
	Now    func() time.Time
	NewID  func() string
}

// NewRedisStore pings the server and returns a store using prefix for keys.
func NewRedisStore(ctx context.Context, client *redis.Client, prefix string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		Now:    func() time.Time { return time.Now().UTC() },
		NewID:  uuid.NewString,
	}, nil
}

func (s *RedisStore) indexKey() string {
	return s.prefix + "index"
}

func (s *RedisStore) versionKey(id string) string {
	return s.prefix + "version:" + id
}

// Append stores a version and pushes its id to the head of the index.
func (s *RedisStore) Append(ctx context.Context, parsed model.ResumeDocument, analysis model.AnalysisResult, score model.Score) (Version, error) {
	v := Version{
		ID:         s.NewID(),
		Timestamp:  s.Now(),
		ParsedData: parsed,
		Analysis:   analysis,
		Score:      score,
	}
	payload, err := encode(v)
	if err != nil {
		return Version{}, err
	}
	// The id is only indexed once its payload key was created by this call.
	created, err := s.client.SetNX(ctx, s.versionKey(v.ID), payload, 0).Result()
	if err != nil {
		return Version{}, fmt.Errorf("append version %s: %w", v.ID, err)
	}
	if !created {
		return Version{}, fmt.Errorf("append version %s: %w", v.ID, ErrDuplicateID)
	}
	if err := s.client.LPush(ctx, s.indexKey(), v.ID).Err(); err != nil {
		_ = s.client.Del(ctx, s.versionKey(v.ID)).Err()
		return Version{}, fmt.Errorf("append version %s: %w", v.ID, err)
	}
	return decode(payload)
}

// List returns versions newest first.
func (s *RedisStore) List(ctx context.Context, limit, offset int) ([]Version, error) {
	if offset < 0 {
		offset = 0
	}
	stop := int64(-1)
	if limit > 0 {
		stop = int64(offset + limit - 1)
	}
	ids, err := s.client.LRange(ctx, s.indexKey(), int64(offset), stop).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("list version ids: %w", err)
	}
	out := make([]Version, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.versionKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load versions: %w", err)
	}
	for i, raw := range values {
		str, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("load version %s: %w", ids[i], ErrNotFound)
		}
		v, err := decode([]byte(str))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Get returns a version by id.
func (s *RedisStore) Get(ctx context.Context, id string) (Version, error) {
	payload, err := s.client.Get(ctx, s.versionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Version{}, ErrNotFound
	}
	if err != nil {
		return Version{}, fmt.Errorf("get version %s: %w", id, err)
	}
	return decode(payload)
}
