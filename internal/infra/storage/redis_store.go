package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"painel/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps state in one redis hash per namespace so several machines can share a
// session. Writes are announced on a pub/sub channel; every Set is announced, changed or not.
type RedisStore struct {
	client    *redis.Client
	namespace string
	origin    string
	logger    *slog.Logger

	mu     sync.Mutex
	pubsub *redis.PubSub
	done   chan struct{}
	notifier
}

var _ repository.StateStore = (*RedisStore)(nil)

type redisChange struct {
	Origin  string `json:"origin"`
	Key     string `json:"key"`
	Value   string `json:"value,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
}

// NewRedisStore wraps an existing client. The hash lives under namespace and change
// notifications under namespace + ":changes".
func NewRedisStore(client *redis.Client, namespace string, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client:    client,
		namespace: namespace,
		origin:    uuid.NewString(),
		logger:    logger,
	}
}

func (s *RedisStore) channel() string {
	return s.namespace + ":changes"
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.HGet(ctx, s.namespace, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(repository.ErrStateUnavailable, "hget %s: %v", key, err)
	}

	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	change := repository.StateChange{Key: key, Value: value}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.namespace, key, value)

		return s.announce(ctx, pipe, change)
	})
	if err != nil {
		return errors.Wrapf(repository.ErrStateUnavailable, "hset %s: %v", key, err)
	}

	s.publish(change)

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	changes := make([]repository.StateChange, 0, len(keys))
	for _, key := range keys {
		changes = append(changes, repository.StateChange{Key: key, Deleted: true})
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, s.namespace, keys...)
		for _, change := range changes {
			if err := s.announce(ctx, pipe, change); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(repository.ErrStateUnavailable, "hdel %v: %v", keys, err)
	}

	s.publish(changes...)

	return nil
}

func (s *RedisStore) Subscribe(fn func(repository.StateChange)) func() {
	return s.subscribe(fn)
}

func (s *RedisStore) announce(ctx context.Context, pipe redis.Pipeliner, change repository.StateChange) error {
	payload, err := json.Marshal(redisChange{
		Origin:  s.origin,
		Key:     change.Key,
		Value:   change.Value,
		Deleted: change.Deleted,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	pipe.Publish(ctx, s.channel(), payload)

	return nil
}

// Watch subscribes to the change channel and publishes changes made by other holders.
func (s *RedisStore) Watch(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pubsub != nil {
		return nil
	}

	ps := s.client.Subscribe(ctx, s.channel())
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()

		return errors.Wrapf(err, "subscribe %s", s.channel())
	}

	s.pubsub = ps
	s.done = make(chan struct{})
	go s.watchLoop(ps.Channel(), s.done)

	return nil
}

func (s *RedisStore) watchLoop(messages <-chan *redis.Message, done chan struct{}) {
	defer close(done)

	for msg := range messages {
		var change redisChange
		if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
			s.logger.Warn("Ignoring malformed state change", slog.String("channel", msg.Channel), slog.Any("error", err))

			continue
		}
		if change.Origin == s.origin {
			continue
		}

		s.publish(repository.StateChange{Key: change.Key, Value: change.Value, Deleted: change.Deleted})
	}
}

// Close stops watching. The client itself is owned by the caller.
func (s *RedisStore) Close() error {
	s.mu.Lock()
	ps, done := s.pubsub, s.done
	s.pubsub = nil
	s.mu.Unlock()

	if ps == nil {
		return nil
	}

	err := ps.Close()
	<-done

	return errors.WithStack(err)
}
