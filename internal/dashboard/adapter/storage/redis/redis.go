package redis

import (
	"context"
	"encoding/json"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"net"
)

const UpdatesChannel = "preferences_updated"

type Storage struct {
	rdb    *redis.Client
	prefix string
}

func NewStorage(client *redis.Client, prefix string) *Storage {
	return &Storage{
		rdb:    client,
		prefix: prefix,
	}
}

func InitStorage(ctx context.Context, options *redis.Options, prefix string) (*Storage, error) {
	const op = "storage.redis.InitStorage"

	redisClient := redis.NewClient(options)

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		_ = redisClient.Close()
		return nil, errors.Wrap(err, op)
	}

	storage := NewStorage(redisClient, prefix)

	return storage, nil
}

func (s *Storage) key(name string) string {
	return s.prefix + "preferences:" + name
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	const op = "storage.redis.Get"

	value, err := s.rdb.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", entities.ErrNotFound
		}
		return "", errors.Wrap(err, op)
	}

	return value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	const op = "storage.redis.Set"

	if err := s.rdb.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errors.Wrap(err, op)
	}

	return nil
}

// PublishUpdate announces a preference change to the other instances.
func (s *Storage) PublishUpdate(ctx context.Context, update entities.PreferenceUpdate) error {
	const op = "storage.redis.PublishUpdate"

	payload, err := encodeUpdate(update)
	if err != nil {
		return errors.Wrap(err, op)
	}

	if err := s.rdb.Publish(ctx, s.prefix+UpdatesChannel, payload).Err(); err != nil {
		return errors.Wrap(err, op)
	}

	return nil
}

// ListenUpdates delivers every update published on the channel to handle
// until ctx is done. Malformed messages are logged and skipped.
func (s *Storage) ListenUpdates(ctx context.Context, handle func(entities.PreferenceUpdate)) error {
	const op = "storage.redis.ListenUpdates"

	pubsub := s.rdb.Subscribe(ctx, s.prefix+UpdatesChannel)
	defer pubsub.Close()

	for {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return classify(err, op)
		}

		update, err := decodeUpdate(msg.Payload)
		if err != nil {
			slog.Warn("skipping malformed preference update", "op", op, "payload", msg.Payload, "error", err)
			continue
		}

		slog.Debug("Received message", "key", update.Key, "origin", update.Origin)

		handle(update)
	}
}

func (s *Storage) Close() error {
	return s.rdb.Close()
}

func classify(err error, op string) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return entities.ErrRedisTimeout
		}
		return entities.ErrRedisCanceled
	}
	return errors.Wrap(err, op)
}

func encodeUpdate(update entities.PreferenceUpdate) (string, error) {
	payload, err := json.Marshal(update)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func decodeUpdate(payload string) (entities.PreferenceUpdate, error) {
	var update entities.PreferenceUpdate
	if err := json.Unmarshal([]byte(payload), &update); err != nil {
		return entities.PreferenceUpdate{}, err
	}
	if update.Key == "" {
		return entities.PreferenceUpdate{}, errors.New("update without key")
	}
	return update, nil
}
