package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

const (
	dueKey     = "reminders:due"
	payloadKey = "reminders:payload"
)

// RedisStore keeps pending reminders in a sorted set scored by fire time
// and their payloads in a hash, both keyed by Key.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// NewRedisClient abre o cliente e confere a conexão.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Schedule substitui os lembretes pendentes do agendamento.
func (s *RedisStore) Schedule(ctx context.Context, ap *models.Appointment) error {
	if err := s.Cancel(ctx, ap.ID); err != nil {
		return err
	}

	planned := Plan(ap, s.now())
	if len(planned) == 0 {
		return nil
	}

	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, r := range planned {
			b, err := json.Marshal(r)
			if err != nil {
				return err
			}
			p.ZAdd(ctx, dueKey, &redis.Z{Score: float64(r.FireAt.Unix()), Member: r.Key})
			p.HSet(ctx, payloadKey, r.Key, b)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("schedule reminders %s: %w", ap.ID, err)
	}
	return nil
}

func (s *RedisStore) Cancel(ctx context.Context, appointmentID uuid.UUID) error {
	keys := Keys(appointmentID)
	members := make([]interface{}, len(keys))
	for i, k := range keys {
		members[i] = k
	}

	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRem(ctx, dueKey, members...)
		p.HDel(ctx, payloadKey, keys...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cancel reminders %s: %w", appointmentID, err)
	}
	return nil
}

// Due reivindica até limit lembretes vencidos. Cada chave só é entregue
// a quem conseguir removê-la do conjunto.
func (s *RedisStore) Due(ctx context.Context, now time.Time, limit int64) ([]Reminder, error) {
	keys, err := s.client.ZRangeByScore(ctx, dueKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: limit,
	}).Result()
	if err != nil {
		return nil, err
	}

	var out []Reminder
	for _, k := range keys {
		removed, err := s.client.ZRem(ctx, dueKey, k).Result()
		if err != nil {
			return out, err
		}
		if removed == 0 {
			continue
		}

		raw, err := s.client.HGet(ctx, payloadKey, k).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return out, err
		}
		s.client.HDel(ctx, payloadKey, k)

		var r Reminder
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return out, fmt.Errorf("decode reminder %s: %w", k, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *RedisStore) Pending(ctx context.Context) (int64, error) {
	return s.client.ZCard(ctx, dueKey).Result()
}

var _ Scheduler = (*RedisStore)(nil)
