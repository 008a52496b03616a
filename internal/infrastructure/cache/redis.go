package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

const (
	TotalKey = "nce:errors:total"
	GenKey   = "nce:errors:total:gen"
	TotalTTL = 5 * time.Minute
)

// RedisTotalCache хранит общее число записей в Redis
type RedisTotalCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewRedisTotalCache подключается по URL вида redis://host:port/db
func NewRedisTotalCache(ctx context.Context, redisURL string, log *slog.Logger) (*RedisTotalCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ошибка подключения к redis: %w", err)
	}

	log.Info("connected to redis", slog.String("addr", opts.Addr))

	return &RedisTotalCache{
		client: client,
		ttl:    TotalTTL,
		log:    log.With(slog.String("component", "total_cache")),
	}, nil
}

func (c *RedisTotalCache) GetTotal(ctx context.Context) (int, int64, bool, error) {
	var totalCmd, genCmd *redis.StringCmd
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		totalCmd = pipe.Get(ctx, TotalKey)
		genCmd = pipe.Get(ctx, GenKey)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, 0, false, err
	}

	gen, err := readGen(genCmd)
	if err != nil {
		return 0, 0, false, err
	}

	val, err := totalCmd.Result()
	if errors.Is(err, redis.Nil) {
		return 0, gen, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}

	total, err := strconv.Atoi(val)
	if err != nil {
		c.log.Warn("corrupted cached total, dropping", slog.String("value", val))
		_ = c.client.Del(ctx, TotalKey).Err()
		return 0, gen, false, nil
	}

	return total, gen, true, nil
}

// SetTotal кладет значение под WATCH ключа поколения. Если поколение
// сменилось, запись молча пропускается.
func (c *RedisTotalCache) SetTotal(ctx context.Context, total int, gen int64) error {
	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGen(tx.Get(ctx, GenKey))
		if err != nil {
			return err
		}
		if current != gen {
			c.log.Debug("total changed since read, skipping cache write",
				slog.Int64("gen", gen), slog.Int64("current", current))
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, TotalKey, total, c.ttl)
			return nil
		})
		return err
	}, GenKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *RedisTotalCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenKey)
		pipe.Del(ctx, TotalKey)
		return nil
	})
	return err
}

func readGen(cmd *redis.StringCmd) (int64, error) {
	gen, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read cache generation: %w", err)
	}
	return gen, nil
}

func (c *RedisTotalCache) Close() error {
	return c.client.Close()
}
