package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marcelsud/booklend/library"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

/* Redis implementation of library.Repository
 * Members are a single list, one "<id>,<name>" record per element, pushed on the right.
 * The record format is the same as the text store, so LRANGE gives file order.
 */

const DefaultKey = "booklend:members"

type Repository struct {
	client *redis.Client
	key    string
	log    zerolog.Logger
}

type Option func(*Repository)

// WithLogger sets the logger used to report skipped records
func WithLogger(l zerolog.Logger) Option {
	return func(r *Repository) { r.log = l }
}

// NewRepository connects to Redis and checks the connection
func NewRepository(addr, password string, db int, key string, opts ...Option) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return NewRepositoryFromClient(client, key, opts...), nil
}

// NewRepositoryFromClient uses an existing client; an empty key means DefaultKey
func NewRepositoryFromClient(client *redis.Client, key string, opts ...Option) *Repository {
	if key == "" {
		key = DefaultKey
	}
	r := &Repository{
		client: client,
		key:    key,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) SelectAll(ctx context.Context) ([]library.Member, error) {
	records, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("reading member list: %w", err)
	}

	members := make([]library.Member, 0, len(records))
	for i, record := range records {
		m, err := library.ParseRecord(record)
		if errors.Is(err, library.ErrMalformedRecord) {
			r.log.Warn().Err(err).Str("key", r.key).Int("index", i).Msg("skipping malformed member record")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("parsing member record: %w", err)
		}
		members = append(members, m)
	}
	return members, nil
}

func (r *Repository) Insert(ctx context.Context, m library.Member) error {
	if err := r.client.RPush(ctx, r.key, library.FormatRecord(m)).Err(); err != nil {
		return fmt.Errorf("appending member record: %w", err)
	}
	return nil
}

func (r *Repository) Close(ctx context.Context) error {
	return r.client.Close()
}
