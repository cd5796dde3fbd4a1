package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sectorflow/demand-service/internal/domain"
	"github.com/sectorflow/demand-service/pkg/ctxutil"
)

const clientsKeyPrefix = "demands:clients:"

// clientSource is the directory the cache sits in front of.
type clientSource interface {
	Clients(ctx context.Context) ([]domain.Client, error)
}

// Clients caches the client directory per access token. The directory
// scopes its answer by token, so entries are keyed by a token digest.
// Redis failures degrade to a direct directory call.
type Clients struct {
	next clientSource
	rdb  *redis.Client
	ttl  time.Duration
	log  *slog.Logger
}

// NewClients wraps next with a Redis cache holding entries for ttl.
func NewClients(rdb *redis.Client, next clientSource, ttl time.Duration, logger *slog.Logger) *Clients {
	return &Clients{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  logger.With("adapter", "clients_cache"),
	}
}

type cachedClient struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Features []string `json:"features"`
}

// Clients returns the cached client list or loads and stores it.
// Upstream errors are never cached.
func (c *Clients) Clients(ctx context.Context) ([]domain.Client, error) {
	token, ok := ctxutil.AccessTokenFromCtx(ctx)
	if !ok {
		return c.next.Clients(ctx)
	}
	key := clientsKey(token)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []cachedClient
		if err := json.Unmarshal(raw, &cached); err == nil {
			return fromCache(cached), nil
		}
		c.log.WarnContext(ctx, "discarding unreadable cache entry")
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "cache read failed", slog.String("error", err.Error()))
	}

	clients, err := c.next.Clients(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(toCache(clients))
	if err == nil {
		err = c.rdb.Set(ctx, key, data, c.ttl).Err()
	}
	if err != nil {
		c.log.WarnContext(ctx, "cache write failed", slog.String("error", err.Error()))
	}

	return clients, nil
}

func clientsKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return clientsKeyPrefix + hex.EncodeToString(sum[:])
}

func toCache(clients []domain.Client) []cachedClient {
	out := make([]cachedClient, len(clients))
	for i, cl := range clients {
		out[i] = cachedClient{ID: cl.ID, Name: cl.Name, Features: cl.Features}
	}
	return out
}

func fromCache(cached []cachedClient) []domain.Client {
	out := make([]domain.Client, len(cached))
	for i, cl := range cached {
		out[i] = domain.Client{ID: cl.ID, Name: cl.Name, Features: cl.Features}
	}
	return out
}
