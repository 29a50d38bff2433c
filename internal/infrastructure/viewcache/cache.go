// Package viewcache cachea las respuestas de listado por clave de colección.
// Cada mutación de una colección invalida su vista cacheada para que los
// listados siempre se re-rendericen con datos frescos.
package viewcache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache puerto de la caché de vistas. Las implementaciones son best-effort:
// un fallo de caché nunca debe romper la operación que la usa.
type Cache interface {
	Get(ctx context.Context, collection string) ([]byte, bool)
	Set(ctx context.Context, collection string, payload []byte)
	Invalidate(ctx context.Context, collection string)
}

// Noop caché desactivada (modo blob sin Redis configurado).
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Noop) Set(context.Context, string, []byte)        {}
func (Noop) Invalidate(context.Context, string)         {}

var _ Cache = Noop{}
var _ Cache = (*Redis)(nil)

// Redis caché de vistas sobre Redis con TTL.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis construye la caché contra el servidor indicado.
func NewRedis(addr, password string, db int, ttl time.Duration) *Redis {
	return &Redis{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl: ttl,
	}
}

// Ping verifica la conexión al arrancar.
func (c *Redis) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func key(collection string) string {
	return "view:" + collection
}

// Get devuelve la vista cacheada; cualquier error cuenta como miss.
func (c *Redis) Get(ctx context.Context, collection string) ([]byte, bool) {
	data, err := c.rdb.Get(ctx, key(collection)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set guarda la vista con TTL; errores se ignoran (best-effort).
func (c *Redis) Set(ctx context.Context, collection string, payload []byte) {
	_ = c.rdb.Set(ctx, key(collection), payload, c.ttl).Err()
}

// Invalidate borra la vista de la colección mutada.
func (c *Redis) Invalidate(ctx context.Context, collection string) {
	_ = c.rdb.Del(ctx, key(collection)).Err()
}
