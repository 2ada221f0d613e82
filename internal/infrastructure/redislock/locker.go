package redislock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/stock-ledger/internal/application/archive"
)

var _ archive.JobLock = (*Locker)(nil)
var _ archive.JobLock = (*NoopLocker)(nil)

// releaseScript libera el lock solo si el valor coincide con el token del
// dueño: una instancia lenta no puede soltar el lock de otra.
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// Locker lock distribuido sobre Redis (SET NX con TTL). Garantiza que el job
// de archivado corra en una sola instancia del deployment a la vez.
type Locker struct {
	client *redis.Client
}

// New construye el locker con el cliente Redis.
func New(client *redis.Client) *Locker {
	return &Locker{client: client}
}

// Acquire intenta tomar el lock. ok=false significa que otra instancia lo tiene.
// El TTL acota el peor caso de una instancia caída con el lock tomado.
func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error) {
	token := uuid.New().String()
	ok, err = l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}
	return func() {
		if err := releaseScript.Run(context.WithoutCancel(ctx), l.client, []string{key}, token).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("liberar lock de archivado")
		}
	}, true, nil
}

// NoopLocker siempre concede el lock. Para deployments de instancia única sin
// Redis configurado.
type NoopLocker struct{}

// Acquire concede siempre; release no hace nada.
func (NoopLocker) Acquire(context.Context, string, time.Duration) (func(), bool, error) {
	return func() {}, true, nil
}
