package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// NewRedis returns a Redis client backed by an in-process miniredis server.
// The server is started once and shared by every scenario; the budget
// breakdown cache runs against it unchanged.
var NewRedis = sync.OnceValue(func() *redis.Client {
	srv, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
})

// ClearRedis flushes all cached entries between scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
