package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client is what the record, profile and dice session stores talk to.
// Both *redis.Client and *redis.ClusterClient satisfy it, as does a
// client pointed at miniredis.
type Client interface {
	redis.UniversalClient
}
