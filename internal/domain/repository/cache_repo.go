package repository

import (
	"time"
)

// CacheRepository defines the cache operations used by the services
// (leaderboard snapshot, short-lived flags).
type CacheRepository interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
	SetJSON(key string, value interface{}, expiration time.Duration) error
	GetJSON(key string, dest interface{}) error
	Exists(key string) (bool, error)
}
