package session

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/MarcusWeller/CampusVoice/app/models"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/cache"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/env"
)

var sessionStore *session.Store

func NewSessionStore() *session.Store {
	// Session lifetime follows the configured timeout (minutes).
	timeout := models.GetAppSettings().SessionTimeout
	if timeout <= 0 {
		timeout = 30
	}

	config := session.Config{
		CookieHTTPOnly: true,
		Expiration:     time.Duration(timeout) * time.Minute,
		KeyLookup:      "cookie:session_id",
	}
	if storage := newRedisStorage(); storage != nil {
		config.Storage = storage
	}

	sessionStore = session.New(config)
	return sessionStore
}

// newRedisStorage builds the Redis-backed session storage on database 1
// (the cache uses DB 0). The storage constructor panics when Redis is not
// reachable; that is recovered here so sessions degrade to the in-memory
// default instead of killing the process.
func newRedisStorage() (storage fiber.Storage) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("[Session] redis storage unavailable, using in-memory sessions: %v", r)
			storage = nil
		}
	}()

	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if client := cache.GetClient(); client != nil {
		if h, p, err := net.SplitHostPort(client.Options().Addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := client.Options().Password; p != "" {
			password = p
		}
	}

	storage = redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})
	return storage
}

func GetSessionStore() *session.Store {
	return sessionStore
}
