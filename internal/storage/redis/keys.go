package redis

import (
	"fmt"

	"github.com/partydeck/partydeck-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "partydeck"

// roomKey returns the Redis key for a Room
func roomKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, code)
}

// cardPoolsKey returns the Redis key for the static card pools
func cardPoolsKey() string {
	return fmt.Sprintf("%s:card_pools", keyPrefix)
}
