package storage

import (
	"context"

	"github.com/partydeck/partydeck-go/internal/model"
)

// Storage defines the interface for room and card-pool persistence
type Storage interface {
	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	DeleteRoom(ctx context.Context, code model.RoomCode) error
	RoomExists(ctx context.Context, code model.RoomCode) (bool, error)

	// Card pool operations; the pools are the static source decks are
	// rebuilt from
	SaveCardPools(ctx context.Context, pools *model.CardPools) error
	GetCardPools(ctx context.Context) (*model.CardPools, error)
}
