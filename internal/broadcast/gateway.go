package broadcast

import (
	"github.com/partydeck/partydeck-go/internal/model"
)

// Gateway is the outbound event fan-out the room controller publishes
// through. Publish targets every stream in a room; PublishTo targets one
// player's streams, e.g. a kick notice.
type Gateway interface {
	Publish(code model.RoomCode, event model.Event)
	PublishTo(code model.RoomCode, playerID model.PlayerID, event model.Event)
	CloseRoom(code model.RoomCode)
}
