package system

import (
	"log"

	"github.com/younwookim/pevious/internal/domain/entity"
)

// guard runs fn for one entity. A panic is logged and the entity is
// deactivated; the rest of the frame carries on.
func guard(id entity.EntityID, active *bool, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("entity %d: recovered from panic: %v", id, r)
			*active = false
		}
	}()
	fn()
}
