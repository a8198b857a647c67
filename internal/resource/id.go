package resource

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ID uniquely identifies an editor or document for the lifetime of the
// process. IDs are comparable and are used as map keys and for identity
// lookups in the tab bar.
type ID struct {
	id   uuid.UUID
	kind Kind
}

func NewID(k Kind) ID {
	return ID{
		id:   uuid.New(),
		kind: k,
	}
}

// Kind retrieves the kind of entity the ID identifies.
func (id ID) Kind() Kind {
	return id.kind
}

// String returns a short human readable form of the ID, e.g. ed-1f2e3d4c.
func (id ID) String() string {
	return fmt.Sprintf("%s-%s", id.kind.String(), id.id.String()[:8])
}

func (id ID) LogValue() slog.Value {
	return slog.StringValue(id.String())
}
