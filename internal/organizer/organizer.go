package organizer

import (
	"time"

	"github.com/google/uuid"
)

type ContextKey string

const OrganizerKey ContextKey = "organizer"

// GuestID is the shared account used by the guest sign-in button
const GuestID = "00000000-0000-0000-0000-000000000001"

// Organizer is someone allowed to enter results and manage the roster.
type Organizer struct {
	ID         uuid.UUID `db:"id"`
	Email      string    `db:"email"`
	Username   string    `db:"username"`
	CreatedAt  time.Time `db:"created_at"`
	Provider   *string   `db:"provider"`
	ProviderID *string   `db:"provider_id"`
	AvatarURL  *string   `db:"avatar_url"`
}

func (o *Organizer) IsGuest() bool {
	return o.ID.String() == GuestID
}
