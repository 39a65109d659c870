package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/AdamBeresnev/poker-league/internal/obslog"
	"github.com/AdamBeresnev/poker-league/internal/organizer"
	"github.com/AdamBeresnev/poker-league/internal/store"
	"github.com/google/uuid"
	"github.com/markbates/goth"
	"go.uber.org/zap"
)

type OrganizerService struct {
	store *store.OrganizerStore
}

func NewOrganizerService(store *store.OrganizerStore) *OrganizerService {
	return &OrganizerService{store: store}
}

// FindOrCreateByProvider maps an OAuth identity onto an organizer, creating one
// on first sign-in and refreshing the display name and avatar afterwards.
func (s *OrganizerService) FindOrCreateByProvider(ctx context.Context, gothUser goth.User) (*organizer.Organizer, error) {
	o, err := s.store.GetOrganizerByProvider(ctx, gothUser.Provider, gothUser.UserID)
	if err == nil {
		if avatar(o) != gothUser.AvatarURL || o.Username != displayName(gothUser) {
			o.Username = displayName(gothUser)
			o.AvatarURL = &gothUser.AvatarURL
			if err := s.store.UpdateOrganizerProfile(ctx, o); err != nil {
				obslog.L().Warn("failed to refresh organizer profile", zap.String("organizer_id", o.ID.String()), zap.Error(err))
			}
		}
		return o, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	o = &organizer.Organizer{
		ID:         uuid.New(),
		Email:      gothUser.Email,
		Username:   displayName(gothUser),
		Provider:   &gothUser.Provider,
		ProviderID: &gothUser.UserID,
		AvatarURL:  &gothUser.AvatarURL,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.CreateOrganizer(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrganizerService) EnsureGuest(ctx context.Context) (*organizer.Organizer, error) {
	guestID := uuid.MustParse(organizer.GuestID)
	o, err := s.store.GetOrganizer(ctx, guestID)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	guest := &organizer.Organizer{
		ID:        guestID,
		Email:     "guest@poker-league.local",
		Username:  "Guest Organizer",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateOrganizer(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *OrganizerService) GetOrganizer(ctx context.Context, id uuid.UUID) (*organizer.Organizer, error) {
	return s.store.GetOrganizer(ctx, id)
}

func displayName(u goth.User) string {
	if u.NickName != "" {
		return u.NickName
	}
	return u.Name
}

func avatar(o *organizer.Organizer) string {
	if o.AvatarURL == nil {
		return ""
	}
	return *o.AvatarURL
}
