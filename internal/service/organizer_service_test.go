package service

import (
	"context"
	"testing"

	"github.com/AdamBeresnev/poker-league/internal/store"
	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureGuest(t *testing.T) {
	svc := NewOrganizerService(store.NewOrganizerStore(setupTestDB(t)))
	ctx := context.Background()

	first, err := svc.EnsureGuest(ctx)
	require.NoError(t, err)
	assert.True(t, first.IsGuest())

	second, err := svc.EnsureGuest(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestFindOrCreateByProvider(t *testing.T) {
	svc := NewOrganizerService(store.NewOrganizerStore(setupTestDB(t)))
	ctx := context.Background()

	gu := goth.User{
		Provider:  "discord",
		UserID:    "42",
		Email:     "dealer@example.com",
		Name:      "Dealer",
		AvatarURL: "https://cdn.example.com/a.png",
	}

	created, err := svc.FindOrCreateByProvider(ctx, gu)
	require.NoError(t, err)
	assert.Equal(t, "Dealer", created.Username)
	assert.False(t, created.IsGuest())

	gu.NickName = "TheDealer"
	gu.AvatarURL = "https://cdn.example.com/b.png"
	again, err := svc.FindOrCreateByProvider(ctx, gu)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	stored, err := svc.GetOrganizer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "TheDealer", stored.Username)
	require.NotNil(t, stored.AvatarURL)
	assert.Equal(t, "https://cdn.example.com/b.png", *stored.AvatarURL)
}
