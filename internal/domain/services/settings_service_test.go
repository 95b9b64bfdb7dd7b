package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Djiento/ActionnaireInscrit/internal/domain/models"
)

func TestGetReturnsNilWhenUnset(t *testing.T) {
	svc := NewSettingsService(newTestDB(t), newTestConfig(t))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Nil(t, settings)
	assert.Equal(t, PlaceholderGroupLink, svc.GroupLink())
}

func TestUpdateGroupLinkCreatesSingletonRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db, newTestConfig(t))

	settings, err := svc.UpdateGroupLink("https://chat.whatsapp.com/first")
	require.NoError(t, err)
	assert.Equal(t, models.SettingsRowID, settings.ID)
	assert.Equal(t, "https://chat.whatsapp.com/first", svc.GroupLink())

	var count int64
	require.NoError(t, db.Model(&models.Settings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateGroupLinkOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db, newTestConfig(t))

	_, err := svc.UpdateGroupLink("https://chat.whatsapp.com/first")
	require.NoError(t, err)

	first, err := svc.Get()
	require.NoError(t, err)
	require.NotNil(t, first)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.UpdateGroupLink("https://chat.whatsapp.com/second")
	require.NoError(t, err)

	second, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "https://chat.whatsapp.com/second", second.WhatsappGroupLink)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt) || second.UpdatedAt.Equal(first.UpdatedAt))

	var count int64
	require.NoError(t, db.Model(&models.Settings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
