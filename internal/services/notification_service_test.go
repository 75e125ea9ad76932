package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
)

func TestNotificationService(t *testing.T) {
	service := services.NewNotificationService(repositories.NewMockNotificationRepository())

	service.Notify(models.NotificationLowStock, "Low Stock Alert", "Desk Lamp has only 2 units left")
	service.Notify(models.NotificationFBASync, "FBA Sync Complete", "Inventory synced")

	list, err := service.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, n := range list {
		assert.False(t, n.IsRead)
		assert.NotEmpty(t, n.ID)
	}

	unread, err := service.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	require.NoError(t, service.MarkRead(list[0].ID))
	unread, err = service.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	changed, err := service.MarkAllRead()
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	assert.ErrorIs(t, service.MarkRead("missing"), repositories.ErrNotFound)
}
