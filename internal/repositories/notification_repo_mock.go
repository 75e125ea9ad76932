package repositories

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"gudang/internal/models"

	"github.com/google/uuid"
)

// MockNotificationRepository is an in-memory implementation of NotificationRepository.
type MockNotificationRepository struct {
	notifications map[string]models.Notification
	mu            sync.RWMutex
}

// NewMockNotificationRepository creates a new instance of MockNotificationRepository.
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{
		notifications: make(map[string]models.Notification),
	}
}

// GetAll returns all notifications, newest first.
func (r *MockNotificationRepository) GetAll() ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		list = append(list, n)
	}
	slices.SortFunc(list, func(a, b models.Notification) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return list, nil
}

// Create adds a notification.
func (r *MockNotificationRepository) Create(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	r.notifications[n.ID] = *n
	return nil
}

// MarkRead flags one notification as read.
func (r *MockNotificationRepository) MarkRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return fmt.Errorf("notification with ID %s: %w", id, ErrNotFound)
	}
	n.IsRead = true
	r.notifications[id] = n
	return nil
}

// MarkAllRead flags every notification as read and reports how many changed.
func (r *MockNotificationRepository) MarkAllRead() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	for id, n := range r.notifications {
		if !n.IsRead {
			n.IsRead = true
			r.notifications[id] = n
			changed++
		}
	}
	return changed, nil
}
