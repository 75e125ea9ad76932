package services

import (
	"github.com/rs/zerolog/log"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// NotificationService manages the operator inbox.
type NotificationService struct {
	repo repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// List returns all notifications, newest first.
func (s *NotificationService) List() ([]models.Notification, error) {
	return s.repo.GetAll()
}

// Notify stores a new unread notification. Failures are logged.
func (s *NotificationService) Notify(kind, title, message string) {
	n := &models.Notification{Type: kind, Title: title, Message: message}
	if err := s.repo.Create(n); err != nil {
		log.Error().Err(err).Str("type", kind).Msg("failed to store notification")
		return
	}
	log.Info().Str("type", kind).Str("title", title).Msg("notification raised")
}

// MarkRead flags one notification as read.
func (s *NotificationService) MarkRead(id string) error {
	return s.repo.MarkRead(id)
}

// MarkAllRead flags every notification as read.
func (s *NotificationService) MarkAllRead() (int, error) {
	return s.repo.MarkAllRead()
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount() (int, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, item := range all {
		if !item.IsRead {
			n++
		}
	}
	return n, nil
}
