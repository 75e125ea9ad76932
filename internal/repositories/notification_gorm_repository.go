package repositories

import (
	"fmt"
	"time"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMNotificationRepository is a GORM implementation of NotificationRepository.
type GORMNotificationRepository struct {
	db *gorm.DB
}

// NewGORMNotificationRepository creates a new instance of GORMNotificationRepository.
func NewGORMNotificationRepository(db *gorm.DB) *GORMNotificationRepository {
	return &GORMNotificationRepository{db: db}
}

func (r *GORMNotificationRepository) GetAll() ([]models.Notification, error) {
	var list []models.Notification
	if err := r.db.Order("raised_at desc, id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return list, nil
}

func (r *GORMNotificationRepository) Create(n *models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	if err := r.db.Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *GORMNotificationRepository) MarkRead(id string) error {
	res := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *GORMNotificationRepository) MarkAllRead() (int, error) {
	res := r.db.Model(&models.Notification{}).Where("is_read = ?", false).Update("is_read", true)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}
