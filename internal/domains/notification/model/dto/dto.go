package dto

import (
	"club/internal/domains/notification/model"
	"club/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateNotificationRequest struct {
	UserID  string `json:"userId"  validate:"required"`
	Title   string `json:"title"   validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

// ToModel builds the notification record. Every notification starts unread.
func (c *CreateNotificationRequest) ToModel() model.Notification {
	return model.Notification{
		ID:        uuid.NewString(),
		UserID:    c.UserID,
		Title:     c.Title,
		Message:   c.Message,
		Read:      false,
		CreatedAt: timezone.Now(),
	}
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *NotificationResponse) FromModel(notification model.Notification) {
	r.ID = notification.ID
	r.UserID = notification.UserID
	r.Title = notification.Title
	r.Message = notification.Message
	r.Read = notification.Read
	r.CreatedAt = notification.CreatedAt
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification) {
	r.TotalData = len(models)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
