package notification

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/notification"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/sse"
)

// feedLimit caps the feed length returned to the portal.
const feedLimit = 50

type NotificationServiceImpl struct {
	notifications notification.Repository
	hub           *sse.Hub
}

func NewNotificationService(notificationRepo notification.Repository, hub *sse.Hub) notification.Service {
	return &NotificationServiceImpl{
		notifications: notificationRepo,
		hub:           hub,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// Publish implements notification.Service. The notification is persisted
// first, then pushed to any open portal tabs.
func (s *NotificationServiceImpl) Publish(ctx context.Context, req notification.PublishRequest) error {
	created, err := s.notifications.Create(ctx, notification.Notification{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		Title:      req.Title,
		Message:    req.Message,
	})
	if err != nil {
		return err
	}

	s.hub.Publish(req.EmployeeID, sse.Event{
		EmployeeID: req.EmployeeID,
		Event:      "notification",
		Data:       notification.NewNotificationResponse(created),
	})
	return nil
}

// GetMyNotifications implements notification.Service.
func (s *NotificationServiceImpl) GetMyNotifications(ctx context.Context) (notification.ListNotificationsResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	notifications, err := s.notifications.ListByEmployee(ctx, employeeID, feedLimit)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}
	unread, err := s.notifications.CountUnread(ctx, employeeID)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, notification.NewNotificationResponse(n))
	}
	return notification.ListNotificationsResponse{
		UnreadCount:   unread,
		Notifications: responses,
	}, nil
}

// MarkRead implements notification.Service.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.notifications.MarkRead(ctx, id, employeeID)
}

// MarkAllRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context) error {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.notifications.MarkAllRead(ctx, employeeID)
}
