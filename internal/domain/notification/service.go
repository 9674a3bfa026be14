package notification

import "context"

type Service interface {
	// Publish persists a notification and pushes it to any open portal tabs.
	Publish(ctx context.Context, req PublishRequest) error

	// GetMyNotifications lists the authenticated employee's feed.
	GetMyNotifications(ctx context.Context) (ListNotificationsResponse, error)

	// MarkRead marks one notification read.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead marks the whole feed read.
	MarkAllRead(ctx context.Context) error
}
