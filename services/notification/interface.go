package notification

import (
	"context"

	"bookhive/utils"

	"go.uber.org/zap"
)

// NotificationService delivers outbound client messages. The actual
// SMS/WhatsApp transport lives outside this service; implementations plug
// in here.
type NotificationService interface {
	SendClientMessage(ctx context.Context, tenantID, phone, title, body string) error
}

// LogNotificationService is the default implementation: it records the
// delivery instead of sending it, for deployments without a transport.
type LogNotificationService struct{}

func (s *LogNotificationService) SendClientMessage(ctx context.Context, tenantID, phone, title, body string) error {
	utils.GetLogger().Info("client notification",
		zap.String("tenantID", tenantID),
		zap.String("phone", phone),
		zap.String("title", title),
		zap.String("body", body),
	)
	return nil
}
