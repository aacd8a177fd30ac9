package notification

import (
	"context"
	"fmt"

	userRepo "chcrent/database/repository/user"
	"chcrent/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}

// FCMNotificationService is the production implementation.
type FCMNotificationService struct {
	Users userRepo.UserRepository
}

// SendUserPushNotification looks up a user's FCM token and sends a push.
// Missing FCM configuration or a user without a token is not an error; the
// order stream remains the primary delivery channel.
func (s *FCMNotificationService) SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return nil
	}

	u, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendUserPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}
