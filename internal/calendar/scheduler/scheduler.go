package scheduler

import (
	"context"
	"time"

	authrepo "github.com/voknelis/XSched/internal/auth/repository"
	"github.com/voknelis/XSched/internal/calendar/repository"
	"github.com/voknelis/XSched/pkg/fcm"

	"go.uber.org/zap"
)

// ReminderScheduler periodically scans for due event reminders and
// pushes notifications to the owner's registered devices.
type ReminderScheduler struct {
	eventRepo  repository.EventRepository
	deviceRepo authrepo.DeviceTokenRepository
	fcmClient  *fcm.Client
	logger     *zap.Logger
	interval   time.Duration
	stopChan   chan struct{}
}

func NewReminderScheduler(
	eventRepo repository.EventRepository,
	deviceRepo authrepo.DeviceTokenRepository,
	fcmClient *fcm.Client,
	logger *zap.Logger,
) *ReminderScheduler {
	return &ReminderScheduler{
		eventRepo:  eventRepo,
		deviceRepo: deviceRepo,
		fcmClient:  fcmClient,
		logger:     logger,
		interval:   1 * time.Minute,
		stopChan:   make(chan struct{}),
	}
}

// Start begins the scheduler loop.
func (s *ReminderScheduler) Start() {
	if s.fcmClient == nil {
		s.logger.Info("FCM client not available, reminder scheduler disabled")
		return
	}

	s.logger.Info("starting event reminder scheduler", zap.Duration("interval", s.interval))

	go func() {
		s.checkAndSendReminders()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.checkAndSendReminders()
			case <-s.stopChan:
				s.logger.Info("reminder scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler.
func (s *ReminderScheduler) Stop() {
	close(s.stopChan)
}

func (s *ReminderScheduler) checkAndSendReminders() {
	events, err := s.eventRepo.FindPendingReminders(time.Now())
	if err != nil {
		s.logger.Error("failed to find pending reminders", zap.Error(err))
		return
	}
	if len(events) == 0 {
		return
	}

	for _, event := range events {
		if event.Profile == nil {
			continue
		}

		tokens, err := s.deviceRepo.GetTokensByUserID(event.Profile.UserID)
		if err != nil {
			s.logger.Error("failed to load device tokens",
				zap.String("userId", event.Profile.UserID), zap.Error(err))
			continue
		}

		if len(tokens) > 0 {
			var tokenStrings []string
			for _, t := range tokens {
				tokenStrings = append(tokenStrings, t.Token)
			}

			notification := fcm.NotificationData{
				Title: "Upcoming event: " + event.Title,
				Body:  "Starts at " + event.StartDate.Format("02.01.2006 15:04"),
				Data: map[string]string{
					"type":    "event_reminder",
					"eventId": event.ID,
				},
			}

			failed, err := s.fcmClient.SendToDevices(context.Background(), tokenStrings, notification)
			if err != nil {
				s.logger.Error("failed to send reminder",
					zap.String("eventId", event.ID), zap.Error(err))
			}
			for _, token := range failed {
				if err := s.deviceRepo.DeleteToken(token); err != nil {
					s.logger.Warn("failed to prune device token", zap.Error(err))
				}
			}
		}

		// Mark as sent regardless of delivery outcome to avoid
		// re-sending on every tick.
		if err := s.eventRepo.MarkReminderSent(event.ID); err != nil {
			s.logger.Error("failed to mark reminder as sent",
				zap.String("eventId", event.ID), zap.Error(err))
		}
	}
}
