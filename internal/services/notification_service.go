package services

import (
	"fmt"

	"github.com/stridehq/stride/internal/models"
)

const (
	SeverityInfo   = "info"
	SeverityWarn   = "warn"
	SeverityDanger = "danger"
)

type Notification struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type NotificationActionReader interface {
	Actions() ([]models.ActionItem, error)
}

type NotificationRoutineReader interface {
	PendingCount(date models.Date) (int, error)
}

type NotificationService struct {
	actions  NotificationActionReader
	routines NotificationRoutineReader
}

func NewNotificationService(actions NotificationActionReader, routines NotificationRoutineReader) *NotificationService {
	return &NotificationService{actions: actions, routines: routines}
}

func (service *NotificationService) Notifications(today models.Date) ([]Notification, error) {
	tomorrow := today.AddDays(1)

	actions, err := service.actions.Actions()
	if err != nil {
		return nil, err
	}

	overdue := 0
	dueTomorrow := 0
	for _, action := range actions {
		if action.IsDone {
			continue
		}
		if action.DueDate.Before(today) {
			overdue++
		}
		if action.DueDate.Equal(tomorrow) {
			dueTomorrow++
		}
	}

	pending, err := service.routines.PendingCount(today)
	if err != nil {
		return nil, err
	}

	notifications := make([]Notification, 0, 3)
	if overdue > 0 {
		notifications = append(notifications, Notification{
			Message:  fmt.Sprintf("%d overdue action(s)", overdue),
			Severity: SeverityDanger,
		})
	}
	if dueTomorrow > 0 {
		notifications = append(notifications, Notification{
			Message:  fmt.Sprintf("%d action(s) due tomorrow", dueTomorrow),
			Severity: SeverityWarn,
		})
	}
	if pending > 0 {
		notifications = append(notifications, Notification{
			Message:  fmt.Sprintf("%d routine(s) pending today", pending),
			Severity: SeverityInfo,
		})
	}
	return notifications, nil
}
