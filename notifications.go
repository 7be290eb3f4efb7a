package homehive

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// NotificationKind classifies a notification for the badge UI.
type NotificationKind string

const (
	NotifyTask     NotificationKind = "task"
	NotifyPayment  NotificationKind = "payment"
	NotifyDocument NotificationKind = "document"
)

// Notification is one entry of the "notifications" key, consumed by an
// external notification-badge collaborator.
type Notification struct {
	ID         string           `json:"id"`
	Kind       NotificationKind `json:"kind"`
	PropertyID string           `json:"propertyId"`
	Year       int              `json:"year,omitempty"`
	TaskID     string           `json:"taskId,omitempty"`
	Message    string           `json:"message"`
	CreatedAt  time.Time        `json:"createdAt"`
	Read       bool             `json:"read"`
}

// NewTaskNotification builds a task notification with a fresh id.
func NewTaskNotification(propertyID string, year int, taskID, message string) Notification {
	return Notification{
		ID:         uuid.NewString(),
		Kind:       NotifyTask,
		PropertyID: propertyID,
		Year:       year,
		TaskID:     taskID,
		Message:    message,
		CreatedAt:  time.Now(),
	}
}

// NotificationLog is the ordered list of notifications.
type NotificationLog struct {
	storage Storage
}

// NewNotificationLog returns a log over the given storage.
func NewNotificationLog(storage Storage) *NotificationLog {
	return &NotificationLog{storage: storage}
}

// All returns every notification, oldest first.
func (l *NotificationLog) All() []Notification {
	var ns []Notification
	if _, err := loadJSON(l.storage, keyNotifications, &ns); err != nil {
		log.Printf("warning: %v", err)
		return nil
	}
	return ns
}

// Add appends a notification.
func (l *NotificationLog) Add(n Notification) bool {
	ns := append(l.All(), n)
	if err := saveJSON(l.storage, keyNotifications, ns); err != nil {
		log.Printf("warning: %v", err)
		return false
	}
	return true
}

// ClearTask removes every notification attached to a task.
func (l *NotificationLog) ClearTask(taskID string) bool {
	ns := l.All()
	kept := ns[:0]
	for _, n := range ns {
		if n.TaskID != taskID {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(ns) {
		return true
	}
	if err := saveJSON(l.storage, keyNotifications, kept); err != nil {
		log.Printf("warning: %v", err)
		return false
	}
	return true
}
