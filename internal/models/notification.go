package models

import "fmt"

// NotificationKind identifies which basket action produced a notification
type NotificationKind string

// Notification kinds
const (
	NotificationAdded     NotificationKind = "added"
	NotificationUnchanged NotificationKind = "unchanged"
	NotificationCleared   NotificationKind = "cleared"
)

// NotificationEvent is user feedback emitted by basket mutations
type NotificationEvent struct {
	Kind        NotificationKind
	ProductCode string
	Message     string
}

// AddedNotification reports that a product was put in the basket
func AddedNotification(p Product) NotificationEvent {
	return NotificationEvent{
		Kind:        NotificationAdded,
		ProductCode: p.Code,
		Message:     fmt.Sprintf("%s added to basket!", p.Description),
	}
}

// UnchangedNotification reports that a re-add was ignored
func UnchangedNotification(p Product) NotificationEvent {
	return NotificationEvent{
		Kind:        NotificationUnchanged,
		ProductCode: p.Code,
		Message:     fmt.Sprintf("%s is already in your basket", p.Description),
	}
}

// ClearedNotification reports that the basket was emptied
func ClearedNotification() NotificationEvent {
	return NotificationEvent{
		Kind:    NotificationCleared,
		Message: "Basket cleared!",
	}
}
