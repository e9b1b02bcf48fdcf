package finance

import "sort"

// Notification is an in-app message. Its read state only ever moves from
// unread to read.
type Notification struct {
	Meta
	Title   string `json:"title"`
	Message string `json:"message"`
	IsRead  bool   `json:"isRead"`
}

// Notifications returns all notifications, newest first.
func (b *Book) Notifications() []Notification {
	items := b.notifications.All()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

// CreateNotification saves a new unread notification.
func (b *Book) CreateNotification(n Notification) Notification {
	n.IsRead = false
	return b.notifications.Save(n)
}

// MarkNotificationRead marks the notification as read. There is no way
// back to unread.
func (b *Book) MarkNotificationRead(id string) *Notification {
	return b.notifications.Update(id, func(n *Notification) { n.IsRead = true })
}
