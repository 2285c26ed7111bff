package domain

import "time"

// User owns bookings. DisplayName is what the calendar shows next to an event.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

type CreateUserInput struct {
	Username       string
	DisplayName    string
	TelegramChatID *int64
}
