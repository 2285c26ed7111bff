package dto

import (
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/interaction"
)

type EventResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Status       string `json:"status"`
	OwnerID      string `json:"owner_id"`
	OwnerName    string `json:"owner_name"`
	LocationID   string `json:"location_id,omitempty"`
	LocationName string `json:"location_name,omitempty"`
	SeriesID     string `json:"series_id,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ImportResponse struct {
	Created []EventResponse `json:"created"`
	Skipped int             `json:"skipped"`
}

type SessionErrorResponse struct {
	Error   string               `json:"error"`
	Session interaction.Snapshot `json:"session"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Start:        e.Start.Format(time.RFC3339),
		End:          e.End.Format(time.RFC3339),
		Status:       string(e.Status),
		OwnerID:      e.OwnerID,
		OwnerName:    e.OwnerName,
		LocationID:   e.LocationID,
		LocationName: e.LocationName,
		SeriesID:     e.SeriesID,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
