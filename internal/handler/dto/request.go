package dto

type CreateEventRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Start        string `json:"start" binding:"required"`
	End          string `json:"end" binding:"required"`
	OwnerID      string `json:"owner_id" binding:"required,uuid"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	// Recurrence is an RRULE such as "FREQ=WEEKLY;COUNT=4".
	Recurrence string `json:"recurrence"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	DisplayName    string `json:"display_name"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type SessionEventRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}

// DropTargetRequest names the cell under the pointer. Month cells send only
// the date; time-grid cells add either hour/minute or the pointer offset.
type DropTargetRequest struct {
	Date     string   `json:"date" binding:"required"`
	Hour     *int     `json:"hour"`
	Minute   *int     `json:"minute"`
	OffsetPx *float64 `json:"offset_px"`
}

type ResizeStartRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
	Edge    string `json:"edge" binding:"required,oneof=top bottom"`
	Date    string `json:"date"`
}

type ResizeMoveRequest struct {
	HeightPx *float64 `json:"height_px" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"omitempty,oneof=cancel pointer_leave pointer_cancel teardown"`
}
