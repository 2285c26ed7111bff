package dto

import (
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/calendar"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

const dateLayout = "2006-01-02"

type PlacementResponse struct {
	Event     EventResponse `json:"event"`
	Start     string        `json:"start"`
	End       string        `json:"end"`
	Column    int           `json:"column"`
	Columns   int           `json:"columns"`
	Left      float64       `json:"left_pct"`
	Width     float64       `json:"width_pct"`
	FullWidth bool          `json:"full_width"`
	Top       float64       `json:"top_px"`
	Height    float64       `json:"height_px"`
}

type DayResponse struct {
	Date       string              `json:"date"`
	Placements []PlacementResponse `json:"placements"`
}

type CellEntryResponse struct {
	Event    EventResponse `json:"event"`
	Track    int           `json:"track"`
	Role     string        `json:"role"`
	MultiDay bool          `json:"multi_day"`
}

type CellResponse struct {
	Date     string              `json:"date"`
	Entries  []CellEntryResponse `json:"entries"`
	Overflow []EventResponse     `json:"overflow,omitempty"`
	More     int                 `json:"more"`
}

type WeekResponse struct {
	From   string         `json:"from"`
	To     string         `json:"to"`
	Days   []DayResponse  `json:"days"`
	Banner []CellResponse `json:"banner"`
}

type MonthResponse struct {
	Year  int              `json:"year"`
	Month int              `json:"month"`
	From  string           `json:"from"`
	To    string           `json:"to"`
	Weeks [][]CellResponse `json:"weeks"`
}

type MonthSummaryResponse struct {
	Month  int   `json:"month"`
	Counts []int `json:"counts"`
}

type YearResponse struct {
	Year   int                    `json:"year"`
	Months []MonthSummaryResponse `json:"months"`
}

func eventValue(e domain.Event) EventResponse {
	return ToEventResponse(&e)
}

func ToDayResponse(d calendar.DayLayout) DayResponse {
	resp := DayResponse{
		Date:       d.Date.Format(dateLayout),
		Placements: make([]PlacementResponse, 0, len(d.Placements)),
	}
	for _, p := range d.Placements {
		resp.Placements = append(resp.Placements, PlacementResponse{
			Event:     eventValue(p.Event),
			Start:     p.Start.Format(time.RFC3339),
			End:       p.End.Format(time.RFC3339),
			Column:    p.Column,
			Columns:   p.Columns,
			Left:      p.Left,
			Width:     p.Width,
			FullWidth: p.FullWidth,
			Top:       p.Top,
			Height:    p.Height,
		})
	}
	return resp
}

func ToCellResponse(c calendar.Cell) CellResponse {
	resp := CellResponse{
		Date:    c.Date.Format(dateLayout),
		Entries: make([]CellEntryResponse, 0, len(c.Entries)),
		More:    c.More,
	}
	for _, e := range c.Entries {
		resp.Entries = append(resp.Entries, CellEntryResponse{
			Event:    eventValue(e.Event),
			Track:    e.Track,
			Role:     string(e.Role),
			MultiDay: e.MultiDay,
		})
	}
	for _, e := range c.Overflow {
		resp.Overflow = append(resp.Overflow, eventValue(e))
	}
	return resp
}

func ToWeekResponse(w calendar.WeekLayout) WeekResponse {
	resp := WeekResponse{
		From:   w.Range.Start.Format(dateLayout),
		To:     w.Range.End.Format(dateLayout),
		Days:   make([]DayResponse, 0, len(w.Days)),
		Banner: make([]CellResponse, 0, len(w.Banner)),
	}
	for _, d := range w.Days {
		resp.Days = append(resp.Days, ToDayResponse(d))
	}
	for _, c := range w.Banner {
		resp.Banner = append(resp.Banner, ToCellResponse(c))
	}
	return resp
}

func ToMonthResponse(m calendar.MonthLayout) MonthResponse {
	resp := MonthResponse{
		Year:  m.Year,
		Month: int(m.Month),
		From:  m.Range.Start.Format(dateLayout),
		To:    m.Range.End.Format(dateLayout),
		Weeks: make([][]CellResponse, 0, len(m.Weeks)),
	}
	for _, week := range m.Weeks {
		row := make([]CellResponse, 0, len(week))
		for _, c := range week {
			row = append(row, ToCellResponse(c))
		}
		resp.Weeks = append(resp.Weeks, row)
	}
	return resp
}

func ToYearResponse(y calendar.YearLayout) YearResponse {
	resp := YearResponse{Year: y.Year, Months: make([]MonthSummaryResponse, 0, len(y.Months))}
	for _, m := range y.Months {
		resp.Months = append(resp.Months, MonthSummaryResponse{Month: int(m.Month), Counts: m.Counts})
	}
	return resp
}
