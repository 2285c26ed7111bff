package interaction

import (
	"time"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

// Input is a pointer-level event fed to Transition.
type Input interface {
	input()
}

// Target is a drop location: a day, optionally with a time-grid slot.
type Target struct {
	Day     time.Time
	HasTime bool
	Hour    int
	Minute  int
}

type DragStart struct {
	Event domain.Event
}

type DragOver struct {
	Target Target
}

type Drop struct {
	Target Target
}

type Confirm struct{}

// Cancel ends any session without committing. Reason is informational
// ("cancel", "pointer_leave", "pointer_cancel", "teardown", ...).
type Cancel struct {
	Reason string
}

type ResizeStart struct {
	Event domain.Event
	Edge  Edge
	// Day is the column the handle belongs to; zero means the event's start day.
	Day time.Time
}

type ResizeMove struct {
	HeightPx float64
}

type ResizeStop struct{}

func (DragStart) input()   {}
func (DragOver) input()    {}
func (Drop) input()        {}
func (Confirm) input()     {}
func (Cancel) input()      {}
func (ResizeStart) input() {}
func (ResizeMove) input()  {}
func (ResizeStop) input()  {}
