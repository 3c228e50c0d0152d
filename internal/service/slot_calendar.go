package service

import (
	"fmt"
	"time"

	"vitalscan-booking-api/internal/domain/entity"
)

// DayWindow is the bookable part of a clinic day, expressed as offsets
// from local midnight plus the grid step.
type DayWindow struct {
	Start time.Duration
	End   time.Duration
	Step  time.Duration
}

// ParseDayWindow builds a DayWindow from "15:04"-formatted bounds and a
// step in minutes.
func ParseDayWindow(dayStart, dayEnd string, stepMinutes int) (DayWindow, error) {
	start, err := parseClockOffset(dayStart)
	if err != nil {
		return DayWindow{}, fmt.Errorf("invalid day start %q: %w", dayStart, err)
	}
	end, err := parseClockOffset(dayEnd)
	if err != nil {
		return DayWindow{}, fmt.Errorf("invalid day end %q: %w", dayEnd, err)
	}
	if end <= start {
		return DayWindow{}, fmt.Errorf("day end %q is not after day start %q", dayEnd, dayStart)
	}
	if stepMinutes <= 0 {
		return DayWindow{}, fmt.Errorf("slot step must be positive, got %d", stepMinutes)
	}
	return DayWindow{
		Start: start,
		End:   end,
		Step:  time.Duration(stepMinutes) * time.Minute,
	}, nil
}

func parseClockOffset(value string) (time.Duration, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// OnGrid reports whether start sits on a step boundary within the window.
func (w DayWindow) OnGrid(start time.Time) bool {
	midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	offset := start.Sub(midnight) - w.Start
	return offset >= 0 && offset%w.Step == 0
}

// CandidateSlots generates every slot of the given duration starting on a
// step boundary within the window of the given day, such that the slot
// still ends inside the window. Pure and deterministic. A duration longer
// than the window yields an empty sequence, not an error.
func CandidateSlots(day time.Time, duration time.Duration, window DayWindow) []entity.TimeSlot {
	slots := []entity.TimeSlot{}
	if duration <= 0 {
		return slots
	}

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	for offset := window.Start; offset+duration <= window.End; offset += window.Step {
		start := midnight.Add(offset)
		slots = append(slots, entity.NewTimeSlot(start, duration))
	}
	return slots
}
