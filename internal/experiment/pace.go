package experiment

import (
	"context"
	"time"

	"github.com/san-kum/sortlab/internal/sorting"
)

const (
	MinSpeed     = 1
	MaxSpeed     = 10
	DefaultSpeed = 5
)

func ClampSpeed(speed int) int {
	return min(max(speed, MinSpeed), MaxSpeed)
}

// Pace is the pause between two steps at the given speed: 91ms at speed 1
// down to 1ms at speed 10.
func Pace(speed int) time.Duration {
	return time.Duration(101-ClampSpeed(speed)*10) * time.Millisecond
}

// Paced wraps emit so every step is followed by a Pace(speed) sleep. The
// sleep ends early with ctx.Err() when ctx is done.
func Paced(ctx context.Context, speed int, emit sorting.Emitter) sorting.Emitter {
	d := Pace(speed)
	return func(st sorting.Step) error {
		if emit != nil {
			if err := emit(st); err != nil {
				return err
			}
		}
		if st.Kind == sorting.StepDone {
			return nil
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	}
}
