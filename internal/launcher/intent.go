package launcher

import (
	"context"
	"fmt"
	"time"
)

// MaxMoveMillis is the exclusive upper bound on a movement duration.
const MaxMoveMillis = 10000

// Movement is a validated direction/duration pair.
type Movement struct {
	Direction Direction
	Duration  time.Duration
}

// NewMovement validates a millisecond duration from the command line.
func NewMovement(dir Direction, ms uint64) (Movement, error) {
	if ms >= MaxMoveMillis {
		return Movement{}, fmt.Errorf("invalid duration: %d ms (must be below %d)", ms, MaxMoveMillis)
	}
	return Movement{
		Direction: dir,
		Duration:  time.Duration(ms) * time.Millisecond,
	}, nil
}

// Intent is a validated user request: at most one movement, an optional
// fire, an optional status query.
type Intent struct {
	Movement   *Movement
	Fire       bool
	ShowStatus bool
}

// Execute runs the requested branches in order (move, then fire, then
// status), aborting the sequence at the first failure. When the status
// branch runs, the decoded flags are returned for presentation by the
// caller.
func (c *Controller) Execute(ctx context.Context, intent Intent) (*StatusFlags, error) {
	if intent.Movement != nil {
		if err := c.Move(intent.Movement.Direction, intent.Movement.Duration); err != nil {
			return nil, fmt.Errorf("move turret: %w", err)
		}
	}

	if intent.Fire {
		if err := c.Fire(ctx); err != nil {
			return nil, fmt.Errorf("fire missile: %w", err)
		}
	}

	if intent.ShowStatus {
		status, err := c.GetStatus()
		if err != nil {
			return nil, fmt.Errorf("read status: %w", err)
		}
		return &status, nil
	}

	return nil, nil
}
