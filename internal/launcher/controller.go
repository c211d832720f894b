package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/seagrayinc/rocketbaby/internal/hid"
)

var (
	// ErrWriteFailed reports an output report write that errored or
	// came up short.
	ErrWriteFailed = errors.New("output report write failed")

	// ErrReadFailed reports an input report read that errored or
	// returned no data.
	ErrReadFailed = errors.New("input report read failed")

	// ErrCommandFailed reports a composite operation whose prerequisite
	// send failed; it wraps the underlying write error.
	ErrCommandFailed = errors.New("command send failed")

	// ErrUnsupportedMovement reports a movement value with no opcode
	// mapping. Unreachable from a validated Intent.
	ErrUnsupportedMovement = errors.New("unsupported movement")

	// ErrFireIncomplete reports that the fire-completion poll limit was
	// reached before the device asserted the fired bit.
	ErrFireIncomplete = errors.New("device never reported fire completion")
)

// DefaultFireHoldTime is the extra wait after the device reports fire
// completion. The fired bit toggles slightly before the mechanism has
// finished cycling, so the client holds the fire line a little longer.
const DefaultFireHoldTime = 500 * time.Millisecond

// Controller drives the launcher over an opened HID device. All
// operations are synchronous and strictly sequential; none retries on
// failure. The Controller never closes the device.
type Controller struct {
	// FireHoldTime overrides DefaultFireHoldTime when positive.
	FireHoldTime time.Duration

	// MaxStatusPolls bounds Fire's completion polling. The device has
	// no push notification, so zero preserves its historical contract
	// of polling until the fired bit appears, however long that takes.
	MaxStatusPolls int

	dev   hid.Device
	sleep func(time.Duration)
}

// NewController wraps an already opened device.
func NewController(dev hid.Device) *Controller {
	return &Controller{dev: dev}
}

// SendCommand writes a single 2-byte output report carrying cmd.
func (c *Controller) SendCommand(cmd Command) error {
	report := Encode(cmd)
	n, err := c.dev.Write(report)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if n < len(report) {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrWriteFailed, n, len(report))
	}
	slog.Debug("sent command", slog.String("command", cmd.String()))
	return nil
}

// GetStatus requests and reads the launcher's status byte. The device
// never pushes input reports on its own, so every read is preceded by a
// GetStatus request.
func (c *Controller) GetStatus() (StatusFlags, error) {
	if err := c.SendCommand(CmdGetStatus); err != nil {
		return StatusFlags{}, fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}

	var buf [1]byte
	n, err := c.dev.Read(buf[:])
	if err != nil {
		return StatusFlags{}, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	if n == 0 {
		return StatusFlags{}, fmt.Errorf("%w: empty input report", ErrReadFailed)
	}

	return DecodeStatus(buf[0]), nil
}

// Move energizes the turret's motor in the given direction for the
// duration, then stops it. The device has no movement-complete signal;
// elapsed time is the only termination. A failed Stop is reported to the
// caller, who must assume the actuator is still energized.
func (c *Controller) Move(dir Direction, duration time.Duration) error {
	cmd, err := dir.command()
	if err != nil {
		return err
	}

	if err := c.SendCommand(cmd); err != nil {
		return err
	}

	slog.Debug("moving turret",
		slog.String("direction", dir.String()),
		slog.Duration("duration", duration))
	c.wait(duration)

	return c.SendCommand(CmdStop)
}

// Fire launches a single projectile: start the fire cycle, poll status
// until the device reports completion, hold past the signal to let the
// mechanism finish, then stop. ctx is only consulted between polls;
// context.Background() with MaxStatusPolls zero reproduces the device's
// original unbounded loop.
func (c *Controller) Fire(ctx context.Context) error {
	if err := c.SendCommand(CmdFire); err != nil {
		return err
	}

	polls := 0
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("fire aborted: %w", err)
		}

		status, err := c.GetStatus()
		if err != nil {
			return err
		}
		polls++

		if status.FireComplete {
			break
		}
		if c.MaxStatusPolls > 0 && polls >= c.MaxStatusPolls {
			return fmt.Errorf("%w after %d status polls", ErrFireIncomplete, polls)
		}
	}

	// The fired bit leads the physical action; overshoot before cutting
	// power so the missile actually leaves the tube.
	hold := c.FireHoldTime
	if hold <= 0 {
		hold = DefaultFireHoldTime
	}
	slog.Debug("fire complete, holding", slog.Duration("hold", hold), slog.Int("polls", polls))
	c.wait(hold)

	return c.SendCommand(CmdStop)
}

func (c *Controller) wait(d time.Duration) {
	if c.sleep != nil {
		c.sleep(d)
		return
	}
	time.Sleep(d)
}
