// Package console maps single key presses to simulation controls.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"

	"elevsim/src/executor"
	"elevsim/src/report"
	"elevsim/src/types"
	"elevsim/src/utils"
)

// KeyReader blocks until one key is pressed.
type KeyReader func() (rune, keyboard.Key, error)

type Console struct {
	ReadKey   KeyReader
	OpenKeys  func() error // optional, called once before the first read
	CloseKeys func()       // optional, restores the terminal when Run returns
	Control   chan<- executor.Command
	Latest    func() (types.Snapshot, bool)
	Out       io.Writer
	RunID     string
}

// New returns a console reading from the terminal.
func New(control chan<- executor.Command, latest func() (types.Snapshot, bool), out io.Writer, runID string) *Console {
	return &Console{
		ReadKey:   keyboard.GetKey,
		OpenKeys:  keyboard.Open,
		CloseKeys: func() { keyboard.Close() },
		Control:   control,
		Latest:    latest,
		Out:       out,
		RunID:     runID,
	}
}

const Help = "keys: p pause/resume, n step, s status, w waiting list, h help, q quit"

type keyPress struct {
	char rune
	key  keyboard.Key
}

// Run handles key presses until q or Ctrl-C is pressed, the key source fails,
// or ctx is cancelled. cancel is called when the user asks to quit.
// The terminal is restored before Run returns.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) error {
	if c.OpenKeys != nil {
		if err := c.OpenKeys(); err != nil {
			return errors.Wrap(err, "open keyboard")
		}
	}
	if c.CloseKeys != nil {
		defer c.CloseKeys()
	}
	fmt.Fprintln(c.Out, Help)

	keys := make(chan keyPress)
	readErr := make(chan error, 1)
	go c.readKeys(ctx, keys, readErr)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case kp := <-keys:
			if c.handle(ctx, kp) {
				slog.Info("Quit requested from console")
				cancel()
				return nil
			}
		}
	}
}

func (c *Console) readKeys(ctx context.Context, keys chan<- keyPress, readErr chan<- error) {
	for {
		char, key, err := c.ReadKey()
		if err != nil {
			readErr <- err
			return
		}
		select {
		case keys <- keyPress{char: char, key: key}:
		case <-ctx.Done():
			return
		}
	}
}

// handle acts on one key and reports whether it asks to quit.
func (c *Console) handle(ctx context.Context, kp keyPress) bool {
	switch char := kp.char; {
	case kp.key == keyboard.KeyCtrlC || char == 'q' || char == 'Q':
		return true
	case char == 'p' || char == 'P' || kp.key == keyboard.KeySpace:
		c.send(ctx, executor.Toggle)
	case char == 'n' || char == 'N':
		c.send(ctx, executor.Step)
	case char == 's' || char == 'S':
		c.printStatus()
	case char == 'w' || char == 'W':
		c.printWaiting()
	case char == 'h' || char == 'H':
		fmt.Fprintln(c.Out, Help)
	}
	return false
}

func (c *Console) send(ctx context.Context, cmd executor.Command) {
	select {
	case c.Control <- cmd:
	case <-ctx.Done():
	}
}

func (c *Console) printStatus() {
	snap, ok := c.Latest()
	if !ok {
		fmt.Fprintln(c.Out, "no tick completed yet")
		return
	}
	report.PrintConsoleReport(c.Out, c.RunID, snap)
}

func (c *Console) printWaiting() {
	snap, ok := c.Latest()
	if !ok {
		fmt.Fprintln(c.Out, "no tick completed yet")
		return
	}
	count := 0
	utils.ForEachWaiting(snap.Floors, func(floor int, p types.Passenger) {
		fmt.Fprintf(c.Out, "floor %d: %s waiting since tick %d\n", floor, utils.FormatPassenger(p), p.ArrivalTick)
		count++
	})
	fmt.Fprintf(c.Out, "%d waiting at tick %d\n", count, snap.Tick)
}
