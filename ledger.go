package ipc

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// StatusRenderer formats a game state for display.
type StatusRenderer func(*GameState) string

// Ledger runs the game operations against a Store.
//
// Every operation that needs an existing game loads it first and does nothing
// else when that fails. Effects are printed to Out before the new state is
// saved, so a failed save can follow messages that already announced the
// change.
type Ledger struct {
	Store  Store
	Out    io.Writer
	Logger *zap.Logger
	// Render formats the status report. Defaults to a plain text report.
	Render StatusRenderer
}

func (l *Ledger) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

func (l *Ledger) out() io.Writer {
	if l.Out == nil {
		return io.Discard
	}
	return l.Out
}

func (l *Ledger) load() (*GameState, error) {
	s, err := l.Store.Load()
	if err != nil {
		return nil, err
	}
	l.logger().Debug("game state loaded", zap.Int("balance", s.Balance), zap.Int("pending", len(s.Pending)))
	return s, nil
}

func (l *Ledger) save(s *GameState) (*GameState, error) {
	if err := l.Store.Save(s); err != nil {
		return nil, err
	}
	l.logger().Debug("game state saved", zap.Int("balance", s.Balance), zap.Int("pending", len(s.Pending)))
	return s, nil
}

// Setup starts a new game with an initial balance, replacing any existing one.
func (l *Ledger) Setup(initial int) (*GameState, error) {
	s := NewGameState(initial)
	fmt.Fprintf(l.out(), "New game started with %d IPC\n", initial)
	return l.save(s)
}

// Status prints the current game state.
func (l *Ledger) Status() (*GameState, error) {
	s, err := l.load()
	if err != nil {
		return nil, err
	}
	render := l.Render
	if render == nil {
		render = PlainStatus
	}
	fmt.Fprint(l.out(), render(s))
	return s, nil
}

// Purchase adds quantity units to the pending purchases.
func (l *Ledger) Purchase(u Unit, quantity int) (*GameState, error) {
	s, err := l.load()
	if err != nil {
		return nil, err
	}
	cost := s.Buy(u, quantity)
	fmt.Fprintf(l.out(), "Added a purchase of %d %s for %d IPC\n", quantity, u.Label(quantity), cost)
	fmt.Fprintf(l.out(), "Remaining IPC: %d\n", s.Remaining())
	return l.save(s)
}

// Remove takes quantity units out of the pending purchases, or all of them if
// quantity is nil. The state is saved even if there was nothing to remove.
func (l *Ledger) Remove(u Unit, quantity *int) (*GameState, error) {
	s, err := l.load()
	if err != nil {
		return nil, err
	}
	if quantity != nil {
		fmt.Fprintf(l.out(), "Removing %d %s from purchase\n", *quantity, u.Label(*quantity))
	} else {
		fmt.Fprintf(l.out(), "Removing all %s from purchase\n", u.Plural())
	}
	s.Drop(u, quantity)
	return l.save(s)
}

// Commit pays for the pending purchases and adds the income of the new turn.
//
// When the purchases cost more than the balance, nothing is saved and
// ErrInsufficientFunds is returned.
func (l *Ledger) Commit(income int) (*GameState, error) {
	s, err := l.load()
	if err != nil {
		return nil, err
	}
	remaining, err := s.Pay(income)
	if err != nil {
		fmt.Fprintln(l.out(), "You don't have enough IPC to pay for your purchases")
		return nil, fmt.Errorf("%w: %d IPC short", err, -remaining)
	}
	fmt.Fprintln(l.out(), "Committing purchases...")
	fmt.Fprintf(l.out(), "IPC remaining %d\n", remaining)
	fmt.Fprintf(l.out(), "New IPC total %d\n", s.Balance)
	return l.save(s)
}

// PlainStatus formats a game state as plain text.
func PlainStatus(s *GameState) string {
	var b []byte
	b = fmt.Appendln(b, "Current game state:")
	b = fmt.Appendln(b, "Purchases:")
	for _, p := range s.Purchases() {
		b = fmt.Appendf(b, "\t%s : %d at %d IPC\n", p.Unit.Name(), p.Quantity, p.Unit.Cost())
	}
	b = fmt.Appendf(b, "At a total cost of %d IPC\n", s.TotalCost())
	b = fmt.Appendf(b, "Remaining IPC: %d\n", s.Remaining())
	return string(b)
}
