package ipc

import (
	"errors"
	"maps"
	"slices"
)

// ErrInsufficientFunds is returned when committing purchases that cost more
// than the balance.
var ErrInsufficientFunds = errors.New("not enough IPC to pay for the purchases")

// GameState is the balance and the purchases pending for the current turn.
type GameState struct {
	Balance int
	Pending map[Unit]int
}

// NewGameState returns a game state with the given balance and no purchases.
func NewGameState(balance int) *GameState {
	return &GameState{Balance: balance, Pending: make(map[Unit]int)}
}

// Purchase is a single line of the pending purchases.
type Purchase struct {
	Unit     Unit
	Quantity int
}

// Cost returns the cost of the whole line.
func (p Purchase) Cost() int { return p.Quantity * p.Unit.Cost() }

// Purchases returns the pending purchases in catalog order.
func (s *GameState) Purchases() []Purchase {
	units := slices.Sorted(maps.Keys(s.Pending))
	purchases := make([]Purchase, 0, len(units))
	for _, u := range units {
		purchases = append(purchases, Purchase{Unit: u, Quantity: s.Pending[u]})
	}
	return purchases
}

// Quantity returns the pending quantity of a unit, 0 if none.
func (s *GameState) Quantity(u Unit) int { return s.Pending[u] }

// TotalCost is the cost of all pending purchases.
func (s *GameState) TotalCost() int {
	total := 0
	for u, n := range s.Pending {
		total += u.Cost() * n
	}
	return total
}

// Remaining is the balance left once pending purchases are paid.
func (s *GameState) Remaining() int { return s.Balance - s.TotalCost() }

// Buy adds quantity units to the pending purchases and returns the cost of
// this addition.
//
// Negative quantities are accepted and reduce the pending quantity, entries
// are never pruned.
func (s *GameState) Buy(u Unit, quantity int) int {
	if s.Pending == nil {
		s.Pending = make(map[Unit]int)
	}
	s.Pending[u] += quantity
	return quantity * u.Cost()
}

// Drop removes quantity units from the pending purchases, or all of them if
// quantity is nil. The entry is deleted once it reaches 0 or less.
func (s *GameState) Drop(u Unit, quantity *int) {
	if s.Pending == nil {
		s.Pending = make(map[Unit]int)
	}
	if quantity == nil {
		s.Pending[u] = 0
	} else {
		s.Pending[u] -= *quantity
	}
	if s.Pending[u] <= 0 {
		delete(s.Pending, u)
	}
}

// Pay clears the pending purchases and rolls the remaining balance plus
// income into the new balance. It returns the remaining balance before income.
//
// If the remaining balance is negative the state is left untouched and
// ErrInsufficientFunds is returned.
func (s *GameState) Pay(income int) (remaining int, err error) {
	remaining = s.Remaining()
	if remaining < 0 {
		return remaining, ErrInsufficientFunds
	}
	clear(s.Pending)
	s.Balance = remaining + income
	return remaining, nil
}
