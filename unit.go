package ipc

import (
	"fmt"
	"iter"
)

// Unit is a purchasable unit type.
//
// Units are compared by their variant, never by their text: tokens and
// display names are independent strings attached to each variant.
type Unit int

const (
	// Army
	Infantry Unit = iota
	Tank
	Artillery
	AntiAir
	IndustrialComplex
	// Air force
	Fighter
	Bomber
	// Navy
	Battleship
	AircraftCarrier
	Destroyer
	Cruiser
	Submarine
	Transport

	numUnits
)

// Branch groups units by the arm of service they belong to.
type Branch int

const (
	Army Branch = iota
	AirForce
	Navy
)

func (b Branch) String() string {
	switch b {
	case Army:
		return "Army"
	case AirForce:
		return "Air Force"
	case Navy:
		return "Navy"
	default:
		return "unknown"
	}
}

// unitInfo is the static catalog entry of a Unit.
type unitInfo struct {
	token  string
	name   string
	plural string
	cost   int
	branch Branch
}

var catalog = [numUnits]unitInfo{
	Infantry:          {"infantry", "Infantry", "Infantry", 3, Army},
	Tank:              {"tank", "Tank", "Tanks", 6, Army},
	Artillery:         {"artillery", "Artillery", "Artillery", 4, Army},
	AntiAir:           {"aaa", "AAA", "AAA", 5, Army},
	IndustrialComplex: {"ic", "IC", "ICs", 15, Army},
	Fighter:           {"fighter", "Fighter", "Fighters", 10, AirForce},
	Bomber:            {"bomber", "Bomber", "Bombers", 12, AirForce},
	Battleship:        {"battleship", "Battleship", "Battleships", 20, Navy},
	AircraftCarrier:   {"aircraft-carrier", "Aircraft Carrier", "Aircraft Carriers", 14, Navy},
	Destroyer:         {"destroyer", "Destroyer", "Destroyers", 8, Navy},
	Cruiser:           {"cruiser", "Cruiser", "Cruisers", 12, Navy},
	Submarine:         {"submarine", "Submarine", "Submarines", 6, Navy},
	Transport:         {"transport", "Transport", "Transports", 7, Navy},
}

// Valid reports whether u is one of the catalog variants.
func (u Unit) Valid() bool { return u >= 0 && u < numUnits }

// Cost returns the IPC cost of a single unit.
func (u Unit) Cost() int {
	if !u.Valid() {
		return 0
	}
	return catalog[u].cost
}

// String returns the canonical token of the unit, as used on the command line
// and in the state file.
func (u Unit) String() string {
	if !u.Valid() {
		return "unknown"
	}
	return catalog[u].token
}

// Name returns the human readable name of the unit.
func (u Unit) Name() string {
	if !u.Valid() {
		return "unknown"
	}
	return catalog[u].name
}

// Plural returns the human readable name of several units.
func (u Unit) Plural() string {
	if !u.Valid() {
		return "unknown"
	}
	return catalog[u].plural
}

// Label returns the name to use for a quantity n of units.
func (u Unit) Label(n int) string {
	if n == 1 || n == -1 {
		return u.Name()
	}
	return u.Plural()
}

// Branch returns the arm of service of the unit.
func (u Unit) Branch() Branch {
	if !u.Valid() {
		return -1
	}
	return catalog[u].branch
}

// ParseUnit parses a unit token. Matching is exact and case sensitive.
func ParseUnit(s string) (Unit, error) {
	for u := range Units() {
		if catalog[u].token == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unknown unit type: %q", s)
}

// Units iterates over all units in catalog order.
func Units() iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		for u := Unit(0); u < numUnits; u++ {
			if !yield(u) {
				return
			}
		}
	}
}

// Tokens returns the canonical tokens of all units in catalog order.
func Tokens() []string {
	tokens := make([]string, 0, numUnits)
	for u := range Units() {
		tokens = append(tokens, u.String())
	}
	return tokens
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("invalid unit type %d", int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	v, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
