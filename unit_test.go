package ipc

import (
	"slices"
	"testing"
)

func TestUnit_Catalog(t *testing.T) {
	testCases := []struct {
		unit   Unit
		token  string
		name   string
		cost   int
		branch Branch
	}{
		{Infantry, "infantry", "Infantry", 3, Army},
		{Tank, "tank", "Tank", 6, Army},
		{Artillery, "artillery", "Artillery", 4, Army},
		{AntiAir, "aaa", "AAA", 5, Army},
		{IndustrialComplex, "ic", "IC", 15, Army},
		{Fighter, "fighter", "Fighter", 10, AirForce},
		{Bomber, "bomber", "Bomber", 12, AirForce},
		{Battleship, "battleship", "Battleship", 20, Navy},
		{AircraftCarrier, "aircraft-carrier", "Aircraft Carrier", 14, Navy},
		{Destroyer, "destroyer", "Destroyer", 8, Navy},
		{Cruiser, "cruiser", "Cruiser", 12, Navy},
		{Submarine, "submarine", "Submarine", 6, Navy},
		{Transport, "transport", "Transport", 7, Navy},
	}

	if got := len(slices.Collect(Units())); got != len(testCases) {
		t.Fatalf("Units() has %d units, want %d", got, len(testCases))
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			if got := tc.unit.String(); got != tc.token {
				t.Errorf("String() = %q, want %q", got, tc.token)
			}
			if got := tc.unit.Name(); got != tc.name {
				t.Errorf("Name() = %q, want %q", got, tc.name)
			}
			if got := tc.unit.Cost(); got != tc.cost {
				t.Errorf("Cost() = %d, want %d", got, tc.cost)
			}
			if got := tc.unit.Branch(); got != tc.branch {
				t.Errorf("Branch() = %v, want %v", got, tc.branch)
			}
			got, err := ParseUnit(tc.token)
			if err != nil {
				t.Fatalf("ParseUnit(%q) failed: %v", tc.token, err)
			}
			if got != tc.unit {
				t.Errorf("ParseUnit(%q) = %v, want %v", tc.token, got, tc.unit)
			}
		})
	}
}

func TestParseUnit_Invalid(t *testing.T) {
	for _, token := range []string{"", "Tank", "TANK", "Aircraft Carrier", "aircraftcarrier", "infantery", " tank"} {
		if u, err := ParseUnit(token); err == nil {
			t.Errorf("ParseUnit(%q) = %v, want an error", token, u)
		}
	}
}

func TestUnit_Label(t *testing.T) {
	testCases := []struct {
		unit Unit
		n    int
		want string
	}{
		{Tank, 1, "Tank"},
		{Tank, 2, "Tanks"},
		{Tank, 0, "Tanks"},
		{Tank, -1, "Tank"},
		{Infantry, 3, "Infantry"},
		{AircraftCarrier, 2, "Aircraft Carriers"},
	}
	for _, tc := range testCases {
		if got := tc.unit.Label(tc.n); got != tc.want {
			t.Errorf("%v.Label(%d) = %q, want %q", tc.unit, tc.n, got, tc.want)
		}
	}
}

func TestUnit_Invalid(t *testing.T) {
	u := Unit(42)
	if u.Valid() {
		t.Error("Unit(42).Valid() = true, want false")
	}
	if got := u.Cost(); got != 0 {
		t.Errorf("Unit(42).Cost() = %d, want 0", got)
	}
	if _, err := u.MarshalText(); err == nil {
		t.Error("Unit(42).MarshalText() succeeded, want an error")
	}
}

func TestTokens(t *testing.T) {
	tokens := Tokens()
	if len(tokens) != 13 {
		t.Fatalf("Tokens() has %d tokens, want 13", len(tokens))
	}
	if tokens[0] != "infantry" || tokens[12] != "transport" {
		t.Errorf("Tokens() = %v, want catalog order", tokens)
	}
}
