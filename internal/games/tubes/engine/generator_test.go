package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func levelSegments(l *Level) [][]Segment {
	out := make([][]Segment, l.Len())
	for i := range out {
		out[i] = l.Tube(i).Segments()
	}
	return out
}

func TestGenerateDeterministic(t *testing.T) {
	params := DefaultGenParams()
	params.Seed = 12345

	a, err := Generate(0, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(0, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if diff := cmp.Diff(levelSegments(a), levelSegments(b)); diff != "" {
		t.Errorf("same seed produced different layouts (-a +b):\n%s", diff)
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	params := DefaultGenParams()

	params.Seed = 1
	a, _ := Generate(1, params)
	params.Seed = 2
	b, _ := Generate(2, params)

	if cmp.Equal(levelSegments(a), levelSegments(b)) {
		t.Error("different seeds produced identical twelve-color layouts")
	}
}

func TestGenerateConservesColors(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		params := DefaultGenParams()
		params.Seed = seed

		level, err := Generate(int(seed), params)
		if err != nil {
			t.Fatalf("seed %d: Generate failed: %v", seed, err)
		}

		totals := level.Totals()
		if len(totals) != len(params.Palette) {
			t.Errorf("seed %d: %d colors present, want %d", seed, len(totals), len(params.Palette))
		}
		for _, c := range params.Palette {
			if totals[c] != float64(params.Capacity) {
				t.Errorf("seed %d: color %s total = %v, want %d", seed, c, totals[c], params.Capacity)
			}
		}

		for i := 0; i < level.Len(); i++ {
			checkInvariants(t, level.Tube(i))
		}
	}
}

func TestGenerateShape(t *testing.T) {
	params := DefaultGenParams()
	params.Seed = 99

	level, err := Generate(3, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if level.Len() != 14 {
		t.Fatalf("Len() = %d, want 14", level.Len())
	}
	if level.Index() != 3 {
		t.Errorf("Index() = %d, want 3", level.Index())
	}
	if level.GridFactor() != 2 {
		t.Errorf("GridFactor() = %d, want 2", level.GridFactor())
	}
	if level.Rows() != 2 || level.Columns() != 7 {
		t.Errorf("grid = %dx%d, want 2x7", level.Rows(), level.Columns())
	}

	for i := 0; i < 12; i++ {
		if !level.Tube(i).IsFull() {
			t.Errorf("tube %d not full: %s", i, level.Tube(i).String())
		}
	}
	for i := 12; i < 14; i++ {
		if !level.Tube(i).IsEmpty() {
			t.Errorf("spare tube %d not empty: %s", i, level.Tube(i).String())
		}
	}
}

func TestGenerateTwoColorScenario(t *testing.T) {
	params := GenParams{
		Palette:  []Color{ColorRed, ColorBlue},
		Capacity: 4,
		Seed:     7,
		Spare:    DefaultSpare,
	}

	level, err := Generate(7, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if level.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", level.Len())
	}

	nonEmpty := 0
	for i := 0; i < level.Len(); i++ {
		tube := level.Tube(i)
		if tube.IsEmpty() {
			continue
		}
		nonEmpty++
		if tube.Amount() > 4 {
			t.Errorf("tube %d depth %v exceeds 4", i, tube.Amount())
		}
	}
	if nonEmpty != 2 {
		t.Errorf("non-empty tubes = %d, want 2", nonEmpty)
	}

	totals := level.Totals()
	if totals[ColorRed] != 4 || totals[ColorBlue] != 4 {
		t.Errorf("totals = %v, want red 4 and blue 4", totals)
	}
	if level.GridFactor() != 2 {
		t.Errorf("GridFactor() = %d, want 2", level.GridFactor())
	}
}

func TestGenerateInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params GenParams
	}{
		{"empty palette", GenParams{Capacity: 4}},
		{"zero capacity", GenParams{Palette: Palette(2), Capacity: 0}},
		{"negative spare", GenParams{Palette: Palette(2), Capacity: 4, Spare: -1}},
		{"duplicate color", GenParams{Palette: []Color{ColorRed, ColorRed}, Capacity: 4}},
		{"unknown color", GenParams{Palette: []Color{ColorCount}, Capacity: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(0, tt.params)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Generate error = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestGeneratePrimeTubeCount(t *testing.T) {
	// Five colors plus two spares gives seven tubes: a single row.
	params := GenParams{Palette: Palette(5), Capacity: 4, Seed: 3, Spare: DefaultSpare}

	level, err := Generate(0, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if level.GridFactor() != 7 {
		t.Errorf("GridFactor() = %d, want 7", level.GridFactor())
	}
	if level.Rows() != 1 || level.Columns() != 7 {
		t.Errorf("grid = %dx%d, want 1x7", level.Rows(), level.Columns())
	}
}
