package monad

import (
	"strconv"
	"testing"
)

func square(x int) Identity[int] { return Of(x * x) }

func doubler(x int) Identity[int] { return Of(x * 2) }

func TestOf_Value(t *testing.T) {
	t.Parallel()

	m := Of(7)
	if m.Value() != 7 {
		t.Fatalf("expected 7, got %d", m.Value())
	}
}

func TestIdentityBind_SquareThenDouble(t *testing.T) {
	t.Parallel()

	out := Of(3).Bind(square).Bind(doubler)
	if out.Value() != 18 {
		t.Fatalf("expected 18, got %d", out.Value())
	}
}

func TestIdentityBind_AnySeed(t *testing.T) {
	t.Parallel()

	for _, s := range []int{-4, 0, 1, 2, 11} {
		if got := Of(s).Bind(square).Value(); got != s*s {
			t.Fatalf("seed %d: expected %d after square, got %d", s, s*s, got)
		}
		if got := Of(s).Bind(square).Bind(doubler).Value(); got != 2*s*s {
			t.Fatalf("seed %d: expected %d after double, got %d", s, 2*s*s, got)
		}
	}
}

func TestIdentityBind_ReturnsStepResultAsIs(t *testing.T) {
	t.Parallel()

	marker := Of(-1)
	out := Of(10).Bind(func(int) Identity[int] { return marker })
	if out != marker {
		t.Fatalf("expected the step's own wrapper, got %v", out.Value())
	}
}

func TestIdentityBind_DoesNotMutate(t *testing.T) {
	t.Parallel()

	seed := Of(3)
	_ = seed.Bind(square).Bind(doubler)
	if seed.Value() != 3 {
		t.Fatalf("expected seed to keep 3, got %d", seed.Value())
	}
}

func TestBind_ChangesType(t *testing.T) {
	t.Parallel()

	out := Bind(Of(42), Unit(strconv.Itoa))
	if out.Value() != "42" {
		t.Fatalf("expected \"42\", got %q", out.Value())
	}
}

func TestUnit(t *testing.T) {
	t.Parallel()

	step := Unit(func(x int) int { return x + 1 })
	if got := Of(1).Bind(step).Bind(step).Value(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
