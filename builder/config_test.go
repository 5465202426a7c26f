// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	// 1. Default configuration: decimal IDs.
	if got := newBuilderConfig().idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}

	// 2. WithSymbolIDs overrides to letters.
	if got := newBuilderConfig(WithSymbolIDs()).idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}

	// 3. Later options win.
	cfg := newBuilderConfig(WithSymbolIDs(), WithSymbNumb("v"))
	if got := cfg.idFn(3); got != "v3" {
		t.Errorf("WithSymbNumb after WithSymbolIDs: expected \"v3\", got %q", got)
	}
}

func TestRandOptions(t *testing.T) {
	t.Parallel()

	if newBuilderConfig().rng != nil {
		t.Fatal("default rng must be nil")
	}

	a := newBuilderConfig(WithSeed(7)).rng.Int63()
	b := newBuilderConfig(WithSeed(7)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed: same seed produced %d and %d", a, b)
	}

	r := rand.New(rand.NewSource(1))
	if got := newBuilderConfig(WithRand(r)).rng; got != r {
		t.Error("WithRand: rng not attached")
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithIDScheme(nil)": func() { WithIDScheme(nil) },
		"WithRand(nil)":     func() { WithRand(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
