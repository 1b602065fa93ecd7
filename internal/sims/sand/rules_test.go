package sand

import "testing"

func TestSandSettlesOnStoneFloor(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	stoneFloor(w)
	put(w, 2, 5, Sand)

	for tick := 1; tick <= 6; tick++ {
		w.Tick()
		if k, _, ok := w.CellAt(2+tick, 5); !ok || k != Sand {
			t.Fatalf("tick %d: expected sand at (%d,5), got %v ok=%v", tick, 2+tick, k, ok)
		}
	}
	for tick := 0; tick < 20; tick++ {
		w.Tick()
	}
	if got := find(w, Sand); len(got) != 1 || got[0] != [2]int{8, 5} {
		t.Fatalf("expected sand to rest at (8,5), got %v", got)
	}
}

func TestStoneNeverMoves(t *testing.T) {
	w := newTestWorld(t, 12, 12)
	stoneFloor(w)
	stone := *put(w, 4, 6, Stone)
	w.cfg.Params.PlaceChance = 1
	w.Place(1, 6, 2, Sand)
	w.Place(6, 3, 2, Water)
	w.Place(9, 8, 1, Fire)

	for tick := 0; tick < 100; tick++ {
		w.Tick()
		k, c, ok := w.CellAt(4, 6)
		if !ok || k != Stone || c != stone.Color {
			t.Fatalf("tick %d: stone at (4,6) changed to %v %v ok=%v", tick, k, c, ok)
		}
	}
}

func TestSandSinksThroughWater(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	stoneFloor(w)
	put(w, 8, 4, Stone)
	put(w, 8, 6, Stone)
	put(w, 8, 5, Water)
	put(w, 7, 5, Sand)

	w.Tick()

	if k, _, _ := w.CellAt(8, 5); k != Sand {
		t.Fatalf("expected sand at (8,5) after one tick, got %v", k)
	}
	if k, _, _ := w.CellAt(7, 5); k != Water {
		t.Fatalf("expected water displaced to (7,5), got %v", k)
	}
	if got := w.Count(); got != 14 {
		t.Fatalf("expected 14 particles, got %d", got)
	}
}

func TestSandSlidesDiagonally(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	stoneFloor(w)
	put(w, 8, 5, Sand)
	put(w, 7, 5, Sand)

	w.Tick()

	if k, _, _ := w.CellAt(8, 5); k != Sand {
		t.Fatalf("supported sand moved: got %v at (8,5)", k)
	}
	left, _, _ := w.CellAt(8, 4)
	right, _, _ := w.CellAt(8, 6)
	if (left == Sand) == (right == Sand) {
		t.Fatalf("expected exactly one diagonal landing, left=%v right=%v", left, right)
	}
	if !w.IsEmpty(7, 5) {
		t.Fatal("expected (7,5) to be vacated")
	}
}

func TestWaterColumnFallsThenSpreads(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	stoneFloor(w)
	put(w, 0, 5, Water)

	for tick := 0; tick < 8; tick++ {
		w.Tick()
	}
	if got := find(w, Water); len(got) != 1 || got[0] != [2]int{8, 5} {
		t.Fatalf("after 8 ticks expected water at (8,5), got %v", got)
	}

	w.Tick()
	got := find(w, Water)
	if len(got) != 1 || got[0][0] != 8 || (got[0][1] != 4 && got[0][1] != 6) {
		t.Fatalf("after 9 ticks expected water to spread along row 8, got %v", got)
	}
}

func TestWaterPrefersDiagonalOverSpread(t *testing.T) {
	w := newTestWorld(t, 6, 6)
	stoneFloor(w)
	put(w, 4, 2, Stone)
	put(w, 3, 2, Water)

	w.Tick()

	got := find(w, Water)
	if len(got) != 1 || got[0][0] != 4 {
		t.Fatalf("expected water to drop diagonally into row 4, got %v", got)
	}
}

func TestFireLifetimeBound(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := newTestWorld(t, 20, 9)
		w.Reset(seed)
		fire := put(w, 15, 4, Fire)
		const life = 7
		fire.Life = life

		for tick := 1; tick < life; tick++ {
			w.Tick()
			if n := len(find(w, Fire)); n != 1 {
				t.Fatalf("seed %d tick %d: expected fire to persist, found %d", seed, tick, n)
			}
		}
		w.Tick()
		if n := len(find(w, Fire)); n != 0 {
			t.Fatalf("seed %d: fire outlived its lifetime of %d ticks", seed, life)
		}
		if n := w.Count(); n > 1 {
			t.Fatalf("seed %d: decay produced %d particles", seed, n)
		}
	}
}

func TestFireDecayOutcome(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	w.cfg.Params.FireSmokeChance = 1
	put(w, 2, 2, Fire).Life = 1
	w.Tick()
	if smoke := find(w, Smoke); len(smoke) != 1 || smoke[0] != [2]int{2, 2} {
		t.Fatalf("expected smoke in place of fire, got %v", smoke)
	}
	_, c, _ := w.CellAt(2, 2)
	if c.R != c.G || c.G != c.B || c.R < 80 || c.R > 120 {
		t.Fatalf("converted smoke has unexpected colour %v", c)
	}

	w = newTestWorld(t, 5, 5)
	w.cfg.Params.FireSmokeChance = 0
	put(w, 2, 2, Fire).Life = 1
	w.Tick()
	if n := w.Count(); n != 0 {
		t.Fatalf("expected fire to vanish, count=%d", n)
	}
}

func TestFireOnlyRises(t *testing.T) {
	w := newTestWorld(t, 12, 7)
	w.cfg.Params.FireRiseChance = 1
	put(w, 10, 3, Fire).Life = 1000

	for tick := 1; tick <= 10; tick++ {
		w.Tick()
		got := find(w, Fire)
		if len(got) != 1 || got[0][0] != 10-tick {
			t.Fatalf("tick %d: expected fire in row %d, got %v", tick, 10-tick, got)
		}
	}
	w.Tick()
	if got := find(w, Fire); len(got) != 1 || got[0][0] != 0 {
		t.Fatalf("fire left the grid or sank: %v", got)
	}
}

func TestFireDoesNotIgnite(t *testing.T) {
	w := newTestWorld(t, 8, 8)
	stoneFloor(w)
	w.cfg.Params.PlaceChance = 1
	w.Place(5, 4, 2, Sand)
	put(w, 1, 1, Fire).Life = 500
	sand := len(find(w, Sand))

	for tick := 0; tick < 30; tick++ {
		w.Tick()
	}
	if got := len(find(w, Sand)); got != sand {
		t.Fatalf("sand count changed from %d to %d next to fire", sand, got)
	}
	if got := len(find(w, Fire)); got != 1 {
		t.Fatalf("fire spread: %d fire particles", got)
	}
}

func TestSmokeFadesToFloorAndVanishes(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	w.cfg.Params.SmokeRiseChance = 0
	smoke := put(w, 2, 2, Smoke)
	smoke.Life = 4
	smoke.Color = rgb(42, 42, 42)

	want := []uint8{41, 40, 40}
	for i, gray := range want {
		w.Tick()
		_, c, ok := w.CellAt(2, 2)
		if !ok || c.R != gray || c.G != gray || c.B != gray {
			t.Fatalf("tick %d: expected gray %d, got %v ok=%v", i+1, gray, c, ok)
		}
	}
	w.Tick()
	if w.Count() != 0 {
		t.Fatal("expected smoke to vanish when its lifetime ends")
	}
}

func TestSmokeNeverBrightensBelowFloor(t *testing.T) {
	cfg := FromMap(map[string]string{"rows": "4", "cols": "4", "smoke_floor": "200", "smoke_rise_chance": "0"})
	w := NewWithConfig(cfg)
	smoke := put(w, 1, 1, Smoke)
	smoke.Life = 10
	smoke.Color = rgb(116, 116, 116)

	for tick := 1; tick <= 3; tick++ {
		w.Tick()
		_, c, ok := w.CellAt(1, 1)
		if !ok || c.R != 116 || c.G != 116 || c.B != 116 {
			t.Fatalf("tick %d: smoke below the floor changed to %v ok=%v", tick, c, ok)
		}
	}
}

func TestSandSlidesDiagonallyIntoWater(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	stoneFloor(w)
	put(w, 8, 3, Stone)
	put(w, 8, 5, Stone)
	put(w, 8, 7, Stone)
	put(w, 8, 4, Water)
	put(w, 8, 6, Water)
	put(w, 7, 5, Sand)
	before := w.Count()

	w.Tick()

	left, _, _ := w.CellAt(8, 4)
	right, _, _ := w.CellAt(8, 6)
	if (left == Sand) == (right == Sand) {
		t.Fatalf("expected sand in exactly one diagonal, left=%v right=%v", left, right)
	}
	if k, _, _ := w.CellAt(7, 5); k != Water {
		t.Fatalf("expected water displaced to (7,5), got %v", k)
	}
	if got := len(find(w, Water)); got != 2 {
		t.Fatalf("expected 2 water particles, got %d", got)
	}
	if got := w.Count(); got != before {
		t.Fatalf("count changed from %d to %d", before, got)
	}
}
