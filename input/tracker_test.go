package input_test

import (
	"fmt"
	"testing"

	"github.com/plus3/alscript/input"
	"github.com/plus3/alscript/spatial"
	"github.com/stretchr/testify/assert"
)

type scriptedSource struct {
	reads   []string
	pos     spatial.Vector2
	holding bool
}

func (s *scriptedSource) PointerPosition() spatial.Vector2 {
	s.reads = append(s.reads, "position")
	return s.pos
}

func (s *scriptedSource) IsPointerSecondaryDown() bool {
	s.reads = append(s.reads, "secondary")
	return s.holding
}

func TestTrackerDragScenario(t *testing.T) {
	tr := input.NewTracker()

	steps := []struct {
		sample input.Sample
		delta  spatial.Vector2
		mode   input.Mode
	}{
		{input.Sample{Position: spatial.NewVector2(100, 100)}, spatial.NewVector2(0, 0), input.Reset},
		{input.Sample{Position: spatial.NewVector2(120, 110), Held: true}, spatial.NewVector2(20, 10), input.Accumulating},
		{input.Sample{Position: spatial.NewVector2(130, 90), Held: true}, spatial.NewVector2(10, -20), input.Accumulating},
		{input.Sample{Position: spatial.NewVector2(130, 90)}, spatial.NewVector2(0, 0), input.Reset},
	}

	for i, step := range steps {
		tr.Update(step.sample)
		assert.Equal(t, step.delta, tr.Delta(), "step %d", i)
		assert.Equal(t, step.mode, tr.Mode(), "step %d", i)
	}
	assert.Equal(t, uint64(4), tr.Updates())
}

func TestTrackerButtonUpAnchors(t *testing.T) {
	tr := input.NewTracker()
	tr.Update(input.Sample{Position: spatial.NewVector2(5, 6)})

	assert.Equal(t, spatial.NewVector2(5, 6), tr.Last())
	assert.Equal(t, spatial.NewVector2(5, 6), tr.Current())
	assert.True(t, tr.Delta().IsZero())
}

func TestTrackerFirstHeldFrameMeasuresFromPreviousCurrent(t *testing.T) {
	var tr input.Tracker
	tr.Update(input.Sample{Position: spatial.NewVector2(10, 10), Held: true})

	// the zero value's current position is the origin
	assert.Equal(t, spatial.NewVector2(10, 10), tr.Delta())
	assert.Equal(t, spatial.Vector2Zero, tr.Last())
}

func TestTrackerDeltaStableBetweenUpdates(t *testing.T) {
	tr := input.NewTracker()
	tr.Update(input.Sample{Position: spatial.NewVector2(0, 0)})
	tr.Update(input.Sample{Position: spatial.NewVector2(3, 4), Held: true})

	for range 3 {
		assert.Equal(t, spatial.NewVector2(3, 4), tr.Delta())
	}
}

func TestTrackerReset(t *testing.T) {
	tr := input.NewTracker()
	tr.Update(input.Sample{Position: spatial.NewVector2(1, 1)})
	tr.Update(input.Sample{Position: spatial.NewVector2(9, 9), Held: true})
	assert.Equal(t, input.Accumulating, tr.Mode())

	tr.Reset()

	assert.Equal(t, *input.NewTracker(), *tr)
	assert.Equal(t, input.Reset, tr.Mode())
	assert.Equal(t, uint64(0), tr.Updates())
}

func TestTrackerPollReadsPositionFirst(t *testing.T) {
	src := &scriptedSource{pos: spatial.NewVector2(40, 2), holding: true}
	tr := input.NewTracker()

	tr.Poll(src)

	assert.Equal(t, []string{"position", "secondary"}, src.reads)
	assert.Equal(t, spatial.NewVector2(40, 2), tr.Current())
	assert.Equal(t, input.Accumulating, tr.Mode())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Reset", input.Reset.String())
	assert.Equal(t, "Accumulating", input.Accumulating.String())
	assert.Equal(t, "Mode(?)", input.Mode(9).String())
}

func TestKeyLatch(t *testing.T) {
	var latch input.KeyLatch
	frames := []bool{false, true, true, false, true}
	want := []bool{false, true, false, false, true}

	for i, down := range frames {
		assert.Equal(t, want[i], latch.Pressed(down), "frame %d", i)
		assert.Equal(t, down, latch.Down())
	}
}

func ExampleTracker() {
	tr := input.NewTracker()
	tr.Update(input.Sample{Position: spatial.NewVector2(100, 100)})
	tr.Update(input.Sample{Position: spatial.NewVector2(120, 110), Held: true})

	fmt.Println(tr.Mode(), tr.Delta())
	// Output: Accumulating {20 10}
}
