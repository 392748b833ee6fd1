package zoomer

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	From   float64 `json:"from,omitempty"` // pinch start distance
	To     float64 `json:"to,omitempty"`   // pinch end distance
	Frames int     `json:"frames,omitempty"`
	Label  string  `json:"label,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"wheel": true, "dblclick": true, "drag": true, "pan": true, "pinch": true,
	"zoomIn": true, "zoomOut": true, "reset": true, "wait": true, "screenshot": true,
}

// TestRunner sequences injected gestures, commands and screenshots across
// frames for automated testing. Attach to an Input via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to an Input via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step method runs at the start of
// every Input.Update.
func (in *Input) SetTestRunner(runner *TestRunner) {
	in.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(in *Input) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(in.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "wheel":
		in.InjectWheel(st.DeltaY)
	case "dblclick":
		in.InjectDoubleClick(st.X, st.Y)
	case "drag":
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pan":
		in.InjectTouchPan(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		in.InjectPinch(st.X, st.Y, st.From, st.To, st.Frames)
	case "zoomIn":
		in.z.ZoomIn()
	case "zoomOut":
		in.z.ZoomOut()
	case "reset":
		in.z.Reset()
	case "screenshot":
		in.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(in.injectQueue) == 0 {
		r.done = true
	}
}
