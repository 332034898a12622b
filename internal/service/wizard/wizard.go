// Package wizard drives the step sequence of the ad generator.
package wizard

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned by Advance for anything other than next or back.
var ErrUnknownAction = errors.New("unknown wizard action")

// Actions accepted by Advance.
const (
	ActionNext = "next"
	ActionBack = "back"
)

// Step is one screen of the wizard.
type Step struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var steps = []Step{
	{ID: "template", Label: "Choose Template"},
	{ID: "assets", Label: "Select Assets"},
	{ID: "customize", Label: "Customize Design"},
	{ID: "preview", Label: "Preview & Export"},
}

// Steps returns the wizard steps in order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Wizard tracks the current step. The zero value starts at the first step.
type Wizard struct {
	current int
}

// Current returns the index of the current step.
func (w *Wizard) Current() int { return w.current }

// Step returns the current step.
func (w *Wizard) Step() Step { return steps[w.current] }

// Next moves forward, staying on the last step.
func (w *Wizard) Next() {
	w.current = clamp(w.current + 1)
}

// Back moves backward, staying on the first step.
func (w *Wizard) Back() {
	w.current = clamp(w.current - 1)
}

// IsFirst reports whether the back action is a no-op.
func (w *Wizard) IsFirst() bool { return w.current == 0 }

// IsLast reports whether the wizard is on its final step.
func (w *Wizard) IsLast() bool { return w.current == len(steps)-1 }

// State is the position of a wizard after a transition.
type State struct {
	Index   int  `json:"index"`
	Step    Step `json:"step"`
	IsFirst bool `json:"is_first"`
	IsLast  bool `json:"is_last"`
}

// Advance applies action to step and returns the resulting state.
func Advance(step int, action string) (State, error) {
	w := Wizard{current: clamp(step)}
	switch action {
	case ActionNext:
		w.Next()
	case ActionBack:
		w.Back()
	default:
		return State{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return w.State(), nil
}

// State snapshots the wizard.
func (w *Wizard) State() State {
	return State{
		Index:   w.current,
		Step:    w.Step(),
		IsFirst: w.IsFirst(),
		IsLast:  w.IsLast(),
	}
}

func clamp(step int) int {
	if step < 0 {
		return 0
	}
	if step > len(steps)-1 {
		return len(steps) - 1
	}
	return step
}
