/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tdc

import (
	"fmt"
	"time"
)

// Phase identifies one stage of a compression or decompression call.
// The names mirror tudocomp's StatPhase labels so a reader familiar
// with the original tool recognizes the boundaries.
type Phase int

const (
	PhaseConstructTextDS Phase = iota
	PhaseFactorize
	PhaseSortFactors
	PhaseFlattenFactors
	PhaseEncodeFactors
	PhaseDecodeFactors
)

func (p Phase) String() string {
	switch p {
	case PhaseConstructTextDS:
		return "Construct Text DS"
	case PhaseFactorize:
		return "Factorize"
	case PhaseSortFactors:
		return "Sort Factors"
	case PhaseFlattenFactors:
		return "Flatten Factors"
	case PhaseEncodeFactors:
		return "Encode Factors"
	case PhaseDecodeFactors:
		return "Decode Factors"
	default:
		return "Unknown"
	}
}

// Event reports the start or end of a Phase, along with how many
// bytes/factors it produced.
type Event struct {
	phase     Phase
	start     bool
	count     int64
	eventTime time.Time
	msg       string
}

// NewPhaseEvent creates an Event marking the start or end of a phase.
func NewPhaseEvent(phase Phase, start bool, count int64) *Event {
	return &Event{phase: phase, start: start, count: count, eventTime: time.Now()}
}

// NewEventFromString creates an Event that only wraps a free-form message.
func NewEventFromString(phase Phase, msg string) *Event {
	return &Event{phase: phase, msg: msg, eventTime: time.Now()}
}

// Phase returns the phase this event belongs to.
func (this *Event) Phase() Phase {
	return this.phase
}

// Start reports whether this event marks the beginning (true) or the
// end (false) of the phase.
func (this *Event) Start() bool {
	return this.start
}

// Count returns the phase-specific count (bytes read, factors emitted, ...).
func (this *Event) Count() int64 {
	return this.count
}

// Time returns when the event was created.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// String returns a human readable representation of the event.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	edge := "end"
	if this.start {
		edge = "start"
	}

	return fmt.Sprintf("{ \"phase\":\"%s\", \"edge\":\"%s\", \"count\":%d, \"time\":%d }",
		this.phase, edge, this.count, this.eventTime.UnixNano()/1000000)
}

// Listener is implemented by event processors (e.g. the CLI's verbose
// logger or a benchmark harness collecting phase timings).
type Listener interface {
	// ProcessEvent is called whenever a Listener receives an event.
	ProcessEvent(evt *Event)
}

// WrapPhase runs fn, notifying every listener at its start and end.
// It mirrors tudocomp's StatPhase::wrap: the phase is always closed,
// even if fn panics, the count for the end event is whatever fn returns.
func WrapPhase(listeners []Listener, phase Phase, fn func() (int64, error)) (count int64, err error) {
	notify(listeners, NewPhaseEvent(phase, true, 0))
	defer func() {
		notify(listeners, NewPhaseEvent(phase, false, count))
	}()
	return fn()
}

func notify(listeners []Listener, evt *Event) {
	for _, l := range listeners {
		if l != nil {
			l.ProcessEvent(evt)
		}
	}
}
