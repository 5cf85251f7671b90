package script

import (
	"strconv"
	"strings"

	"github.com/san-kum/dynarr/dynarray"
)

// Step is the outcome of one op.
type Step struct {
	Op       string `json:"op"`
	Result   string `json:"result,omitempty"`
	Err      string `json:"error,omitempty"`
	Count    int    `json:"count"`
	Capacity int    `json:"capacity"`
}

// Growth records one reallocation and the step that caused it.
type Growth struct {
	Step int `json:"step"`
	From int `json:"from"`
	To   int `json:"to"`
}

type Trace struct {
	Name            string
	InitialCapacity int
	Steps           []Step
	Growths         []Growth
	Final           []string
}

// Errors returns the number of steps that failed.
func (t *Trace) Errors() int {
	n := 0
	for _, s := range t.Steps {
		if s.Err != "" {
			n++
		}
	}
	return n
}

// Runner applies ops to a string array and keeps a trace of every step.
type Runner struct {
	arr   *dynarray.Array[string]
	trace *Trace
}

func NewRunner(name string, capacity int) (*Runner, error) {
	arr, err := dynarray.WithCapacity[string](capacity)
	if err != nil {
		return nil, err
	}
	r := &Runner{
		arr: arr,
		trace: &Trace{
			Name:            name,
			InitialCapacity: capacity,
		},
	}
	arr.SetObserver(r)
	return r, nil
}

func (r *Runner) OnGrow(from, to int) {
	r.trace.Growths = append(r.trace.Growths, Growth{
		Step: len(r.trace.Steps),
		From: from,
		To:   to,
	})
}

// Name returns the run name without touching the trace.
func (r *Runner) Name() string {
	return r.trace.Name
}

func (r *Runner) Array() *dynarray.Array[string] {
	return r.arr
}

// Apply runs op and records it. Op failures land in the returned step
// rather than aborting the run.
func (r *Runner) Apply(op Op) Step {
	result, err := r.exec(op)
	step := Step{
		Op:       op.String(),
		Result:   result,
		Count:    r.arr.Len(),
		Capacity: r.arr.Cap(),
	}
	if err != nil {
		step.Err = err.Error()
	}
	r.trace.Steps = append(r.trace.Steps, step)
	return step
}

func (r *Runner) exec(op Op) (string, error) {
	switch op.Kind {
	case KindAdd:
		return "", r.arr.Add(op.Arg)
	case KindRemove:
		removed, err := r.arr.Remove(op.Arg)
		return strconv.FormatBool(removed), err
	case KindIndexOf:
		i, err := r.arr.IndexOf(op.Arg)
		return strconv.Itoa(i), err
	case KindContains:
		ok, err := r.arr.Contains(op.Arg)
		return strconv.FormatBool(ok), err
	case KindFirst:
		return r.arr.First()
	case KindLast:
		return r.arr.Last()
	case KindAt:
		return r.arr.At(op.Index)
	case KindIter:
		var b strings.Builder
		for i, v := range r.arr.Enumerate() {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(v)
		}
		return "[" + b.String() + "]", nil
	case KindClear:
		r.arr.Clear()
		return "", nil
	case KindLen:
		return strconv.Itoa(r.arr.Len()), nil
	case KindCap:
		return strconv.Itoa(r.arr.Cap()), nil
	}
	return "", nil
}

// Trace returns the trace so far, with Final set to the live elements.
func (r *Runner) Trace() *Trace {
	r.trace.Final = r.arr.Values()
	return r.trace
}

// Run parses lines and applies them to a fresh array of the given capacity.
func Run(name string, capacity int, lines []string) (*Trace, error) {
	ops, err := ParseAll(lines)
	if err != nil {
		return nil, err
	}
	r, err := NewRunner(name, capacity)
	if err != nil {
		return nil, err
	}
	for _, op := range ops {
		r.Apply(op)
	}
	return r.Trace(), nil
}
