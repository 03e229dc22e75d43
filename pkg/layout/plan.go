package layout

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/matzehuels/meetlayout/pkg/errors"
)

// StepID names one region calculator.
type StepID string

const (
	StepNavWidth      StepID = "sidebar-nav-width"
	StepNavHeight     StepID = "sidebar-nav-height"
	StepNavBounds     StepID = "sidebar-nav-bounds"
	StepContentWidth  StepID = "sidebar-content-width"
	StepContentBounds StepID = "sidebar-content-bounds"
	StepMediaArea     StepID = "media-area"
	StepNavbar        StepID = "navbar"
	StepActionBar     StepID = "action-bar"
	StepCameraDock    StepID = "camera-dock"
	StepContentHeight StepID = "sidebar-content-height"
	StepMedia         StepID = "media"
)

// Step is one calculator and the steps whose results it reads.
type Step struct {
	ID    StepID
	Needs []StepID
	run   func(*pass)
}

// Plan is a validated execution order of calculators.
type Plan struct {
	steps []Step
	order []int
}

var defaultPlan = mustPlan(
	Step{ID: StepNavWidth, run: calcNavWidth},
	Step{ID: StepNavHeight, run: calcNavHeight},
	Step{ID: StepNavBounds, Needs: []StepID{StepNavWidth, StepNavHeight}, run: calcNavBounds},
	Step{ID: StepContentWidth, run: calcContentWidth},
	Step{ID: StepContentBounds, Needs: []StepID{StepNavWidth, StepContentWidth}, run: calcContentBounds},
	Step{ID: StepMediaArea, Needs: []StepID{StepNavWidth, StepContentWidth}, run: calcMediaArea},
	Step{ID: StepNavbar, Needs: []StepID{StepMediaArea}, run: calcNavbar},
	Step{ID: StepActionBar, Needs: []StepID{StepMediaArea}, run: calcActionBar},
	Step{ID: StepCameraDock, Needs: []StepID{StepMediaArea}, run: calcCameraDock},
	Step{ID: StepContentHeight, Needs: []StepID{StepContentWidth}, run: calcContentHeight},
	Step{ID: StepMedia, Needs: []StepID{StepMediaArea, StepCameraDock, StepNavWidth, StepContentWidth, StepContentHeight}, run: calcMedia},
)

// DefaultPlan returns the calculator plan every pass runs.
func DefaultPlan() *Plan { return defaultPlan }

func mustPlan(steps ...Step) *Plan {
	p, err := newPlan(steps...)
	if err != nil {
		panic(err)
	}
	return p
}

// newPlan checks that step ids are unique, every dependency exists and the
// graph is acyclic, then orders the steps topologically. Among ready steps
// the one declared first runs first.
func newPlan(steps ...Step) (*Plan, error) {
	index := make(map[StepID]int, len(steps))
	for i, s := range steps {
		if _, dup := index[s.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "duplicate step %q", s.ID)
		}
		index[s.ID] = i
	}

	indegree := make([]int, len(steps))
	dependents := make([][]int, len(steps))
	for i, s := range steps {
		for _, need := range s.Needs {
			j, ok := index[need]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidPlan, "step %q needs unknown step %q", s.ID, need)
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	order := make([]int, 0, len(steps))
	done := make([]bool, len(steps))
	for len(order) < len(steps) {
		next := -1
		for i := range steps {
			if !done[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, errors.New(errors.ErrCodeInvalidPlan, "calculator dependencies contain a cycle")
		}
		done[next] = true
		order = append(order, next)
		for _, k := range dependents[next] {
			indegree[k]--
		}
	}
	return &Plan{steps: steps, order: order}, nil
}

// Order returns the step ids in execution order.
func (p *Plan) Order() []StepID {
	ids := make([]StepID, len(p.order))
	for i, k := range p.order {
		ids[i] = p.steps[k].ID
	}
	return ids
}

// Steps returns the steps in declaration order.
func (p *Plan) Steps() []Step {
	out := make([]Step, len(p.steps))
	for i, s := range p.steps {
		out[i] = Step{ID: s.ID, Needs: slices.Clone(s.Needs)}
	}
	return out
}

func (p *Plan) execute(ps *pass) {
	for _, k := range p.order {
		p.steps[k].run(ps)
	}
}

// ToDOT renders the plan as a Graphviz digraph with an edge from each step
// to the steps that read it. Nodes are labelled with their execution rank.
func (p *Plan) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph plan {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")
	for rank, id := range p.Order() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, fmt.Sprintf("%d. %s", rank+1, id))
	}
	buf.WriteString("\n")
	for _, s := range p.steps {
		for _, need := range s.Needs {
			fmt.Fprintf(&buf, "  %q -> %q;\n", need, s.ID)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}
