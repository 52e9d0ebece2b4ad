package horn

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ichiban/horn/term"
)

// Clauses is a source of clauses for resolution.
type Clauses interface {
	// Candidates returns the clauses whose head has the same name and arity as goal, in the order of insertion.
	Candidates(goal term.Term) []term.Clause
}

// UnknownAction decides what happens to a goal without candidate clauses.
type UnknownAction int

const (
	// UnknownFail silently fails the goal.
	UnknownFail UnknownAction = iota
	// UnknownWarning logs a warning and fails the goal.
	UnknownWarning
)

// String returns the name of the action as written in flags and configuration.
func (a UnknownAction) String() string {
	switch a {
	case UnknownWarning:
		return "warning"
	default:
		return "fail"
	}
}

// Set parses the name of an action.
func (a *UnknownAction) Set(s string) error {
	switch s {
	case "fail":
		*a = UnknownFail
	case "warning":
		*a = UnknownWarning
	default:
		return &TypeError{ValidType: "unknown action", Culprit: term.Atom(s)}
	}
	return nil
}

// Type returns the type name shown in flag usage.
func (a *UnknownAction) Type() string {
	return "action"
}

// Engine solves queries by SLD resolution: goals are selected left to right and clauses are tried in the order
// of insertion with chronological backtracking. The zero value is a valid Engine.
type Engine struct {
	// OccursCheck makes unification fail instead of binding a variable to a term which contains it.
	OccursCheck bool

	// Unknown is what happens to goals without candidate clauses.
	Unknown UnknownAction

	// OnCall is called when a goal is selected.
	OnCall func(goal term.Term, s *term.Substitution)
	// OnExit is called when a goal is proven.
	OnExit func(goal term.Term, s *term.Substitution)
	// OnFail is called when no more clauses are left for a goal.
	OnFail func(goal term.Term, s *term.Substitution)
	// OnRedo is called when a goal is retried with the remaining clauses.
	OnRedo func(goal term.Term, s *term.Substitution)
	// OnUnknown is called when a goal has no candidate clauses.
	OnUnknown func(goal term.Term, s *term.Substitution)
}

// Solve starts a resolution of the conjunction of goals against db and returns the lazy sequence of its solutions.
// Each goal has to be a compound. Cancelling ctx stops the search with ctx's error.
// There's no depth limit: on a program with an infinite search space, such as a left-recursive rule, Next may never
// return unless ctx is cancelled.
func (e *Engine) Solve(ctx context.Context, db Clauses, goals ...term.Term) (*Solutions, error) {
	if len(goals) == 0 {
		return nil, &MalformedQueryError{}
	}
	var f *frame
	for i := len(goals) - 1; i >= 0; i-- {
		if _, ok := goals[i].(*term.Compound); !ok {
			return nil, &MalformedQueryError{Goal: goals[i]}
		}
		f = &frame{goal: goals[i], next: f}
	}

	vars := term.Variables(goals...)
	r := resolver{
		engine: e,
		ctx:    ctx,
		db:     db,
		goals:  f,
	}
	r.alloc.Reserve(vars...)
	return &Solutions{vars: vars, resolver: &r}, nil
}

// frame is an immutable list of goals to prove. Choice points share the tails.
type frame struct {
	goal  term.Term
	depth int

	// exit marks the end of the body of goal.
	exit bool

	next *frame
}

type choicePoint struct {
	frame        *frame
	subst        *term.Substitution
	alternatives []term.Clause
}

type resolver struct {
	engine *Engine
	ctx    context.Context
	db     Clauses
	alloc  term.Allocator

	goals   *frame
	subst   *term.Substitution
	choices []choicePoint

	started, done bool
	err           error
}

// next searches for the next solution. It returns false when the search space is exhausted or on error.
func (r *resolver) next() bool {
	if r.done {
		return false
	}
	if r.started && !r.backtrack() {
		return r.stop(r.ctx.Err())
	}
	r.started = true
	for {
		if err := r.ctx.Err(); err != nil {
			return r.stop(err)
		}

		f := r.goals
		if f == nil {
			return true
		}
		r.goals = f.next

		if f.exit {
			r.hook(r.engine.OnExit, f.goal, r.subst)
			continue
		}

		if r.call(f) {
			continue
		}

		if !r.backtrack() {
			return r.stop(r.ctx.Err())
		}
	}
}

func (r *resolver) stop(err error) bool {
	r.done = true
	r.err = err
	r.goals, r.subst, r.choices = nil, nil, nil
	return false
}

func (r *resolver) call(f *frame) bool {
	goal := r.subst.Resolve(f.goal)
	r.hook(r.engine.OnCall, goal, r.subst)

	cs := r.db.Candidates(goal)
	if len(cs) == 0 {
		r.unknown(goal)
		r.hook(r.engine.OnFail, goal, r.subst)
		return false
	}
	return r.try(f, r.subst, cs)
}

func (r *resolver) unknown(goal term.Term) {
	r.hook(r.engine.OnUnknown, goal, r.subst)
	if r.engine.Unknown != UnknownWarning {
		return
	}
	if pi, ok := term.PI(goal); ok {
		logrus.WithField("procedure", pi).Warn("unknown procedure")
		return
	}
	logrus.WithField("goal", goal).Warn("not callable")
}

// try proves f's goal with the first of cs whose head unifies with it under s.
// The rest of cs is left as a choice point.
func (r *resolver) try(f *frame, s *term.Substitution, cs []term.Clause) bool {
	goal := s.Resolve(f.goal)
	for i, c := range cs {
		c = c.Rename(&r.alloc)
		u, ok := r.unify(goal, c.Head, s)
		if !ok {
			continue
		}

		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.WithFields(logrus.Fields{
				"goal":    s.Apply(goal),
				"clause":  c,
				"depth":   f.depth,
				"choices": len(r.choices),
			}).Debug("resolve")
		}

		if rest := cs[i+1:]; len(rest) > 0 {
			r.choices = append(r.choices, choicePoint{
				frame:        f,
				subst:        s,
				alternatives: rest,
			})
		}
		r.subst = u
		r.goals = r.push(f, c.Body)
		if len(c.Body) == 0 {
			r.hook(r.engine.OnExit, goal, u)
		}
		return true
	}
	r.hook(r.engine.OnFail, goal, s)
	return false
}

// push replaces f's goal with body.
func (r *resolver) push(f *frame, body []term.Term) *frame {
	next := f.next
	if len(body) > 0 && r.engine.OnExit != nil {
		next = &frame{goal: f.goal, depth: f.depth, exit: true, next: next}
	}
	for i := len(body) - 1; i >= 0; i-- {
		next = &frame{goal: body[i], depth: f.depth + 1, next: next}
	}
	return next
}

// backtrack resumes the most recent choice point with alternatives left.
func (r *resolver) backtrack() bool {
	for len(r.choices) > 0 {
		if err := r.ctx.Err(); err != nil {
			return false
		}

		cp := r.choices[len(r.choices)-1]
		r.choices = r.choices[:len(r.choices)-1]

		r.hook(r.engine.OnRedo, cp.subst.Resolve(cp.frame.goal), cp.subst)
		if r.try(cp.frame, cp.subst, cp.alternatives) {
			return true
		}
	}
	return false
}

func (r *resolver) unify(x, y term.Term, s *term.Substitution) (*term.Substitution, bool) {
	if r.engine.OccursCheck {
		return term.UnifyWithOccursCheck(x, y, s)
	}
	return term.Unify(x, y, s)
}

func (r *resolver) hook(f func(term.Term, *term.Substitution), goal term.Term, s *term.Substitution) {
	if f == nil {
		return
	}
	f(goal, s)
}
