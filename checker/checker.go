package checker

import (
	"github.com/katalvlaran/mcsp/ba"
	"github.com/katalvlaran/mcsp/dra"
	"github.com/katalvlaran/mcsp/formula"
	"github.com/katalvlaran/mcsp/gba"
	"github.com/katalvlaran/mcsp/mcerr"
	"github.com/katalvlaran/mcsp/mdp"
	"github.com/katalvlaran/mcsp/pctl"
	"github.com/katalvlaran/mcsp/product"
	"github.com/katalvlaran/mcsp/vwaa"
)

// LogicType selects which concrete syntax a formula text is parsed as.
type LogicType int

const (
	PCTLLogic LogicType = iota
	LTLLogic
)

// Result is the outcome of evaluating a top-level formula against an MDP.
type Result struct {
	// States is the set of original-MDP state nodes satisfying the formula.
	States map[mdp.StateID]bool
	// Satisfied reports whether the query's initial state is in States.
	Satisfied bool
}

// Evaluate drives the pipeline named by logic against m (§4.8, §6).
func Evaluate(logic LogicType, formulaText string, m *mdp.MDP, ap mdp.APMap, initial mdp.StateID, maxError float64, precision int) (Result, error) {
	if err := mdp.Validate(m, ap); err != nil {
		return Result{}, err
	}
	if !m.HasState(initial) {
		return Result{}, mcerr.New(mcerr.GraphInvariantViolation, "initial state %q is not a state node of the MDP", initial)
	}

	text, err := formula.FindFormula(formulaText)
	if err != nil {
		return Result{}, err
	}

	switch logic {
	case PCTLLogic:
		return evaluatePCTL(text, m, ap, initial, maxError)
	case LTLLogic:
		return evaluateLTL(text, m, ap, initial, maxError, precision)
	default:
		return Result{}, mcerr.New(mcerr.ParseError, "unknown logic type %d", logic)
	}
}

func evaluatePCTL(text string, m *mdp.MDP, ap mdp.APMap, initial mdp.StateID, maxError float64) (Result, error) {
	f, err := formula.ParsePCTL(text)
	if err != nil {
		return Result{}, err
	}
	eng, err := pctl.New(m, ap, maxError)
	if err != nil {
		return Result{}, err
	}
	states, err := eng.Evaluate(f)
	if err != nil {
		return Result{}, err
	}
	return Result{States: states, Satisfied: states[initial]}, nil
}

// evaluateLTL compiles the LTL path formula through the automata chain,
// builds the product with m starting at initial, reduces the query to
// accepting-end-component reachability on an adapter MDP, and projects the
// adapter's result back onto m's states (§4.7, §4.8).
func evaluateLTL(text string, m *mdp.MDP, ap mdp.APMap, initial mdp.StateID, maxError float64, precision int) (Result, error) {
	ltlFormula, comp, bound, err := formula.ParseLTLQuery(text)
	if err != nil {
		return Result{}, err
	}
	if bound < 0 || bound > 1 {
		return Result{}, mcerr.New(mcerr.InvalidProbabilityBound, "probability bound %v outside [0,1]", bound)
	}

	v := vwaa.Build(ltlFormula)
	g := gba.Build(v)
	b := ba.Build(g)
	d := dra.Build(b)

	prod := product.Build(m, ap, d, initial)
	aec := prod.AEC(d.Pairs)

	adapterMDP, adapterAP, adapterInitial, renamed, err := prod.Adapter(aec, precision)
	if err != nil {
		return Result{}, err
	}

	eng, err := pctl.New(adapterMDP, adapterAP, maxError)
	if err != nil {
		return Result{}, err
	}
	query := formula.PCTLProb{
		Path:       formula.PCTLUntil{Left: formula.PCTLTrue{}, Right: formula.PCTLProp{Name: "aec"}},
		Comparator: comp,
		Bound:      bound,
	}
	adapterResult, err := eng.Evaluate(query)
	if err != nil {
		return Result{}, err
	}

	states := make(map[mdp.StateID]bool, len(m.States()))
	for _, s := range m.States() {
		states[s] = false
	}
	for _, ps := range prod.States() {
		if adapterResult[renamed[ps]] {
			states[prod.MDPState(ps)] = true
		}
	}

	return Result{States: states, Satisfied: adapterResult[adapterInitial]}, nil
}
