// Package rewrite implements the ordered text rule engine that converts a
// serialized stat-block fragment from source-system wording to ETF wording.
//
// The pipeline is order-sensitive: damage conversion must run before the
// ability-name pass retires the source ability tokens, and the weapon-damage
// override must consume weapon clauses before the general damage pass sees
// them. Each pass is a pure text -> text function.
package rewrite

// Pass is one rewrite stage.
type Pass struct {
	Name  string
	Apply func(string) string
}

// Engine applies a fixed sequence of passes.
type Engine struct {
	passes []Pass
}

// New creates the ETF conversion engine with its passes in required order.
func New() *Engine {
	return &Engine{passes: []Pass{
		{Name: "attack-to-dc", Apply: attackToDC},
		{Name: "weapon-damage", Apply: weaponDamage},
		{Name: "damage-to-hits", Apply: damageToHits},
		{Name: "ability-names", Apply: abilityNames},
		{Name: "terminology", Apply: terminology},
		{Name: "hit-points", Apply: restampHitPoints},
	}}
}

// Apply runs every pass in order over the fragment.
func (e *Engine) Apply(fragment string) string {
	for _, p := range e.passes {
		fragment = p.Apply(fragment)
	}
	return fragment
}

// Passes returns the pass names in execution order.
func (e *Engine) Passes() []string {
	names := make([]string, len(e.passes))
	for i, p := range e.passes {
		names[i] = p.Name
	}
	return names
}
