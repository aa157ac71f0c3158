package domain

// Status effect durations: -1 is permanent, >=1 counts remaining ticks,
// 0 means expired (dropped on the next decay pass).
const EffectPermanent = -1

// StatusEffect is a named timed modifier attached to an entity.
type StatusEffect struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// Permanent reports whether the effect never expires.
func (e StatusEffect) Permanent() bool {
	return e.Duration == EffectPermanent
}

// DecayEffects advances every effect by one tick and drops the expired ones.
// Permanent effects pass through untouched. The input slice is not modified.
func DecayEffects(effects []StatusEffect) []StatusEffect {
	if len(effects) == 0 {
		return nil
	}
	out := make([]StatusEffect, 0, len(effects))
	for _, e := range effects {
		if e.Permanent() {
			out = append(out, e)
			continue
		}
		e.Duration--
		if e.Duration > 0 {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
