package systems

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/logger"
)

// DefaultDamageVariance is the uniform spread applied to the attack stat.
const DefaultDamageVariance = 0.2

// CalculateDamage computes one hit:
//
//	damage = floor(attack * (1 + U)) - defense, U ~ uniform[-variance, +variance]
//
// floored at 1 so combat always progresses no matter how high defense is.
// The only impurity is the draw from rng, which callers inject for
// reproducible runs.
func CalculateDamage(attack, defense int, variance float64, rng *rand.Rand) int {
	u := (rng.Float64()*2 - 1) * variance
	damage := int(math.Floor(float64(attack)*(1+u))) - defense
	if damage < 1 {
		damage = 1
	}
	return damage
}

// AttackResult describes one resolved combat round.
type AttackResult struct {
	Damage    int
	Destroyed bool
}

// ResolveAttack applies one round of damage from attacker to defender and
// reports whether the hit was lethal. Status transitions are the calling
// phase's job; this resolver only touches health.
func ResolveAttack(attacker domain.Stats, defender *domain.Stats, rng *rand.Rand) AttackResult {
	healthBefore := defender.Health
	damage := CalculateDamage(attacker.Attack, defender.Defense, DefaultDamageVariance, rng)
	destroyed := defender.TakeDamage(damage)

	logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"damage":        damage,
		"health_before": healthBefore,
		"health_after":  defender.Health,
		"destroyed":     destroyed,
	}).Debug("Attack resolved")

	return AttackResult{Damage: damage, Destroyed: destroyed}
}
