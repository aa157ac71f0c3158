package domain

// RuleCondition selects when a behavior rule triggers.
type RuleCondition string

const (
	// CondAlways triggers unconditionally (useful as the last rule).
	CondAlways RuleCondition = "always"
	// CondEnemyVisible triggers when a live revealed malware is inside the
	// process's line of sight radius.
	CondEnemyVisible RuleCondition = "enemy-visible"
	// CondOnCache triggers while the process stands on a data cache.
	CondOnCache RuleCondition = "on-cache"
	// CondIdle triggers when the process has no path to walk.
	CondIdle RuleCondition = "idle"
	// CondEveryTicks triggers when tick is a multiple of Interval.
	CondEveryTicks RuleCondition = "every-ticks"
)

// RuleTarget selects where a triggered rule points the process.
type RuleTarget string

const (
	// TargetExit routes to the nearest configured exit point.
	TargetExit RuleTarget = "exit"
	// TargetNearestCache routes to the nearest remaining data cache.
	TargetNearestCache RuleTarget = "nearest-cache"
	// TargetFixed routes to the rule's explicit destination.
	TargetFixed RuleTarget = "fixed"
	// TargetHold cancels movement: the process stays where it is.
	TargetHold RuleTarget = "hold"
)

// BehaviorRule is one entry of a process's ordered rule list. The matcher
// walks the list top-down and the first matching rule wins. A triggered rule
// may only result in a new movement target; it never touches stats or status
// directly.
type BehaviorRule struct {
	Name      string        `json:"name"`
	Condition RuleCondition `json:"condition"`
	Interval  int           `json:"interval,omitempty"` // for every-ticks
	Target    RuleTarget    `json:"target"`
	Dest      *GridPosition `json:"dest,omitempty"` // for fixed
}
