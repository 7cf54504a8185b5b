package actor

// Kind is the actor category, fixed at construction
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
)

// Invulnerability windows after a damage instance, in seconds
const (
	PlayerImmuneWindow = 0.5
	EnemyImmuneWindow  = 0.1
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// ImmuneWindow returns how long the kind ignores further damage after a hit
func (k Kind) ImmuneWindow() float64 {
	if k == KindPlayer {
		return PlayerImmuneWindow
	}
	return EnemyImmuneWindow
}

// Staggers reports whether a hit interrupts this kind
func (k Kind) Staggers() bool {
	return k == KindPlayer
}

// AIDriven reports whether the kind carries a behavior stack
func (k Kind) AIDriven() bool {
	return k == KindEnemy
}

// State is a set of concurrent status flags
type State uint8

const (
	StateDamaged State = 1 << iota
	StateStaggered
	StateDead
)

// Has reports whether every flag in f is set
func (s State) Has(f State) bool {
	return s&f == f
}

func (s State) String() string {
	if s == 0 {
		return "none"
	}
	out := ""
	for _, f := range []struct {
		flag State
		name string
	}{{StateDamaged, "damaged"}, {StateStaggered, "staggered"}, {StateDead, "dead"}} {
		if s&f.flag != 0 {
			if out != "" {
				out += "|"
			}
			out += f.name
		}
	}
	return out
}
