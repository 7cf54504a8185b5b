package core

// DamageType tags where a damage instance came from
type DamageType uint8

const (
	DmgGeneric DamageType = iota
	DmgWeaponMelee
	DmgWeaponRanged
)

// IsWeapon reports whether the damage type can knock its target back
func (d DamageType) IsWeapon() bool {
	return d == DmgWeaponMelee || d == DmgWeaponRanged
}

func (d DamageType) String() string {
	switch d {
	case DmgGeneric:
		return "generic"
	case DmgWeaponMelee:
		return "weapon_melee"
	case DmgWeaponRanged:
		return "weapon_ranged"
	default:
		return "unknown"
	}
}
