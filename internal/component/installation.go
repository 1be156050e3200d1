package component

import "go-missile-defense/internal/types"

// City — город, цель вражеских ракет. Active переходит в false
// навсегда после близкого попадания.
type City struct {
	ID     types.EntityID
	X      float64
	Active bool
}

// Turret — турель игрока. Ammo не может стать отрицательным;
// турель без боезапаса остаётся активной целью, но стрелять не может.
type Turret struct {
	ID      types.EntityID
	X       float64
	Ammo    int
	MaxAmmo int
	Active  bool
}
