// internal/event/types.go
package event

const (
	RocketDestroyed       EventType = "RocketDestroyed"       // Ракета сбита взрывом
	RocketLanded          EventType = "RocketLanded"          // Ракета достигла земли
	MissileDetonated      EventType = "MissileDetonated"      // Ракета игрока сдетонировала
	InstallationDestroyed EventType = "InstallationDestroyed" // Город или турель уничтожены
	MatchEnded            EventType = "MatchEnded"            // Матч завершён (WON/LOST)
)
