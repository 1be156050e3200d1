// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TickRate     = 60
	TickDuration = 1.0 / float64(TickRate) // секунды на один тик симуляции

	GroundOffset = 20.0 // земля всегда на высоте height - 20
	MuzzleOffset = 50.0 // ракеты игрока стартуют чуть выше турели

	NumCities     = 6
	NumTurrets    = 3
	TurretMaxAmmo = 10

	// Спавн вражеских ракет: интервал сокращается с ростом счёта
	BaseSpawnInterval = 2.0 // секунды
	MinSpawnInterval  = 0.5
	SpawnIntervalStep = 0.2 // минус 0.2с за каждые 100 очков

	RocketBaseSpeed  = 0.8 // единиц за тик
	RocketSpeedScale = 500.0
	MissileSpeed     = 6.0 // единиц за тик

	// Взрывы
	RocketBlastRadius   = 30.0
	MissileBlastRadius  = 80.0
	ExplosionGrowthRate = 1.5  // прирост радиуса за тик
	ExplosionDecayRate  = 0.8  // спад радиуса за тик
	ImpactProximity     = 30.0 // зона поражения построек при ударе о землю

	ScorePerRocket = 20
	WinScore       = 1000

	CityHalfWidth   = 16.0
	TurretHalfWidth = 12.0
	RocketRadius    = 3.0
	MissileRadius   = 2.5
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GroundColor     = color.RGBA{70, 100, 120, 220}
	CityColor       = color.RGBA{50, 205, 50, 255}
	RuinColor       = color.RGBA{60, 60, 70, 255}
	TurretColor     = color.RGBA{70, 130, 180, 255}
	MissileColor    = color.RGBA{240, 240, 240, 255}
	ExplosionColor  = color.RGBA{255, 160, 30, 160}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	WonColor        = color.RGBA{50, 255, 50, 255}
	LostColor       = color.RGBA{220, 60, 60, 255}
	RocketColors    = []color.RGBA{
		{255, 50, 50, 255},  // Red
		{255, 120, 40, 255}, // Orange
		{255, 215, 0, 255},  // Gold
		{180, 50, 230, 255}, // Purple
	}
)
