// internal/component/explosion.go
package component

// Explosion — растущая, затем сжимающаяся зона поражения.
// Пока Radius > 0, любая ракета внутри радиуса уничтожается.
type Explosion struct {
	Radius    float64
	MaxRadius float64
	Growing   bool
	Done      bool
}
