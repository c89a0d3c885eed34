// Package combat is the side game of the combat level: enemies wander the
// field and steal plain notes they touch, and a guardian shoots them down.
package combat

import (
	"math"
	"math/rand"

	"git.lost.host/meutraa/shadowdance/internal/game"
)

const (
	Width  = 1024
	Height = 768

	SpawnFrequency = 600 // frames between enemies

	enemyRange = 104
	enemyMinX  = 100
	enemyMaxX  = 900
	enemyMinY  = 100
	enemyMaxY  = 500
	enemySpeed = 1

	projectileRange = 62
	projectileSpeed = 6

	GuardianX = 800
	GuardianY = 600
)

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

type Enemy struct {
	X, Y      float64
	direction float64
	inactive  bool
}

func newEnemy(rng *rand.Rand) *Enemy {
	e := &Enemy{
		X:         float64(rng.Intn(enemyMaxX-enemyMinX+1) + enemyMinX),
		Y:         float64(rng.Intn(enemyMaxY-enemyMinY+1) + enemyMinY),
		direction: 1,
	}
	if rng.Intn(2) == 0 {
		e.direction = -1
	}
	return e
}

// Bounces between the field edges
func (e *Enemy) update() {
	if e.X <= enemyMinX {
		e.direction = 1
	} else if e.X >= enemyMaxX {
		e.direction = -1
	}
	e.X += e.direction * enemySpeed
}

func (e *Enemy) Alive() bool { return !e.inactive }

func (e *Enemy) collides(x, y float64) bool {
	return distance(e.X, e.Y, x, y) <= enemyRange
}

type Projectile struct {
	X, Y     float64
	vx, vy   float64
	Angle    float64
	inactive bool
}

func newProjectile(x, y, targetX, targetY float64) *Projectile {
	dx, dy := targetX-x, targetY-y
	length := math.Hypot(dx, dy)
	p := &Projectile{X: x, Y: y, Angle: math.Atan2(dy, dx)}
	if length > 0 {
		p.vx = dx / length * projectileSpeed
		p.vy = dy / length * projectileSpeed
	}
	return p
}

func (p *Projectile) update() {
	p.X += p.vx
	p.Y += p.vy
	if p.X < 0 || p.X > Width || p.Y < 0 || p.Y > Height {
		p.inactive = true
	}
}

func (p *Projectile) collides(x, y float64) bool {
	return distance(p.X, p.Y, x, y) <= projectileRange
}

// Field runs the side game. It satisfies game.Peripheral.
type Field struct {
	rng         *rand.Rand
	fire        game.Key
	enemies     []*Enemy
	projectiles []*Projectile
	stolen      int
}

func NewField(rng *rand.Rand, fire game.Key) *Field {
	return &Field{rng: rng, fire: fire}
}

func (f *Field) Enemies() []*Enemy { return f.enemies }
func (f *Field) Projectiles() []*Projectile { return f.projectiles }

// Stolen counts the notes enemies have taken
func (f *Field) Stolen() int { return f.stolen }

func (f *Field) closestEnemy() *Enemy {
	var closest *Enemy
	best := math.MaxFloat64
	for _, e := range f.enemies {
		if d := distance(GuardianX, GuardianY, e.X, e.Y); d < best {
			closest, best = e, d
		}
	}
	return closest
}

func (f *Field) Update(frame int, input game.Sample, targets []game.Target) {
	if frame%SpawnFrequency == 0 {
		f.enemies = append(f.enemies, newEnemy(f.rng))
	}

	enemies := f.enemies[:0]
	for _, e := range f.enemies {
		if e.inactive {
			continue
		}
		e.update()
		for _, t := range targets {
			if !t.Completed() && e.collides(float64(t.X), float64(t.Y)) {
				t.Deactivate()
				f.stolen++
			}
		}
		enemies = append(enemies, e)
	}
	f.enemies = enemies

	if input.WasPressed(f.fire) {
		if e := f.closestEnemy(); nil != e {
			f.projectiles = append(f.projectiles, newProjectile(GuardianX, GuardianY, e.X, e.Y))
		}
	}

	projectiles := f.projectiles[:0]
	for _, p := range f.projectiles {
		p.update()
		if p.inactive {
			continue
		}
		for _, e := range f.enemies {
			if p.collides(e.X, e.Y) {
				e.inactive = true
			}
		}
		projectiles = append(projectiles, p)
	}
	f.projectiles = projectiles
}
