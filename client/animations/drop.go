// Package animations holds the frame-stepped motion used by the graphical client.
package animations

const (
	// DefaultGravity is the acceleration of a falling disc in pixels per update squared.
	DefaultGravity = 1.2
	// DefaultInitialVelocity is the speed of a disc as it is released.
	DefaultInitialVelocity = 2.0
)

// Drop is a disc falling from one y coordinate to another under constant acceleration.
// It is advanced once per update and stops exactly on its target.
type Drop struct {
	// from is the y coordinate the disc is released at.
	from float64
	// to is the y coordinate the disc comes to rest at.
	to float64
	// gravity is added to the velocity on every update.
	gravity float64
	// initialVelocity is the velocity at release.
	initialVelocity float64

	y        float64
	velocity float64
	// updateCount is the number of updates since release.
	updateCount int
	done        bool
}

type NewDropOptions struct {
	From    float64
	To      float64
	Gravity float64
	// InitialVelocity defaults to DefaultInitialVelocity. A negative value releases the disc from rest.
	InitialVelocity float64
}

func NewDrop(opts NewDropOptions) *Drop {
	gravity := opts.Gravity
	if gravity <= 0 {
		gravity = DefaultGravity
	}
	initialVelocity := opts.InitialVelocity
	if initialVelocity < 0 {
		initialVelocity = 0
	} else if initialVelocity == 0 {
		initialVelocity = DefaultInitialVelocity
	}
	d := &Drop{
		from:            opts.From,
		to:              opts.To,
		gravity:         gravity,
		initialVelocity: initialVelocity,
	}
	d.Reset()
	return d
}

// Update advances the disc by one frame.
func (d *Drop) Update() {
	if d.done {
		return
	}
	d.updateCount++
	d.velocity += d.gravity
	d.y += d.velocity
	if d.y >= d.to {
		d.y = d.to
		d.done = true
	}
}

// Reset releases the disc again from its starting point.
func (d *Drop) Reset() {
	d.y = d.from
	d.velocity = d.initialVelocity
	d.updateCount = 0
	d.done = d.from >= d.to
	if d.done {
		d.y = d.to
	}
}

func (d *Drop) Y() float64 {
	return d.y
}

func (d *Drop) Done() bool {
	return d.done
}

// Frames is the number of updates applied since release.
func (d *Drop) Frames() int {
	return d.updateCount
}

// Progress is the fraction of the distance already covered, in [0, 1].
func (d *Drop) Progress() float64 {
	if d.done || d.to <= d.from {
		return 1
	}
	return (d.y - d.from) / (d.to - d.from)
}
