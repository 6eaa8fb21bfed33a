package rendezvous

import "math"

// StandoffRadius is the distance of the standoff point from the target's origin.
const StandoffRadius = 0.25

type Point struct {
	X, Y float64
}

// Standoff returns the point StandoffRadius away from the target, rotated -90°
// from its heading.
func Standoff(target Pose) Point {
	return StandoffResolver{Radius: StandoffRadius}.Resolve(target)
}

type TargetResolver interface {
	Resolve(target Pose) Point
}

type StandoffResolver struct {
	Radius float64
}

func (r StandoffResolver) Resolve(target Pose) Point {
	angle := target.Theta - math.Pi/2
	return Point{
		X: target.X + r.Radius*math.Cos(angle),
		Y: target.Y + r.Radius*math.Sin(angle),
	}
}

// FixedPoint ignores the target and always returns the same world coordinate.
type FixedPoint Point

func (f FixedPoint) Resolve(Pose) Point {
	return Point(f)
}
