package rendezvous

const (
	DefaultSafetyRadius = 0.5
	DefaultSpeedLimit   = 0.2
)

type SafetyMonitor struct {
	Radius     float64
	SpeedLimit float64
}

func NewSafetyMonitor() SafetyMonitor {
	return SafetyMonitor{Radius: DefaultSafetyRadius, SpeedLimit: DefaultSpeedLimit}
}

type Advisory struct {
	Displacement float64
	Speed        float64
}

func (a Advisory) Message() string {
	return "closing too fast at close range"
}

// Check reports whether the chase is inside Radius of the target while moving
// faster than SpeedLimit. The advisory is filled in either way.
func (m SafetyMonitor) Check(chase, target BodyState) (Advisory, bool) {
	adv := Advisory{
		Displacement: Separation(chase, target),
		Speed:        chase.Speed(),
	}
	return adv, adv.Displacement < m.Radius && adv.Speed > m.SpeedLimit
}
