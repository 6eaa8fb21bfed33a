package rendezvous

import "time"

// Reporter receives diagnostics from a Session. Implementations must not block.
type Reporter interface {
	Initialized(id Identity, body BodyConfig)
	Tick(r TickReport)
	Warn(tick int, adv Advisory)
}

type TickReport struct {
	Tick         int
	Elapsed      time.Duration
	Mode         Mode
	Command      Command
	Displacement float64
	Speed        float64
	Heading      float64
}

type nopReporter struct{}

func (nopReporter) Initialized(Identity, BodyConfig) {}
func (nopReporter) Tick(TickReport)                  {}
func (nopReporter) Warn(int, Advisory)               {}

type Option func(*Session)

func WithReporter(r Reporter) Option {
	return func(s *Session) {
		if r != nil {
			s.reporter = r
		}
	}
}

func WithIdentity(id Identity) Option {
	return func(s *Session) { s.identity = id }
}

func WithSafetyMonitor(m SafetyMonitor) Option {
	return func(s *Session) { s.safety = m }
}

type Session struct {
	strategy Strategy
	body     BodyConfig
	identity Identity
	safety   SafetyMonitor
	reporter Reporter

	acc   Accumulator
	ticks int
}

func NewSession(strategy Strategy, opts ...Option) *Session {
	s := &Session{
		strategy: strategy,
		body:     DefaultBody(),
		identity: DefaultIdentity(),
		safety:   NewSafetyMonitor(),
		reporter: nopReporter{},
		acc:      Accumulator{Bound: strategy.IntegralBound},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Strategy() Strategy { return s.strategy }

// Init sets the static body parameters, clears the controller state and
// returns the session identity.
func (s *Session) Init(body BodyConfig) Identity {
	s.body = body
	s.Reset()
	s.reporter.Initialized(s.identity, s.body)
	return s.identity
}

// Run evaluates one tick. Non-finite inputs are rejected before any state is
// touched.
func (s *Session) Run(tick SystemTick, chase, target BodyState) (Command, error) {
	if !chase.IsValid() || !target.IsValid() {
		return Command{}, ErrNonFiniteState
	}
	s.ticks++

	standoff := s.strategy.Resolver.Resolve(target.Pose)
	mode := s.strategy.Selector.Select(chase, target)
	gains := s.strategy.Profile.Gains(s.body.Mass)

	s.acc.Step(chase.Pose.X-standoff.X, chase.Pose.Y-standoff.Y, s.strategy.step(tick))

	cmd := s.strategy.Law.Evaluate(LawInput{
		Chase:  chase,
		Target: target,
		Goal:   s.strategy.goal(mode, target.Pose, standoff),
		Gains:  gains,
		XSum:   s.acc.XSum,
		YSum:   s.acc.YSum,
	})

	adv, fired := s.safety.Check(chase, target)
	if fired {
		s.reporter.Warn(s.ticks, adv)
	}
	s.reporter.Tick(TickReport{
		Tick:         s.ticks,
		Elapsed:      tick.Elapsed,
		Mode:         mode,
		Command:      cmd,
		Displacement: adv.Displacement,
		Speed:        adv.Speed,
		Heading:      chase.Pose.Theta,
	})

	return cmd, nil
}

// Reset zeroes the accumulators and the tick counter.
func (s *Session) Reset() {
	s.acc.Reset()
	s.ticks = 0
}

func (s *Session) State() ControllerState {
	return ControllerState{XSum: s.acc.XSum, YSum: s.acc.YSum, Ticks: s.ticks}
}
