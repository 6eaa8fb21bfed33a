package rendezvous_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/docksim/internal/rendezvous"
)

type modeRecorder struct {
	modes []rendezvous.Mode
	warns int
}

func (m *modeRecorder) Initialized(rendezvous.Identity, rendezvous.BodyConfig) {}
func (m *modeRecorder) Tick(r rendezvous.TickReport)                           { m.modes = append(m.modes, r.Mode) }
func (m *modeRecorder) Warn(int, rendezvous.Advisory)                          { m.warns++ }

var _ = Describe("Challenge session", func() {
	var (
		rec     *modeRecorder
		session *rendezvous.Session
		gains   rendezvous.GainSet
		tick    = rendezvous.SystemTick{Elapsed: 50 * time.Millisecond}
		target  = rendezvous.BodyState{}
	)

	BeforeEach(func() {
		rec = &modeRecorder{}
		session = rendezvous.NewSession(rendezvous.Challenge(), rendezvous.WithReporter(rec))
		session.Init(rendezvous.DefaultBody())
		gains = rendezvous.Detuned.Gains(1)
	})

	Context("when close and misaligned", func() {
		chase := rendezvous.BodyState{
			Pose:  rendezvous.Pose{X: 0.3, Y: 0.1, Theta: math.Pi/3 + math.Pi/2},
			Twist: rendezvous.Twist{VX: 0.05, VY: -0.02, Omega: 0.1},
		}

		It("steers toward the fixed point (1, 1)", func() {
			cmd, err := session.Run(tick, chase, target)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.modes).To(Equal([]rendezvous.Mode{rendezvous.ModeGated}))

			fx := -gains.KX*0.1*(0.3-1) - gains.DampX*0.05
			fy := -gains.KY*0.1*(0.1-1) - gains.DampY*-0.02
			tau := -30*(math.Pi/3+math.Pi/2) - gains.DampY*0.1
			Expect(cmd.FX).To(BeNumerically("~", fx, 1e-12))
			Expect(cmd.FY).To(BeNumerically("~", fy, 1e-12))
			Expect(cmd.Tau).To(BeNumerically("~", tau, 1e-12))
		})

		It("still integrates the standoff error", func() {
			_, err := session.Run(tick, chase, target)
			Expect(err).NotTo(HaveOccurred())

			sp := rendezvous.Standoff(target.Pose)
			st := session.State()
			Expect(st.XSum).To(BeNumerically("~", (0.3-sp.X)*rendezvous.NominalStep, 1e-12))
			Expect(st.YSum).To(BeNumerically("~", (0.1-sp.Y)*rendezvous.NominalStep, 1e-12))
			Expect(st.Ticks).To(Equal(1))
		})
	})

	Context("when far from the target", func() {
		It("uses the softened standoff error with no integral term", func() {
			chase := rendezvous.BodyState{Pose: rendezvous.Pose{X: 2, Y: -1, Theta: math.Pi}}
			var cmd rendezvous.Command
			for i := 0; i < 3; i++ {
				var err error
				cmd, err = session.Run(tick, chase, target)
				Expect(err).NotTo(HaveOccurred())
			}

			sp := rendezvous.Standoff(target.Pose)
			Expect(rec.modes).To(HaveEach(rendezvous.ModeDirect))
			Expect(cmd.FX).To(BeNumerically("~", -gains.KX*0.1*(2-sp.X), 1e-12))
			Expect(cmd.FY).To(BeNumerically("~", -gains.KY*0.1*(-1-sp.Y), 1e-12))
			Expect(cmd.Tau).To(BeNumerically("~", -30*math.Pi, 1e-12))
		})
	})

	It("flaps between modes across the gate radius", func() {
		in := rendezvous.BodyState{Pose: rendezvous.Pose{X: 0.59, Theta: math.Pi}}
		out := rendezvous.BodyState{Pose: rendezvous.Pose{X: 0.61, Theta: math.Pi}}
		for _, c := range []rendezvous.BodyState{in, out, in} {
			_, err := session.Run(tick, c, target)
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(rec.modes).To(Equal([]rendezvous.Mode{
			rendezvous.ModeGated, rendezvous.ModeDirect, rendezvous.ModeGated,
		}))
	})

	It("warns on a fast close pass regardless of mode", func() {
		chase := rendezvous.BodyState{
			Pose:  rendezvous.Pose{X: 0.2, Theta: math.Pi},
			Twist: rendezvous.Twist{VX: -0.5},
		}
		_, err := session.Run(tick, chase, target)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.warns).To(Equal(1))
	})

	It("clears the state on reset", func() {
		_, _ = session.Run(tick, rendezvous.BodyState{Pose: rendezvous.Pose{X: 1}}, target)
		session.Reset()
		Expect(session.State()).To(Equal(rendezvous.ControllerState{}))
	})
})
