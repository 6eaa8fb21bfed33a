package control

import (
	"time"

	"github.com/san-kum/docksim/internal/dynamo"
	"github.com/san-kum/docksim/internal/physics"
	"github.com/san-kum/docksim/internal/rendezvous"
)

// Docking adapts a rendezvous session to the simulator. It reports the time
// since its previous call as the tick's elapsed time.
type Docking struct {
	session *rendezvous.Session
	lastT   float64
	started bool
	err     error
}

func NewDocking(session *rendezvous.Session) *Docking {
	return &Docking{session: session}
}

func (d *Docking) Compute(x dynamo.State, t float64) dynamo.Control {
	var elapsed time.Duration
	if d.started {
		elapsed = time.Duration((t - d.lastT) * float64(time.Second))
	}
	d.lastT = t
	d.started = true

	chase, target := physics.Bodies(x)
	cmd, err := d.session.Run(rendezvous.SystemTick{Elapsed: elapsed}, chase, target)
	if err != nil {
		if d.err == nil {
			d.err = err
		}
		return make(dynamo.Control, 3)
	}
	return dynamo.Control{cmd.FX, cmd.FY, cmd.Tau}
}

// Err returns the first error raised by the session, if any.
func (d *Docking) Err() error {
	return d.err
}

// Reset clears the session state and the elapsed-time tracking.
func (d *Docking) Reset() {
	d.session.Reset()
	d.started = false
	d.lastT = 0
	d.err = nil
}

func (d *Docking) Session() *rendezvous.Session {
	return d.session
}
