package universe

import (
	"log/slog"
	"time"
)

//Options represents the Simulation's configurable options
type Options struct {
	Interval       time.Duration //delay between the generations
	MaxSteps       int           //0 means unlimited
	StopWhenStable bool          //finish when the grid stops changing or dies out
}

//Status represents the status of the Simulation at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//The simulation running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Second / 6
	DefMaxSteps           = 0
	DefWidth              = 40
	DefHeight             = 15
)

const (
	RunningStateManual RunningState = iota
	RunningStateRun
	RunningStateFinished
)

func (r RunningState) String() string {
	switch r {
	case RunningStateManual:
		return "paused"
	case RunningStateRun:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}

var DefaultOptions = Options{
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
}

//Simulation owns the current generation and the counters
//it is threaded through the loop by the caller, nothing here is global
type Simulation struct {
	options Options
	status  Status
	grid    *Grid
	log     *slog.Logger
}

//NewSimulation creates the Simulation starting from g
//the simulation takes ownership of g
func NewSimulation(g *Grid, o *Options) *Simulation {
	if o == nil {
		o = &DefaultOptions
	}
	s := &Simulation{
		options: *o,
		grid:    g,
		log:     slog.Default().With("component", "simulation"),
	}
	s.status.LiveCells = g.LiveCells()
	return s
}

//Grid returns the current generation
func (s *Simulation) Grid() *Grid {
	return s.grid
}

//Status returns current simulation status represented by Status struct
func (s *Simulation) Status() Status {
	return s.status
}

//Options returns current simulation configuration represented by Options struct
func (s *Simulation) Options() Options {
	return s.options
}

//Step does the new one state calculation for entire grid
//the previous generation is dropped
func (s *Simulation) Step() Status {
	if s.status.RunningMode == RunningStateFinished {
		return s.status
	}
	start := time.Now()
	next := Tick(s.grid)
	changed := !next.Equal(s.grid)
	s.grid = next
	s.status.Generation++
	s.status.LiveCells = next.LiveCells()
	s.status.IterationTime = time.Since(start)
	s.log.Debug("generation computed",
		"generation", s.status.Generation,
		"live_cells", s.status.LiveCells,
		"duration", s.status.IterationTime,
	)

	if s.options.StopWhenStable && (!changed || s.status.LiveCells == 0) {
		s.finish("stable")
	} else if s.options.MaxSteps != 0 && s.status.Generation >= s.options.MaxSteps {
		s.finish("max steps reached")
	}
	return s.status
}

//Run renders the current generation and keeps ticking until it is finished
//absence of a command means keep simulating, in manual mode the loop waits for the next command
func (s *Simulation) Run(v Viewer, cmds CommandSource) Status {
	if cmds == nil {
		cmds = noCommands{}
	}
	if s.status.RunningMode != RunningStateFinished {
		s.status.RunningMode = RunningStateRun
	}
	s.log.Info("simulation started",
		"height", s.grid.Height(),
		"width", s.grid.Width(),
		"interval", s.options.Interval,
		"max_steps", s.options.MaxSteps,
	)
	v.Render(s.grid, s.status)

	for s.status.RunningMode != RunningStateFinished {
		if s.status.RunningMode == RunningStateManual {
			s.control(cmds.Wait(), v)
			continue
		}
		if c, ok := cmds.Poll(); ok {
			s.control(c, v)
			continue
		}
		s.Step()
		v.Render(s.grid, s.status)
		//a command cuts the delay short
		if s.options.Interval > 0 && s.status.RunningMode == RunningStateRun {
			if c, ok := cmds.WaitTimeout(s.options.Interval); ok {
				s.control(c, v)
			}
		}
	}
	return s.status
}

//control applies one user command and renders the result
func (s *Simulation) control(c Control, v Viewer) {
	switch c {
	case ControlQuit:
		s.finish("stopped by user")
	case ControlPause:
		if s.status.RunningMode == RunningStateRun {
			s.status.RunningMode = RunningStateManual
		} else {
			s.status.RunningMode = RunningStateRun
		}
	case ControlStep:
		if s.status.RunningMode != RunningStateManual {
			return
		}
		s.Step()
	default:
		return
	}
	v.Render(s.grid, s.status)
}

func (s *Simulation) finish(reason string) {
	s.status.RunningMode = RunningStateFinished
	s.log.Info("simulation finished",
		"reason", reason,
		"generation", s.status.Generation,
		"live_cells", s.status.LiveCells,
	)
}
