package universe

import "time"

//Viewer is the interface to any Viewer - the object who can display the simulation
type Viewer interface {
	Render(g *Grid, st Status)
}

//Control is the simulation control command delivered by the input layer
type Control int

const (
	ControlQuit Control = iota
	ControlPause
	ControlStep
)

//CommandSource delivers the user's control commands to the simulation loop
type CommandSource interface {
	//Poll returns the pending command, false when there is none
	Poll() (Control, bool)
	//Wait blocks until the next command
	Wait() Control
	//WaitTimeout waits for the next command at most d, false when none came
	WaitTimeout(d time.Duration) (Control, bool)
}

//Commands is the channel based CommandSource
//a closed channel reads as ControlQuit
type Commands chan Control

func (c Commands) Poll() (Control, bool) {
	select {
	case cmd, ok := <-c:
		if !ok {
			return ControlQuit, true
		}
		return cmd, true
	default:
		return 0, false
	}
}

func (c Commands) Wait() Control {
	cmd, ok := <-c
	if !ok {
		return ControlQuit
	}
	return cmd
}

func (c Commands) WaitTimeout(d time.Duration) (Control, bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case cmd, ok := <-c:
		if !ok {
			return ControlQuit, true
		}
		return cmd, true
	case <-timer.C:
		return 0, false
	}
}

type noCommands struct{}

func (noCommands) Poll() (Control, bool) { return 0, false }

func (noCommands) Wait() Control { return ControlQuit }

func (noCommands) WaitTimeout(d time.Duration) (Control, bool) {
	time.Sleep(d)
	return 0, false
}
