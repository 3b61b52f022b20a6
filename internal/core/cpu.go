package core

import (
	"fmt"
	"log/slog"
)

// ScheduleTime is one contiguous interval a process held the cpu.
type ScheduleTime struct {
	Pid   string
	Start int
	End   int
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	ContextSwitches int
}

// Cpu is the simulation clock of a single run. It is the only writer of
// process timing state and of the execution timeline.
type Cpu struct {
	now      int
	metric   CpuMetric
	timeline []ScheduleTime
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]ScheduleTime, 0)}
}

func (c *Cpu) Now() int {
	return c.now
}

// Idle advances the clock without running anything.
func (c *Cpu) Idle(units int) {
	if units <= 0 {
		return
	}
	c.now += units
	c.metric.IdleTime += units
}

// IdleUntil jumps the clock forward to t when it trails t.
func (c *Cpu) IdleUntil(t int) {
	if c.now < t {
		c.Idle(t - c.now)
	}
}

// Execute runs the process for the given number of units starting now. The
// process completes exactly when its remaining time reaches zero.
func (c *Cpu) Execute(proccess *Proccess, units int) {
	if proccess.completed || proccess.RemainingTime <= 0 {
		panic(fmt.Sprintf("pid %s dispatched with no remaining time", proccess.Pid))
	}
	if units <= 0 || units > proccess.RemainingTime {
		panic(fmt.Sprintf("pid %s dispatched for %d units with %d remaining",
			proccess.Pid, units, proccess.RemainingTime))
	}

	if proccess.StartTime < 0 {
		proccess.StartTime = c.now
	}
	c.record(proccess.Pid, c.now, c.now+units)

	c.now += units
	c.metric.UtilizationTime += units
	proccess.RemainingTime -= units

	if proccess.RemainingTime == 0 {
		proccess.complete(c.now)
		slog.Debug("proccess completed", "pid", proccess.Pid, "completion_time", c.now)
	}
}

func (c *Cpu) record(pid string, start, end int) {
	if n := len(c.timeline); n > 0 {
		last := &c.timeline[n-1]
		if last.Pid == pid && last.End == start {
			last.End = end
			return
		}
		c.metric.ContextSwitches++
	}
	c.timeline = append(c.timeline, ScheduleTime{Pid: pid, Start: start, End: end})
}

// Timeline returns a copy of the recorded execution segments.
func (c *Cpu) Timeline() []ScheduleTime {
	timeline := make([]ScheduleTime, len(c.timeline))
	copy(timeline, c.timeline)
	return timeline
}

func (c *Cpu) Metric() CpuMetric {
	metric := c.metric
	metric.TotalTime = c.now
	return metric
}
