package requests

type Job struct {
	ProcessId   string `json:"pid" yaml:"pid"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}
type ScheduleRequests struct {
	Jobs        []Job `json:"processes" yaml:"processes"`
	TimeQuantum *int  `json:"quantum,omitempty" yaml:"quantum,omitempty"`
}
