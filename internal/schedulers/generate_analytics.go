package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

func generateResponse(processes []*core.Proccess, cpu *core.Cpu) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(processes))
	for _, proccess := range processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(proccess))
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	metric := cpu.Metric()
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(len(processes)) / float64(metric.TotalTime)
	}

	var response = responses.ScheduleResponse{
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		ContextSwitches:       metric.ContextSwitches,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
		Timeline:              generateTimeline(cpu.Timeline()),
	}
	return response
}

func generateProcessDetails(proccess *core.Proccess) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      proccess.Pid,
		ArrivalTime:    proccess.ArrivalTime,
		BurstTime:      proccess.BurstTime,
		Priority:       proccess.Priority,
		CompletionTime: proccess.CompletionTime,
		TurnAroundTime: proccess.TurnAroundTime,
		WaitingTime:    proccess.WaitingTime,
		ResponseTime:   proccess.ResponseTime,
	}
}

func generateTimeline(scheduleTimes []core.ScheduleTime) []responses.TimelineSegment {
	timeline := make([]responses.TimelineSegment, 0, len(scheduleTimes))
	for _, s := range scheduleTimes {
		timeline = append(timeline, responses.TimelineSegment{
			ProcessId: s.Pid,
			StartTime: s.Start,
			EndTime:   s.End,
		})
	}
	return timeline
}
