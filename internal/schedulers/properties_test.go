package schedulers

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

func randomWorkload(rng *rand.Rand, n int) *requests.ScheduleRequests {
	request := &requests.ScheduleRequests{}
	for i := 0; i < n; i++ {
		request.Jobs = append(request.Jobs, job(
			fmt.Sprintf("P%d", i+1),
			rng.Intn(20),
			1+rng.Intn(9),
			rng.Intn(5),
		))
	}
	return request
}

// remainingAt replays the timeline to find how much work pid still had at t.
func remainingAt(response responses.ScheduleResponse, detail responses.ProcessResponse, t int) int {
	done := 0
	for _, s := range response.Timeline {
		if s.ProcessId != detail.ProcessId || s.StartTime >= t {
			continue
		}
		done += min(s.EndTime, t) - s.StartTime
	}
	return detail.BurstTime - done
}

func runningAt(response responses.ScheduleResponse, t int) string {
	for _, s := range response.Timeline {
		if s.StartTime <= t && t < s.EndTime {
			return s.ProcessId
		}
	}
	return ""
}

var _ = Describe("Scheduling properties", func() {
	var (
		ctx       context.Context
		rng       *rand.Rand
		workloads []*requests.ScheduleRequests
	)

	BeforeEach(func() {
		ctx = context.Background()
		rng = rand.New(rand.NewSource(42))
		workloads = nil
		for i := 0; i < 25; i++ {
			workloads = append(workloads, randomWorkload(rng, 1+rng.Intn(8)))
		}
	})

	It("should produce consistent metrics for every policy", func() {
		for _, request := range workloads {
			for _, policy := range GetAvailablePolicies() {
				response, err := Schedule(ctx, policy, request, DefaultOptions())
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Details).To(HaveLen(len(request.Jobs)))

				busy := 0
				for _, s := range response.Timeline {
					busy += s.EndTime - s.StartTime
				}
				for _, d := range response.Details {
					Expect(d.TurnAroundTime).To(Equal(d.CompletionTime - d.ArrivalTime))
					Expect(d.WaitingTime).To(Equal(d.TurnAroundTime - d.BurstTime))
					Expect(d.WaitingTime).To(BeNumerically(">=", 0))
					Expect(d.CompletionTime).To(BeNumerically(">=", d.ArrivalTime+d.BurstTime))
					Expect(d.ResponseTime).To(BeNumerically(">=", 0))
					Expect(d.ResponseTime).To(BeNumerically("<=", d.WaitingTime))
					Expect(remainingAt(response, d, d.CompletionTime)).To(Equal(0))
				}
				Expect(busy + response.IdleTime).To(Equal(response.TotalTime))
			}
		}
	})

	It("should complete FCFS processes in arrival order", func() {
		for _, request := range workloads {
			response, err := ScheduleFirstComeFirstServe(ctx, request)
			Expect(err).NotTo(HaveOccurred())

			previous := 0
			for i, d := range response.Details {
				if i > 0 {
					Expect(d.ArrivalTime).To(BeNumerically(">=", response.Details[i-1].ArrivalTime))
				}
				Expect(d.CompletionTime).To(Equal(max(previous, d.ArrivalTime) + d.BurstTime))
				previous = d.CompletionTime
			}
		}
	})

	It("should never pass over a shorter ready job", func() {
		for _, request := range workloads {
			for _, policy := range []Policy{SJF, SRTF} {
				response, err := Schedule(ctx, policy, request, DefaultOptions())
				Expect(err).NotTo(HaveOccurred())

				for _, s := range response.Timeline {
					for t := s.StartTime; t < s.EndTime; t++ {
						if policy == SJF && t != s.StartTime {
							break
						}
						var running responses.ProcessResponse
						for _, d := range response.Details {
							if d.ProcessId == s.ProcessId {
								running = d
							}
						}
						for _, other := range response.Details {
							if other.ArrivalTime > t || other.CompletionTime <= t || other.ProcessId == running.ProcessId {
								continue
							}
							if policy == SJF {
								Expect(other.BurstTime).To(BeNumerically(">=", running.BurstTime))
							} else {
								Expect(remainingAt(response, other, t)).To(
									BeNumerically(">=", remainingAt(response, running, t)))
							}
						}
					}
				}
			}
		}
	})

	It("should drain the high MLQ level before any low level completion", func() {
		for _, request := range workloads {
			response, err := ScheduleMultilevelQueue(ctx, request, DefaultHighPriorityBelow)
			Expect(err).NotTo(HaveOccurred())

			var high, low []int
			for _, d := range response.Details {
				if d.Priority < DefaultHighPriorityBelow {
					high = append(high, d.CompletionTime)
				} else {
					low = append(low, d.CompletionTime)
				}
			}
			if len(high) == 0 || len(low) == 0 {
				continue
			}
			sort.Ints(high)
			sort.Ints(low)
			Expect(low[0]).To(BeNumerically(">", high[len(high)-1]))
		}
	})

	It("should keep the cpu busy whenever a round robin process is ready", func() {
		for _, request := range workloads {
			response, err := ScheduleRoundRobin(ctx, request, 2)
			Expect(err).NotTo(HaveOccurred())

			for t := 0; t < response.TotalTime; t++ {
				if runningAt(response, t) != "" {
					continue
				}
				for _, d := range response.Details {
					Expect(d.ArrivalTime > t || d.CompletionTime <= t).To(BeTrue())
				}
			}
		}
	})
})
