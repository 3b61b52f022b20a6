package schedulers

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"os-scheduler/internal/responses"
)

var _ = Describe("ShortestRemainingTimeFirst", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should preempt for a shorter arrival", func() {
		response, err := ScheduleShortestRemainingTimeFirst(ctx, jobs(
			job("P1", 0, 8, 0),
			job("P2", 1, 4, 0),
		))

		Expect(err).NotTo(HaveOccurred())
		Expect(completionTimes(response)).To(Equal(map[string]int{"P1": 12, "P2": 5}))
		Expect(response.Timeline).To(Equal([]responses.TimelineSegment{
			segment("P1", 0, 1),
			segment("P2", 1, 5),
			segment("P1", 5, 12),
		}))
		Expect(response.ContextSwitches).To(Equal(2))
		Expect(response.Details[0].WaitingTime).To(Equal(4))
		Expect(response.Details[0].ResponseTime).To(Equal(0))
	})

	It("should break remaining time ties by input position only", func() {
		response, err := ScheduleShortestRemainingTimeFirst(ctx, jobs(
			job("A", 3, 3, 0),
			job("B", 0, 6, 0),
		))

		Expect(err).NotTo(HaveOccurred())
		Expect(response.Timeline).To(Equal([]responses.TimelineSegment{
			segment("B", 0, 3),
			segment("A", 3, 6),
			segment("B", 6, 9),
		}))
		Expect(completionTimes(response)).To(Equal(map[string]int{"A": 6, "B": 9}))
	})

	It("should idle when nothing has arrived", func() {
		response, err := ScheduleShortestRemainingTimeFirst(ctx, jobs(
			job("P1", 0, 1, 0),
			job("P2", 5, 2, 0),
		))

		Expect(err).NotTo(HaveOccurred())
		Expect(completionTimes(response)).To(Equal(map[string]int{"P1": 1, "P2": 7}))
		Expect(response.IdleTime).To(Equal(4))
	})
})
