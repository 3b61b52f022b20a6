package schedulers

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"os-scheduler/internal/responses"
)

var _ = Describe("MultilevelQueue", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should drain the high level before the low level", func() {
		response, err := ScheduleMultilevelQueue(ctx, jobs(
			job("P1", 0, 3, 3),
			job("P2", 1, 2, 0),
			job("P3", 10, 1, 1),
		), DefaultHighPriorityBelow)

		Expect(err).NotTo(HaveOccurred())
		Expect(response.Timeline).To(Equal([]responses.TimelineSegment{
			segment("P2", 1, 3),
			segment("P3", 10, 11),
			segment("P1", 11, 14),
		}))
		Expect(pids(response)).To(Equal([]string{"P1", "P2", "P3"}))
		Expect(response.Details[0].WaitingTime).To(Equal(11))
		Expect(response.IdleTime).To(Equal(8))
	})

	It("should order each level by arrival", func() {
		response, err := ScheduleMultilevelQueue(ctx, jobs(
			job("L2", 4, 1, 2),
			job("L1", 0, 1, 7),
			job("H2", 2, 1, 1),
			job("H1", 0, 1, 0),
		), DefaultHighPriorityBelow)

		Expect(err).NotTo(HaveOccurred())
		Expect(response.Timeline).To(Equal([]responses.TimelineSegment{
			segment("H1", 0, 1),
			segment("H2", 2, 3),
			segment("L1", 3, 4),
			segment("L2", 4, 5),
		}))
	})

	It("should honour a custom level threshold", func() {
		response, err := ScheduleMultilevelQueue(ctx, jobs(
			job("P1", 0, 2, 2),
			job("P2", 0, 2, 5),
		), 3)

		Expect(err).NotTo(HaveOccurred())
		Expect(completionTimes(response)).To(Equal(map[string]int{"P1": 2, "P2": 4}))
	})
})
