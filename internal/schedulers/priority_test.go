package schedulers

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Priority", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should pick the most urgent ready process", func() {
		response, err := SchedulePriority(ctx, jobs(
			job("P1", 0, 4, 3),
			job("P2", 1, 2, 1),
			job("P3", 2, 1, 0),
			job("P4", 2, 1, 5),
		))

		Expect(err).NotTo(HaveOccurred())
		Expect(completionTimes(response)).To(Equal(map[string]int{"P1": 4, "P2": 7, "P3": 5, "P4": 8}))
	})

	It("should break priority ties by arrival", func() {
		response, err := SchedulePriority(ctx, jobs(
			job("P1", 0, 4, 3),
			job("P3", 2, 1, 1),
			job("P2", 1, 2, 1),
		))

		Expect(err).NotTo(HaveOccurred())
		Expect(completionTimes(response)).To(Equal(map[string]int{"P1": 4, "P2": 6, "P3": 7}))
	})

	It("should report processes sorted by arrival then priority", func() {
		response, err := SchedulePriority(ctx, jobs(
			job("B", 2, 1, 0),
			job("C", 0, 1, 4),
			job("A", 0, 1, 2),
		))

		Expect(err).NotTo(HaveOccurred())
		Expect(pids(response)).To(Equal([]string{"A", "C", "B"}))
	})
})
