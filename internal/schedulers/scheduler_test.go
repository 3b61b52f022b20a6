package schedulers

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"os-scheduler/internal/requests"
)

var _ = Describe("Schedule", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should parse policy aliases", func() {
		for name, expected := range map[string]Policy{
			"fcfs":        FCFS,
			"SJF":         SJF,
			" srtf ":      SRTF,
			"Priority":    Priority,
			"rr":          RoundRobin,
			"round-robin": RoundRobin,
			"ROUND_ROBIN": RoundRobin,
			"mlq":         MLQ,
		} {
			policy, err := ParsePolicy(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(policy).To(Equal(expected))
		}
	})

	It("should reject unknown policies", func() {
		_, err := ParsePolicy("lottery")
		Expect(err).To(MatchError(ErrUnsupportedPolicy))

		_, err = Schedule(ctx, Policy("LOTTERY"), jobs(job("P1", 0, 1, 0)), DefaultOptions())
		Expect(err).To(MatchError(ErrUnsupportedPolicy))
	})

	It("should dispatch to every policy", func() {
		request := jobs(job("P1", 0, 3, 0), job("P2", 1, 1, 0))
		for _, policy := range GetAvailablePolicies() {
			response, err := Schedule(ctx, policy, request, DefaultOptions())
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Algorithm).To(Equal(string(policy)))
		}
	})

	It("should prefer the quantum set on the request", func() {
		request := jobs(job("P1", 0, 4, 0), job("P2", 0, 4, 0))
		quantum := 4
		request.TimeQuantum = &quantum

		response, err := Schedule(ctx, RoundRobin, request, DefaultOptions())

		Expect(err).NotTo(HaveOccurred())
		Expect(response.TimeQuantum).To(Equal(4))
		Expect(completionTimes(response)).To(Equal(map[string]int{"P1": 4, "P2": 8}))
	})

	It("should reject an explicit zero quantum instead of falling back to the configured one", func() {
		request := jobs(job("P1", 0, 4, 0))
		quantum := 0
		request.TimeQuantum = &quantum

		_, err := Schedule(ctx, RoundRobin, request, DefaultOptions())

		Expect(err).To(MatchError(ErrInvalidInput))
		Expect(err.Error()).To(ContainSubstring("positive time quantum, got 0"))
	})

	It("should use the configured quantum when the request has none", func() {
		request := jobs(job("P1", 0, 4, 0), job("P2", 0, 4, 0))
		opts := DefaultOptions()
		opts.TimeQuantum = 3

		response, err := Schedule(ctx, RoundRobin, request, opts)

		Expect(err).NotTo(HaveOccurred())
		Expect(response.TimeQuantum).To(Equal(3))
		Expect(request.TimeQuantum).To(BeNil())
	})

	It("should report every validation problem at once", func() {
		request := jobs(
			job("P1", -1, 3, 0),
			job("P1", 0, 0, 0),
			job("", 0, 1, 0),
		)
		quantum := -2
		request.TimeQuantum = &quantum

		_, err := Schedule(ctx, RoundRobin, request, DefaultOptions())

		Expect(err).To(MatchError(ErrInvalidInput))
		Expect(err.Error()).To(ContainSubstring("negative arrival time"))
		Expect(err.Error()).To(ContainSubstring("duplicate pid"))
		Expect(err.Error()).To(ContainSubstring("non-positive burst time"))
		Expect(err.Error()).To(ContainSubstring("empty pid"))
		Expect(err.Error()).To(ContainSubstring("positive time quantum"))
	})

	It("should reject workloads whose clock would overflow", func() {
		_, err := ScheduleFirstComeFirstServe(ctx, jobs(job("P1", math.MaxInt-2, 5, 0)))
		Expect(err).To(MatchError(ErrInvalidInput))
		Expect(err.Error()).To(ContainSubstring("largest representable time"))

		_, err = ScheduleRoundRobin(ctx, jobs(
			job("P1", 0, math.MaxInt/2+1, 0),
			job("P2", 0, math.MaxInt/2+1, 0),
		), 2)
		Expect(err).To(MatchError(ErrInvalidInput))
	})

	It("should accept a workload ending exactly at the largest time", func() {
		response, err := ScheduleFirstComeFirstServe(ctx, jobs(job("P1", math.MaxInt-5, 5, 0)))

		Expect(err).NotTo(HaveOccurred())
		Expect(response.Details[0].CompletionTime).To(Equal(math.MaxInt))
		Expect(response.Details[0].TurnAroundTime).To(Equal(5))
		Expect(response.Details[0].WaitingTime).To(Equal(0))
	})

	It("should reject an empty workload", func() {
		_, err := ScheduleFirstComeFirstServe(ctx, jobs())
		Expect(err).To(MatchError(ErrInvalidInput))

		_, err = ScheduleShortestJobFirst(ctx, nil)
		Expect(err).To(MatchError(ErrInvalidInput))
	})

	It("should stop when the context is done", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := ScheduleShortestRemainingTimeFirst(cancelled, jobs(job("P1", 0, 5, 0)))

		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})

	It("should never modify the request", func() {
		request := jobs(
			job("P3", 4, 2, 3),
			job("P1", 0, 5, 1),
			job("P2", 1, 3, 0),
		)
		pristine := &requests.ScheduleRequests{Jobs: append([]requests.Job(nil), request.Jobs...)}

		for _, policy := range GetAvailablePolicies() {
			_, err := Schedule(ctx, policy, request, DefaultOptions())
			Expect(err).NotTo(HaveOccurred())
		}

		Expect(request).To(Equal(pristine))
	})

	It("should run every policy on the same input", func() {
		compare, err := ScheduleAll(ctx, jobs(job("P1", 0, 8, 0), job("P2", 1, 4, 0)), DefaultOptions())

		Expect(err).NotTo(HaveOccurred())
		Expect(compare.Results).To(HaveLen(len(GetAvailablePolicies())))
		for i, policy := range GetAvailablePolicies() {
			Expect(compare.Results[i].Algorithm).To(Equal(string(policy)))
		}
		Expect(completionTimes(compare.Results[2])).To(Equal(map[string]int{"P1": 12, "P2": 5}))
	})

	It("should fail the comparison on invalid input", func() {
		_, err := ScheduleAll(ctx, jobs(job("P1", 0, 0, 0)), DefaultOptions())

		Expect(err).To(MatchError(ErrInvalidInput))
	})
})
