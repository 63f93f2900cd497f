package systolic_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sysmac/systolic"
)

func step(c *systolic.Controller, data uint8) {
	c.Step(systolic.RunPins(data).Inputs())
}

func resetController(c *systolic.Controller) {
	c.Step(systolic.ResetPins().Inputs())
	c.Step(systolic.ResetPins().Inputs())
}

func stepAll(c *systolic.Controller, data ...uint8) {
	for _, d := range data {
		step(c, d)
	}
}

func bytesOf(vals ...int8) []uint8 {
	out := make([]uint8, len(vals))
	for i, v := range vals {
		out[i] = uint8(v)
	}
	return out
}

var _ = Describe("Controller", func() {
	var c *systolic.Controller

	BeforeEach(func() {
		c = systolic.NewController()
		resetController(c)
	})

	It("should sit in IDLE after reset", func() {
		Expect(c.State()).To(Equal(systolic.Idle))
		Expect(c.Snapshot().PEs).To(Equal(systolic.Array{}))
		Expect(c.Output().Valid).To(BeFalse())
	})

	It("should leave IDLE after exactly one enabled cycle", func() {
		step(c, 0x55)
		Expect(c.State()).To(Equal(systolic.LoadWeight))
		Expect(c.PE(0).Weight).To(BeZero())
	})

	It("should spend 1/4/4/7/4 cycles per phase on every pass", func() {
		expected := []systolic.State{systolic.Idle}
		for pass := 0; pass < 3; pass++ {
			for _, s := range []systolic.State{
				systolic.LoadWeight, systolic.LoadBias,
				systolic.Compute, systolic.Drain,
			} {
				for i := 0; i < s.Length(); i++ {
					expected = append(expected, s)
				}
			}
		}

		observed := make([]systolic.State, 0, len(expected))
		for range expected {
			observed = append(observed, c.State())
			step(c, 1)
		}

		Expect(observed).To(Equal(expected))
		Expect(c.State()).To(Equal(systolic.LoadWeight))
	})

	It("should store the k-th weight and bias byte in lane k", func() {
		step(c, 0)
		stepAll(c, bytesOf(1, 2, 3, 4)...)
		Expect(c.State()).To(Equal(systolic.LoadBias))
		stepAll(c, bytesOf(10, -20, 30, -40)...)

		for k, w := range []int8{1, 2, 3, 4} {
			Expect(c.PE(k).Weight).To(Equal(w))
		}
		for k, b := range []int8{10, -20, 30, -40} {
			Expect(c.PE(k).Bias).To(Equal(b))
		}
	})

	It("should seed every accumulator with its bias before computing", func() {
		step(c, 0)
		stepAll(c, bytesOf(5, 5, 5, 5)...)
		stepAll(c, bytesOf(-1, 127, -128, 0)...)

		Expect(c.State()).To(Equal(systolic.Compute))
		for k := 0; k < systolic.NumLanes; k++ {
			Expect(c.PE(k).Acc).To(Equal(int16(c.PE(k).Bias)))
		}
	})

	DescribeTable("staggered accumulation",
		func(computeCycle int) {
			step(c, 0)
			stepAll(c, 1, 1, 1, 1)
			stepAll(c, 0, 0, 0, 0)

			for i := 0; i <= computeCycle; i++ {
				step(c, 1)
			}

			for lane := 0; lane < systolic.NumLanes; lane++ {
				terms := 0
				if computeCycle >= lane {
					terms = computeCycle - lane + 1
				}
				Expect(c.PE(lane).Acc).To(Equal(int16(terms)),
					"lane %d after compute cycle %d", lane, computeCycle)
			}
		},
		Entry("cycle 0", 0),
		Entry("cycle 1", 1),
		Entry("cycle 2", 2),
		Entry("cycle 3", 3),
		Entry("cycle 4", 4),
		Entry("cycle 5", 5),
		Entry("cycle 6", 6),
	)

	It("should give lane i the activation that entered i cycles earlier", func() {
		step(c, 0)
		stepAll(c, 1, 1, 1, 1)
		stepAll(c, 0, 0, 0, 0)
		stepAll(c, 10, 20, 30, 40)

		s := c.Snapshot()
		Expect(s.PEs[0].Delay).To(Equal(int8(40)))
		Expect(s.PEs[1].Delay).To(Equal(int8(30)))
		Expect(s.PEs[2].Delay).To(Equal(int8(20)))
		Expect(s.PEs[3].Delay).To(Equal(int8(10)))
	})

	It("should wrap negative products without saturating", func() {
		step(c, 0)
		stepAll(c, 0xFF, 0xFF, 0xFF, 0xFF)
		stepAll(c, 10, 10, 10, 10)

		step(c, 5)
		Expect(c.PE(0).Acc).To(Equal(int16(5)))
		Expect(c.PE(1).Acc).To(Equal(int16(10)))

		stepAll(c, 5, 5, 5, 5, 5, 5)
		Expect(c.Snapshot().PEs.Accumulators()).
			To(Equal([systolic.NumLanes]int16{-25, -20, -15, -10}))
	})

	It("should wrap accumulation past the 16-bit range", func() {
		job := systolic.Job{
			Weights:     [4]int8{-128, -128, -128, -128},
			Biases:      [4]int8{127, 127, 127, 127},
			Activations: [7]int8{-128, -128, -128, -128, -128, -128, -128},
		}

		Expect(c.RunJob(job)).To(Equal([4]int16{-16257, -32641, 16511, 127}))
	})

	It("should drain lane k on the k-th drain cycle without changing it", func() {
		step(c, 0)
		stepAll(c, bytesOf(1, 2, 3, 4)...)
		stepAll(c, bytesOf(10, 20, 30, 40)...)
		stepAll(c, 10, 20, 30, 40, 0, 0, 0)
		Expect(c.State()).To(Equal(systolic.Drain))

		before := c.Snapshot().PEs
		for k := 0; k < systolic.DrainCycles; k++ {
			out := c.Output()
			Expect(out.Valid).To(BeTrue())
			Expect(out.Lane).To(Equal(k))
			Expect(out.Result()).To(Equal(before[k].Acc))
			step(c, 0x7F)
		}

		Expect(c.Snapshot().PEs).To(Equal(before))
		Expect(c.State()).To(Equal(systolic.LoadWeight))
	})

	It("should compute scenario A", func() {
		job := systolic.Job{
			Weights:     [4]int8{1, 2, 3, 4},
			Biases:      [4]int8{10, 20, 30, 40},
			Activations: [7]int8{10, 20, 30, 40, 0, 0, 0},
		}

		Expect(c.RunJob(job)).To(Equal([4]int16{110, 220, 330, 440}))
	})

	It("should compute scenario B", func() {
		step(c, 0)
		stepAll(c, 2, 2, 2, 2)
		stepAll(c, 0, 0, 0, 0)
		step(c, 10)
		Expect(c.PE(0).Acc).To(Equal(int16(20)))
		Expect(c.PE(3).Acc).To(BeZero())

		stepAll(c, 20, 30, 40, 0, 0, 0)

		var drained []int16
		for k := 0; k < systolic.DrainCycles; k++ {
			drained = append(drained, c.Output().Result())
			step(c, 0)
		}
		Expect(drained).To(Equal([]int16{200, 200, 200, 200}))
	})

	It("should return to IDLE when reset mid-compute and drain nothing stale", func() {
		step(c, 0)
		stepAll(c, 9, 9, 9, 9)
		stepAll(c, 50, 50, 50, 50)
		stepAll(c, 3, 3, 3)
		Expect(c.State()).To(Equal(systolic.Compute))

		c.Step(systolic.ResetPins().Inputs())
		Expect(c.State()).To(Equal(systolic.Idle))
		Expect(c.Snapshot().PEs).To(Equal(systolic.Array{}))
		Expect(c.Snapshot().Phase).To(BeZero())

		step(c, 0)
		Expect(c.State()).To(Equal(systolic.LoadWeight))

		results := c.RunJob(systolic.Job{Biases: [4]int8{5, 6, 7, 8}})
		Expect(results).To(Equal([4]int16{5, 6, 7, 8}))
	})

	It("should let reset win over a low enable", func() {
		step(c, 0)
		stepAll(c, 1, 2)
		c.Step(systolic.Inputs{RstN: false, Ena: false})
		Expect(c.State()).To(Equal(systolic.Idle))
		Expect(c.PE(0).Weight).To(BeZero())
	})

	It("should freeze while enable is low and resume where it stopped", func() {
		job := systolic.Job{
			Weights:     [4]int8{3, -2, 7, 1},
			Biases:      [4]int8{-5, 4, 0, 100},
			Activations: [7]int8{1, -2, 3, -4, 5, -6, 7},
		}
		reference := systolic.NewController()
		resetController(reference)
		expected := reference.RunJob(job)

		step(c, 0)
		var results [4]int16
		for i, b := range job.Stimulus() {
			if i == 2 || i == 6 || i == 10 || i == 16 {
				before := c.Snapshot()
				for h := 0; h < 3; h++ {
					c.Step(systolic.HoldPins().Inputs())
				}
				after := c.Snapshot()
				after.Cycle = before.Cycle
				Expect(after).To(Equal(before))
			}
			if out := c.Output(); out.Valid {
				results[out.Lane] = out.Result()
			}
			step(c, b)
		}

		Expect(results).To(Equal(expected))
	})

	It("should ignore the auxiliary bus", func() {
		job := systolic.Job{
			Weights:     [4]int8{1, 1, 1, 1},
			Activations: [7]int8{1, 2, 3, 4, 5, 6, 7},
		}
		step(c, 0)
		for _, b := range job.Stimulus() {
			c.Step(systolic.Inputs{RstN: true, Ena: true, Data: b, Aux: 0xA5})
		}

		fresh := systolic.NewController()
		Expect(c.Snapshot().PEs).To(Equal(func() systolic.Array {
			fresh.RunJob(job)
			return fresh.Snapshot().PEs
		}()))
	})

	It("should run jobs back to back without carrying accumulators", func() {
		first := systolic.Job{
			Weights:     [4]int8{1, 2, 3, 4},
			Biases:      [4]int8{10, 20, 30, 40},
			Activations: [7]int8{10, 20, 30, 40, 0, 0, 0},
		}
		second := systolic.Job{
			Weights:     [4]int8{2, 2, 2, 2},
			Activations: [7]int8{10, 20, 30, 40, 0, 0, 0},
		}

		Expect(c.RunJob(first)).To(Equal([4]int16{110, 220, 330, 440}))
		Expect(c.RunJob(second)).To(Equal([4]int16{200, 200, 200, 200}))
	})

	It("should count every edge", func() {
		c.Step(systolic.HoldPins().Inputs())
		step(c, 0)
		Expect(c.Cycle()).To(Equal(uint64(4)))
	})
})
