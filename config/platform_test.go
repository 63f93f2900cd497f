package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/sysmac/config"
	"github.com/sarchlab/sysmac/job"
	"github.com/sarchlab/sysmac/systolic"
)

var _ = Describe("Platform", func() {
	It("should build a device with the given name", func() {
		engine := sim.NewSerialEngine()
		dev := config.DeviceBuilder{}.
			WithEngine(engine).
			WithFreq(10 * sim.MHz).
			Build("Chip")

		Expect(dev.Name()).To(Equal("Chip"))
		Expect(dev.Freq).To(Equal(10 * sim.MHz))
		Expect(dev.Snapshot().State).To(Equal(systolic.Idle))
	})

	It("should reject invalid settings", func() {
		s := job.DefaultSettings()
		s.BufferSize = 0

		_, err := config.MakePlatformBuilder().WithSettings(s).Build("P")
		Expect(err).To(MatchError(ContainSubstring("buffer_size")))
	})

	It("should run a job end to end", func() {
		s := job.DefaultSettings()
		s.BufferSize = 1

		p, err := config.MakePlatformBuilder().WithSettings(s).Build("P")
		Expect(err).ToNot(HaveOccurred())
		Expect(p.Accel.Name()).To(Equal("P.Accel"))

		p.Driver.Reset(3)
		r := p.Driver.Submit(systolic.Job{
			Weights:     [4]int8{1, 1, 1, 1},
			Biases:      [4]int8{-5, 0, 0, 0},
			Activations: [7]int8{-1, -2, -3, -4, -5, -6, -7},
		})
		p.Driver.Run()

		Expect(r.Err()).ToNot(HaveOccurred())
		Expect(r.Results).To(Equal([4]int16{-33, -21, -15, -10}))
		Expect(p.Accel.Snapshot().State).To(Equal(systolic.LoadWeight))
	})
})
