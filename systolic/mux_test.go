package systolic_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sysmac/systolic"
)

var _ = Describe("Output multiplexer", func() {
	DescribeTable("byte split",
		func(v int16, low, high uint8) {
			l, h := systolic.SplitResult(v)
			Expect(l).To(Equal(low))
			Expect(h).To(Equal(high))
			Expect(systolic.JoinResult(l, h)).To(Equal(v))
		},
		Entry("zero", int16(0), uint8(0x00), uint8(0x00)),
		Entry("minus one", int16(-1), uint8(0xFF), uint8(0xFF)),
		Entry("500", int16(500), uint8(0xF4), uint8(0x01)),
		Entry("most negative", int16(-32768), uint8(0x00), uint8(0x80)),
		Entry("most positive", int16(32767), uint8(0xFF), uint8(0x7F)),
	)

	It("should select without side effects", func() {
		a := systolic.Array{}
		a[2].LoadBias(-9)
		before := a

		Expect(systolic.Select(&a, 2)).To(Equal(int16(-9)))
		Expect(a).To(Equal(before))
	})

	It("should panic on a lane outside the array", func() {
		a := systolic.Array{}
		Expect(func() { systolic.Select(&a, systolic.NumLanes) }).To(Panic())
		Expect(func() { systolic.Select(&a, -1) }).To(Panic())
	})
})
