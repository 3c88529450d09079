package drop_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
)

var _ = Describe("ComputeCoefficients", func() {
	It("returns strictly positive mass and drag across the slider range", func() {
		for r := drop.MinDropRadius; r <= drop.MaxDropRadius; r += 0.1e-6 {
			for _, eta := range []float64{1.0e-5, 1.8e-5, 2.5e-5} {
				c := drop.ComputeCoefficients(r, eta)
				Expect(c.Mass).To(BeNumerically(">", 0))
				Expect(c.Drag).To(BeNumerically(">", 0))
				Expect(c.SlipFactor).To(BeNumerically(">=", 1))
			}
		}
	})

	It("matches the slip-corrected Stokes formula at the default drop", func() {
		r, eta := 0.9e-6, 1.8e-5
		c := drop.ComputeCoefficients(r, eta)

		kn := drop.MeanFreePath / r
		slip := 1 + kn*(drop.CunninghamA+drop.CunninghamB*math.Exp(-drop.CunninghamC/kn))
		mass := (4.0 / 3.0) * math.Pi * r * r * r * (drop.OilDensity - drop.AirDensity)

		Expect(c.SlipFactor).To(BeNumerically("~", slip, 1e-12))
		Expect(c.Mass).To(BeNumerically("~", mass, mass*1e-12))
		Expect(c.Drag).To(BeNumerically("~", 6*math.Pi*eta*r/slip, 1e-20))
	})

	It("corrects smaller drops harder", func() {
		prev := 0.0
		for r := drop.MinDropRadius; r <= drop.MaxDropRadius; r += 0.05e-6 {
			slip := drop.ComputeCoefficients(r, 1.8e-5).SlipFactor
			if prev != 0 {
				Expect(slip).To(BeNumerically("<", prev))
			}
			prev = slip
		}
	})

	It("tends to uncorrected Stokes drag for large drops", func() {
		slip := drop.ComputeCoefficients(1e-3, 1.8e-5).SlipFactor
		Expect(slip).To(BeNumerically("~", 1.0, 1e-4))
	})

	It("floors mass for degenerate radii", func() {
		c := drop.ComputeCoefficients(1e-9, 1.8e-5)
		Expect(c.Mass).To(Equal(drop.MinMass))
	})
})

var _ = Describe("State setters", func() {
	It("clamps the charge multiple into [-25, 25]", func() {
		p := drop.DefaultParameters()
		s := drop.NewState(p)

		s.SetChargeCount(-100)
		Expect(s.ChargeCount).To(Equal(drop.MinChargeCount))
		Expect(s.Charge).To(BeNumerically("~", -25*drop.ElementaryCharge, 1e-30))

		s.SetChargeCount(100)
		Expect(s.ChargeCount).To(Equal(drop.MaxChargeCount))
	})

	It("clamps the radius and refreshes the coefficients", func() {
		p := drop.DefaultParameters()
		s := drop.NewState(p)
		before := s.Drag

		s.SetRadius(99e-6, p)
		Expect(s.Radius).To(Equal(drop.MaxDropRadius))
		Expect(s.Drag).NotTo(Equal(before))
		Expect(s.Drag).To(BeNumerically(">", 0))
	})

	It("preserves the relative height across a gap change", func() {
		p := drop.DefaultParameters()
		s := drop.NewState(p)
		s.Position = p.PlateGap * 0.5

		s.SetGap(8e-3, p, true)
		Expect(p.PlateGap).To(Equal(8e-3))
		Expect(s.Position).To(BeNumerically("~", 4e-3, 1e-12))
	})

	It("resets to the documented defaults", func() {
		p := drop.DefaultParameters()
		s := drop.NewState(p)
		s.Velocity = 0.01
		s.SetChargeCount(5)

		s.Reset(p)
		Expect(s.Velocity).To(BeZero())
		Expect(s.ChargeCount).To(Equal(drop.DefaultChargeCount))
		Expect(s.Radius).To(Equal(drop.DefaultRadius))
		Expect(s.Position).To(BeNumerically("~", p.PlateGap*drop.InitialFraction, 1e-12))
	})
})
