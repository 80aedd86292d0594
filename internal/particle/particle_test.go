package particle_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/particle"
	"gonum.org/v1/gonum/spatial/r3"
)

var _ = Describe("State", func() {
	wide := dynamo.NewBox(1e6)

	newBody := func(pos r3.Vec, mass float64) particle.State {
		p, err := particle.New(0, pos, mass)
		Expect(err).NotTo(HaveOccurred())
		return p
	}

	Describe("New", func() {
		DescribeTable("rejects masses that cannot be divided by",
			func(mass float64) {
				_, err := particle.New(0, r3.Vec{}, mass)
				Expect(err).To(MatchError(dynamo.ErrInvalidMass))
			},
			Entry("zero", 0.0),
			Entry("negative", -1.0),
			Entry("NaN", math.NaN()),
			Entry("+Inf", math.Inf(1)),
		)

		It("starts at rest", func() {
			p := newBody(r3.Vec{X: 1, Y: 2, Z: 3}, 0.5)
			Expect(p.Velocity).To(Equal(r3.Vec{}))
			Expect(p.Acceleration).To(Equal(r3.Vec{}))
			Expect(p.Force).To(Equal(r3.Vec{}))
			Expect(p.Mass).To(Equal(0.5))
		})
	})

	Describe("magnitudes", func() {
		It("reports speed and acceleration lengths", func() {
			p := newBody(r3.Vec{}, 1)
			p.Velocity = r3.Vec{X: 3, Y: 4}
			p.Acceleration = r3.Vec{Y: 6, Z: 8}
			Expect(p.Speed()).To(BeNumerically("~", 5, 1e-12))
			Expect(p.AccelerationMagnitude()).To(BeNumerically("~", 10, 1e-12))
		})
	})

	Describe("Stop", func() {
		It("zeroes velocity and acceleration only", func() {
			p := newBody(r3.Vec{X: 1, Y: -1, Z: 0.5}, 2)
			p.Velocity = r3.Vec{X: 3, Y: 4, Z: 5}
			p.Acceleration = r3.Vec{X: -1, Y: 1, Z: 2}
			p.Force = r3.Vec{X: 7}

			p.Stop()

			Expect(p.Velocity).To(Equal(r3.Vec{}))
			Expect(p.Acceleration).To(Equal(r3.Vec{}))
			Expect(p.Position).To(Equal(r3.Vec{X: 1, Y: -1, Z: 0.5}))
			Expect(p.Force).To(Equal(r3.Vec{X: 7}))
			Expect(p.Mass).To(Equal(2.0))
		})
	})

	Describe("Integrate", func() {
		It("applies force/mass, then velocity, then position", func() {
			p := newBody(r3.Vec{X: 1}, 2)
			p.Velocity = r3.Vec{Y: 1}

			wrapped := p.Integrate(r3.Vec{X: 4}, wide)

			Expect(wrapped).To(BeFalse())
			Expect(p.Force).To(Equal(r3.Vec{X: 4}))
			Expect(p.Acceleration).To(Equal(r3.Vec{X: 2}))
			Expect(p.Velocity).To(Equal(r3.Vec{X: 2, Y: 1}))
			Expect(p.Position).To(Equal(r3.Vec{X: 3, Y: 1}))
		})

		It("clamps speed back to exactly MaxSpeed after the add", func() {
			p := newBody(r3.Vec{}, 1)
			p.Velocity = r3.Vec{X: particle.MaxSpeed - 1}

			p.Integrate(r3.Vec{X: 5}, wide)

			Expect(p.Velocity).To(Equal(r3.Vec{X: particle.MaxSpeed}))
			Expect(p.Position).To(Equal(r3.Vec{X: particle.MaxSpeed}))
		})

		It("keeps direction when clamping", func() {
			p := newBody(r3.Vec{}, 1)
			p.Velocity = r3.Vec{X: 900, Y: 900, Z: -900}

			p.Integrate(r3.Vec{X: 1, Y: 1, Z: -1}, wide)

			Expect(p.Speed()).To(BeNumerically("~", particle.MaxSpeed, 1e-9))
			Expect(p.Velocity.X).To(BeNumerically("~", p.Velocity.Y, 1e-9))
			Expect(p.Velocity.Z).To(BeNumerically("~", -p.Velocity.X, 1e-9))
		})

		It("never leaves speed above MaxSpeed", func() {
			p := newBody(r3.Vec{}, 0.01)
			for i := 0; i < 20; i++ {
				p.Integrate(r3.Vec{X: 50, Y: -30, Z: 10}, wide)
				Expect(p.Speed()).To(BeNumerically("<=", particle.MaxSpeed+1e-9))
			}
		})
	})

	Describe("wrapping", func() {
		box := dynamo.NewBox(2)

		It("relocates a body crossing +X and halves its velocity", func() {
			p := newBody(r3.Vec{X: 1.95}, 1)
			p.Velocity = r3.Vec{X: 0.1}

			wrapped := p.Integrate(r3.Vec{}, box)

			Expect(wrapped).To(BeTrue())
			Expect(p.Position.X).To(Equal(-box.Size + particle.WrapMargin))
			Expect(p.Velocity).To(Equal(r3.Vec{X: 0.05}))
		})

		It("relocates a body crossing -Z to the positive wall", func() {
			p := newBody(r3.Vec{Z: -1.95}, 1)
			p.Velocity = r3.Vec{Z: -0.1}

			Expect(p.Integrate(r3.Vec{}, box)).To(BeTrue())
			Expect(p.Position.Z).To(Equal(box.Size - particle.WrapMargin))
			Expect(p.Velocity.Z).To(Equal(-0.05))
		})

		It("only fires the first positive axis", func() {
			p := newBody(r3.Vec{X: 2.5, Y: 2.5}, 1)

			p.Integrate(r3.Vec{}, box)

			Expect(p.Position.X).To(Equal(-box.Size + particle.WrapMargin))
			Expect(p.Position.Y).To(Equal(2.5))
		})

		It("evaluates both sides independently but damps once", func() {
			p := newBody(r3.Vec{X: 2.3, Y: -2.3}, 1)
			p.Velocity = r3.Vec{X: 0.2, Y: -0.2}

			Expect(p.Integrate(r3.Vec{}, box)).To(BeTrue())

			Expect(p.Position.X).To(Equal(-box.Size + particle.WrapMargin))
			Expect(p.Position.Y).To(Equal(box.Size - particle.WrapMargin))
			Expect(p.Velocity).To(Equal(r3.Vec{X: 0.1, Y: -0.1}))
		})

		It("leaves bodies inside the box alone", func() {
			p := newBody(r3.Vec{X: 1, Y: -1, Z: 1.5}, 1)
			p.Velocity = r3.Vec{X: 0.1}

			Expect(p.Integrate(r3.Vec{}, box)).To(BeFalse())
			Expect(p.Velocity).To(Equal(r3.Vec{X: 0.1}))
		})
	})
})
