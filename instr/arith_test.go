package instr_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/avm/instr"
)

func mustCreate(t instr.Type, literal string) instr.Operand {
	o, err := instr.Create(t, literal)
	Expect(err).NotTo(HaveOccurred())
	return o
}

var _ = Describe("Binary", func() {
	types := []instr.Type{
		instr.Int8, instr.Int16, instr.Int32, instr.Float, instr.Double,
	}

	It("should promote to the wider operand type", func() {
		for _, op := range []instr.Opcode{instr.Add, instr.Sub, instr.Mul, instr.Div, instr.Mod} {
			for _, a := range types {
				for _, b := range types {
					res, err := instr.Binary(op, mustCreate(a, "6"), mustCreate(b, "3"))
					Expect(err).NotTo(HaveOccurred())
					Expect(res.Type()).To(Equal(instr.Promote(a, b)),
						"%s %s %s", a, op, b)
				}
			}
		}
	})

	DescribeTable("results",
		func(op instr.Opcode, lt instr.Type, l string, rt instr.Type, r string,
			wantType instr.Type, want string) {
			res, err := instr.Binary(op, mustCreate(lt, l), mustCreate(rt, r))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Type()).To(Equal(wantType))
			Expect(res.Literal()).To(Equal(want))
		},
		Entry("int8 plus float", instr.Add, instr.Int8, "5", instr.Float, "2.5", instr.Float, "7.5"),
		Entry("left operand first", instr.Sub, instr.Int32, "10", instr.Int32, "3", instr.Int32, "7"),
		Entry("int8 wraps", instr.Add, instr.Int8, "127", instr.Int8, "1", instr.Int8, "-128"),
		Entry("wider type does not wrap", instr.Add, instr.Int8, "127", instr.Int16, "1", instr.Int16, "128"),
		Entry("integer division truncates", instr.Div, instr.Int16, "-7", instr.Int16, "2", instr.Int16, "-3"),
		Entry("float division", instr.Div, instr.Float, "7", instr.Int8, "2", instr.Float, "3.5"),
		Entry("integer mod", instr.Mod, instr.Int32, "7", instr.Int8, "3", instr.Int32, "1"),
		Entry("float mod truncates", instr.Mod, instr.Float, "7.9", instr.Float, "3.2", instr.Float, "1"),
		Entry("double mod truncates", instr.Mod, instr.Double, "-7.5", instr.Int8, "2", instr.Double, "-1"),
		Entry("double mul", instr.Mul, instr.Double, "1.5", instr.Int32, "4", instr.Double, "6"),
		Entry("promotion parses text", instr.Add, instr.Float, "2.1", instr.Double, "0", instr.Double, "2.1"),
	)

	It("should reject a zero divisor before promotion", func() {
		_, err := instr.Binary(instr.Div, mustCreate(instr.Int8, "5"), mustCreate(instr.Int8, "0"))
		Expect(err).To(Equal(&instr.DivideByZeroError{Opcode: instr.Div}))

		_, err = instr.Binary(instr.Mod, mustCreate(instr.Double, "5"), mustCreate(instr.Double, "0.0"))
		Expect(err).To(Equal(&instr.DivideByZeroError{Opcode: instr.Mod}))
	})

	It("should reject a floating divisor that truncates to zero in mod", func() {
		_, err := instr.Binary(instr.Mod, mustCreate(instr.Float, "5"), mustCreate(instr.Float, "0.5"))
		Expect(err).To(Equal(&instr.DivideByZeroError{Opcode: instr.Mod}))
	})

	It("should panic on a non arithmetic opcode", func() {
		Expect(func() {
			instr.Binary(instr.Push, mustCreate(instr.Int8, "1"), mustCreate(instr.Int8, "1"))
		}).To(Panic())
	})
})
