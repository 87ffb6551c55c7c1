package core_test

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/avm/core"
	"github.com/sarchlab/avm/instr"
)

type recordingHook struct {
	lines  []int
	depths []int
}

func (h *recordingHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != core.HookPosInstExecuted {
		return
	}
	h.lines = append(h.lines, ctx.Item.(instr.Inst).Line)
	h.depths = append(h.depths, len(ctx.Detail.([]instr.Operand)))
}

func mustLex(src string) []instr.Inst {
	prog, err := core.LexString(src, core.File)
	Expect(err).NotTo(HaveOccurred())
	return prog.Instructions()
}

var _ = Describe("Core", func() {
	var (
		out   *bytes.Buffer
		diags []*core.Diagnostic
		b     core.Builder
	)

	BeforeEach(func() {
		out = new(bytes.Buffer)
		diags = nil
		b = core.NewBuilder().
			WithOutput(out).
			WithDiagnosticHandler(func(d *core.Diagnostic) {
				diags = append(diags, d)
			})
	})

	run := func(src string) (*core.Core, error) {
		c := b.Build("Core")
		c.MapProgram(mustLex(src))
		return c, c.Run()
	}

	It("should push and dump from the top", func() {
		c, err := run("push int8(1)\npush int16(2)\npush double(3.5)\ndump\nexit")

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal("3.5\n2\n1\n"))
		Expect(c.Halted()).To(BeTrue())
		Expect(c.Steps()).To(Equal(5))
	})

	It("should leave the stack unchanged on dump", func() {
		c, err := run("push int8(4)\npush int8(9)\ndump\ndump\nexit")

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal("9\n4\n9\n4\n"))
		Expect(c.Stack()).To(HaveLen(2))
	})

	It("should pop the top operand", func() {
		c, err := run("push int8(1)\npush int8(2)\npop\nexit")

		Expect(err).NotTo(HaveOccurred())
		Expect(c.Stack()).To(HaveLen(1))
		Expect(c.Stack()[0].Literal()).To(Equal("1"))
	})

	It("should pop the right operand first", func() {
		c, err := run("push int32(10)\npush int32(3)\nsub\nexit")

		Expect(err).NotTo(HaveOccurred())
		Expect(c.Stack()[0].Type()).To(Equal(instr.Int32))
		Expect(c.Stack()[0].Literal()).To(Equal("7"))
	})

	It("should print an int8 as a character", func() {
		c, err := run("push int8(72)\nprint\npush int8(105)\nprint\nexit")

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal("Hi"))
		Expect(c.Stack()).To(HaveLen(2))
	})

	It("should refuse to print other types", func() {
		_, err := run("push int16(72)\nprint\ndump\nexit")

		var typeErr *core.TypeError
		Expect(errors.As(err, &typeErr)).To(BeTrue())
		Expect(err.Error()).To(Equal("Line 2: Error : print requires Int8"))
		Expect(out.String()).To(BeEmpty())
	})

	It("should stop at exit", func() {
		c, err := run("push int8(1)\nexit\ndump\nexit")

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(BeEmpty())
		Expect(c.Steps()).To(Equal(2))
	})

	It("should report a failed assertion and continue", func() {
		c, err := run("push int8(1)\nassert int16(1)\nassert int8(1)\ndump\nexit")

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal("1\n"))
		Expect(c.Stack()).To(HaveLen(1))

		Expect(diags).To(HaveLen(1))
		Expect(diags[0].Line).To(Equal(2))
		Expect(diags[0].Error()).To(Equal(
			"Line 2: Error : assertion failed: expected int16(1), got int8(1)"))
	})

	It("should stop on division by zero", func() {
		c, err := run("push double(1)\npush int8(0)\ndiv\ndump\nexit")

		var divErr *instr.DivideByZeroError
		Expect(errors.As(err, &divErr)).To(BeTrue())
		Expect(err.Error()).To(Equal("Line 3: Error : division by zero"))
		Expect(out.String()).To(BeEmpty())
		Expect(c.Halted()).To(BeTrue())
	})

	It("should detect underflow in an unchecked program", func() {
		_, err := run("push int8(1)\nadd\nexit")

		var underflow *core.StackUnderflowError
		Expect(errors.As(err, &underflow)).To(BeTrue())
		Expect(underflow.Opcode).To(Equal(instr.Add))
	})

	It("should stop at the step limit", func() {
		b = b.WithMaxSteps(3)

		c, err := run("push int8(1)\npush int8(1)\nadd\ndump\nexit")

		var limitErr *core.StepLimitError
		Expect(errors.As(err, &limitErr)).To(BeTrue())
		Expect(limitErr.Limit).To(Equal(3))
		Expect(c.Steps()).To(Equal(3))
		Expect(out.String()).To(BeEmpty())
	})

	It("should panic on a negative step limit", func() {
		Expect(func() { b.WithMaxSteps(-1) }).To(Panic())
	})

	It("should invoke hooks after every instruction", func() {
		hook := &recordingHook{}
		b = b.WithHook(hook)

		_, err := run("; header\npush int8(1)\npush int8(2)\nadd\nexit")

		Expect(err).NotTo(HaveOccurred())
		Expect(hook.lines).To(Equal([]int{2, 3, 4, 5}))
		Expect(hook.depths).To(Equal([]int{1, 2, 1, 1}))
	})

	It("should not share hooks between builders", func() {
		first := &recordingHook{}
		second := &recordingHook{}

		base := b.WithHook(first)
		_ = base.WithHook(second)
		c := base.WithHook(&recordingHook{}).Build("Core")
		c.MapProgram(mustLex("exit"))

		Expect(c.Run()).To(Succeed())
		Expect(first.lines).To(Equal([]int{1}))
		Expect(second.lines).To(BeEmpty())
	})

	It("should finish a program without exit", func() {
		c, err := run("push int8(3)\ndump")

		Expect(err).NotTo(HaveOccurred())
		Expect(c.Halted()).To(BeTrue())
		Expect(out.String()).To(Equal("3\n"))
	})
})

var _ = Describe("StackTracer", func() {
	It("should render the stack after each instruction", func() {
		trace := new(bytes.Buffer)

		c := core.NewBuilder().
			WithOutput(new(bytes.Buffer)).
			WithHook(core.NewStackTracer(trace)).
			Build("Core")
		c.MapProgram(mustLex("push int8(5)\npush float(2.5)\nexit"))

		Expect(c.Run()).To(Succeed())

		text := trace.String()
		Expect(text).To(ContainSubstring("Line 1: push int8(5)"))
		Expect(text).To(ContainSubstring("Line 2: push float(2.5)"))
		Expect(text).To(ContainSubstring("2.5"))
		Expect(text).To(ContainSubstring("float"))
	})

	It("should keep long titles on one line", func() {
		title := "Line 12: assert double(-0.000123456789)"
		stack := []instr.Operand{}
		o, err := instr.Create(instr.Int8, "1")
		Expect(err).NotTo(HaveOccurred())
		stack = append(stack, o)

		lines := strings.Split(core.RenderStack(title, stack), "\n")

		Expect(lines[0]).To(Equal(title))
		Expect(lines[1:]).NotTo(ContainElement(ContainSubstring("0.000123456789")))
	})

	It("should mark an empty stack", func() {
		Expect(core.RenderStack("empty", nil)).To(ContainSubstring("(empty)"))
	})
})
