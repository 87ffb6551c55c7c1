package verify

import (
	"fmt"

	"github.com/sarchlab/avm/core"
	"github.com/sarchlab/avm/instr"
)

// Validate checks a program and returns its instructions. The first
// problem found is returned as a *core.Diagnostic.
func Validate(prog core.Program) (*Result, error) {
	if err := checkTerminator(prog); err != nil {
		return nil, err
	}

	res := &Result{}
	depth := 0

	for _, tok := range prog.Tokens {
		if tok.Kind != core.TokenInstruction {
			continue
		}

		inst := tok.Inst

		if inst.Opcode.TakesValue() {
			if _, err := instr.Create(inst.Type, inst.Literal); err != nil {
				return nil, &core.Diagnostic{Line: inst.Line, Err: err}
			}
		}

		next, ok := inst.Opcode.Effect().Apply(depth)
		if !ok {
			return nil, &core.Diagnostic{
				Line: inst.Line,
				Err:  &core.StackUnderflowError{Opcode: inst.Opcode},
			}
		}

		depth = next
		res.MaxDepth = max(res.MaxDepth, depth)
		res.Insts = append(res.Insts, inst)
	}

	return res, nil
}

// checkTerminator makes sure the last meaningful line of the program is the
// terminator required by its origin. Blank and comment lines after the
// terminator are ignored.
func checkTerminator(prog core.Program) error {
	var last *core.Token
	for i := len(prog.Tokens) - 1; i >= 0; i-- {
		tok := &prog.Tokens[i]
		if tok.Kind == core.TokenBlank || tok.Kind == core.TokenComment {
			continue
		}
		if tok.Kind != core.TokenOrigin {
			last = tok
		}
		break
	}

	switch prog.Origin() {
	case core.File:
		if last != nil && last.Kind == core.TokenInstruction && last.Inst.Opcode == instr.Exit {
			return nil
		}
		return missingTerminator(prog, `"exit"`)
	default:
		if last != nil && last.Kind == core.TokenEndOfProgram {
			return nil
		}
		return missingTerminator(prog, `";;"`)
	}
}

func missingTerminator(prog core.Program, terminator string) error {
	return &core.Diagnostic{
		Line: prog.Lines,
		Err: &core.GrammarError{
			Msg: fmt.Sprintf("missing terminator, program must end with %s", terminator),
		},
	}
}
