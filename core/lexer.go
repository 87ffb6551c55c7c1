package core

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/sarchlab/avm/instr"
)

const maxLineLength = 1024 * 1024

var valuePattern = regexp.MustCompile(`^([A-Za-z0-9]+)\(([^()]*)\)$`)

// Lex reads a program from r, one token per line. The first token is the
// origin sentinel. Lexing stops at the first malformed line, which is
// returned as a *Diagnostic wrapping a *LexicalError.
func Lex(r io.Reader, origin Origin) (Program, error) {
	prog := Program{
		Tokens: []Token{{Kind: TokenOrigin, Origin: origin}},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		prog.Lines++

		tok := lexLine(scanner.Text(), prog.Lines)
		if tok.Kind == TokenInvalid {
			return prog, &Diagnostic{
				Line: tok.Line,
				Err:  &LexicalError{Raw: tok.Raw},
			}
		}

		prog.Tokens = append(prog.Tokens, tok)
	}

	if err := scanner.Err(); err != nil {
		return prog, fmt.Errorf("failed to read program: %w", err)
	}

	return prog, nil
}

// LexString lexes a program held in memory.
func LexString(src string, origin Origin) (Program, error) {
	return Lex(strings.NewReader(src), origin)
}

func lexLine(raw string, line int) Token {
	tok := Token{Line: line, Raw: raw}

	fields := strings.Fields(raw)
	switch {
	case len(fields) == 0:
		tok.Kind = TokenBlank
		return tok
	case len(fields) == 1 && fields[0] == ";;":
		tok.Kind = TokenEndOfProgram
		return tok
	case strings.HasPrefix(fields[0], ";"):
		tok.Kind = TokenComment
		return tok
	}

	tok.Kind = TokenInvalid

	op, ok := instr.ParseOpcode(fields[0])
	if !ok {
		return tok
	}

	inst := instr.Inst{Opcode: op, Line: line, Raw: raw}
	rest := fields[1:]

	if op.TakesValue() {
		if len(rest) == 0 {
			return tok
		}

		m := valuePattern.FindStringSubmatch(rest[0])
		if m == nil {
			return tok
		}

		t, ok := instr.ParseType(m[1])
		if !ok {
			return tok
		}

		inst.Type = t
		inst.Literal = m[2]
		rest = rest[1:]
	}

	if len(rest) > 0 && !strings.HasPrefix(rest[0], ";") {
		return tok
	}

	tok.Kind = TokenInstruction
	tok.Inst = inst
	return tok
}
