package core

import "github.com/sarchlab/avm/instr"

// Origin tells where the text of a program came from.
type Origin int

const (
	// File programs are read from a file and must end with exit.
	File Origin = iota
	// Inline programs are given as text and must end with a ;; line.
	Inline
)

func (o Origin) String() string {
	if o == File {
		return "file"
	}
	return "inline"
}

// TokenKind classifies a lexed line.
type TokenKind int

const (
	TokenOrigin TokenKind = iota // sentinel, always the first token
	TokenBlank
	TokenComment
	TokenEndOfProgram
	TokenInstruction
	TokenInvalid
)

func (k TokenKind) String() string {
	return [...]string{"origin", "blank", "comment", "end", "instruction", "invalid"}[k]
}

// Token is one physical line of a program.
type Token struct {
	Kind   TokenKind
	Line   int
	Raw    string
	Origin Origin     // Only for TokenOrigin
	Inst   instr.Inst // Only for TokenInstruction
}

// Program is the lexed form of one source.
type Program struct {
	Tokens []Token
	Lines  int // Number of physical lines read
}

// Origin returns the origin recorded by the sentinel token.
func (p Program) Origin() Origin {
	if len(p.Tokens) == 0 || p.Tokens[0].Kind != TokenOrigin {
		panic("program has no origin token")
	}
	return p.Tokens[0].Origin
}

// Instructions returns the instructions of the program in source order.
func (p Program) Instructions() []instr.Inst {
	var insts []instr.Inst
	for _, t := range p.Tokens {
		if t.Kind == TokenInstruction {
			insts = append(insts, t.Inst)
		}
	}
	return insts
}
