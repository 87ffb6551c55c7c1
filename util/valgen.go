// Some helpers using closures to generate operand values and the programs
// that consume them
package valgen

import (
	"fmt"
	"math/rand"
	"strings"
)

// Gen returns the next value of a sequence every time it is called.
type Gen func() int64

func MakeConstGen(constant int64) Gen {
	return func() int64 {
		return constant
	}
}

func MakeIncreasingGen(start int64) Gen {
	current := start
	return func() int64 {
		current++
		return current
	}
}

// MakeRandomGen returns values drawn uniformly from [min, max].
func MakeRandomGen(r *rand.Rand, min, max int64) Gen {
	return func() int64 {
		return min + r.Int63n(max-min+1)
	}
}

// Take returns the next n values of gen.
func Take(gen Gen, n int) []int64 {
	values := make([]int64, n)
	for i := range values {
		values[i] = gen()
	}
	return values
}

// MakeReduceProgram writes a program that pushes the values as typeName,
// folds them from left to right with op, dumps the result and ends with
// terminator.
func MakeReduceProgram(typeName, op string, values []int64, terminator string) string {
	var b strings.Builder

	for i, v := range values {
		fmt.Fprintf(&b, "push %s(%d)\n", typeName, v)
		if i > 0 {
			fmt.Fprintln(&b, op)
		}
	}

	fmt.Fprintln(&b, "dump")
	fmt.Fprintln(&b, terminator)

	return b.String()
}
