package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_operators(t *testing.T) {
	vmTestCases{
		vmTest("add").withSource("1 2 + .").expectOutput("3\n"),
		vmTest("sub pops right then left").withSource("2 1 - .").expectOutput("1\n"),
		vmTest("mul").withSource("6 7 * .").expectOutput("42\n"),
		vmTest("div").withSource("13 3 / .").expectOutput("4\n"),
		vmTest("div truncates toward zero").withSource("-7 2 / .").expectOutput("-3\n"),
		vmTest("mod").withSource("7 3 % .").expectOutput("1\n"),
		vmTest("mod keeps dividend sign").withSource("-7 3 % .").expectOutput("-1\n"),
		vmTest("div by zero").withSource("1 0 /").expectError(errDivByZero),
		vmTest("mod by zero").withSource("1 0 %").expectError(errDivByZero),

		vmTest("and both").withSource("1 2 & .").expectOutput("1\n"),
		vmTest("and zero").withSource("0 2 & .").expectOutput("0\n"),
		vmTest("or either").withSource("0 3 | .").expectOutput("1\n"),
		vmTest("or neither").withSource("0 0 | .").expectOutput("0\n"),
		vmTest("not zero").withSource("0 ! .").expectOutput("1\n"),
		vmTest("not nonzero").withSource("5 ! .").expectOutput("0\n"),

		vmTest("eq").withSource("2 2 = .").expectOutput("1\n"),
		vmTest("eq not").withSource("2 3 = .").expectOutput("0\n"),
		vmTest("ne").withSource("2 3 <> .").expectOutput("1\n"),
		vmTest("ne not").withSource("2 2 <> .").expectOutput("0\n"),
		vmTest("lt").withSource("1 2 < .").expectOutput("1\n"),
		vmTest("lt not").withSource("2 2 < .").expectOutput("0\n"),
		vmTest("le").withSource("2 2 <= .").expectOutput("1\n"),
		vmTest("le not").withSource("3 2 <= .").expectOutput("0\n"),
		vmTest("gt").withSource("2 1 > .").expectOutput("1\n"),
		vmTest("gt not").withSource("2 2 > .").expectOutput("0\n"),
		vmTest("ge").withSource("2 2 >= .").expectOutput("1\n"),
		vmTest("ge not").withSource("1 2 >= .").expectOutput("0\n"),
		vmTest("signed compare").withSource("-3 2 < .").expectOutput("1\n"),

		vmTest("binary underflow").withSource("1 +").expectError(errDataUnderflow),
		vmTest("not underflow").withSource("!").expectError(errDataUnderflow),
	}.run(t)
}

// a b / b * a b % + reconstructs a for any b > 0
func Test_divmod_identity(t *testing.T) {
	for _, a := range []int{-17, -3, -1, 0, 1, 7, 42, 100} {
		for _, b := range []int{1, 2, 3, 7, 10} {
			src := fmt.Sprintf("%v %v / %v * %v %v %% + .", a, b, b, a, b)
			var out strings.Builder
			vm := New(WithSource(src), WithOutput(&out))
			code, err := vm.Run(context.Background())
			require.NoError(t, err, "in %q", src)
			assert.Equal(t, 0, code, "in %q", src)
			assert.Equal(t, fmt.Sprintf("%v\n", a), out.String(), "in %q", src)
		}
	}
}
