/* Package main: iForth -- a small FORTH-family interpreter

iForth programs are whitespace-delimited streams of tokens. Execution
manipulates two integer stacks: the data stack, on which arithmetic and the
print words operate, and the return stack, which holds token addresses for
subroutine return and doubles as scratch space via >r and r>.

A token address is an index into the immutable token stream produced by the
lexer; the instruction pointer is such an index, and branches, calls,
returns, and labels all resolve to them.

Numbers push themselves: decimal, hex with an 0x prefix, or octal with a 0
prefix, each optionally signed. Operators pop the right operand then the
left, so

	2 1 - .

prints 1. The comparison and logical operators push 0 or 1.

Strings push a C-style null-terminated layout: a terminating 0, then the
bytes arranged so that popping yields the string in order. .s pops and
prints bytes until it pops the terminator, so

	"hello world\n" .s

prints the greeting; ."…" is the fused form of the same thing. The other
print words are . (pop and print a decimal, with newline), .c (pop and
print one byte), cr (newline), and .d (dump the whole machine state).

Words are defined with a colon definition

	: fib 2 < if else 1 - dup 1 - then ;

which is skipped at its textual position and becomes callable afterwards. A
call pushes the address of the token after the call site onto the return
stack; exit -- and the closing ; -- pops it back into the instruction
pointer. Intrinsic names are case folded, so IF and if are the same word;
user-defined names are looked up exactly as written.

Control flow inside a word is if/else/then, which nest lexically. Between
words there are labels and branches: [top] names the position of the label
token itself, and

	[top] 1 . branch top

loops forever. branch and ?branch consume their target token; an identifier
target resolves through the label table and then the dictionary, while a
number target is applied as an offset relative to the number token's own
position (an artifact worth knowing about: programs that care where an
offset is measured from should use labels).

The interpreter exits with the top of the data stack as its status, 0 when
the stack is empty. Any fault -- stack underflow, an undefined word,
division by zero, a branch to a missing label -- prints the offending token
and a full machine dump to standard error and exits with status 1; there is
no catching mechanism.

Each command line argument names a source file; the files are concatenated
in argument order, and the argument - reads standard input in their place.
With no arguments a small builtin demo runs.
*/
package main
