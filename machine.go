package main

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// VM interprets a lexed iForth token stream. It is the exclusive owner of
// all mutable execution state for the duration of a run: the data and return
// stacks, the user word dictionary, the label table, and the instruction
// pointer, which is an index into the token stream. End-of-stream is the
// index equal to the stream length.
type VM struct {
	tokens []token
	ip     int

	stack  []int // data stack
	rstack []int // return stack: call sites, plus >r scratch

	dict   map[string]int // word name -> first body token, case sensitive
	labels map[string]int // label name -> label token

	source string
	out    writeFlusher

	logfn func(mess string, args ...interface{})
}

//// Halt plumbing

// halt flushes pending output and aborts the run by panicking the error up
// to the Run boundary, where it is recovered into an error return.
func (vm *VM) halt(err error) {
	if vm.out != nil {
		if ferr := vm.out.Flush(); err == nil {
			err = ferr
		}
	}
	vm.logf("halt error: %v", err)
	panic(vmHaltError{err})
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

// abort halts with err wrapped around the token being interpreted.
func (vm *VM) abort(err error) {
	vm.halt(tokenError{vm.current(), err})
}

func (vm *VM) current() token {
	if vm.ip < len(vm.tokens) {
		return vm.tokens[vm.ip]
	}
	return token{}
}

//// Data stack

func (vm *VM) push(val int) { vm.stack = append(vm.stack, val) }

func (vm *VM) pop() (val int) {
	i := len(vm.stack) - 1
	if i < 0 {
		vm.abort(errDataUnderflow)
	}
	val, vm.stack = vm.stack[i], vm.stack[:i]
	return val
}

// popIf is the non-halting pop used where an empty stack is an expected
// state rather than a fault (string building, the .s drain).
func (vm *VM) popIf() (int, bool) {
	if len(vm.stack) == 0 {
		return 0, false
	}
	return vm.pop(), true
}

func (vm *VM) top() int {
	if len(vm.stack) == 0 {
		vm.abort(errDataPeek)
	}
	return vm.stack[len(vm.stack)-1]
}

//// Return stack

func (vm *VM) rpush(addr int) { vm.rstack = append(vm.rstack, addr) }

func (vm *VM) rpop() (addr int) {
	i := len(vm.rstack) - 1
	if i < 0 {
		vm.abort(errRetUnderflow)
	}
	addr, vm.rstack = vm.rstack[i], vm.rstack[:i]
	return addr
}

func (vm *VM) rtop() int {
	if len(vm.rstack) == 0 {
		vm.abort(errRetPeek)
	}
	return vm.rstack[len(vm.rstack)-1]
}

//// Addressing

func (vm *VM) endAddr() int { return len(vm.tokens) }

func (vm *VM) atEnd() bool { return vm.ip >= vm.endAddr() }

func (vm *VM) next() { vm.relBranch(1) }

func (vm *VM) relBranch(off int) { vm.absBranch(vm.ip + off) }

// absBranch clamps addr into [0, len(tokens)]: negative addresses land on
// the first token, past-the-end addresses land on end-of-stream.
func (vm *VM) absBranch(addr int) {
	switch {
	case addr < 0:
		vm.ip = 0
	case addr > vm.endAddr():
		vm.ip = vm.endAddr()
	default:
		vm.ip = addr
	}
}

//// Tables

// scanLabels records every label token at its own address, so that forward
// branches resolve before the label has been visited. Visiting a label
// re-records it; last write wins.
func (vm *VM) scanLabels() {
	for addr, tok := range vm.tokens {
		if tok.kind == tokenLabel {
			vm.setLabel(tok.labelName(), addr)
		}
	}
}

func (vm *VM) setLabel(name string, addr int) {
	if vm.labels == nil {
		vm.labels = make(map[string]int)
	}
	vm.labels[name] = addr
}

func (vm *VM) define(name string, addr int) {
	if vm.dict == nil {
		vm.dict = make(map[string]int)
	}
	vm.dict[name] = addr
	vm.logf("define %v -> @%v", name, addr)
}

//// Run loop

// run pre-scans labels, then interprets the token at the instruction
// pointer until it reaches end-of-stream. The result is the top of the data
// stack, 0 when empty; it becomes the process exit status.
func (vm *VM) run(ctx context.Context) int {
	vm.scanLabels()
	for !vm.atEnd() {
		vm.step()
		vm.haltif(ctx.Err())
	}
	if len(vm.stack) == 0 {
		return 0
	}
	return vm.stack[len(vm.stack)-1]
}

//// Output

func (vm *VM) writeByte(c byte) { vm.haltif(writeByte(vm.out, c)) }

func (vm *VM) writeInt(n int) {
	_, err := fmt.Fprintf(vm.out, "%v\n", n)
	vm.haltif(err)
}

func (vm *VM) dump(w io.Writer) { machineDumper{vm: vm, out: w}.dump() }

//// Logging

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}

//// Errors

type vmHaltError struct{ error }

func (err vmHaltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err vmHaltError) Unwrap() error { return err.error }

// tokenError wraps an interpreter fault with the token being interpreted.
type tokenError struct {
	tok token
	err error
}

func (te tokenError) Error() string {
	return fmt.Sprintf("error interpreting token %v: %v", te.tok, te.err)
}
func (te tokenError) Unwrap() error { return te.err }

var (
	errDataUnderflow  = errors.New("tried to pop from empty stack")
	errDataPeek       = errors.New("tried to peek empty stack")
	errRetUnderflow   = errors.New("tried to pop from empty return stack")
	errRetPeek        = errors.New("tried to peek empty return stack")
	errDivByZero      = errors.New("division by zero")
	errNoTerminator   = errors.New("no null terminator found before end of stack reached")
	errNoBranchTarget = errors.New("branch word without target")
	errIfNoThen       = errors.New("'if' with no corresponding 'then'")
	errElseNoThen     = errors.New("'else' with no corresponding 'then'")
	errExpectIdent    = errors.New("expecting identifier")
	errExpectSemi     = errors.New("expecting ';'")
	errExitNoCaller   = errors.New("exit with empty return stack")
)

type undefinedWordError string
type missingLabelError string
type invalidExitError int
type malformedOperatorError string
type kindError tokenKind

func (name undefinedWordError) Error() string {
	return fmt.Sprintf("no word named %v in dictionary.", string(name))
}
func (name missingLabelError) Error() string {
	return fmt.Sprintf("no label named %v", string(name))
}
func (addr invalidExitError) Error() string {
	return fmt.Sprintf("exit to invalid address %v", int(addr))
}
func (op malformedOperatorError) Error() string {
	return fmt.Sprintf("malformed operator %v", string(op))
}
func (kind kindError) Error() string {
	return fmt.Sprintf("invalid token kind %v", tokenKind(kind))
}
