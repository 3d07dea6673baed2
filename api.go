package main

import (
	"context"
	"errors"
	"io"
)

func New(opts ...VMOption) *VM {
	var vm VM
	vm.apply(opts...)
	return &vm
}

// Run lexes the configured source, then interprets the token stream to
// completion. The returned code is the interpreter result: the top of the
// data stack, 0 when it is empty. Any lexer or interpreter fault comes back
// as an error; the machine state is left as it was at the fault for
// dumping.
func (vm *VM) Run(ctx context.Context) (code int, err error) {
	err = isolate("VM", func() error {
		tokens, err := lexTokens(vm.source)
		if err != nil {
			return err
		}
		vm.tokens = tokens
		code = vm.run(ctx)
		return vm.out.Flush()
	})
	var vmErr vmHaltError
	if errors.As(err, &vmErr) {
		err = vmErr.error
	}
	return code, err
}

func WithSource(src string) VMOption { return withSource(src) }
func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption    { return withTee(w) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
