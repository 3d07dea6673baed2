package main

import (
	"io"
	"io/ioutil"
)

type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withOutput(ioutil.Discard),
)

func (vm *VM) apply(opts ...VMOption) {
	defaultOptions.apply(vm)
	VMOptions(opts...).apply(vm)
}

// VMOptions combines options into one; nil options are skipped.
func VMOptions(opts ...VMOption) VMOption { return vmOptions(opts) }

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type sourceOption string
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }

func withSource(src string) sourceOption  { return sourceOption(src) }
func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (src sourceOption) apply(vm *VM) {
	vm.source = string(src)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = newWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = multiWriteFlusher(vm.out, newWriteFlusher(o.Writer))
}
