package main

import (
	"fmt"
	"io"
)

// machineDumper renders the full machine state: the token stream with
// addresses, both stacks, and the instruction pointer. The .d word writes it
// to the machine's output; the error path writes it to standard error.
type machineDumper struct {
	vm  *VM
	out io.Writer
}

func (dump machineDumper) dump() {
	fmt.Fprintf(dump.out, "========= machine state =========\n")
	fmt.Fprintf(dump.out, "token stream:\n")
	for addr, tok := range dump.vm.tokens {
		fmt.Fprintf(dump.out, "%v:[%v] ", addr, tok)
	}
	fmt.Fprintf(dump.out, "\n\ndata stack:\n")
	dump.dumpStack(dump.vm.stack)
	fmt.Fprintf(dump.out, "\nreturn stack:\n")
	dump.dumpStack(dump.vm.rstack)
	if dump.vm.atEnd() {
		fmt.Fprintf(dump.out, "\nip: %v \n", dump.vm.ip)
	} else {
		fmt.Fprintf(dump.out, "\nip: %v (%v)\n", dump.vm.ip, dump.vm.tokens[dump.vm.ip])
	}
	fmt.Fprintf(dump.out, "=================================\n")
}

// dumpStack prints deepest first, each element labeled with its zero-based
// from-top index, so the top of stack always reads as 0:v at the right edge.
func (dump machineDumper) dumpStack(s []int) {
	fmt.Fprintf(dump.out, "[")
	for i, val := range s {
		idx := len(s) - i - 1
		if idx == 0 {
			fmt.Fprintf(dump.out, "%v:%v", idx, val)
		} else {
			fmt.Fprintf(dump.out, "%v:%v ", idx, val)
		}
	}
	fmt.Fprintf(dump.out, "]\n")
}
