package main

// Intrinsics are looked up by lowercased identifier, after operators and
// before the user dictionary, so DUP and dup are the same word and user
// definitions cannot shadow a builtin.
var intrinsics = map[string]func(vm *VM){
	"dup":     (*VM).dup,
	"swap":    (*VM).swap,
	"over":    (*VM).over,
	"rot":     (*VM).rot,
	"drop":    (*VM).drop,
	"clear":   (*VM).clear,
	"if":      (*VM).interpIf,
	"else":    (*VM).interpElse,
	"then":    (*VM).then,
	"branch":  (*VM).branch,
	"?branch": (*VM).condBranch,
	"cr":      (*VM).cr,
	"exit":    (*VM).exit,
	">r":      (*VM).toR,
	"r>":      (*VM).fromR,
	"r@":      (*VM).fetchR,
	"rdrop":   (*VM).rdrop,
	"rclear":  (*VM).rclear,
}

//// Stack words

// dup ( a -- a a )
func (vm *VM) dup() { vm.push(vm.top()); vm.next() }

// swap ( a b -- b a )
func (vm *VM) swap() {
	b := vm.pop()
	a := vm.pop()
	vm.push(b)
	vm.push(a)
	vm.next()
}

// over ( a b -- a b a )
func (vm *VM) over() {
	b := vm.pop()
	a := vm.pop()
	vm.push(a)
	vm.push(b)
	vm.push(a)
	vm.next()
}

// rot ( a b c -- b c a )
func (vm *VM) rot() {
	c := vm.pop()
	b := vm.pop()
	a := vm.pop()
	vm.push(b)
	vm.push(c)
	vm.push(a)
	vm.next()
}

// drop ( a -- )
func (vm *VM) drop() { vm.pop(); vm.next() }

// clear ( ... -- )
func (vm *VM) clear() { vm.stack = vm.stack[:0]; vm.next() }

//// Control flow

// interpIf pops the flag: nonzero falls through into the true branch; zero
// skips forward past the matching else or then.
func (vm *VM) interpIf() {
	if vm.pop() != 0 {
		vm.next()
		return
	}
	vm.absBranch(vm.scanMatch(true))
	vm.next()
}

// interpElse is reached only off the end of a taken true branch: skip
// forward past the matching then.
func (vm *VM) interpElse() {
	vm.absBranch(vm.scanMatch(false))
	vm.next()
}

// then ( -- )
func (vm *VM) then() { vm.next() }

// scanMatch walks forward from the current token for the keyword closing
// the active branch: else or then for an untaken if, then alone for the
// tail of a taken true branch. Nested if/then pairs are skipped with a
// depth counter; else leaves depth unchanged.
func (vm *VM) scanMatch(stopAtElse bool) int {
	depth := 0
	for addr := vm.ip + 1; addr < vm.endAddr(); addr++ {
		tok := vm.tokens[addr]
		if tok.kind != tokenIdent {
			continue
		}
		switch lowered(tok.slice) {
		case "if":
			depth++
		case "else":
			if depth == 0 && stopAtElse {
				return addr
			}
		case "then":
			if depth == 0 {
				return addr
			}
			depth--
		}
	}
	if stopAtElse {
		vm.abort(errIfNoThen)
	}
	vm.abort(errElseNoThen)
	return 0
}

// branch consumes its target token. A number target applies its value as an
// offset relative to the number token's own address, not the branch word. An
// identifier target resolves through the label table, then the dictionary,
// so word entry points are branchable by name.
func (vm *VM) branch() {
	vm.next()
	if vm.atEnd() {
		vm.abort(errNoBranchTarget)
	}
	tok := vm.tokens[vm.ip]
	switch tok.kind {
	case tokenNumber:
		off, err := parseNumber(tok.slice)
		if err != nil {
			vm.abort(err)
		}
		vm.relBranch(off)
	case tokenIdent:
		if addr, ok := vm.labels[tok.slice]; ok {
			vm.absBranch(addr)
		} else if addr, ok := vm.dict[tok.slice]; ok {
			vm.absBranch(addr)
		} else {
			vm.abort(missingLabelError(tok.slice))
		}
	default:
		vm.abort(errNoBranchTarget)
	}
}

// condBranch pops a flag: nonzero branches, zero consumes and discards the
// target token.
func (vm *VM) condBranch() {
	if vm.pop() != 0 {
		vm.branch()
		return
	}
	vm.next()
	vm.next()
}

//// Output words

// cr ( -- )
func (vm *VM) cr() { vm.writeByte('\n'); vm.next() }

//// Return stack words

// >r ( a -- ) ( R: -- a )
func (vm *VM) toR() { vm.rpush(vm.pop()); vm.next() }

// r> ( -- a ) ( R: a -- )
func (vm *VM) fromR() { vm.push(vm.rpop()); vm.next() }

// r@ ( -- a ) ( R: a -- a )
func (vm *VM) fetchR() { vm.push(vm.rtop()); vm.next() }

// rdrop ( R: a -- )
func (vm *VM) rdrop() { vm.rpop(); vm.next() }

// rclear ( R: ... -- )
func (vm *VM) rclear() { vm.rstack = vm.rstack[:0]; vm.next() }
