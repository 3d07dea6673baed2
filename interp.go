package main

import (
	"strconv"
)

// step interprets the token at the instruction pointer. Each behavior is
// responsible for advancing the pointer (or branching) before returning.
// Dispatch is on token kind alone; identifiers fan out further to the
// operator, intrinsic, and dictionary lookups.
func (vm *VM) step() {
	tok := vm.tokens[vm.ip]
	if vm.logfn != nil {
		vm.logf("exec @%v [%v] -- s:%v r:%v", vm.ip, tok, vm.stack, vm.rstack)
	}
	switch tok.kind {
	case tokenNumber:
		vm.interpNumber(tok)
	case tokenString:
		vm.interpString(tok.stringPayload())
		vm.next()
	case tokenPrint:
		vm.interpPrint(tok)
	case tokenLabel:
		vm.setLabel(tok.labelName(), vm.ip)
		vm.next()
	case tokenStartDef:
		vm.interpDefine()
	case tokenEndDef:
		vm.exit()
	case tokenIdent:
		vm.interpIdent(tok)
	default:
		// comments never reach the evaluator
		vm.abort(kindError(tok.kind))
	}
}

func (vm *VM) interpNumber(tok token) {
	n, err := parseNumber(tok.slice)
	if err != nil {
		vm.abort(err)
	}
	vm.push(n)
	vm.next()
}

// parseNumber accepts the lexer's number forms: optional sign, then hex
// with an 0x prefix, octal with a 0 prefix, or decimal.
func parseNumber(s string) (int, error) {
	n, err := strconv.ParseInt(s, 0, strconv.IntSize)
	return int(n), err
}

// interpString pushes a C-style null-terminated string: the terminator
// first, then the payload bytes from last to first, so that popping yields
// the string in order. Escapes decode during the reverse walk: a backslash
// pops the previously pushed byte and substitutes its escape, or drops it
// outright when it is not one of n r t " \.
func (vm *VM) interpString(payload string) {
	vm.push(0)
	for i := len(payload) - 1; i >= 0; i-- {
		if payload[i] != '\\' {
			vm.push(int(payload[i]))
			continue
		}
		c, ok := vm.popIf()
		if !ok {
			vm.push('\\')
			continue
		}
		switch c {
		case 'n':
			vm.push('\n')
		case 'r':
			vm.push('\r')
		case 't':
			vm.push('\t')
		case '"':
			vm.push('"')
		case '\\':
			vm.push('\\')
		}
	}
}

// drainString pops and writes bytes until the null terminator is popped;
// running out of stack first is a fault.
func (vm *VM) drainString() {
	for {
		c, ok := vm.popIf()
		if !ok {
			vm.abort(errNoTerminator)
		}
		if c == 0 {
			return
		}
		vm.writeByte(byte(c))
	}
}

func (vm *VM) interpPrint(tok token) {
	switch arg := tok.printArg(); {
	case arg == "":
		vm.writeInt(vm.pop())
	case arg == "c":
		vm.writeByte(byte(vm.pop()))
	case arg == "d":
		vm.dump(vm.out)
	case arg == "s":
		vm.drainString()
	default: // ."…"
		vm.interpString(arg[1 : len(arg)-1])
		vm.drainString()
	}
	vm.next()
}

// interpDefine handles `:`. The definition is skipped at its textual
// position and recorded under the following identifier, pointing at the
// first body token; it becomes callable only once the closing `;` has been
// passed.
func (vm *VM) interpDefine() {
	vm.next()
	if vm.atEnd() || vm.tokens[vm.ip].kind != tokenIdent {
		vm.abort(errExpectIdent)
	}
	name := vm.tokens[vm.ip].slice
	vm.next()
	start := vm.ip
	for !vm.atEnd() && vm.tokens[vm.ip].kind != tokenEndDef {
		vm.next()
	}
	if vm.atEnd() {
		vm.abort(errExpectSemi)
	}
	vm.next()
	vm.define(name, start)
}

// exit implements both the exit word and `;`: pop the return site and jump
// to it. Addresses outside [0, len(tokens)] can only get onto the return
// stack through >r abuse; they fault rather than clamp.
func (vm *VM) exit() {
	if len(vm.rstack) == 0 {
		vm.abort(errExitNoCaller)
	}
	addr := vm.rpop()
	if addr < 0 || addr > vm.endAddr() {
		vm.abort(invalidExitError(addr))
	}
	vm.logf("exit -> @%v", addr)
	vm.absBranch(addr)
}

// interpIdent resolves an identifier: operators first, then intrinsics by
// lowercased name, then the dictionary as written.
func (vm *VM) interpIdent(tok token) {
	if opPattern.MatchString(tok.slice) {
		vm.interpOperator(tok)
		return
	}
	if fn, ok := intrinsics[lowered(tok.slice)]; ok {
		fn(vm)
		return
	}
	if addr, ok := vm.dict[tok.slice]; ok {
		vm.next()
		vm.rpush(vm.ip)
		vm.absBranch(addr)
		vm.logf("call %v @%v", tok, addr)
		return
	}
	vm.abort(undefinedWordError(tok.slice))
}

// lowered folds ASCII upper case only; intrinsic names are ASCII and user
// word names must survive untouched.
func lowered(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for ; i < len(b); i++ {
				if c := b[i]; c >= 'A' && c <= 'Z' {
					b[i] = c + 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
