package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"
	"time"
)

// defaultProgram runs when no source arguments are given.
const defaultProgram = `
  : FIB 2 < IF ELSE 1 - DUP 1 - THEN ;
  : HELLO "hello world\n" .s ;
  HELLO 1 2 + .
`

func main() {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var teeName string
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&teeName, "tee", "", "copy output to a file")
	flag.Parse()

	source, err := readSources(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var opts = []VMOption{
		WithSource(source),
		WithOutput(os.Stdout),
	}
	if trace {
		opts = append(opts, WithLogf(log.Printf))
	}
	var tee *os.File
	if teeName != "" {
		tee, err = os.Create(teeName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		opts = append(opts, WithTee(tee))
	}
	vm := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	code, err := vm.Run(ctx)
	if tee != nil {
		if cerr := tee.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		vm.dump(os.Stderr)
		os.Exit(1)
	}
	os.Exit(code)
}

// readSources concatenates the named files in argument order to form the
// source buffer; the name "-" reads standard input instead of a file.
func readSources(args []string) (string, error) {
	if len(args) == 0 {
		return defaultProgram, nil
	}
	var sb strings.Builder
	for _, name := range args {
		if name == "-" {
			buf, err := ioutil.ReadAll(os.Stdin)
			if err != nil {
				return "", err
			}
			sb.Write(buf)
			continue
		}
		buf, err := ioutil.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("couldn't open file %v: %w", name, err)
		}
		sb.Write(buf)
	}
	return sb.String(), nil
}
