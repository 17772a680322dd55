package aig

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadAAG parses an ASCII AIGER (aag) netlist and returns a structurally
// hashed network. Because of hashing and constant folding the resulting
// object IDs need not match the AAG variable numbering.
func ReadAAG(r io.Reader) (*Network, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	header, err := readAAGHeader(sc)
	if err != nil {
		return nil, err
	}

	n := NewNetwork()

	// varLit maps AAG variable numbers to network literals.
	varLit := make([]Lit, header.maxVar+1)
	for i := range varLit {
		varLit[i] = -1
	}
	varLit[0] = ConstFalse

	mapLit := func(aagLit int) (Lit, error) {
		v := aagLit >> 1
		if v > header.maxVar || varLit[v] < 0 {
			return 0, &NetworkError{Op: "ReadAAG", Cause: fmt.Errorf("%w: literal %d", ErrBadLiteral, aagLit)}
		}
		l := varLit[v]
		if aagLit&1 == 1 {
			l = l.Not()
		}
		return l, nil
	}

	inputs := make([]int, 0, header.nInputs)
	latches := make([][2]int, 0, header.nLatches)
	outputs := make([]int, 0, header.nOutputs)

	for i := 0; i < header.nInputs; i++ {
		vals, err := readInts(sc, 1)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, vals[0])
	}
	for i := 0; i < header.nLatches; i++ {
		vals, err := readInts(sc, 2)
		if err != nil {
			return nil, err
		}
		latches = append(latches, [2]int{vals[0], vals[1]})
	}
	for i := 0; i < header.nOutputs; i++ {
		vals, err := readInts(sc, 1)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, vals[0])
	}

	for _, lit := range inputs {
		if lit&1 == 1 || lit>>1 > header.maxVar {
			return nil, &NetworkError{Op: "ReadAAG", Cause: fmt.Errorf("%w: input %d", ErrBadLiteral, lit)}
		}
		varLit[lit>>1] = n.AddCI()
	}
	for _, lp := range latches {
		if lp[0]&1 == 1 || lp[0]>>1 > header.maxVar {
			return nil, &NetworkError{Op: "ReadAAG", Cause: fmt.Errorf("%w: latch %d", ErrBadLiteral, lp[0])}
		}
		varLit[lp[0]>>1] = n.AddLatchOutput()
	}

	for i := 0; i < header.nAnds; i++ {
		vals, err := readInts(sc, 3)
		if err != nil {
			return nil, err
		}
		lhs, rhs0, rhs1 := vals[0], vals[1], vals[2]
		if lhs&1 == 1 || lhs>>1 > header.maxVar || varLit[lhs>>1] >= 0 {
			return nil, &NetworkError{Op: "ReadAAG", Cause: fmt.Errorf("%w: gate output %d", ErrBadGate, lhs)}
		}
		f0, err := mapLit(rhs0)
		if err != nil {
			return nil, err
		}
		f1, err := mapLit(rhs1)
		if err != nil {
			return nil, err
		}
		varLit[lhs>>1] = n.AddAnd(f0, f1)
	}

	for _, lit := range outputs {
		l, err := mapLit(lit)
		if err != nil {
			return nil, err
		}
		n.AddCO(l)
	}
	for _, lp := range latches {
		l, err := mapLit(lp[1])
		if err != nil {
			return nil, err
		}
		n.AddLatchInput(l)
	}

	return n, nil
}

// LoadAAG reads an aag netlist from a file.
func LoadAAG(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open netlist: %w", err)
	}
	defer f.Close()
	return ReadAAG(f)
}

type aagHeader struct {
	maxVar   int
	nInputs  int
	nLatches int
	nOutputs int
	nAnds    int
}

func readAAGHeader(sc *bufio.Scanner) (*aagHeader, error) {
	if !sc.Scan() {
		return nil, &NetworkError{Op: "ReadAAG", Cause: ErrBadHeader}
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 6 || fields[0] != "aag" {
		return nil, &NetworkError{Op: "ReadAAG", Cause: ErrBadHeader}
	}
	vals := make([]int, 5)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, &NetworkError{Op: "ReadAAG", Cause: ErrBadHeader}
		}
		vals[i] = v
	}
	h := &aagHeader{maxVar: vals[0], nInputs: vals[1], nLatches: vals[2], nOutputs: vals[3], nAnds: vals[4]}
	if h.nInputs+h.nLatches+h.nAnds > h.maxVar {
		return nil, &NetworkError{Op: "ReadAAG", Cause: ErrBadHeader}
	}
	return h, nil
}

func readInts(sc *bufio.Scanner, want int) ([]int, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != want {
			return nil, &NetworkError{Op: "ReadAAG", Cause: fmt.Errorf("expected %d values, got %q", want, line)}
		}
		vals := make([]int, want)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return nil, &NetworkError{Op: "ReadAAG", Cause: fmt.Errorf("bad literal %q", f)}
			}
			vals[i] = v
		}
		return vals, nil
	}
	return nil, &NetworkError{Op: "ReadAAG", Cause: io.ErrUnexpectedEOF}
}
