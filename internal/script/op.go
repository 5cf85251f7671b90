package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Kind string

const (
	KindAdd      Kind = "add"
	KindRemove   Kind = "remove"
	KindIndexOf  Kind = "indexof"
	KindContains Kind = "contains"
	KindFirst    Kind = "first"
	KindLast     Kind = "last"
	KindAt       Kind = "at"
	KindIter     Kind = "iter"
	KindClear    Kind = "clear"
	KindLen      Kind = "len"
	KindCap      Kind = "cap"
)

var arity = map[Kind]int{
	KindAdd:      1,
	KindRemove:   1,
	KindIndexOf:  1,
	KindContains: 1,
	KindAt:       1,
	KindFirst:    0,
	KindLast:     0,
	KindIter:     0,
	KindClear:    0,
	KindLen:      0,
	KindCap:      0,
}

// Op is a single parsed array operation.
type Op struct {
	Kind  Kind
	Arg   string
	Index int
}

func (o Op) String() string {
	if arity[o.Kind] == 0 {
		return string(o.Kind)
	}
	return string(o.Kind) + " " + o.Arg
}

// Parse reads one op line such as "add x" or "at 3".
func Parse(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, errors.New("empty op")
	}

	kind := Kind(strings.ToLower(fields[0]))
	n, ok := arity[kind]
	if !ok {
		return Op{}, fmt.Errorf("unknown op %q", fields[0])
	}
	if len(fields)-1 != n {
		return Op{}, fmt.Errorf("op %s takes %d argument(s), got %d", kind, n, len(fields)-1)
	}

	op := Op{Kind: kind}
	if n == 1 {
		op.Arg = fields[1]
	}
	if kind == KindAt {
		idx, err := strconv.Atoi(op.Arg)
		if err != nil {
			return Op{}, fmt.Errorf("op at: bad index %q", op.Arg)
		}
		op.Index = idx
	}
	return op, nil
}

// ParseAll parses every line, reporting the first failure with its position.
func ParseAll(lines []string) ([]Op, error) {
	ops := make([]Op, 0, len(lines))
	for i, line := range lines {
		op, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
