package generate

import (
	"errors"
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// errUndefined is returned when the interpreter executes an instruction whose
// result is undefined: an `sdiv` by zero or an overflowing `sdiv`.
var errUndefined = errors.New("undefined behavior")

// interp executes the single-block entry function of a generated module by
// walking its instruction list.  Every value is held as an int32: `i1` values
// are held as 0 or 1.
type interp struct {
	vals map[value.Value]int32
}

// runFunc executes fn and returns the value it returns.
func runFunc(fn *ir.Func) (int32, error) {
	if len(fn.Blocks) != 1 {
		return 0, fmt.Errorf("expected one block, got %d", len(fn.Blocks))
	}

	in := &interp{vals: make(map[value.Value]int32)}
	block := fn.Blocks[0]

	for _, inst := range block.Insts {
		if err := in.exec(inst); err != nil {
			return 0, err
		}
	}

	ret, ok := block.Term.(*ir.TermRet)
	if !ok {
		return 0, fmt.Errorf("expected `ret` terminator, got %T", block.Term)
	}

	return in.operand(ret.X)
}

// operand returns the value of an instruction operand.
func (in *interp) operand(v value.Value) (int32, error) {
	if c, ok := v.(*constant.Int); ok {
		return int32(c.X.Int64()), nil
	}

	if x, ok := in.vals[v]; ok {
		return x, nil
	}

	return 0, fmt.Errorf("use of undefined value %v", v)
}

// operands returns the values of a binary instruction's operands.  Both must
// be `i32`.
func (in *interp) operands(x, y value.Value) (int32, int32, error) {
	if !x.Type().Equal(types.I32) || !y.Type().Equal(types.I32) {
		return 0, 0, fmt.Errorf("expected i32 operands, got %s and %s", x.Type(), y.Type())
	}

	a, err := in.operand(x)
	if err != nil {
		return 0, 0, err
	}

	b, err := in.operand(y)
	return a, b, err
}

// exec executes a single instruction.
func (in *interp) exec(inst ir.Instruction) error {
	var result int32

	switch v := inst.(type) {
	case *ir.InstAdd:
		a, b, err := in.operands(v.X, v.Y)
		if err != nil {
			return err
		}

		result = a + b
	case *ir.InstSub:
		a, b, err := in.operands(v.X, v.Y)
		if err != nil {
			return err
		}

		result = a - b
	case *ir.InstMul:
		a, b, err := in.operands(v.X, v.Y)
		if err != nil {
			return err
		}

		result = a * b
	case *ir.InstSDiv:
		a, b, err := in.operands(v.X, v.Y)
		if err != nil {
			return err
		}

		if b == 0 || (a == -1<<31 && b == -1) {
			return errUndefined
		}

		result = a / b
	case *ir.InstICmp:
		a, b, err := in.operands(v.X, v.Y)
		if err != nil {
			return err
		}

		var cond bool
		switch v.Pred {
		case enum.IPredEQ:
			cond = a == b
		case enum.IPredNE:
			cond = a != b
		case enum.IPredSLT:
			cond = a < b
		case enum.IPredSLE:
			cond = a <= b
		default:
			return fmt.Errorf("unexpected predicate %s", v.Pred)
		}

		if cond {
			result = 1
		}
	case *ir.InstZExt:
		if !v.From.Type().Equal(types.I1) || !v.To.Equal(types.I32) {
			return fmt.Errorf("unexpected zext from %s to %s", v.From.Type(), v.To)
		}

		x, err := in.operand(v.From)
		if err != nil {
			return err
		}

		result = x
	default:
		return fmt.Errorf("unexpected instruction %T", inst)
	}

	in.vals[inst.(value.Value)] = result
	return nil
}
