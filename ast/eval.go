package ast

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDivideByZero is returned when a division has a zero divisor.
	ErrDivideByZero = errors.New("division by zero")

	// ErrDivideOverflow is returned when the quotient of a division does not fit
	// in 32 bits: ie. the minimum integer divided by -1.
	ErrDivideOverflow = errors.New("division overflow")
)

// Evaluate computes the value of an expression in the signed 32-bit domain.
// Addition, subtraction, multiplication and negation wrap on overflow; division
// truncates toward zero; comparisons yield 1 or 0.
func Evaluate(expr Expr) (int32, error) {
	switch v := expr.(type) {
	case *Literal:
		return v.Value, nil
	case *Negate:
		x, err := Evaluate(v.Operand)
		if err != nil {
			return 0, err
		}

		return -x, nil
	case *BinaryOp:
		lhs, err := Evaluate(v.Lhs)
		if err != nil {
			return 0, err
		}

		rhs, err := Evaluate(v.Rhs)
		if err != nil {
			return 0, err
		}

		return evalBinary(v, lhs, rhs)
	}

	return 0, fmt.Errorf("unknown expression node: %T", expr)
}

// evalBinary applies a binary operator to two evaluated operands.
func evalBinary(bo *BinaryOp, lhs, rhs int32) (int32, error) {
	switch bo.Op {
	case OpAdd:
		return lhs + rhs, nil
	case OpSub:
		return lhs - rhs, nil
	case OpMul:
		return lhs * rhs, nil
	case OpDiv:
		if rhs == 0 {
			return 0, fmt.Errorf("%s: %w", bo.Span(), ErrDivideByZero)
		} else if lhs == math.MinInt32 && rhs == -1 {
			return 0, fmt.Errorf("%s: %w", bo.Span(), ErrDivideOverflow)
		}

		return lhs / rhs, nil
	case OpEq:
		return boolToInt(lhs == rhs), nil
	case OpNe:
		return boolToInt(lhs != rhs), nil
	case OpLt:
		return boolToInt(lhs < rhs), nil
	case OpLe:
		return boolToInt(lhs <= rhs), nil
	}

	return 0, fmt.Errorf("unknown binary operator: %s", bo.Op)
}

// boolToInt widens a truth value to 0 or 1.
func boolToInt(b bool) int32 {
	if b {
		return 1
	}

	return 0
}
