package codegen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// errTrap is returned when the machine executes a faulting `idiv`.
var errTrap = errors.New("divide error")

// machine is a model of the subset of x86-64 the generator emits.  Only the
// low 32 bits of each register are modeled: every instruction the generator
// emits either operates on 32-bit registers or moves whole 64-bit stack slots
// whose upper halves are never read.
type machine struct {
	eax, edi, edx int32

	stack []int32

	// operands of the last `cmp`
	cmpLhs, cmpRhs int32

	// steps is the number of instructions executed.
	steps int
}

// run executes the program produced by the generator and returns the value
// left in `%eax` when the entry point returns.
func run(asm, entry string) (int32, error) {
	lines := strings.Split(strings.TrimSuffix(asm, "\n"), "\n")

	if len(lines) < 3 || lines[0] != "  .globl "+entry || lines[1] != entry+":" {
		return 0, fmt.Errorf("missing entry point prologue in:\n%s", asm)
	}

	m := &machine{}
	for _, line := range lines[2:] {
		if !strings.HasPrefix(line, "  ") {
			return 0, fmt.Errorf("instruction not indented: %q", line)
		}

		done, err := m.exec(strings.TrimSpace(line))
		if err != nil {
			return 0, err
		}

		m.steps++
		if done {
			if len(m.stack) != 0 {
				return 0, fmt.Errorf("returned with %d values on the stack", len(m.stack))
			}

			return m.eax, nil
		}
	}

	return 0, errors.New("program fell off the end without `ret`")
}

// exec executes a single instruction.  It returns true on `ret`.
func (m *machine) exec(instr string) (bool, error) {
	mnemonic, operands := instr, ""
	if i := strings.IndexByte(instr, ' '); i >= 0 {
		mnemonic, operands = instr[:i], instr[i+1:]
	}

	switch mnemonic + " " + operands {
	case "push %rax":
		m.stack = append(m.stack, m.eax)
		return false, nil
	case "pop %rdi":
		if len(m.stack) == 0 {
			return false, errors.New("pop from empty stack")
		}

		m.edi = m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		return false, nil
	case "neg %eax":
		m.eax = -m.eax
		return false, nil
	case "add %edi, %eax":
		m.eax += m.edi
		return false, nil
	case "sub %edi, %eax":
		m.eax -= m.edi
		return false, nil
	case "imul %edi, %eax":
		m.eax *= m.edi
		return false, nil
	case "cdq ":
		if m.eax < 0 {
			m.edx = -1
		} else {
			m.edx = 0
		}
		return false, nil
	case "idiv %edi":
		return false, m.idiv()
	case "cmp %edi, %eax":
		m.cmpLhs, m.cmpRhs = m.eax, m.edi
		return false, nil
	case "sete %al":
		m.setAL(m.cmpLhs == m.cmpRhs)
		return false, nil
	case "setne %al":
		m.setAL(m.cmpLhs != m.cmpRhs)
		return false, nil
	case "setl %al":
		m.setAL(m.cmpLhs < m.cmpRhs)
		return false, nil
	case "setle %al":
		m.setAL(m.cmpLhs <= m.cmpRhs)
		return false, nil
	case "movzb %al, %eax":
		m.eax &= 0xff
		return false, nil
	case "ret ":
		return true, nil
	}

	if mnemonic == "mov" && strings.HasPrefix(operands, "$") && strings.HasSuffix(operands, ", %eax") {
		n, err := strconv.ParseInt(strings.TrimSuffix(operands[1:], ", %eax"), 10, 32)
		if err != nil {
			return false, fmt.Errorf("bad immediate in %q: %w", instr, err)
		}

		m.eax = int32(n)
		return false, nil
	}

	return false, fmt.Errorf("unknown instruction: %q", instr)
}

// idiv divides `%edx:%eax` by `%edi`.
func (m *machine) idiv() error {
	if m.edi == 0 {
		return errTrap
	}

	dividend := int64(m.edx)<<32 | int64(uint32(m.eax))
	quotient := dividend / int64(m.edi)
	if quotient != int64(int32(quotient)) {
		return errTrap
	}

	m.eax = int32(quotient)
	m.edx = int32(dividend % int64(m.edi))
	return nil
}

// setAL sets the low byte of `%eax` to 1 or 0.
func (m *machine) setAL(b bool) {
	m.eax &^= 0xff
	if b {
		m.eax |= 1
	}
}
