// Package day3 solves "Mull It Over": pulling mul(a,b), do() and don't()
// instructions out of corrupted memory.
package day3

import (
	"regexp"
	"slices"
	"strconv"

	"aocrunner/internal/aoc"
)

// Op is the kind of a recognised instruction.
type Op int

const (
	OpMul Op = iota
	OpDo
	OpDont
)

func (o Op) String() string {
	switch o {
	case OpMul:
		return "mul"
	case OpDo:
		return "do"
	case OpDont:
		return "don't"
	default:
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
}

// Instruction is one recognised token. A and B are only set for OpMul.
type Instruction struct {
	Op   Op
	A, B int
}

// Program is the instruction stream in input order.
type Program []Instruction

func (p Program) Clone() Program { return slices.Clone(p) }

// Operands are one to three digits; anything else is corruption.
var instructionRe = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// Day implements aoc.Day for 2024 day 3.
type Day struct{}

func (Day) ID() aoc.YearDay { return aoc.YearDay{Year: 2024, Day: 3} }

func (Day) Parse(input string) (Program, error) {
	var program Program
	for _, m := range instructionRe.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			program = append(program, Instruction{Op: OpDo})
		case "don't()":
			program = append(program, Instruction{Op: OpDont})
		default:
			// the pattern admits only 1-3 digit operands
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			program = append(program, Instruction{Op: OpMul, A: a, B: b})
		}
	}
	return program, nil
}

// Part1 sums every product, ignoring do() and don't().
func (Day) Part1(p Program) (any, error) {
	sum := 0
	for _, in := range p {
		if in.Op == OpMul {
			sum += in.A * in.B
		}
	}
	return sum, nil
}

// Part2 sums products only while enabled. The stream starts enabled.
func (Day) Part2(p Program) (any, error) {
	sum, enabled := 0, true
	for _, in := range p {
		switch in.Op {
		case OpDo:
			enabled = true
		case OpDont:
			enabled = false
		case OpMul:
			if enabled {
				sum += in.A * in.B
			}
		}
	}
	return sum, nil
}
