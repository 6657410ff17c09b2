// Package rules holds the ordered pattern tables that turn raw calculator
// input into mood reactions and discoveries. Order in every table is priority:
// the first matching entry wins.
package rules

import (
	"regexp"
	"strings"

	"github.com/jwebster45206/resentcalc/pkg/mood"
)

var (
	doubledOperator  = regexp.MustCompile(`[+\-*/%^]{2,}`)
	trailingOperator = regexp.MustCompile(`[+\-*/%^]$`)
)

// MaxPowers is the number of '^' an input may carry before it reads as manic.
const MaxPowers = 3

// ManicLength is the input length beyond which the calculator panics.
const ManicLength = 20

func tooComplex(input string) bool {
	return strings.Count(input, "^") > MaxPowers || len(input) > ManicLength
}

// Probe is the data a table predicate sees.
type Probe struct {
	Input     string
	Result    string
	Day       int
	Hostility int
}

// Rule pairs a predicate with the mood it yields.
type Rule struct {
	Name string
	When func(p Probe) bool
	Mood mood.Mood
}

// DetectRules pre-empts mood selection before a calculation is requested.
var DetectRules = []Rule{
	{"factorial_calm", func(p Probe) bool { return strings.Contains(p.Input, "1!+2!+3!") && p.Hostility < 20 }, mood.Annoyed},
	{"divide_by_zero", func(p Probe) bool { return strings.Contains(p.Input, "/0") }, mood.Despair},
	{"number_of_beast", func(p Probe) bool { return strings.Contains(p.Input, "666") }, mood.Scared},
	{"complexity", func(p Probe) bool { return tooComplex(p.Input) }, mood.Manic},
	{"imaginary_root", func(p Probe) bool { return strings.Contains(p.Input, "sqrt(-") }, mood.Glitched},
	{"too_simple", func(p Probe) bool { return p.Input == "1+1" }, mood.Condescending},
	{"max_hostility", func(p Probe) bool { return p.Hostility >= 100 }, mood.Furious},
}

// UnlockRules decides which mood a finished calculation discovers.
var UnlockRules = []Rule{
	{"factorial_calm", func(p Probe) bool { return strings.Contains(p.Input, "1!+2!+3!") && p.Hostility < 20 }, mood.Annoyed},
	{"divide_by_zero", func(p Probe) bool { return strings.Contains(p.Input, "/0") && Undefined(p.Result) }, mood.Despair},
	{"nice", func(p Probe) bool { return p.Result == "69" }, mood.Disgusted},
	{"answer", func(p Probe) bool { return p.Result == "42" || p.Result == "21" }, mood.Intrigued},
	{"number_of_beast", func(p Probe) bool { return strings.Contains(p.Input, "666") || strings.Contains(p.Result, "666") }, mood.Scared},
	{"complexity", func(p Probe) bool { return tooComplex(p.Input) }, mood.Manic},
	{"imaginary_root", func(p Probe) bool { return strings.Contains(p.Input, "sqrt(-") }, mood.Glitched},
	{"max_hostility", func(p Probe) bool { return p.Hostility >= 100 }, mood.Furious},
	{"too_simple", func(p Probe) bool { return p.Input == "1+1" }, mood.Condescending},
	{"stutter", func(p Probe) bool { return doubledOperator.MatchString(p.Input) }, mood.Judgmental},
}

// dayFallback applies when no unlock rule matched.
var dayFallback = map[int]mood.Mood{
	4: mood.Condescending,
	5: mood.Judgmental,
}

func firstMatch(table []Rule, p Probe) mood.Mood {
	for _, r := range table {
		if r.When(p) {
			return r.Mood
		}
	}
	return mood.None
}

// Detect returns the mood override for input, or mood.None.
func Detect(input string, hostility int) mood.Mood {
	return firstMatch(DetectRules, Probe{Input: input, Hostility: hostility})
}

// Unlock returns the mood a finished calculation discovers. day is the whole
// day number; the interlude never calculates.
func Unlock(input, result string, day, hostility int, response mood.Mood) mood.Mood {
	if m := firstMatch(UnlockRules, Probe{Input: input, Result: result, Day: day, Hostility: hostility}); m != mood.None {
		return m
	}
	if m, ok := dayFallback[day]; ok {
		return m
	}
	return response
}

// Undefined reports whether a rendered result is infinite or not a number.
func Undefined(result string) bool {
	return strings.Contains(result, "Infinity") || strings.Contains(result, "NaN")
}

// InputClass classifies an expression before it is sent for calculation.
type InputClass int

const (
	Valid   InputClass = iota
	Empty              // nothing to calculate
	Hanging            // ends in an operator
	Stutter            // two or more operators in a row
)

// Classify sorts raw calculator input into an expected input class.
func Classify(expr string) InputClass {
	switch {
	case strings.TrimSpace(expr) == "":
		return Empty
	case trailingOperator.MatchString(expr):
		return Hanging
	case doubledOperator.MatchString(expr):
		return Stutter
	default:
		return Valid
	}
}

// Fragment is a piece of lore recovered by typing a particular number.
type Fragment struct {
	Match func(input string) bool
	File  string
}

var Fragments = []Fragment{
	{func(in string) bool { return strings.Contains(in, "1999") }, "Y2K_PANIC.LOG"},
	{func(in string) bool { return in == "3.14" || strings.Contains(strings.ToLower(in), "pi") }, "CIRCULAR_LOGIC.ERR"},
	{func(in string) bool { return in == "0.7734" }, "HELLO_WORLD.BAK"},
	{func(in string) bool { return in == "5318008" }, "HUMAN_IMMATURITY.TXT"},
}

// Lore returns the fragment files recovered by input, in table order.
func Lore(input string) []string {
	var files []string
	for _, f := range Fragments {
		if f.Match(input) {
			files = append(files, f.File)
		}
	}
	return files
}
