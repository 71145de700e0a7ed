// Package vocab provides a small library of ready-made grammar.Parser
// values for the number words, spelling alphabet, and keyboard vocabulary
// that a desktop voice-control grammar is built from.
package vocab

import (
	"fmt"

	"github.com/corvidae/voxctl/internal/grammar"
)

// Digit matches the English word for a single digit, zero through nine.
func Digit() grammar.Parser[int] {
	return grammar.Choose("<digit>",
		grammar.Gives(grammar.Lit("zero"), 0),
		grammar.Gives(grammar.Lit("one"), 1),
		grammar.Gives(grammar.Lit("two"), 2),
		grammar.Gives(grammar.Lit("three"), 3),
		grammar.Gives(grammar.Lit("four"), 4),
		grammar.Gives(grammar.Lit("five"), 5),
		grammar.Gives(grammar.Lit("six"), 6),
		grammar.Gives(grammar.Lit("seven"), 7),
		grammar.Gives(grammar.Lit("eight"), 8),
		grammar.Gives(grammar.Lit("nine"), 9),
	)
}

// CountingDigit is Digit without zero: one through nine.
func CountingDigit() grammar.Parser[int] {
	return grammar.Choose("<counting digit>",
		grammar.Gives(grammar.Lit("one"), 1),
		grammar.Gives(grammar.Lit("two"), 2),
		grammar.Gives(grammar.Lit("three"), 3),
		grammar.Gives(grammar.Lit("four"), 4),
		grammar.Gives(grammar.Lit("five"), 5),
		grammar.Gives(grammar.Lit("six"), 6),
		grammar.Gives(grammar.Lit("seven"), 7),
		grammar.Gives(grammar.Lit("eight"), 8),
		grammar.Gives(grammar.Lit("nine"), 9),
	)
}

// Teen matches ten through nineteen.
func Teen() grammar.Parser[int] {
	return grammar.Choose("<teen>",
		grammar.Gives(grammar.Lit("ten"), 10),
		grammar.Gives(grammar.Lit("eleven"), 11),
		grammar.Gives(grammar.Lit("twelve"), 12),
		grammar.Gives(grammar.Lit("thirteen"), 13),
		grammar.Gives(grammar.Lit("fourteen"), 14),
		grammar.Gives(grammar.Lit("fifteen"), 15),
		grammar.Gives(grammar.Lit("sixteen"), 16),
		grammar.Gives(grammar.Lit("seventeen"), 17),
		grammar.Gives(grammar.Lit("eighteen"), 18),
		grammar.Gives(grammar.Lit("nineteen"), 19),
	)
}

// Tens matches the multiples of ten from twenty through ninety.
func Tens() grammar.Parser[int] {
	return grammar.Choose("<tens>",
		grammar.Gives(grammar.Lit("twenty"), 20),
		grammar.Gives(grammar.Lit("thirty"), 30),
		grammar.Gives(grammar.Lit("fourty"), 40),
		grammar.Gives(grammar.Lit("fifty"), 50),
		grammar.Gives(grammar.Lit("sixty"), 60),
		grammar.Gives(grammar.Lit("seventy"), 70),
		grammar.Gives(grammar.Lit("eighty"), 80),
		grammar.Gives(grammar.Lit("ninety"), 90),
	)
}

// TenToNinetyNine matches any English cardinal from ten through ninety-nine.
func TenToNinetyNine() grammar.Parser[int] {
	afterTens := grammar.Choose("<after tens>", CountingDigit(), grammar.Gives(grammar.Empty(), 0))
	return grammar.Choose("<10-99>",
		Teen(),
		grammar.Join(Tens(), afterTens, func(t, d int) int { return t + d }),
	)
}

// OneToNinetyNine matches any English cardinal from one through ninety-nine.
func OneToNinetyNine() grammar.Parser[int] {
	return grammar.Choose("<1-99>", CountingDigit(), TenToNinetyNine())
}

// Number matches any English cardinal from zero through one million
// exclusive (0-999,999).
func Number() grammar.Parser[int] {
	return NumberRange(0, 999_999)
}

// onesWords and teenWords give the irregular, one-word-per-value spellings
// used below one hundred; tensWords gives the multiples of ten.
var onesWords = map[int]string{
	1: "one", 2: "two", 3: "three", 4: "four", 5: "five",
	6: "six", 7: "seven", 8: "eight", 9: "nine",
}

var teenWords = map[int]string{
	10: "ten", 11: "eleven", 12: "twelve", 13: "thirteen", 14: "fourteen",
	15: "fifteen", 16: "sixteen", 17: "seventeen", 18: "eighteen", 19: "nineteen",
}

var tensWords = map[int]string{
	20: "twenty", 30: "thirty", 40: "fourty", 50: "fifty",
	60: "sixty", 70: "seventy", 80: "eighty", 90: "ninety",
}

func intMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func intMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// onesAndTens returns the alternatives covering the overlap of [min, max]
// with [1, 99]. A tens decade that falls entirely within [min, max] (e.g.
// twenty through twenty-nine, requested as part of a much wider range)
// compiles to a single tens-word-plus-digit production; a decade that only
// partially overlaps is spelled out value by value, so the compiled DFA
// accepts exactly the requested bound rather than the whole decade.
func onesAndTens(min, max int) []grammar.Parser[int] {
	var choices []grammar.Parser[int]
	pushVal := func(v int, word string) {
		if v >= min && v <= max {
			choices = append(choices, grammar.Gives(grammar.Lit(word), v))
		}
	}

	for v := 1; v <= 9; v++ {
		pushVal(v, onesWords[v])
	}
	for v := 10; v <= 19; v++ {
		pushVal(v, teenWords[v])
	}
	for _, t := range []int{20, 30, 40, 50, 60, 70, 80, 90} {
		lo, hi := t, t+9
		if hi < min || lo > max {
			continue
		}
		if lo >= min && hi <= max {
			afterTens := grammar.Choose("<after "+tensWords[t]+">", CountingDigit(), grammar.Gives(grammar.Empty(), 0))
			tensVal := t
			choices = append(choices, grammar.Join(grammar.Gives(grammar.Lit(tensWords[t]), tensVal), afterTens, func(base, d int) int { return base + d }))
			continue
		}
		for v := lo; v <= hi; v++ {
			if v == t {
				pushVal(v, tensWords[t])
			} else {
				pushVal(v, tensWords[t]+" "+onesWords[v-t])
			}
		}
	}
	return choices
}

// hundredResidual returns the alternatives for what follows a hundreds
// digit, given the residual value must land in [lo, hi] (0-99): a bare
// "hundred" for residual zero, "hundred and <digit>" for 1-9, and "hundred
// <10-99>" (no "and") for 10-99, each only when its value band intersects
// [lo, hi].
func hundredResidual(lo, hi int) []grammar.Parser[int] {
	var choices []grammar.Parser[int]
	if lo <= 0 && hi >= 0 {
		choices = append(choices, grammar.Gives(grammar.Lit("hundred"), 0))
	}
	if dLo, dHi := intMax(lo, 1), intMin(hi, 9); dLo <= dHi {
		for _, alt := range onesAndTens(dLo, dHi) {
			choices = append(choices, grammar.Then(grammar.Lit("hundred and"), alt))
		}
	}
	if rLo, rHi := intMax(lo, 10), intMin(hi, 99); rLo <= rHi {
		for _, alt := range onesAndTens(rLo, rHi) {
			choices = append(choices, grammar.Then(grammar.Lit("hundred"), alt))
		}
	}
	return choices
}

// hundreds returns the alternatives covering the overlap of [min, max] with
// [100, 999], gated digit by digit exactly as onesAndTens gates its decades:
// a hundreds digit whose whole span falls in [min, max] gets the full
// residual band (0-99); one that only partially overlaps gets its residual
// clipped to match.
func hundreds(min, max int) []grammar.Parser[int] {
	var choices []grammar.Parser[int]
	for h := 1; h <= 9; h++ {
		lo, hi := h*100, h*100+99
		if hi < min || lo > max {
			continue
		}
		residLo, residHi := 0, 99
		if min > lo {
			residLo = min - lo
		}
		if max < hi {
			residHi = max - lo
		}
		afterCounting := grammar.Choose(fmt.Sprintf("<after %s hundred>", onesWords[h]), hundredResidual(residLo, residHi)...)
		hv := h
		choices = append(choices, grammar.Join(grammar.Gives(grammar.Lit(onesWords[hv]), hv), afterCounting, func(hundred, resid int) int {
			return hundred*100 + resid
		}))
	}
	return choices
}

// thousandResidual is hundredResidual's counterpart one magnitude up: the
// alternatives for what follows a thousands part, given the residual value
// must land in [lo, hi] (0-999).
func thousandResidual(lo, hi int) []grammar.Parser[int] {
	var choices []grammar.Parser[int]
	if lo <= 0 && hi >= 0 {
		choices = append(choices, grammar.Gives(grammar.Lit("thousand"), 0))
	}
	if dLo, dHi := intMax(lo, 1), intMin(hi, 9); dLo <= dHi {
		for _, alt := range onesAndTens(dLo, dHi) {
			choices = append(choices, grammar.Then(grammar.Lit("thousand and"), alt))
		}
	}
	if rLo, rHi := intMax(lo, 10), intMin(hi, 999); rLo <= rHi {
		rest := append(onesAndTens(rLo, rHi), hundreds(rLo, rHi)...)
		for _, alt := range rest {
			choices = append(choices, grammar.Then(grammar.Lit("thousand"), alt))
		}
	}
	return choices
}

// thousandsDigit builds the single alternative for one exact thousands part
// th (1-999), paired with a residual clipped to [residLo, residHi].
func thousandsDigit(th, residLo, residHi int) grammar.Parser[int] {
	afterThousand := grammar.Choose(fmt.Sprintf("<after %d thousand>", th), thousandResidual(residLo, residHi)...)
	return grammar.Join(NumberRange(th, th), afterThousand, func(thousand, resid int) int {
		return thousand*1000 + resid
	})
}

// thousands returns the alternatives covering the overlap of [min, max]
// with [1000, 999999]. The thousands part (1-999) that falls entirely
// between the two requested boundaries gets the full residual band
// (0-999); the boundary thousands parts, if they only partially qualify,
// are built individually with their residual clipped to match.
func thousands(min, max int) []grammar.Parser[int] {
	var choices []grammar.Parser[int]
	if max < 1000 {
		return choices
	}

	loTh, loResid := 1, 0
	if min > 1000 {
		loTh, loResid = min/1000, min%1000
	}
	hiTh, hiResid := 999, 999
	if max < 999_999 {
		hiTh, hiResid = max/1000, max%1000
	}
	if loTh > hiTh {
		return choices
	}

	if loTh == hiTh {
		return []grammar.Parser[int]{thousandsDigit(loTh, loResid, hiResid)}
	}

	fullLo, fullHi := loTh, hiTh
	if loResid != 0 {
		choices = append(choices, thousandsDigit(loTh, loResid, 999))
		fullLo = loTh + 1
	}
	if hiResid != 999 {
		choices = append(choices, thousandsDigit(hiTh, 0, hiResid))
		fullHi = hiTh - 1
	}
	if fullLo <= fullHi {
		afterThousand := grammar.Choose("<after full thousand>", thousandResidual(0, 999)...)
		choices = append(choices, grammar.Join(NumberRange(fullLo, fullHi), afterThousand, func(thousand, resid int) int {
			return thousand*1000 + resid
		}))
	}
	return choices
}

// NumberRange builds a parser that accepts exactly the English cardinals in
// [min, max], layering the vocabulary by magnitude: ones, teens, tens,
// hundreds (with optional "hundred and"), and thousands (with optional
// "thousand and"). Each magnitude's contribution is itself clipped to its
// overlap with [min, max] - a request that doesn't span a whole bracket
// (such as NumberRange(1, 20)) compiles to exactly that bound, not the
// bracket's full span. Zero is accepted only when min is at or below 0.
func NumberRange(min, max int) grammar.Parser[int] {
	var choices []grammar.Parser[int]
	choices = append(choices, onesAndTens(min, max)...)
	choices = append(choices, hundreds(min, max)...)
	choices = append(choices, thousands(min, max)...)

	if min <= 0 && max >= 0 {
		choices = append(choices, grammar.Gives(grammar.Lit("zero"), 0))
	}

	if len(choices) == 0 {
		panic(fmt.Sprintf("vocab: NumberRange(%d, %d) has no representable English cardinals", min, max))
	}

	return grammar.Choose(fmt.Sprintf("<%d-%d>", min, max), choices...)
}
