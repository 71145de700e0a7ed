package vocab

import (
	"unicode"

	"github.com/corvidae/voxctl/internal/grammar"
)

// Nato matches the ICAO phonetic alphabet, alpha through zulu, and yields
// the corresponding lowercase ASCII letter.
func Nato() grammar.Parser[rune] {
	return grammar.Choose("<NATO>",
		grammar.Gives(grammar.Lit("alpha"), 'a'),
		grammar.Gives(grammar.Lit("bravo"), 'b'),
		grammar.Gives(grammar.Lit("charlie"), 'c'),
		grammar.Gives(grammar.Lit("delta"), 'd'),
		grammar.Gives(grammar.Lit("echo"), 'e'),
		grammar.Gives(grammar.Lit("foxtrot"), 'f'),
		grammar.Gives(grammar.Lit("golf"), 'g'),
		grammar.Gives(grammar.Lit("hotel"), 'h'),
		grammar.Gives(grammar.Lit("india"), 'i'),
		grammar.Gives(grammar.Lit("juliett"), 'j'),
		grammar.Gives(grammar.Lit("kilo"), 'k'),
		grammar.Gives(grammar.Lit("lima"), 'l'),
		grammar.Gives(grammar.Lit("mike"), 'm'),
		grammar.Gives(grammar.Lit("november"), 'n'),
		grammar.Gives(grammar.Lit("oscar"), 'o'),
		grammar.Gives(grammar.Lit("papa"), 'p'),
		grammar.Gives(grammar.Lit("quebec"), 'q'),
		grammar.Gives(grammar.Lit("romeo"), 'r'),
		grammar.Gives(grammar.Lit("sierra"), 's'),
		grammar.Gives(grammar.Lit("tango"), 't'),
		grammar.Gives(grammar.Lit("uniform"), 'u'),
		grammar.Gives(grammar.Lit("victor"), 'v'),
		grammar.Gives(grammar.Lit("whiskey"), 'w'),
		grammar.Gives(grammar.Lit("x-ray"), 'x'),
		grammar.Gives(grammar.Lit("yankee"), 'y'),
		grammar.Gives(grammar.Lit("zulu"), 'z'),
	)
}

// SpellingDigit matches a digit word and yields its ASCII digit character,
// distinct from Digit (vocab.Digit yields an int).
func SpellingDigit() grammar.Parser[rune] {
	return grammar.Choose("<digit>",
		grammar.Gives(grammar.Lit("zero"), '0'),
		grammar.Gives(grammar.Lit("one"), '1'),
		grammar.Gives(grammar.Lit("two"), '2'),
		grammar.Gives(grammar.Lit("three"), '3'),
		grammar.Gives(grammar.Lit("four"), '4'),
		grammar.Gives(grammar.Lit("five"), '5'),
		grammar.Gives(grammar.Lit("six"), '6'),
		grammar.Gives(grammar.Lit("seven"), '7'),
		grammar.Gives(grammar.Lit("eight"), '8'),
		grammar.Gives(grammar.Lit("nine"), '9'),
	)
}

// ExtendedNato adds "big <nato>" (uppercase) and bare digit words to Nato,
// giving a full spelling alphabet for dictating individual characters.
func ExtendedNato() grammar.Parser[rune] {
	big := grammar.Map(grammar.Then(grammar.Lit("big"), Nato()), func(c rune) rune {
		return unicode.ToUpper(c)
	})
	return grammar.Choose("<char>", Nato(), big, SpellingDigit())
}
