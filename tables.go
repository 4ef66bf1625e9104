// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpush

// The scanner walks a DFA whose arcs are labelled not by bytes but by a
// small alphabet of character classes. The letters singled out are exactly
// those occurring in the keywords "false", "true", and "null"; classifying
// is case-insensitive, so the DFA recognizes keywords in any case and the
// consumer decides what to make of that.
const (
	cA         = iota // a A
	cE                // e E
	cF                // f F
	cL                // l L
	cN                // n N
	cR                // r R
	cS                // s S
	cT                // t T
	cU                // u U
	cPunct            // { } [ ] , :
	cDigit            // 1-9
	cDot              // .
	cSign             // + -
	cBackslash        // backslash
	cQuote            // double quote
	cNoSpecial        // in-string byte other than quote and backslash
	cAny              // any byte
	cBlank            // space \t \r \n \f
	cZero             // 0

	numClasses
)

const numStates = 28

// dfa is the scanner automaton: dfa[state][class] is the successor state,
// or -1 when no transition exists. State 0 is the start state.
var dfa = [numStates][numClasses]int8{
	//  A   E   F   L   N   R   S   T   U  pnc dig dot sgn  \   "  nsp any blk  0
	0:  {-1, -1, 16, -1, 7, -1, -1, 11, -1, 15, 2, 22, 27, -1, 1, -1, -1, 0, 21},
	1:  {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 5, 4, 3, -1, -1, -1},
	2:  {-1, 24, -1, -1, -1, -1, -1, -1, -1, -1, 2, 23, -1, -1, 1, -1, -1, -1, 2},
	3:  {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 5, 4, 3, -1, -1, -1},
	4:  {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	5:  {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 6, -1, -1},
	6:  {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 5, 4, 3, -1, -1, -1},
	7:  {-1, -1, -1, -1, -1, -1, -1, -1, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	8:  {-1, -1, -1, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	9:  {-1, -1, -1, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	10: {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	11: {-1, -1, -1, -1, -1, 12, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	12: {-1, -1, -1, -1, -1, -1, -1, -1, 13, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	13: {-1, 14, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	14: {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	15: {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	16: {17, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	17: {-1, -1, -1, 18, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	18: {-1, -1, -1, -1, -1, -1, 19, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	19: {-1, 20, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	20: {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	21: {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 23, -1, -1, -1, -1, -1, -1, -1},
	22: {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 23, -1, -1, -1, -1, -1, -1, -1, 23},
	23: {-1, 24, -1, -1, -1, -1, -1, -1, -1, -1, 23, -1, -1, -1, -1, -1, -1, -1, 23},
	24: {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 26, -1, 25, -1, -1, -1, -1, -1, -1},
	25: {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 26, -1, -1, -1, -1, -1, -1, -1, -1},
	26: {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 26, -1, -1, -1, -1, -1, -1, -1, 26},
	27: {-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 2, 22, -1, -1, -1, -1, -1, -1, 21},
}

// accept maps each DFA state to the terminal it accepts, or Invalid for
// non-accepting states. The punct pseudo-terminal is resolved to a concrete
// single-character token when the lexeme is committed.
var accept = [numStates]Token{
	0: Invalid, 1: Invalid, 2: Other, 3: Invalid, 4: String,
	5: Invalid, 6: Invalid, 7: Invalid, 8: Invalid, 9: Invalid,
	10: Other, 11: Invalid, 12: Invalid, 13: Invalid, 14: Other,
	15: punct, 16: Invalid, 17: Invalid, 18: Invalid, 19: Invalid,
	20: Other, 21: Other, 22: Invalid, 23: Other, 24: Invalid,
	25: Invalid, 26: Other, 27: Invalid,
}

// Cell kinds in the parse table. Nonnegative what values are reductions.
const (
	ptError = -1
	ptShift = -2
)

// A ptCell is one cell of the parse table. For a shift (or a goto, which is
// a shift on a nonterminal column), where is the successor state. For a
// reduction, what is the resulting nonterminal and where is the number of
// (symbol, state) pairs popped off the stack.
type ptCell struct {
	what  int8
	where uint8
}

const numParseStates = 38

// pt is the parse automaton over the JSON grammar. Columns 0-8 are the
// grammar nonterminals (nonterminal 0 is the start symbol); columns 9-17
// are indexed by the terminal Token values. State 0 is the start state.
//
// Row 2 is reached after shifting an object key; it accepts both Colon and
// Comma as the key/value separator. See the package comment.
var pt = [numParseStates][18]ptCell{
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 1}, {-1, 0}, {-2, 19}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-2, 12}, {-2, 14}, {-1, 0}, {-2, 15}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 2}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 3}, {-1, 0}, {-2, 3}, {-1, 0}, {-1, 0}},
	{{-2, 20}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 21}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 10}, {-1, 0}, {-2, 6}, {-1, 0}, {-1, 0}, {-2, 5}, {-1, 0}, {-2, 4}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {5, 1}, {-1, 0}, {-1, 0}, {5, 1}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {5, 1}, {-1, 0}, {-1, 0}, {5, 1}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-2, 26}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 27}, {-2, 22}, {-2, 24}, {-1, 0}, {-2, 11}, {-1, 0}, {-2, 9}, {6, 0}, {-1, 0}, {-2, 8}, {-1, 0}, {-2, 7}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {5, 1}, {5, 1}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {5, 1}, {5, 1}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-2, 26}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 27}, {-2, 35}, {-2, 24}, {-1, 0}, {-2, 11}, {-1, 0}, {-2, 9}, {6, 0}, {-1, 0}, {-2, 8}, {-1, 0}, {-2, 7}, {-1, 0}},
	{{-1, 0}, {-2, 31}, {-2, 14}, {-1, 0}, {-2, 15}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 2}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-2, 33}, {-2, 14}, {-1, 0}, {-2, 15}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 2}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 13}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {0, 3}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {1, 1}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-2, 17}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {3, 0}, {-1, 0}, {-1, 0}, {-2, 16}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-2, 18}, {-1, 0}, {-2, 15}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 2}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {2, 2}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {3, 2}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-2, 26}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 27}, {-2, 25}, {-2, 24}, {-1, 0}, {-2, 11}, {-1, 0}, {-2, 9}, {6, 0}, {-1, 0}, {-2, 8}, {-1, 0}, {-2, 7}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {5, 1}, {-1, 0}, {-1, 0}, {5, 1}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {4, 3}, {-1, 0}, {-1, 0}, {4, 3}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 23}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {0, 3}, {-1, 0}, {-1, 0}, {0, 3}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {6, 1}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 37}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {5, 1}, {5, 1}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 28}, {-1, 0}, {-1, 0}, {-1, 0}, {8, 0}, {-2, 29}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {7, 2}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-2, 26}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 27}, {-1, 0}, {-2, 30}, {-1, 0}, {-2, 11}, {-1, 0}, {-2, 9}, {-1, 0}, {-1, 0}, {-2, 8}, {-1, 0}, {-2, 7}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {8, 2}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 32}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {0, 3}, {-1, 0}, {-1, 0}, {0, 3}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 34}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {0, 3}, {0, 3}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-2, 36}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {0, 3}, {0, 3}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}},
	{{-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {-1, 0}, {0, 3}},
}
