// Package schematic finds the part numbers of an engine schematic: the
// number tokens of a character grid that touch a symbol horizontally,
// vertically or diagonally. It also derives gear ratios from the same scan.
//
// A symbol is any character that is neither alphanumeric nor a period.
// Alphabetic characters (letters of any script and the combining vowel
// signs Unicode counts as alphabetic) and numeric characters are therefore
// not symbols, while spaces and punctuation are. Number tokens are
// maximal runs of ASCII digits within a single row.
package schematic
