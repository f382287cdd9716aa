package token

import "fmt"

const UNKNOWN_FILE = "<unknown>"

type Pos struct {
	Filename     string
	Line, Column int
}

func NewPosition(filename string, line, column int) Pos {
	return Pos{Filename: filename, Line: line, Column: column}
}

// UnknownPos is used for errors that cannot be traced back to source.
func UnknownPos() Pos {
	return Pos{Filename: UNKNOWN_FILE, Line: 0, Column: 0}
}

func (pos *Pos) Move(character rune) {
	if character == '\n' {
		pos.Column = 1
		pos.Line++
	} else {
		pos.Column++
	}
}

func (pos *Pos) SetPosition(newPos Pos) {
	pos.Filename = newPos.Filename
	pos.Line = newPos.Line
	pos.Column = newPos.Column
}

func (pos Pos) String() string {
	filename := pos.Filename
	if filename == "" {
		filename = UNKNOWN_FILE
	}
	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}
