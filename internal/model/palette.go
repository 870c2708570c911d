package model

import "strings"

// NoteColor pairs a note name with its colour.
type NoteColor struct {
	Note  string
	Color Color
}

type Palette []NoteColor

// DefaultPalette is the chromatic scale colouring the picker ships with.
var DefaultPalette = Palette{
	{"C", FromPacked(0xFF0000)},
	{"C#/Db", FromPacked(0xCC1100)},
	{"D", FromPacked(0xBB2200)},
	{"D#/Eb", FromPacked(0xCC5500)},
	{"E", FromPacked(0xFFCC00)},
	{"F", FromPacked(0x33FF00)},
	{"F#/Gb", FromPacked(0x00CD71)},
	{"G", FromPacked(0x008AA1)},
	{"G#/Ab", FromPacked(0x2161B0)},
	{"A", FromPacked(0x2200FF)},
	{"A#/Bb", FromPacked(0x860E90)},
	{"B", FromPacked(0xB8154A)},
}

// Lookup finds a note by its full name ("C#/Db") or either spelling ("C#", "Db").
// Matching ignores case of the note letter but keeps "b" as flat.
func (p Palette) Lookup(name string) (NoteColor, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return NoteColor{}, false
	}
	name = strings.ToUpper(name[:1]) + name[1:]
	for _, nc := range p {
		if nc.Note == name {
			return nc, true
		}
		for _, alias := range strings.Split(nc.Note, "/") {
			if alias == name {
				return nc, true
			}
		}
	}
	return NoteColor{}, false
}
