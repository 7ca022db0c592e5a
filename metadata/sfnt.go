// seehuhn.de/go/fontres - Jetpack Compose font families from font files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package metadata

import (
	"os"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/fontres"
)

// SFNT reads font metadata using the seehuhn.de/go/sfnt library.
// Only TrueType and OpenType fonts are supported.
type SFNT struct{}

// ReadFace implements the [Source] interface.
func (SFNT) ReadFace(path string) (*Face, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	info, err := sfnt.Read(fd)
	if err != nil {
		return nil, &fontres.UnreadableFontError{Path: path, Err: err}
	}
	return &Face{
		Family:      info.FamilyName,
		WeightClass: uint16(info.Weight),
		IsItalic:    info.IsItalic,
		IsOblique:   info.IsOblique,
	}, nil
}
