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
	"bytes"
	"errors"
	"os"

	"seehuhn.de/go/fontres"
	"seehuhn.de/go/fontres/container"
	"seehuhn.de/go/fontres/name"
	"seehuhn.de/go/fontres/os2"
)

// File reads font metadata using the decoders of this module.
// TrueType, OpenType, TrueType collections, WOFF and WOFF2 are supported.
type File struct{}

// ReadFace implements the [Source] interface.
func (File) ReadFace(path string) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	face, err := Decode(data)
	if err != nil {
		return nil, &fontres.UnreadableFontError{Path: path, Err: err}
	}
	return face, nil
}

// Decode extracts the metadata from the binary form of a font file.
//
// The weight and style are taken from the "OS/2" table.  Fonts without
// this table are assigned the normal weight, and the italic flag is taken
// from the "head" table.
func Decode(data []byte) (*Face, error) {
	f, err := container.Decode(data)
	if err != nil {
		return nil, err
	}

	nameData, err := f.Table("name")
	if err != nil {
		return nil, err
	}
	names, err := name.Decode(nameData)
	if err != nil {
		return nil, err
	}
	family := names.Family()
	if family == "" {
		return nil, errNoFamily
	}

	face := &Face{
		Family:      family,
		WeightClass: uint16(os2.WeightNormal),
	}
	if f.Has("OS/2") {
		os2Data, err := f.Table("OS/2")
		if err != nil {
			return nil, err
		}
		info, err := os2.Read(bytes.NewReader(os2Data))
		if err != nil {
			return nil, err
		}
		face.WeightClass = uint16(info.WeightClass)
		face.IsItalic = info.IsItalic
		face.IsOblique = info.IsOblique
	} else if headData, err := f.Table("head"); err == nil && len(headData) >= 46 {
		macStyle := uint16(headData[44])<<8 | uint16(headData[45])
		face.IsItalic = macStyle&(1<<1) != 0
	}
	return face, nil
}

var errNoFamily = errors.New("sfnt/name: no family name")
