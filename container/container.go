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

// Package container reads the table directory of font files.
//
// The package understands plain sfnt files (TrueType and OpenType fonts),
// TrueType collections, and the WOFF and WOFF2 web font formats.  For
// collections, only the first font is used.
package container

import (
	"errors"
	"fmt"
	"os"
	"sort"
)

// Values of the sfnt version field at the start of a font file.
const (
	ScalerTypeTrueType = 0x00010000
	ScalerTypeCFF      = 0x4F54544F // "OTTO"
	ScalerTypeApple    = 0x74727565 // "true"

	tagCollection = 0x74746366 // "ttcf"
	tagWOFF       = 0x774F4646 // "wOFF"
	tagWOFF2      = 0x774F4632 // "wOF2"
)

// Format describes the container format of a font file.
type Format int

// These are the container formats understood by this package.
const (
	FormatSFNT Format = iota + 1
	FormatCollection
	FormatWOFF
	FormatWOFF2
)

func (f Format) String() string {
	switch f {
	case FormatSFNT:
		return "sfnt"
	case FormatCollection:
		return "collection"
	case FormatWOFF:
		return "WOFF"
	case FormatWOFF2:
		return "WOFF2"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Font gives access to the tables of a font.
type Font struct {
	Format     Format
	ScalerType uint32

	tables map[string][]byte
}

// ReadFile reads the font file with the given name.
func ReadFile(fname string) (*Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode reads the table directory of a font file, and makes the tables
// of the first font in the file available.
func Decode(data []byte) (*Font, error) {
	if len(data) < 4 {
		return nil, errTooShort
	}
	tag := uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
	switch tag {
	case ScalerTypeTrueType, ScalerTypeCFF, ScalerTypeApple:
		return decodeSFNT(data, 0, FormatSFNT)
	case tagCollection:
		return decodeCollection(data)
	case tagWOFF:
		return decodeWOFF(data)
	case tagWOFF2:
		return decodeWOFF2(data)
	default:
		return nil, &NotSupportedError{
			Feature: fmt.Sprintf("font format 0x%08x", tag),
		}
	}
}

// Has returns true if the font contains all of the given tables.
func (f *Font) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := f.tables[name]; !ok {
			return false
		}
	}
	return true
}

// Table returns the contents of the given table.
// The returned slice must not be modified.
func (f *Font) Table(name string) ([]byte, error) {
	data, ok := f.tables[name]
	if !ok {
		return nil, &ErrNoTable{Name: name}
	}
	if data == nil {
		return nil, &NotSupportedError{
			Feature: "transformed \"" + name + "\" table",
		}
	}
	return data, nil
}

// TableNames returns the names of all tables in the font, in alphabetical
// order.
func (f *Font) TableNames() []string {
	names := make([]string, 0, len(f.tables))
	for name := range f.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrNoTable indicates that a required table is missing from a font file.
type ErrNoTable struct {
	Name string
}

func (err *ErrNoTable) Error() string {
	return "sfnt: missing " + err.Name + " table"
}

// NotSupportedError indicates that a font file seems valid but uses a
// feature which is not supported by this package.
type NotSupportedError struct {
	Feature string
}

func (err *NotSupportedError) Error() string {
	return "sfnt/container: " + err.Feature + " not supported"
}

// InvalidFontError indicates a problem with the font data.
type InvalidFontError struct {
	Reason string
}

func (err *InvalidFontError) Error() string {
	return "sfnt/container: " + err.Reason
}

var errTooShort = &InvalidFontError{Reason: "file too short"}

// IsInvalid returns true if err indicates malformed or unsupported font data,
// as opposed to an I/O error.
func IsInvalid(err error) bool {
	var invalid *InvalidFontError
	var notSupp *NotSupportedError
	var noTable *ErrNoTable
	return errors.As(err, &invalid) || errors.As(err, &notSupp) || errors.As(err, &noTable)
}
