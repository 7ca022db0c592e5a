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

// Package os2 reads and writes "OS/2" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
//
// Only the fields describing the weight, width and style of a font are
// decoded.  The remaining fields are skipped when reading, and are filled
// with zeros when writing.
package os2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Info contains information from the "OS/2" table.
type Info struct {
	Version     uint16
	WeightClass Weight
	WidthClass  Width

	IsBold    bool // glyphs are emboldened
	IsItalic  bool // font contains italic or oblique glyphs
	IsRegular bool // glyphs are in the standard weight/style for the font
	IsOblique bool // font contains oblique glyphs

	Vendor string // https://docs.microsoft.com/en-us/typography/opentype/spec/os2#achvendid
}

// Read reads the "OS/2" table from r.
func Read(r io.Reader) (*Info, error) {
	v0 := &v0Data{}
	err := binary.Read(r, binary.BigEndian, v0)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, errShortTable
	} else if err != nil {
		return nil, err
	} else if v0.Version > 5 {
		return nil, &NotSupportedError{
			Feature: fmt.Sprintf("OS/2 table version %d", v0.Version),
		}
	}

	sel := v0.Selection
	if v0.Version <= 3 {
		// Applications should ignore bits 7 to 15 in a font that has a
		// version 0 to version 3 OS/2 table.
		sel &= 0x007F
	}

	info := &Info{
		Version:     v0.Version,
		WeightClass: Weight(v0.WeightClass),
		WidthClass:  Width(v0.WidthClass),

		IsBold:    sel&0x0060 == 0x0020,
		IsItalic:  sel&0x0041 == 0x0001,
		IsRegular: sel&0x0040 != 0,
		IsOblique: sel&0x0200 != 0,

		Vendor: string(v0.VendID[:]),
	}
	return info, nil
}

// Encode converts the info to a version 4 "OS/2" table.
func (info *Info) Encode() []byte {
	var sel uint16
	if info.IsRegular {
		sel |= 0x0040
	} else {
		if info.IsItalic {
			sel |= 0x0001
		}
		if info.IsBold {
			sel |= 0x0020
		}
	}
	if info.IsOblique {
		sel |= 0x0200
	}
	sel |= 0x0080 // Use_Typo_Metrics

	vendor := [4]byte{' ', ' ', ' ', ' '}
	if len(info.Vendor) == 4 {
		copy(vendor[:], info.Vendor)
	}

	buf := &bytes.Buffer{}
	v0 := &v0Data{
		Version:     4,
		WeightClass: uint16(info.WeightClass),
		WidthClass:  uint16(info.WidthClass),
		VendID:      vendor,
		Selection:   sel,
	}
	_ = binary.Write(buf, binary.BigEndian, v0)
	_ = binary.Write(buf, binary.BigEndian, &v0MsData{})
	buf.Write(make([]byte, 8)) // code page range
	_ = binary.Write(buf, binary.BigEndian, &v2Data{})

	return buf.Bytes()
}

// NotSupportedError indicates that an "OS/2" table seems valid but uses a
// feature which is not supported by this package.
type NotSupportedError struct {
	Feature string
}

func (err *NotSupportedError) Error() string {
	return "sfnt/os2: " + err.Feature + " not supported"
}

var errShortTable = errors.New("sfnt/os2: table too short")

type v0Data struct {
	Version            uint16
	AvgCharWidth       int16
	WeightClass        uint16
	WidthClass         uint16
	Type               uint16
	SubscriptXSize     int16
	SubscriptYSize     int16
	SubscriptXOffset   int16
	SubscriptYOffset   int16
	SuperscriptXSize   int16
	SuperscriptYSize   int16
	SuperscriptXOffset int16
	SuperscriptYOffset int16
	StrikeoutSize      int16
	StrikeoutPosition  int16
	FamilyClass        int16
	Panose             [10]byte
	UnicodeRange       [4]uint32
	VendID             [4]byte
	Selection          uint16
	FirstCharIndex     uint16
	LastCharIndex      uint16
}

type v0MsData struct {
	TypoAscender  int16
	TypoDescender int16
	TypoLineGap   int16
	WinAscent     int16
	WinDescent    int16
}

type v2Data struct {
	XHeight     int16
	CapHeight   int16
	DefaultChar uint16
	BreakChar   uint16
	MaxContext  uint16
}
