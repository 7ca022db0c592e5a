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

// Package debug creates small font files for use in unit tests.
//
// The fonts contain the "head", "maxp", "name" and "OS/2" tables only.
// This is enough to test the code which reads font metadata, but the
// fonts cannot be used to render text.
package debug

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"sort"

	"seehuhn.de/go/fontres/container"
	"seehuhn.de/go/fontres/name"
	"seehuhn.de/go/fontres/os2"
)

// FontSpec describes the metadata of a test font.
type FontSpec struct {
	Family            string
	Subfamily         string // default "Regular"
	TypographicFamily string // name ID 16, omitted if empty

	WeightClass uint16 // default 400
	IsItalic    bool
	IsOblique   bool
	NoOS2       bool // omit the "OS/2" table

	// MacStyleBold and MacStyleItalic set the style bits in the "head"
	// table.
	MacStyleBold   bool
	MacStyleItalic bool

	CFF bool // use the scaler type for CFF-based fonts
}

// MakeFont returns the binary form of a font with the given metadata.
func MakeFont(spec *FontSpec) []byte {
	tables := MakeTables(spec)

	var scalerType uint32 = container.ScalerTypeTrueType
	if spec.CFF {
		scalerType = container.ScalerTypeCFF
	}
	return EncodeSFNT(0, scalerType, tables)
}

// MakeTables returns the tables of a font with the given metadata.
func MakeTables(spec *FontSpec) map[string][]byte {
	subfamily := spec.Subfamily
	if subfamily == "" {
		subfamily = "Regular"
	}
	weight := spec.WeightClass
	if weight == 0 {
		weight = 400
	}

	var records []name.Record
	add := func(id name.ID, val string) {
		records = append(records,
			name.Record{PlatformID: name.PlatformMacintosh, NameID: id, Value: val},
			name.Record{PlatformID: name.PlatformWindows, EncodingID: 1, LanguageID: 0x0409, NameID: id, Value: val})
	}
	add(name.Family, spec.Family)
	add(name.Subfamily, subfamily)
	add(name.FullName, spec.Family+" "+subfamily)
	if spec.TypographicFamily != "" {
		add(name.TypographicFamily, spec.TypographicFamily)
	}

	tables := map[string][]byte{
		"head": makeHead(spec),
		"maxp": {0x00, 0x00, 0x50, 0x00, 0x00, 0x01}, // version 0.5, 1 glyph
		"name": name.Encode(records),
	}
	if !spec.NoOS2 {
		info := &os2.Info{
			WeightClass: os2.Weight(weight),
			WidthClass:  os2.WidthNormal,
			IsBold:      weight >= 600,
			IsItalic:    spec.IsItalic,
			IsOblique:   spec.IsOblique,
			Vendor:      "TEST",
		}
		info.IsRegular = !info.IsBold && !info.IsItalic
		tables["OS/2"] = info.Encode()
	}
	return tables
}

type binaryHead struct {
	Version            uint32
	FontRevision       uint32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64
	Modified           int64
	XMin               int16
	YMin               int16
	XMax               int16
	YMax               int16
	MacStyle           uint16
	LowestRecPPEM      uint16
	FontDirectionHint  int16
	IndexToLocFormat   int16
	GlyphDataFormat    int16
}

func makeHead(spec *FontSpec) []byte {
	var macStyle uint16
	if spec.MacStyleBold {
		macStyle |= 1 << 0
	}
	if spec.MacStyleItalic {
		macStyle |= 1 << 1
	}
	enc := &binaryHead{
		Version:           0x00010000,
		FontRevision:      0x00010000,
		MagicNumber:       0x5F0F3CF5,
		Flags:             1<<0 | 1<<1 | 1<<3,
		UnitsPerEm:        1000,
		XMax:              1000,
		YMax:              1000,
		MacStyle:          macStyle,
		LowestRecPPEM:     8,
		FontDirectionHint: 2,
	}
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, enc)
	return buf.Bytes()
}

// EncodeSFNT returns an sfnt file containing the given tables.  The table
// offsets in the file header are shifted by base, so that the result can
// be placed at offset base inside a font collection.
// This changes the checksum in the "head" table in place.
func EncodeSFNT(base uint32, scalerType uint32, tables map[string][]byte) []byte {
	tableNames := make([]string, 0, len(tables))
	for name, data := range tables {
		if data != nil && len(name) == 4 {
			tableNames = append(tableNames, name)
		}
	}
	sort.Strings(tableNames)
	numTables := len(tableNames)

	entrySelector := bits.Len(uint(numTables)) - 1
	header := &offsets{
		ScalerType:    scalerType,
		NumTables:     uint16(numTables),
		SearchRange:   1 << (entrySelector + 4),
		EntrySelector: uint16(entrySelector),
		RangeShift:    uint16(16 * (numTables - 1<<entrySelector)),
	}

	// temporarily clear the checksum in the "head" table
	if headData, ok := tables["head"]; ok && len(headData) >= 12 {
		binary.BigEndian.PutUint32(headData[8:12], 0)
	}

	var totalSum uint32
	offset := uint32(12 + 16*numTables)
	records := make([]record, numTables)
	for i, name := range tableNames {
		body := tables[name]
		length := uint32(len(body))
		sum := checksum(body)

		copy(records[i].Tag[:], name)
		records[i].CheckSum = sum
		records[i].Offset = base + offset
		records[i].Length = length

		totalSum += sum
		offset += 4 * ((length + 3) / 4)
	}

	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, header)
	_ = binary.Write(buf, binary.BigEndian, records)
	totalSum += checksum(buf.Bytes())

	// set the final checksum in the "head" table
	if headData, ok := tables["head"]; ok && len(headData) >= 12 {
		binary.BigEndian.PutUint32(headData[8:12], 0xB1B0AFBA-totalSum)
	}

	var pad [3]byte
	for _, name := range tableNames {
		body := tables[name]
		buf.Write(body)
		if k := len(body) % 4; k != 0 {
			buf.Write(pad[:4-k])
		}
	}
	return buf.Bytes()
}

// MakeCollection combines the given sfnt files into a TrueType collection.
func MakeCollection(fonts ...[]byte) ([]byte, error) {
	type member struct {
		scalerType uint32
		tables     map[string][]byte
	}
	members := make([]member, len(fonts))
	for i, data := range fonts {
		f, err := container.Decode(data)
		if err != nil {
			return nil, err
		}
		tables := make(map[string][]byte)
		for _, name := range f.TableNames() {
			body, err := f.Table(name)
			if err != nil {
				return nil, err
			}
			tables[name] = bytes.Clone(body)
		}
		members[i] = member{scalerType: f.ScalerType, tables: tables}
	}

	headerSize := 12 + 4*len(fonts)
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, []uint32{0x74746366, 0x00010000, uint32(len(fonts))})
	buf.Write(make([]byte, 4*len(fonts)))

	out := buf.Bytes()
	pos := uint32(headerSize)
	for i, m := range members {
		binary.BigEndian.PutUint32(out[12+4*i:], pos)
		body := EncodeSFNT(pos, m.scalerType, m.tables)
		out = append(out, body...)
		pos += uint32(len(body))
	}
	return out, nil
}

type offsets struct {
	ScalerType    uint32
	NumTables     uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
}

type record struct {
	Tag      [4]byte
	CheckSum uint32
	Offset   uint32
	Length   uint32
}

func checksum(data []byte) uint32 {
	var sum uint32
	for len(data) >= 4 {
		sum += binary.BigEndian.Uint32(data)
		data = data[4:]
	}
	if len(data) > 0 {
		var last [4]byte
		copy(last[:], data)
		sum += binary.BigEndian.Uint32(last[:])
	}
	return sum
}
