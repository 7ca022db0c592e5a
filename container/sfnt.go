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

package container

import (
	"bytes"
	"encoding/binary"
	"io"
)

// The offsets sub-table forms the first part of an sfnt file.
type offsets struct {
	ScalerType    uint32
	NumTables     uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
}

// A tableRecord describes a single table in the directory of an sfnt file.
type tableRecord struct {
	Tag      [4]byte
	CheckSum uint32
	Offset   uint32
	Length   uint32
}

// maxTables limits the size of the table directory.
// The largest number of tables in the fonts on my laptop is 28.
const maxTables = 280

// decodeSFNT reads the table directory starting at the given offset.
// Table offsets are relative to the start of data.
func decodeSFNT(data []byte, base uint32, format Format) (*Font, error) {
	if uint64(base)+12 > uint64(len(data)) {
		return nil, errTooShort
	}
	r := bytes.NewReader(data[base:])

	head := &offsets{}
	err := binary.Read(r, binary.BigEndian, head)
	if err != nil {
		return nil, err
	}
	switch head.ScalerType {
	case ScalerTypeTrueType, ScalerTypeCFF, ScalerTypeApple:
		// pass
	default:
		return nil, &InvalidFontError{Reason: "invalid sfnt version"}
	}
	if head.NumTables == 0 {
		return nil, &InvalidFontError{Reason: "no tables found"}
	} else if head.NumTables > maxTables {
		return nil, &InvalidFontError{Reason: "too many tables"}
	}

	records := make([]tableRecord, head.NumTables)
	err = binary.Read(r, binary.BigEndian, records)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, &InvalidFontError{Reason: "truncated table directory"}
	} else if err != nil {
		return nil, err
	}

	f := &Font{
		Format:     format,
		ScalerType: head.ScalerType,
		tables:     make(map[string][]byte, len(records)),
	}
	for _, rec := range records {
		end := uint64(rec.Offset) + uint64(rec.Length)
		if end > uint64(len(data)) {
			return nil, &InvalidFontError{Reason: "table extends beyond EOF"}
		}
		f.tables[string(rec.Tag[:])] = data[rec.Offset:end:end]
	}
	return f, nil
}

type collectionHeader struct {
	Tag          uint32
	MajorVersion uint16
	MinorVersion uint16
	NumFonts     uint32
}

// decodeCollection reads the first font of a TrueType collection.
func decodeCollection(data []byte) (*Font, error) {
	r := bytes.NewReader(data)
	head := &collectionHeader{}
	err := binary.Read(r, binary.BigEndian, head)
	if err != nil {
		return nil, errTooShort
	}
	if head.NumFonts == 0 {
		return nil, &InvalidFontError{Reason: "empty font collection"}
	}
	var offset uint32
	err = binary.Read(r, binary.BigEndian, &offset)
	if err != nil {
		return nil, errTooShort
	}
	return decodeSFNT(data, offset, FormatCollection)
}
