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

	"github.com/klauspost/compress/zlib"
)

// https://www.w3.org/TR/WOFF/#WOFFHeader
type woffHeader struct {
	Signature      uint32
	Flavor         uint32
	Length         uint32
	NumTables      uint16
	Reserved       uint16
	TotalSfntSize  uint32
	MajorVersion   uint16
	MinorVersion   uint16
	MetaOffset     uint32
	MetaLength     uint32
	MetaOrigLength uint32
	PrivOffset     uint32
	PrivLength     uint32
}

// https://www.w3.org/TR/WOFF/#TableDirectory
type woffTableRecord struct {
	Tag          [4]byte
	Offset       uint32
	CompLength   uint32
	OrigLength   uint32
	OrigChecksum uint32
}

func decodeWOFF(data []byte) (*Font, error) {
	r := bytes.NewReader(data)
	head := &woffHeader{}
	err := binary.Read(r, binary.BigEndian, head)
	if err != nil {
		return nil, errTooShort
	}
	if head.Reserved != 0 {
		return nil, &InvalidFontError{Reason: "invalid WOFF header"}
	}
	if head.NumTables == 0 {
		return nil, &InvalidFontError{Reason: "no tables found"}
	} else if head.NumTables > maxTables {
		return nil, &InvalidFontError{Reason: "too many tables"}
	}

	records := make([]woffTableRecord, head.NumTables)
	err = binary.Read(r, binary.BigEndian, records)
	if err != nil {
		return nil, &InvalidFontError{Reason: "truncated table directory"}
	}

	f := &Font{
		Format:     FormatWOFF,
		ScalerType: head.Flavor,
		tables:     make(map[string][]byte, len(records)),
	}
	for _, rec := range records {
		end := uint64(rec.Offset) + uint64(rec.CompLength)
		if end > uint64(len(data)) {
			return nil, &InvalidFontError{Reason: "table extends beyond EOF"}
		}
		body := data[rec.Offset:end:end]

		switch {
		case rec.CompLength == rec.OrigLength:
			// stored without compression
		case rec.CompLength < rec.OrigLength:
			body, err = inflate(body, rec.OrigLength)
			if err != nil {
				return nil, err
			}
		default:
			return nil, &InvalidFontError{Reason: "invalid compressed table length"}
		}
		f.tables[string(rec.Tag[:])] = body
	}
	return f, nil
}

// inflate decompresses a zlib-compressed WOFF table.
func inflate(body []byte, origLength uint32) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, &InvalidFontError{Reason: "corrupt WOFF table: " + err.Error()}
	}
	defer zr.Close()

	res, err := io.ReadAll(io.LimitReader(zr, int64(origLength)))
	if err != nil {
		return nil, &InvalidFontError{Reason: "corrupt WOFF table: " + err.Error()}
	} else if len(res) < int(origLength) {
		return nil, &InvalidFontError{Reason: "corrupt WOFF table: short data"}
	}
	return res, nil
}
