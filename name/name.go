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

// Package name reads and writes OpenType "name" tables.
// These tables contain localized strings associated with a font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"errors"
	"sort"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ID identifies the meaning of a string in the "name" table.
type ID uint16

// Name IDs used by this package.
const (
	Copyright            ID = 0
	Family               ID = 1
	Subfamily            ID = 2
	FullName             ID = 4
	PostScriptName       ID = 6
	TypographicFamily    ID = 16
	TypographicSubfamily ID = 17
)

// Platform IDs.
const (
	PlatformUnicode   = 0
	PlatformMacintosh = 1
	PlatformWindows   = 3
)

// Record is a single decoded string from a "name" table.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     ID
	Value      string
}

// Table contains the strings from a "name" table which use an encoding
// understood by this package.
type Table struct {
	Records []Record
}

// Decode extracts information from the "name" table.
func Decode(data []byte) (*Table, error) {
	if len(data) < 6 {
		return nil, errMalformedNames
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	numRec := int(data[2])<<8 | int(data[3])
	storageOffset := int(data[4])<<8 | int(data[5])

	if version > 1 {
		return nil, errMalformedNames
	}

	recBase := 6
	endOfHeader := recBase + 12*numRec
	if endOfHeader > len(data) {
		return nil, errMalformedNames
	}
	if version > 0 {
		if endOfHeader+2 > len(data) {
			return nil, errMalformedNames
		}
		numLang := int(data[endOfHeader])<<8 | int(data[endOfHeader+1])
		endOfHeader += 2 + numLang*4
	}
	if storageOffset < endOfHeader || storageOffset > len(data) {
		return nil, errMalformedNames
	}

	t := &Table{}
	for i := 0; i < numRec; i++ {
		pos := recBase + i*12
		rec := Record{
			PlatformID: uint16(data[pos])<<8 | uint16(data[pos+1]),
			EncodingID: uint16(data[pos+2])<<8 | uint16(data[pos+3]),
			LanguageID: uint16(data[pos+4])<<8 | uint16(data[pos+5]),
			NameID:     ID(data[pos+6])<<8 | ID(data[pos+7]),
		}
		nameLen := int(data[pos+8])<<8 | int(data[pos+9])
		nameOffset := int(data[pos+10])<<8 | int(data[pos+11])

		start := storageOffset + nameOffset
		if start+nameLen > len(data) {
			return nil, errMalformedNames
		}

		// We ignore encodings we don't understand.
		dec := decoder(rec.PlatformID, rec.EncodingID)
		if dec == nil {
			continue
		}
		raw := data[start : start+nameLen]
		if dec != macRoman {
			raw = raw[:len(raw)&^1]
		}
		val, err := dec.NewDecoder().Bytes(raw)
		if err != nil || len(val) == 0 {
			continue
		}
		rec.Value = string(val)
		t.Records = append(t.Records, rec)
	}

	return t, nil
}

// Get returns the string for the given name ID.  If several records are
// present, US English Windows strings are preferred, followed by Unicode
// platform strings, other Windows strings and finally Macintosh strings.
// If no record has the given ID, the empty string is returned.
func (t *Table) Get(id ID) string {
	var best *Record
	bestScore := -2
	for i := range t.Records {
		rec := &t.Records[i]
		if rec.NameID != id {
			continue
		}
		score := rank(rec)
		if score > bestScore || score == bestScore && less(rec, best) {
			best = rec
			bestScore = score
		}
	}
	if best == nil {
		return ""
	}
	return best.Value
}

// less gives a tie-breaker between records of the same rank, so that the
// result of Get does not depend on the order of records in the table.
func less(a, b *Record) bool {
	if a.EncodingID != b.EncodingID {
		return a.EncodingID < b.EncodingID
	}
	if a.LanguageID != b.LanguageID {
		return a.LanguageID < b.LanguageID
	}
	return a.Value < b.Value
}

// Family returns the family name of the font.  The typographic family
// name is used if present, since this groups all weights of a font under
// one name.
func (t *Table) Family() string {
	if family := t.Get(TypographicFamily); family != "" {
		return family
	}
	return t.Get(Family)
}

func rank(rec *Record) int {
	switch rec.PlatformID {
	case PlatformWindows:
		if rec.LanguageID == 0x0409 {
			return 4
		}
		return 2
	case PlatformUnicode:
		return 3
	case PlatformMacintosh:
		if rec.LanguageID == 0 {
			return 1
		}
		return 0
	default:
		return -1
	}
}

var (
	utf16BE  encoding.Encoding = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	macRoman encoding.Encoding = charmap.Macintosh
)

func decoder(platformID, encodingID uint16) encoding.Encoding {
	switch platformID {
	case PlatformUnicode:
		return utf16BE
	case PlatformWindows:
		switch encodingID {
		case 0, 1, 10: // Symbol, Unicode BMP, Unicode full repertoire
			return utf16BE
		}
	case PlatformMacintosh:
		if encodingID == 0 { // Roman
			return macRoman
		}
	}
	return nil
}

// Encode converts a list of records into the binary form of a "name" table.
// Records whose value cannot be represented in the encoding given by the
// platform and encoding IDs are skipped.
func Encode(records []Record) []byte {
	type recInfo struct {
		Record
		offset uint16
		length uint16
	}
	var infos []*recInfo
	var storage []byte
	seen := make(map[string]uint16)
	for _, rec := range records {
		enc := decoder(rec.PlatformID, rec.EncodingID)
		if enc == nil {
			continue
		}
		body, err := enc.NewEncoder().String(rec.Value)
		if err != nil {
			continue
		}
		offs, ok := seen[body]
		if !ok {
			offs = uint16(len(storage))
			seen[body] = offs
			storage = append(storage, body...)
		}
		infos = append(infos, &recInfo{Record: rec, offset: offs, length: uint16(len(body))})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].PlatformID != infos[j].PlatformID {
			return infos[i].PlatformID < infos[j].PlatformID
		}
		if infos[i].EncodingID != infos[j].EncodingID {
			return infos[i].EncodingID < infos[j].EncodingID
		}
		if infos[i].LanguageID != infos[j].LanguageID {
			return infos[i].LanguageID < infos[j].LanguageID
		}
		return infos[i].NameID < infos[j].NameID
	})

	numRec := len(infos)
	startOfStrings := 6 + numRec*12
	res := make([]byte, startOfStrings+len(storage))
	res[2] = byte(numRec >> 8)
	res[3] = byte(numRec)
	res[4] = byte(startOfStrings >> 8)
	res[5] = byte(startOfStrings)
	for i, rec := range infos {
		base := 6 + i*12
		res[base] = byte(rec.PlatformID >> 8)
		res[base+1] = byte(rec.PlatformID)
		res[base+2] = byte(rec.EncodingID >> 8)
		res[base+3] = byte(rec.EncodingID)
		res[base+4] = byte(rec.LanguageID >> 8)
		res[base+5] = byte(rec.LanguageID)
		res[base+6] = byte(rec.NameID >> 8)
		res[base+7] = byte(rec.NameID)
		res[base+8] = byte(rec.length >> 8)
		res[base+9] = byte(rec.length)
		res[base+10] = byte(rec.offset >> 8)
		res[base+11] = byte(rec.offset)
	}
	copy(res[startOfStrings:], storage)

	return res
}

var errMalformedNames = errors.New("sfnt/name: malformed name table")
