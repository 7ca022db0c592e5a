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

	"github.com/andybalholm/brotli"
)

// https://www.w3.org/TR/WOFF2/#woff20Header
type woff2Header struct {
	Signature           uint32
	Flavor              uint32
	Length              uint32
	NumTables           uint16
	Reserved            uint16
	TotalSfntSize       uint32
	TotalCompressedSize uint32
	MajorVersion        uint16
	MinorVersion        uint16
	MetaOffset          uint32
	MetaLength          uint32
	MetaOrigLength      uint32
	PrivOffset          uint32
	PrivLength          uint32
}

// woff2KnownTags lists the tags which can be encoded in the flags byte of a
// WOFF2 table directory entry.
// https://www.w3.org/TR/WOFF2/#table_dir_format
var woff2KnownTags = [63]string{
	"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post",
	"cvt ", "fpgm", "glyf", "loca", "prep", "CFF ", "VORG", "EBDT",
	"EBLC", "gasp", "hdmx", "kern", "LTSH", "PCLT", "VDMX", "vhea",
	"vmtx", "BASE", "GDEF", "GPOS", "GSUB", "EBSC", "JSTF", "MATH",
	"CBDT", "CBLC", "COLR", "CPAL", "SVG ", "sbix", "acnt", "avar",
	"bdat", "bloc", "bsln", "cvar", "fdsc", "feat", "fmtx", "fvar",
	"gvar", "hsty", "just", "lcar", "mort", "morx", "opbd", "prop",
	"trak", "Zapf", "Silf", "Glat", "Gloc", "Feat", "Sill",
}

// WOFF2KnownTag returns the index of tag in the list of known WOFF2 tags,
// or 63 if the tag is not in the list.
func WOFF2KnownTag(tag string) byte {
	for i, known := range woff2KnownTags {
		if known == tag {
			return byte(i)
		}
	}
	return 63
}

type woff2Entry struct {
	tag         string
	length      uint32 // length of the data in the decompressed stream
	transformed bool
}

func decodeWOFF2(data []byte) (*Font, error) {
	r := bytes.NewReader(data)
	head := &woff2Header{}
	err := binary.Read(r, binary.BigEndian, head)
	if err != nil {
		return nil, errTooShort
	}
	if head.NumTables == 0 {
		return nil, &InvalidFontError{Reason: "no tables found"}
	}

	entries := make([]woff2Entry, head.NumTables)
	var streamSize uint64
	for i := range entries {
		e, err := readWOFF2Entry(r)
		if err != nil {
			return nil, err
		}
		entries[i] = e
		streamSize += uint64(e.length)
	}

	scalerType := head.Flavor
	use := make([]int, len(entries))
	for i := range use {
		use[i] = i
	}
	format := FormatWOFF2
	if head.Flavor == tagCollection {
		scalerType, use, err = readWOFF2Collection(r, len(entries))
		if err != nil {
			return nil, err
		}
		format = FormatCollection
	}

	start, _ := r.Seek(0, io.SeekCurrent)
	end := uint64(start) + uint64(head.TotalCompressedSize)
	if end > uint64(len(data)) {
		return nil, &InvalidFontError{Reason: "compressed data extends beyond EOF"}
	}
	if streamSize > maxStreamSize {
		return nil, &InvalidFontError{Reason: "decompressed data too large"}
	}

	br := brotli.NewReader(bytes.NewReader(data[start:end]))
	stream, err := io.ReadAll(io.LimitReader(br, int64(streamSize)))
	if err != nil {
		return nil, &InvalidFontError{Reason: "corrupt WOFF2 data: " + err.Error()}
	} else if uint64(len(stream)) < streamSize {
		return nil, &InvalidFontError{Reason: "WOFF2 data too short"}
	}

	offsets := make([]uint32, len(entries))
	var pos uint32
	for i, e := range entries {
		offsets[i] = pos
		pos += e.length
	}

	f := &Font{
		Format:     format,
		ScalerType: scalerType,
		tables:     make(map[string][]byte, len(use)),
	}
	for _, idx := range use {
		e := entries[idx]
		if e.transformed {
			// The reconstruction of transformed tables (glyf, loca, hmtx)
			// is not implemented.  Record the presence of the table only.
			f.tables[e.tag] = nil
			continue
		}
		lo, hi := offsets[idx], offsets[idx]+e.length
		f.tables[e.tag] = stream[lo:hi:hi]
	}
	return f, nil
}

// maxStreamSize limits the memory used for decompressing WOFF2 files.
const maxStreamSize = 1 << 30

func readWOFF2Entry(r *bytes.Reader) (woff2Entry, error) {
	var e woff2Entry

	flags, err := r.ReadByte()
	if err != nil {
		return e, errTruncatedDirectory
	}
	if idx := flags & 0x3F; idx < 63 {
		e.tag = woff2KnownTags[idx]
	} else {
		var tag [4]byte
		_, err := io.ReadFull(r, tag[:])
		if err != nil {
			return e, errTruncatedDirectory
		}
		e.tag = string(tag[:])
	}

	origLength, err := readUIntBase128(r)
	if err != nil {
		return e, err
	}
	e.length = origLength

	version := flags >> 6
	if e.tag == "glyf" || e.tag == "loca" {
		e.transformed = version == 0
	} else {
		e.transformed = version != 0
	}
	if e.transformed {
		e.length, err = readUIntBase128(r)
		if err != nil {
			return e, err
		}
	}
	return e, nil
}

// readWOFF2Collection reads the collection directory of a WOFF2 file and
// returns the flavor and the table indices of the first font.
func readWOFF2Collection(r *bytes.Reader, numTables int) (uint32, []int, error) {
	var version uint32
	err := binary.Read(r, binary.BigEndian, &version)
	if err != nil {
		return 0, nil, errTruncatedDirectory
	}
	numFonts, err := read255UInt16(r)
	if err != nil {
		return 0, nil, err
	}
	if numFonts == 0 {
		return 0, nil, &InvalidFontError{Reason: "empty font collection"}
	}

	var first []int
	var firstFlavor uint32
	for i := 0; i < int(numFonts); i++ {
		n, err := read255UInt16(r)
		if err != nil {
			return 0, nil, err
		}
		var flavor uint32
		err = binary.Read(r, binary.BigEndian, &flavor)
		if err != nil {
			return 0, nil, errTruncatedDirectory
		}
		idx := make([]int, n)
		for j := range idx {
			k, err := read255UInt16(r)
			if err != nil {
				return 0, nil, err
			}
			if int(k) >= numTables {
				return 0, nil, &InvalidFontError{Reason: "invalid table index in collection"}
			}
			idx[j] = int(k)
		}
		if i == 0 {
			first = idx
			firstFlavor = flavor
		}
	}
	return firstFlavor, first, nil
}

// readUIntBase128 reads a variable-length encoded 32 bit integer.
// https://www.w3.org/TR/WOFF2/#DataTypes
func readUIntBase128(r io.ByteReader) (uint32, error) {
	var accum uint32
	for i := 0; i < 5; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, errTruncatedDirectory
		}
		if i == 0 && b == 0x80 {
			return 0, errInvalidBase128
		}
		if accum&0xFE000000 != 0 {
			return 0, errInvalidBase128
		}
		accum = accum<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return accum, nil
		}
	}
	return 0, errInvalidBase128
}

// read255UInt16 reads a variable-length encoded 16 bit integer.
// https://www.w3.org/TR/WOFF2/#DataTypes
func read255UInt16(r io.ByteReader) (uint16, error) {
	const (
		oneMoreByteCode2 = 254
		oneMoreByteCode1 = 255
		wordCode         = 253
		lowestUCode      = 253
	)
	code, err := r.ReadByte()
	if err != nil {
		return 0, errTruncatedDirectory
	}
	switch code {
	case wordCode:
		hi, err1 := r.ReadByte()
		lo, err2 := r.ReadByte()
		if err1 != nil || err2 != nil {
			return 0, errTruncatedDirectory
		}
		return uint16(hi)<<8 | uint16(lo), nil
	case oneMoreByteCode1:
		b, err := r.ReadByte()
		if err != nil {
			return 0, errTruncatedDirectory
		}
		return uint16(b) + lowestUCode, nil
	case oneMoreByteCode2:
		b, err := r.ReadByte()
		if err != nil {
			return 0, errTruncatedDirectory
		}
		return uint16(b) + lowestUCode*2, nil
	default:
		return uint16(code), nil
	}
}

var (
	errTruncatedDirectory = &InvalidFontError{Reason: "truncated table directory"}
	errInvalidBase128     = &InvalidFontError{Reason: "invalid UIntBase128 value"}
)
