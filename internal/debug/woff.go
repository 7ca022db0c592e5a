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

package debug

import (
	"bytes"
	"encoding/binary"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zlib"

	"seehuhn.de/go/fontres/container"
)

// ToWOFF converts an sfnt file into WOFF format.
func ToWOFF(sfnt []byte) ([]byte, error) {
	f, err := container.Decode(sfnt)
	if err != nil {
		return nil, err
	}
	names := f.TableNames()

	type entry struct {
		Tag          [4]byte
		Offset       uint32
		CompLength   uint32
		OrigLength   uint32
		OrigChecksum uint32
	}
	entries := make([]entry, len(names))
	var bodies [][]byte
	pos := uint32(44 + 20*len(names))
	for i, name := range names {
		orig, err := f.Table(name)
		if err != nil {
			return nil, err
		}

		zbuf := &bytes.Buffer{}
		zw := zlib.NewWriter(zbuf)
		_, err = zw.Write(orig)
		if err != nil {
			return nil, err
		}
		err = zw.Close()
		if err != nil {
			return nil, err
		}
		body := zbuf.Bytes()
		if len(body) >= len(orig) {
			body = orig
		}

		copy(entries[i].Tag[:], name)
		entries[i].Offset = pos
		entries[i].CompLength = uint32(len(body))
		entries[i].OrigLength = uint32(len(orig))
		entries[i].OrigChecksum = checksum(orig)
		bodies = append(bodies, body)
		pos += 4 * ((uint32(len(body)) + 3) / 4)
	}

	header := &woffHeader{
		Signature:     0x774F4646, // "wOFF"
		Flavor:        f.ScalerType,
		Length:        pos,
		NumTables:     uint16(len(names)),
		TotalSfntSize: uint32(len(sfnt)),
		MajorVersion:  1,
	}
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, header)
	_ = binary.Write(buf, binary.BigEndian, entries)
	var pad [3]byte
	for _, body := range bodies {
		buf.Write(body)
		if k := len(body) % 4; k != 0 {
			buf.Write(pad[:4-k])
		}
	}
	return buf.Bytes(), nil
}

// ToWOFF2 converts an sfnt file into WOFF2 format.
// All tables are stored using the null transform.
func ToWOFF2(sfnt []byte) ([]byte, error) {
	f, err := container.Decode(sfnt)
	if err != nil {
		return nil, err
	}
	names := f.TableNames()

	dir := &bytes.Buffer{}
	stream := &bytes.Buffer{}
	for _, name := range names {
		body, err := f.Table(name)
		if err != nil {
			return nil, err
		}

		flags := container.WOFF2KnownTag(name)
		if name == "glyf" || name == "loca" {
			flags |= 3 << 6 // null transform
		}
		dir.WriteByte(flags)
		if flags&0x3F == 63 {
			dir.WriteString(name)
		}
		writeUIntBase128(dir, uint32(len(body)))
		stream.Write(body)
	}

	compressed := &bytes.Buffer{}
	bw := brotli.NewWriter(compressed)
	_, err = bw.Write(stream.Bytes())
	if err != nil {
		return nil, err
	}
	err = bw.Close()
	if err != nil {
		return nil, err
	}

	total := 48 + dir.Len() + compressed.Len()
	total = 4 * ((total + 3) / 4)

	header := &woff2Header{
		Signature:           0x774F4632, // "wOF2"
		Flavor:              f.ScalerType,
		Length:              uint32(total),
		NumTables:           uint16(len(names)),
		TotalSfntSize:       uint32(len(sfnt)),
		TotalCompressedSize: uint32(compressed.Len()),
		MajorVersion:        1,
	}
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, header)
	buf.Write(dir.Bytes())
	buf.Write(compressed.Bytes())
	for buf.Len() < total {
		buf.WriteByte(0)
	}
	return buf.Bytes(), nil
}

func writeUIntBase128(buf *bytes.Buffer, x uint32) {
	var tmp [5]byte
	n := 0
	for {
		tmp[4-n] = byte(x & 0x7F)
		x >>= 7
		n++
		if x == 0 {
			break
		}
	}
	for i := 5 - n; i < 4; i++ {
		tmp[i] |= 0x80
	}
	buf.Write(tmp[5-n:])
}

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
