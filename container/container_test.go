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

package container_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/fontres/container"
	"seehuhn.de/go/fontres/internal/debug"
	"seehuhn.de/go/fontres/name"
)

func tables(t *testing.T, f *container.Font) map[string][]byte {
	t.Helper()
	res := make(map[string][]byte)
	for _, tableName := range f.TableNames() {
		data, err := f.Table(tableName)
		if err != nil {
			t.Fatalf("%s: %v", tableName, err)
		}
		res[tableName] = data
	}
	return res
}

func family(t *testing.T, f *container.Font) string {
	t.Helper()
	data, err := f.Table("name")
	if err != nil {
		t.Fatal(err)
	}
	info, err := name.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	return info.Family()
}

func TestSFNT(t *testing.T) {
	for _, cff := range []bool{false, true} {
		data := debug.MakeFont(&debug.FontSpec{Family: "Test Sans", CFF: cff})
		f, err := container.Decode(data)
		if err != nil {
			t.Fatal(err)
		}
		if f.Format != container.FormatSFNT {
			t.Errorf("wrong format %s", f.Format)
		}
		want := uint32(container.ScalerTypeTrueType)
		if cff {
			want = container.ScalerTypeCFF
		}
		if f.ScalerType != want {
			t.Errorf("wrong scaler type 0x%08x", f.ScalerType)
		}
		if !f.Has("head", "maxp", "name", "OS/2") {
			t.Errorf("missing tables: %v", f.TableNames())
		}
		if got := family(t, f); got != "Test Sans" {
			t.Errorf("family %q", got)
		}
	}
}

func TestWebFonts(t *testing.T) {
	sources := map[string][]byte{
		"debug":     debug.MakeFont(&debug.FontSpec{Family: "Web", WeightClass: 700}),
		"goregular": goregular.TTF,
	}
	for label, sfnt := range sources {
		ref, err := container.Decode(sfnt)
		if err != nil {
			t.Fatal(err)
		}
		want := tables(t, ref)

		woff, err := debug.ToWOFF(sfnt)
		if err != nil {
			t.Fatal(err)
		}
		woff2, err := debug.ToWOFF2(sfnt)
		if err != nil {
			t.Fatal(err)
		}

		for _, tc := range []struct {
			data   []byte
			format container.Format
		}{
			{woff, container.FormatWOFF},
			{woff2, container.FormatWOFF2},
		} {
			f, err := container.Decode(tc.data)
			if err != nil {
				t.Fatalf("%s/%s: %v", label, tc.format, err)
			}
			if f.Format != tc.format {
				t.Errorf("%s: wrong format %s", label, f.Format)
			}
			if f.ScalerType != ref.ScalerType {
				t.Errorf("%s/%s: wrong scaler type 0x%08x", label, tc.format, f.ScalerType)
			}
			if d := cmp.Diff(want, tables(t, f)); d != "" {
				t.Errorf("%s/%s: tables differ (-want +got):\n%s", label, tc.format, d)
			}
		}
	}
}

func TestCollection(t *testing.T) {
	a := debug.MakeFont(&debug.FontSpec{Family: "First"})
	b := debug.MakeFont(&debug.FontSpec{Family: "Second", IsItalic: true})
	data, err := debug.MakeCollection(a, b)
	if err != nil {
		t.Fatal(err)
	}

	f, err := container.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.Format != container.FormatCollection {
		t.Errorf("wrong format %s", f.Format)
	}
	if got := family(t, f); got != "First" {
		t.Errorf("family %q, want %q", got, "First")
	}
}

func TestMissingTable(t *testing.T) {
	f, err := container.Decode(debug.MakeFont(&debug.FontSpec{Family: "X", NoOS2: true}))
	if err != nil {
		t.Fatal(err)
	}
	if f.Has("OS/2") {
		t.Error("unexpected OS/2 table")
	}
	_, err = f.Table("OS/2")
	var noTable *container.ErrNoTable
	if !errors.As(err, &noTable) || noTable.Name != "OS/2" {
		t.Errorf("got %v", err)
	}
}

func TestInvalid(t *testing.T) {
	good := debug.MakeFont(&debug.FontSpec{Family: "X"})
	woff, err := debug.ToWOFF(good)
	if err != nil {
		t.Fatal(err)
	}

	truncatedTable := bytes.Clone(good[:len(good)-8])

	cases := map[string][]byte{
		"empty":          nil,
		"text":           []byte("this is not a font file"),
		"no tables":      {0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		"short header":   good[:20],
		"truncated":      truncatedTable,
		"woff truncated": woff[:50],
		"ttc truncated":  []byte("ttcf\x00\x01\x00\x00\x00\x00\x00\x01"),
	}
	for label, data := range cases {
		_, err := container.Decode(data)
		if err == nil {
			t.Errorf("%s: expected an error", label)
			continue
		}
		if !container.IsInvalid(err) {
			t.Errorf("%s: unexpected error type %T: %v", label, err, err)
		}
	}
}

func FuzzDecode(f *testing.F) {
	sfnt := debug.MakeFont(&debug.FontSpec{Family: "Fuzz"})
	f.Add(sfnt)
	if woff, err := debug.ToWOFF(sfnt); err == nil {
		f.Add(woff)
	}
	if woff2, err := debug.ToWOFF2(sfnt); err == nil {
		f.Add(woff2)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		font, err := container.Decode(data)
		if err != nil {
			if !container.IsInvalid(err) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}
		for _, name := range font.TableNames() {
			_, _ = font.Table(name)
		}
	})
}
