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

// Package fontres describes font families found in a directory of font
// files, in the form needed for Android font resources.
//
// A [Variant] describes one font file, a [Families] value groups variants
// by family name.  The packages below this one fill these types in:
// [seehuhn.de/go/fontres/scan] renames and reads the files,
// [seehuhn.de/go/fontres/compose] turns the result into Kotlin source code.
package fontres

import (
	"fmt"
	"slices"
)

// Weight is one of the nine standard font weights.
type Weight int

// The standard font weights, in order of increasing boldness.
const (
	Thin Weight = iota + 1
	ExtraLight
	Light
	Normal
	Medium
	SemiBold
	Bold
	ExtraBold
	Black
)

// AllWeights lists the standard weights in order of increasing boldness.
var AllWeights = []Weight{
	Thin, ExtraLight, Light, Normal, Medium, SemiBold, Bold, ExtraBold, Black,
}

var weightNames = map[Weight]string{
	Thin:       "Thin",
	ExtraLight: "ExtraLight",
	Light:      "Light",
	Normal:     "Normal",
	Medium:     "Medium",
	SemiBold:   "SemiBold",
	Bold:       "Bold",
	ExtraBold:  "ExtraBold",
	Black:      "Black",
}

func (w Weight) String() string {
	if s, ok := weightNames[w]; ok {
		return s
	}
	return fmt.Sprintf("Weight(%d)", int(w))
}

// IsValid reports whether w is one of the nine standard weights.
func (w Weight) IsValid() bool {
	return w >= Thin && w <= Black
}

// Class returns the OS/2 weight class of w, i.e. 100 for Thin up to 900
// for Black.
func (w Weight) Class() uint16 {
	if !w.IsValid() {
		return 0
	}
	return uint16(w) * 100
}

// Token returns the Jetpack Compose expression for w, for example
// "FontWeight.SemiBold".
//
// The function panics if w is not one of the standard weights.
func (w Weight) Token() string {
	s, ok := weightNames[w]
	if !ok {
		panic(fmt.Sprintf("fontres: no token for %s", w))
	}
	return "FontWeight." + s
}

// Style distinguishes upright from italic fonts.
type Style int

// These are the supported font styles.
const (
	StyleNormal Style = iota
	StyleItalic
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleItalic:
		return "Italic"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Token returns the Jetpack Compose expression for s.
// Upright fonts need no style argument and give the empty string.
func (s Style) Token() string {
	if s == StyleItalic {
		return "FontStyle.Italic"
	}
	return ""
}

// Variant describes a single font file within a family.
type Variant struct {
	Family       string
	ResourceName string // normalized file name, without extension
	Weight       Weight
	Style        Style
}

func (v Variant) String() string {
	return fmt.Sprintf("%s/%s (%s %s)", v.Family, v.ResourceName, v.Weight, v.Style)
}

// Order selects the order in which [Families.Names] lists the families.
type Order int

// These are the supported family orders.
const (
	// OrderName sorts families by name.
	OrderName Order = iota

	// OrderScan lists families in the order in which they were first seen.
	OrderScan
)

// Families groups font variants by family name.
// The zero value is an empty collection, ready to use.
type Families struct {
	byName map[string][]Variant
	seen   []string
}

// Add appends v to the variants of its family.
func (f *Families) Add(v Variant) {
	if f.byName == nil {
		f.byName = make(map[string][]Variant)
	}
	if _, ok := f.byName[v.Family]; !ok {
		f.seen = append(f.seen, v.Family)
	}
	f.byName[v.Family] = append(f.byName[v.Family], v)
}

// Len returns the number of families.
func (f *Families) Len() int {
	if f == nil {
		return 0
	}
	return len(f.seen)
}

// Names returns the family names in the given order.
func (f *Families) Names(order Order) []string {
	if f == nil {
		return nil
	}
	names := slices.Clone(f.seen)
	if order == OrderName {
		slices.Sort(names)
	}
	return names
}

// Variants returns the variants of the given family, in the order they
// were added.  The caller must not modify the returned slice.
func (f *Families) Variants(family string) []Variant {
	if f == nil {
		return nil
	}
	return f.byName[family]
}

// NumVariants returns the total number of variants in all families.
func (f *Families) NumVariants() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, vv := range f.byName {
		n += len(vv)
	}
	return n
}
