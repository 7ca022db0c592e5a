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

// Package compose generates Jetpack Compose source code which declares
// font families.
//
// For every family, the generated code contains a declaration of the form
//
//	val RobotoFontFamily = FontFamily(
//		Font(R.font.roboto_bold, FontWeight.Bold),
//		Font(R.font.roboto_italic, FontWeight.Normal, FontStyle.Italic)
//	)
//
// followed by two empty lines.  By default, lines end in CRLF.
package compose

import (
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/fontres"
)

// Default values for the fields of [Options].
const (
	DefaultLineEnding     = "\r\n"
	DefaultSuffix         = "FontFamily"
	DefaultResourcePrefix = "R.font."
)

// Options controls the generated code.
// A nil *Options selects the default values.
type Options struct {
	// LineEnding is written at the end of every line.
	// If this is empty, [DefaultLineEnding] is used.
	LineEnding string

	// Order is the order of the family declarations.
	// The default is to sort families by name.
	Order fontres.Order

	// Suffix is appended to the variable names.
	// If this is empty, [DefaultSuffix] is used.
	Suffix string

	// ResourcePrefix is prepended to the resource names.
	// If this is empty, [DefaultResourcePrefix] is used.
	ResourcePrefix string
}

func (opt *Options) withDefaults() Options {
	var res Options
	if opt != nil {
		res = *opt
	}
	if res.LineEnding == "" {
		res.LineEnding = DefaultLineEnding
	}
	if res.Suffix == "" {
		res.Suffix = DefaultSuffix
	}
	if res.ResourcePrefix == "" {
		res.ResourcePrefix = DefaultResourcePrefix
	}
	return res
}

// Generate returns the declarations for all families in fams.
//
// Every variant must have one of the standard weights; the function
// panics otherwise.
func Generate(fams *fontres.Families, opt *Options) string {
	o := opt.withDefaults()
	b := &strings.Builder{}
	for _, family := range fams.Names(o.Order) {
		writeFamily(b, family, fams.Variants(family), &o)
	}
	return b.String()
}

// Write writes the declarations for all families in fams to w.
func Write(w io.Writer, fams *fontres.Families, opt *Options) error {
	_, err := io.WriteString(w, Generate(fams, opt))
	return err
}

func writeFamily(b *strings.Builder, family string, variants []fontres.Variant, o *Options) {
	eol := o.LineEnding

	b.WriteString("val ")
	b.WriteString(pascalCase(family))
	b.WriteString(o.Suffix)
	b.WriteString(" = FontFamily(")
	b.WriteString(eol)
	for i, v := range variants {
		b.WriteString("\tFont(")
		b.WriteString(o.ResourcePrefix)
		b.WriteString(v.ResourceName)
		b.WriteString(", ")
		b.WriteString(v.Weight.Token())
		if style := v.Style.Token(); style != "" {
			b.WriteString(", ")
			b.WriteString(style)
		}
		b.WriteString(")")
		if i != len(variants)-1 {
			b.WriteString(",")
		}
		b.WriteString(eol)
	}
	b.WriteString(")")
	b.WriteString(eol)
	b.WriteString(eol)
	b.WriteString(eol)
}

// VariableName returns the Kotlin variable name used for a font family.
// The family name is converted to Pascal case and [DefaultSuffix] is
// appended, for example "Open Sans" becomes "OpenSansFontFamily".
func VariableName(family string) string {
	return pascalCase(family) + DefaultSuffix
}

// pascalCase joins the words of s, with the first letter of every word in
// upper case and the remaining letters in lower case.
func pascalCase(s string) string {
	caser := cases.Title(language.Und)
	b := &strings.Builder{}
	for _, word := range splitWords(s) {
		b.WriteString(caser.String(word))
	}
	return b.String()
}

// splitWords splits s into words.  Words are separated by all characters
// other than letters and digits, and a new word starts
//   - at an upper-case letter following a lower-case letter ("OpenSans"),
//   - at the last letter of a run of capitals which is followed by a
//     lower-case letter ("IBMPlex"), and
//   - at every change between digits and letters ("Roboto2").
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	rr := []rune(s)
	for i, r := range rr {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsDigit(prev) != unicode.IsDigit(r):
				flush()
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
				i+1 < len(rr) && unicode.IsLower(rr[i+1]):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
