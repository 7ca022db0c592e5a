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

// Package metadata reads the family name, weight and style of font files.
//
// The package separates parsing from classification.  A [Source] extracts
// the raw values from a font file; two implementations are provided,
// [File] which uses the decoders of this module, and [SFNT] which uses the
// seehuhn.de/go/sfnt library.  A [Classifier] maps the raw values to the
// standard weights and styles of package fontres.
package metadata

import (
	"seehuhn.de/go/fontres"
)

// Face contains the raw metadata of the first font in a font file.
type Face struct {
	Family      string
	WeightClass uint16 // OS/2 weight class, 1-1000
	IsItalic    bool
	IsOblique   bool
}

// Source reads the metadata of font files.
//
// Implementations return a [*fontres.UnreadableFontError] if the file is
// not a valid font, and pass through other errors (for example if the file
// cannot be opened).
type Source interface {
	ReadFace(path string) (*Face, error)
}

// ObliquePolicy decides how fonts marked as oblique are treated.
type ObliquePolicy int

// These are the supported policies for oblique fonts.
const (
	// ObliqueAsNormal treats oblique fonts as upright.
	ObliqueAsNormal ObliquePolicy = iota

	// ObliqueAsItalic treats oblique fonts as italic.
	ObliqueAsItalic

	// ObliqueReject rejects oblique fonts with an error.
	ObliqueReject
)

// Classifier maps raw font metadata to standard weights and styles.
// The zero value accepts only the exact weight classes 100, ..., 900 and
// treats oblique fonts as upright.
type Classifier struct {
	Weights fontres.WeightMatch
	Oblique ObliquePolicy
}

// Classify determines the weight and style of a font.
// The path is only used in error messages.
func (c *Classifier) Classify(path string, face *Face) (fontres.Weight, fontres.Style, error) {
	weight, ok := fontres.ClassifyWeight(face.WeightClass, c.Weights)
	if !ok {
		return 0, 0, &fontres.UnrecognizedWeightError{
			Path:        path,
			WeightClass: face.WeightClass,
		}
	}

	style := fontres.StyleNormal
	switch {
	case face.IsOblique:
		switch c.Oblique {
		case ObliqueAsItalic:
			style = fontres.StyleItalic
		case ObliqueReject:
			return 0, 0, &fontres.UnsupportedStyleError{Path: path, Style: "oblique"}
		}
	case face.IsItalic:
		style = fontres.StyleItalic
	}
	return weight, style, nil
}

// Metadata is the information about a font file needed to build a
// [fontres.Variant].
type Metadata struct {
	Family string
	Weight fontres.Weight
	Style  fontres.Style
}

// Reader combines a Source with a Classifier.
type Reader struct {
	Source     Source // if nil, File is used
	Classifier Classifier
}

// ReadMetadata reads the family, weight and style of a font file.
func (r *Reader) ReadMetadata(path string) (*Metadata, error) {
	src := r.Source
	if src == nil {
		src = File{}
	}
	face, err := src.ReadFace(path)
	if err != nil {
		return nil, err
	}
	weight, style, err := r.Classifier.Classify(path, face)
	if err != nil {
		return nil, err
	}
	return &Metadata{
		Family: face.Family,
		Weight: weight,
		Style:  style,
	}, nil
}
