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

package fontres

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors reported by [seehuhn.de/go/fontres/scan.Check].
var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrNoFonts           = errors.New("no fonts in directory")
)

// UnreadableFontError indicates that a file could not be parsed as a font.
type UnreadableFontError struct {
	Path string
	Err  error
}

func (err *UnreadableFontError) Error() string {
	return err.Path + ": unreadable font: " + err.Err.Error()
}

func (err *UnreadableFontError) Unwrap() error {
	return err.Err
}

// UnrecognizedWeightError indicates that a font declares a weight class
// which does not correspond to one of the standard weights.
type UnrecognizedWeightError struct {
	Path        string
	WeightClass uint16
}

func (err *UnrecognizedWeightError) Error() string {
	return err.Path + ": unrecognized font weight " + strconv.Itoa(int(err.WeightClass))
}

// UnsupportedStyleError indicates that a font uses a style which the
// current policy does not allow, for example an oblique font.
type UnsupportedStyleError struct {
	Path  string
	Style string
}

func (err *UnsupportedStyleError) Error() string {
	return err.Path + ": " + err.Style + " fonts not supported"
}

// RenameError indicates that a font file could not be renamed.
type RenameError struct {
	From, To string
	Err      error
}

func (err *RenameError) Error() string {
	return fmt.Sprintf("cannot rename %q to %q: %v", err.From, err.To, err.Err)
}

func (err *RenameError) Unwrap() error {
	return err.Err
}

// CollisionError indicates that renaming files would overwrite a different
// file.
type CollisionError struct {
	Target  string
	Sources []string
}

func (err *CollisionError) Error() string {
	return fmt.Sprintf("renaming %q would overwrite %q", err.Sources, err.Target)
}

// InvalidNameError indicates that a name cannot be used for an Android
// resource.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (err *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid resource name %q: %s", err.Name, err.Reason)
}
