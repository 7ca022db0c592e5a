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
	"strconv"
	"strings"
)

// FontExtensions lists the file name extensions of font files, without the
// leading dot.  Extensions are matched case-sensitively.
var FontExtensions = []string{"otf", "ttf", "woff", "woff2"}

// Extension returns the extension of a file name, without the dot.  Like
// for the dot files of Unix, a leading dot does not start an extension.
func Extension(fileName string) (string, bool) {
	idx := strings.LastIndexByte(fileName, '.')
	if idx <= 0 {
		return "", false
	}
	return fileName[idx+1:], true
}

// IsFontFile reports whether the file name has one of the [FontExtensions].
func IsFontFile(fileName string) bool {
	ext, ok := Extension(fileName)
	if !ok {
		return false
	}
	for _, fontExt := range FontExtensions {
		if ext == fontExt {
			return true
		}
	}
	return false
}

// ResourceFileName converts a file name into the form used for Android
// resources: all letters are lower-cased, and hyphens and spaces are
// replaced with underscores.  No other characters are changed.
func ResourceFileName(fileName string) string {
	res := strings.ToLower(fileName)
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return '_'
		}
		return r
	}, res)
}

// ResourceName returns the file name without its extension.  This is the
// name used to refer to the font from generated code.
func ResourceName(fileName string) string {
	ext, ok := Extension(fileName)
	if !ok {
		return fileName
	}
	return fileName[:len(fileName)-len(ext)-1]
}

// CheckResourceName reports whether Android accepts name as the name of a
// resource.  Valid names consist of lower-case ASCII letters, digits and
// underscores, and start with a letter.
func CheckResourceName(name string) error {
	if name == "" {
		return errEmptyResourceName
	}
	if c := name[0]; c < 'a' || c > 'z' {
		return &InvalidNameError{Name: name, Reason: "must start with a lower-case letter"}
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			// pass
		default:
			return &InvalidNameError{Name: name, Reason: "invalid character " + strconv.QuoteRune(r)}
		}
	}
	return nil
}

var errEmptyResourceName = errors.New("fontres: empty resource name")
