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
	"strings"
	"testing"
	"unicode/utf8"
)

func TestIsFontFile(t *testing.T) {
	cases := map[string]bool{
		"Roboto-Bold.ttf":  true,
		"a.otf":            true,
		"a.woff":           true,
		"a.woff2":          true,
		"a.tar.ttf":        true,
		"Roboto-Bold.TTF":  false,
		"a.ttf.bak":        false,
		".ttf":             false,
		"ttf":              false,
		"noextension":      false,
		"trailing-dot.":    false,
		"a.woff3":          false,
		"fonts/../x.ttc":   false,
		"Open Sans.Woff2":  false,
		"weird name .otf":  true,
		"Ünïcödé-Bold.otf": true,
	}
	for fileName, want := range cases {
		if got := IsFontFile(fileName); got != want {
			t.Errorf("%q: got %t, want %t", fileName, got, want)
		}
	}
}

func TestResourceFileName(t *testing.T) {
	cases := map[string]string{
		"Roboto-Bold.ttf":        "roboto_bold.ttf",
		"Roboto-Italic.ttf":      "roboto_italic.ttf",
		"Open Sans Light.woff2":  "open_sans_light.woff2",
		"already_fine.otf":       "already_fine.otf",
		"Mixed--Case  Name.OTF":  "mixed__case__name.otf",
		"Font(1).ttf":            "font(1).ttf",
		"":                       "",
		"ÀÉÎ-x.ttf":              "àéî_x.ttf",
		"tab\tstays.ttf":         "tab\tstays.ttf",
		"under_score-hyphen.ttf": "under_score_hyphen.ttf",
	}
	for in, want := range cases {
		if got := ResourceFileName(in); got != want {
			t.Errorf("%q: got %q, want %q", in, got, want)
		}
	}
}

func TestResourceName(t *testing.T) {
	cases := map[string]string{
		"roboto_bold.ttf":   "roboto_bold",
		"a.b.woff2":         "a.b",
		"noextension":       "noextension",
		".hidden":           ".hidden",
		"roboto_italic.otf": "roboto_italic",
	}
	for in, want := range cases {
		if got := ResourceName(in); got != want {
			t.Errorf("%q: got %q, want %q", in, got, want)
		}
	}
}

func TestCheckResourceName(t *testing.T) {
	for _, good := range []string{"roboto_bold", "a", "font2", "x_1_y"} {
		if err := CheckResourceName(good); err != nil {
			t.Errorf("%q: %v", good, err)
		}
	}
	for _, bad := range []string{"", "3d_font", "_x", "Roboto", "font(1)", "a.b", "café"} {
		err := CheckResourceName(bad)
		if err == nil {
			t.Errorf("%q: accepted", bad)
			continue
		}
		var e *InvalidNameError
		if bad != "" && !errors.As(err, &e) {
			t.Errorf("%q: wrong error type %T", bad, err)
		}
	}
}

func FuzzResourceFileName(f *testing.F) {
	f.Add("Roboto-Bold.ttf")
	f.Add("Open Sans Light.woff2")
	f.Add("ÀÉÎ-x.ttf")
	f.Fuzz(func(t *testing.T, fileName string) {
		if !utf8.ValidString(fileName) {
			t.Skip()
		}
		once := ResourceFileName(fileName)
		twice := ResourceFileName(once)
		if once != twice {
			t.Errorf("not idempotent: %q -> %q -> %q", fileName, once, twice)
		}
		if strings.ContainsAny(once, "- ") {
			t.Errorf("%q contains a hyphen or space", once)
		}

		safe := strings.IndexFunc(fileName, func(r rune) bool {
			return r == '-' || r == ' '
		}) < 0
		if safe && once != strings.ToLower(fileName) {
			t.Errorf("%q: got %q, want %q", fileName, once, strings.ToLower(fileName))
		}
	})
}
