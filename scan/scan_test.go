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

package scan

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/fontres"
	"seehuhn.de/go/fontres/internal/debug"
	"seehuhn.de/go/fontres/metadata"
)

// makeDir creates a temporary directory containing the given files.
// A nil FontSpec creates a file which is not a valid font.
func makeDir(t *testing.T, files map[string]*debug.FontSpec) string {
	t.Helper()
	dir := t.TempDir()
	for fileName, spec := range files {
		data := []byte("not a font")
		if spec != nil {
			data = debug.MakeFont(spec)
		}
		err := os.WriteFile(filepath.Join(dir, fileName), data, 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var res []string
	for _, entry := range entries {
		res = append(res, entry.Name())
	}
	return res
}

func TestRoboto(t *testing.T) {
	dir := makeDir(t, map[string]*debug.FontSpec{
		"Roboto-Bold.ttf":   {Family: "Roboto", WeightClass: 700},
		"Roboto-Italic.ttf": {Family: "Roboto", IsItalic: true},
	})

	fams, err := Aggregate(dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff([]string{"roboto_bold.ttf", "roboto_italic.ttf"}, listDir(t, dir)); d != "" {
		t.Errorf("wrong files (-want +got)\n%s", d)
	}
	if d := cmp.Diff([]string{"Roboto"}, fams.Names(fontres.OrderName)); d != "" {
		t.Errorf("wrong families (-want +got)\n%s", d)
	}
	want := []fontres.Variant{
		{Family: "Roboto", ResourceName: "roboto_bold", Weight: fontres.Bold, Style: fontres.StyleNormal},
		{Family: "Roboto", ResourceName: "roboto_italic", Weight: fontres.Normal, Style: fontres.StyleItalic},
	}
	if d := cmp.Diff(want, fams.Variants("Roboto")); d != "" {
		t.Errorf("wrong variants (-want +got)\n%s", d)
	}
}

func TestCheck(t *testing.T) {
	err := Check(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fontres.ErrDirectoryNotFound) {
		t.Errorf("missing directory: %v", err)
	}

	dir := makeDir(t, map[string]*debug.FontSpec{
		"readme.txt": nil,
		"font.TTF":   nil,
		".ttf":       nil,
		"ttf":        nil,
	})
	err = os.Mkdir(filepath.Join(dir, "sub.otf"), 0o755)
	if err != nil {
		t.Fatal(err)
	}
	err = Check(dir)
	if !errors.Is(err, fontres.ErrNoFonts) {
		t.Errorf("directory without fonts: %v", err)
	}
	if ContainsFonts(dir) {
		t.Error("ContainsFonts returned true")
	}
	fams, err := Aggregate(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if fams.Len() != 0 {
		t.Errorf("found %d families", fams.Len())
	}

	err = Check(filepath.Join(dir, "readme.txt"))
	if !errors.Is(err, fontres.ErrDirectoryNotFound) {
		t.Errorf("regular file: %v", err)
	}

	for _, ext := range fontres.FontExtensions {
		dir := makeDir(t, map[string]*debug.FontSpec{"a." + ext: nil})
		if !ContainsFonts(dir) {
			t.Errorf("%s: no fonts found", ext)
		}
	}
}

func TestUnreadable(t *testing.T) {
	dir := makeDir(t, map[string]*debug.FontSpec{
		"good.ttf":   {Family: "Good"},
		"broken.ttf": nil,
	})

	fams, err := Aggregate(dir, nil)
	var e *fontres.UnreadableFontError
	if !errors.As(err, &e) {
		t.Fatalf("expected UnreadableFontError, got %v", err)
	}
	if fams != nil {
		t.Error("families returned despite error")
	}
	if filepath.Base(e.Path) != "broken.ttf" {
		t.Errorf("wrong path %q", e.Path)
	}
}

func TestSkipUnreadable(t *testing.T) {
	dir := makeDir(t, map[string]*debug.FontSpec{
		"good.ttf":   {Family: "Good"},
		"broken.ttf": nil,
		"odd.otf":    {Family: "Odd", WeightClass: 450},
	})

	buf := &bytes.Buffer{}
	opt := &Options{
		SkipUnreadable: true,
		Logger:         log.New(buf, "", 0),
	}
	fams, err := Collect(dir, opt)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"Good"}, fams.Names(fontres.OrderName)); d != "" {
		t.Errorf("wrong families (-want +got)\n%s", d)
	}
	msg := buf.String()
	if !strings.Contains(msg, "broken.ttf") || !strings.Contains(msg, "odd.otf") {
		t.Errorf("missing warnings:\n%s", msg)
	}

	// the classifier decides which fonts are usable
	opt.Classifier.Weights = fontres.WeightNearest
	fams, err = Collect(dir, opt)
	if err != nil {
		t.Fatal(err)
	}
	if fams.NumVariants() != 2 {
		t.Errorf("found %d variants", fams.NumVariants())
	}
}

func TestScanOrder(t *testing.T) {
	dir := makeDir(t, map[string]*debug.FontSpec{
		"b_regular.ttf": {Family: "Beta"},
		"a_bold.ttf":    {Family: "Alpha", WeightClass: 700},
		"c_bold.ttf":    {Family: "Beta", WeightClass: 700},
		"a_regular.ttf": {Family: "Alpha"},
	})
	fams, err := Collect(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, family := range fams.Names(fontres.OrderScan) {
		for _, v := range fams.Variants(family) {
			if v.Family != family {
				t.Errorf("%s stored under %q", v, family)
			}
			got = append(got, v.ResourceName)
		}
	}
	want := []string{"a_bold", "a_regular", "b_regular", "c_bold"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("wrong order (-want +got)\n%s", d)
	}
}

func TestExclude(t *testing.T) {
	dir := makeDir(t, map[string]*debug.FontSpec{
		"keep.ttf":        {Family: "Keep"},
		"Draft-Bold.ttf":  nil,
		"draft_thin.woff": nil,
	})
	opt := &Options{Exclude: []string{"{D,d}raft*"}}
	fams, err := Aggregate(dir, opt)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"Keep"}, fams.Names(fontres.OrderName)); d != "" {
		t.Errorf("wrong families (-want +got)\n%s", d)
	}
	// excluded files are not renamed
	want := []string{"Draft-Bold.ttf", "draft_thin.woff", "keep.ttf"}
	if d := cmp.Diff(want, listDir(t, dir)); d != "" {
		t.Errorf("wrong files (-want +got)\n%s", d)
	}

	opt = &Options{Exclude: []string{"[a-"}}
	_, err = Collect(dir, opt)
	if err == nil {
		t.Error("invalid pattern accepted")
	}
}

func TestRename(t *testing.T) {
	dir := makeDir(t, map[string]*debug.FontSpec{
		"Open Sans-Bold.ttf": nil,
		"already_fine.otf":   nil,
		"Notes.TXT":          nil,
	})
	renamed, err := Rename(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []Renamed{{From: "Open Sans-Bold.ttf", To: "open_sans_bold.ttf"}}
	if d := cmp.Diff(want, renamed); d != "" {
		t.Errorf("wrong renames (-want +got)\n%s", d)
	}

	// a second pass has nothing to do
	renamed, err = Rename(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(renamed) != 0 {
		t.Errorf("unexpected renames: %v", renamed)
	}
}

func TestCollision(t *testing.T) {
	dir := makeDir(t, map[string]*debug.FontSpec{
		"Font-Bold.ttf": {Family: "Font", WeightClass: 700},
		"font bold.ttf": {Family: "Font", WeightClass: 700},
		"Other.ttf":     {Family: "Other"},
	})
	before := listDir(t, dir)

	_, err := Rename(dir, nil)
	var e *fontres.CollisionError
	if !errors.As(err, &e) {
		t.Fatalf("expected CollisionError, got %v", err)
	}
	if e.Target != "font_bold.ttf" {
		t.Errorf("wrong target %q", e.Target)
	}
	if d := cmp.Diff([]string{"Font-Bold.ttf", "font bold.ttf"}, e.Sources, cmpopts.SortSlices(func(a, b string) bool { return a < b })); d != "" {
		t.Errorf("wrong sources (-want +got)\n%s", d)
	}
	if d := cmp.Diff(before, listDir(t, dir)); d != "" {
		t.Errorf("files renamed despite collision (-want +got)\n%s", d)
	}

	renamed, err := Rename(dir, &Options{Overwrite: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(renamed) != 3 {
		t.Errorf("wrong renames: %v", renamed)
	}
	want := []string{"font_bold.ttf", "other.ttf"}
	if d := cmp.Diff(want, listDir(t, dir)); d != "" {
		t.Errorf("wrong files (-want +got)\n%s", d)
	}
}

func TestRenameOntoDirectory(t *testing.T) {
	dir := makeDir(t, map[string]*debug.FontSpec{
		"A-B.ttf": nil,
	})
	err := os.Mkdir(filepath.Join(dir, "a_b.ttf"), 0o755)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Rename(dir, nil)
	var collision *fontres.CollisionError
	if !errors.As(err, &collision) {
		t.Errorf("expected CollisionError, got %v", err)
	}

	_, err = Rename(dir, &Options{Overwrite: true})
	var renameErr *fontres.RenameError
	if !errors.As(err, &renameErr) {
		t.Fatalf("expected RenameError, got %v", err)
	}
	if renameErr.From != "A-B.ttf" || renameErr.To != "a_b.ttf" {
		t.Errorf("wrong error %v", renameErr)
	}
}

func TestResourceNameWarning(t *testing.T) {
	dir := makeDir(t, map[string]*debug.FontSpec{
		"3d.ttf": {Family: "Three"},
	})
	buf := &bytes.Buffer{}
	fams, err := Collect(dir, &Options{Logger: log.New(buf, "", 0)})
	if err != nil {
		t.Fatal(err)
	}
	if fams.NumVariants() != 1 {
		t.Errorf("found %d variants", fams.NumVariants())
	}
	if !strings.Contains(buf.String(), "3d") {
		t.Errorf("missing warning, got %q", buf.String())
	}
}

func TestSFNTSource(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "Go-Regular.ttf"), goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	fams, err := Aggregate(dir, &Options{Source: metadata.SFNT{}})
	if err != nil {
		t.Fatal(err)
	}
	want := []fontres.Variant{
		{Family: "Go", ResourceName: "go_regular", Weight: fontres.Normal},
	}
	if d := cmp.Diff(want, fams.Variants("Go")); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestVariableNameWarning(t *testing.T) {
	dir := makeDir(t, map[string]*debug.FontSpec{
		"a.ttf": {Family: "Open Sans"},
		"b.ttf": {Family: "OpenSans"},
		"c.ttf": {Family: "3Dumb"},
		"d.ttf": {Family: "Lato"},
	})
	buf := &bytes.Buffer{}
	fams, err := Collect(dir, &Options{Logger: log.New(buf, "", 0)})
	if err != nil {
		t.Fatal(err)
	}
	if fams.Len() != 4 {
		t.Errorf("found %d families", fams.Len())
	}

	msg := buf.String()
	if !strings.Contains(msg, `"Open Sans" and "OpenSans"`) || !strings.Contains(msg, "OpenSansFontFamily") {
		t.Errorf("missing clash warning:\n%s", msg)
	}
	if !strings.Contains(msg, "3DumbFontFamily starts with a digit") {
		t.Errorf("missing digit warning:\n%s", msg)
	}
	if strings.Contains(msg, "Lato") {
		t.Errorf("unexpected warning for Lato:\n%s", msg)
	}
}
