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

// Package scan finds the font files in a directory, gives them names which
// can be used as Android resources, and groups them into font families.
//
// Scanning works in two passes.  [Rename] normalizes the file names, and
// [Collect] lists the directory again and reads the metadata of every font
// file.  [Aggregate] runs both passes.
package scan

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"seehuhn.de/go/fontres"
	"seehuhn.de/go/fontres/compose"
	"seehuhn.de/go/fontres/metadata"
)

// Options controls how a directory is scanned.
// A nil *Options is valid and selects the default values.
type Options struct {
	// Source reads the font metadata.  If this is nil, [metadata.File] is
	// used.
	Source metadata.Source

	// Classifier maps the font metadata to standard weights and styles.
	Classifier metadata.Classifier

	// Exclude lists glob patterns in doublestar syntax.  Files whose name
	// matches one of the patterns are ignored.
	Exclude []string

	// SkipUnreadable causes fonts which cannot be read or classified to be
	// skipped with a warning.  Otherwise such fonts stop the scan with an
	// error.
	SkipUnreadable bool

	// Overwrite disables the check for name collisions in [Rename].  If
	// two files normalize to the same name, one of them is lost.
	Overwrite bool

	// Logger receives warnings.  If this is nil, warnings are discarded.
	Logger *log.Logger
}

func (opt *Options) warn(format string, args ...any) {
	if opt == nil || opt.Logger == nil {
		return
	}
	opt.Logger.Printf(format, args...)
}

func (opt *Options) excluded(fileName string) (bool, error) {
	if opt == nil {
		return false, nil
	}
	for _, pattern := range opt.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
		match, err := doublestar.Match(pattern, fileName)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

func (opt *Options) reader() *metadata.Reader {
	if opt == nil {
		return &metadata.Reader{}
	}
	return &metadata.Reader{
		Source:     opt.Source,
		Classifier: opt.Classifier,
	}
}

// Check verifies that dir is a directory which contains font files.
// The function returns an error wrapping [fontres.ErrDirectoryNotFound] if
// dir cannot be listed, and [fontres.ErrNoFonts] if the directory contains
// no font files.
func Check(dir string) error {
	fileNames, err := fontFiles(dir, nil)
	if err != nil {
		return err
	}
	if len(fileNames) == 0 {
		return fmt.Errorf("%s: %w", dir, fontres.ErrNoFonts)
	}
	return nil
}

// ContainsFonts reports whether dir is a directory containing at least
// one font file.
func ContainsFonts(dir string) bool {
	return Check(dir) == nil
}

// fontFiles lists the names of the font files in dir, in lexical order.
// Directories, non-regular files, files without one of the
// [fontres.FontExtensions], and excluded files are omitted.
func fontFiles(dir string, opt *Options) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fontres.ErrDirectoryNotFound, err)
	}

	var res []string
	for _, entry := range entries {
		fileName := entry.Name()
		if !entry.Type().IsRegular() || !fontres.IsFontFile(fileName) {
			continue
		}
		skip, err := opt.excluded(fileName)
		if err != nil {
			return nil, err
		} else if skip {
			continue
		}
		res = append(res, fileName)
	}
	return res, nil
}

// Renamed records a file which has been renamed by [Rename].
type Renamed struct {
	From, To string
}

// Rename gives every font file in dir its normalized name, as returned by
// [fontres.ResourceFileName].  The renamed files are returned in the order
// in which they were renamed.
//
// Unless opt.Overwrite is set, the function first checks that no two files
// would receive the same name and that no renamed file would replace an
// existing file.  If a problem is found, a [*fontres.CollisionError] is
// returned and no file is renamed.
//
// If a rename fails, a [*fontres.RenameError] is returned.  Files renamed
// before the failure keep their new names.
func Rename(dir string, opt *Options) ([]Renamed, error) {
	fileNames, err := fontFiles(dir, opt)
	if err != nil {
		return nil, err
	}

	var todo []Renamed
	targets := make(map[string][]string)
	for _, fileName := range fileNames {
		target := fontres.ResourceFileName(fileName)
		targets[target] = append(targets[target], fileName)
		if target != fileName {
			todo = append(todo, Renamed{From: fileName, To: target})
		}
	}

	if opt == nil || !opt.Overwrite {
		err = checkCollisions(dir, targets)
		if err != nil {
			return nil, err
		}
	}

	var done []Renamed
	for _, r := range todo {
		err := os.Rename(filepath.Join(dir, r.From), filepath.Join(dir, r.To))
		if err != nil {
			return done, &fontres.RenameError{From: r.From, To: r.To, Err: err}
		}
		done = append(done, r)
	}
	return done, nil
}

func checkCollisions(dir string, targets map[string][]string) error {
	names := make([]string, 0, len(targets))
	for target := range targets {
		names = append(names, target)
	}
	slices.Sort(names)

	for _, target := range names {
		sources := targets[target]
		if len(sources) > 1 {
			return &fontres.CollisionError{Target: target, Sources: sources}
		}

		source := sources[0]
		if source == target {
			continue
		}
		// The target may exist as a file which is not scanned.  On
		// case-insensitive file systems, the target may also be the
		// source itself.
		targetInfo, err := os.Lstat(filepath.Join(dir, target))
		if errors.Is(err, os.ErrNotExist) {
			continue
		} else if err != nil {
			return err
		}
		sourceInfo, err := os.Lstat(filepath.Join(dir, source))
		if err != nil {
			return err
		}
		if !os.SameFile(sourceInfo, targetInfo) {
			return &fontres.CollisionError{Target: target, Sources: sources}
		}
	}
	return nil
}

// Collect reads the metadata of all font files in dir and groups the fonts
// into families.  Within each family, the variants are listed in the order
// of the directory listing.
//
// By default, the first font which cannot be read or classified stops the
// scan and the error is returned.  If opt.SkipUnreadable is set, such fonts
// are skipped with a warning instead.  Resource names which Android would
// reject, and family names which give clashing or invalid variable names in
// the generated code, cause a warning but are kept.
func Collect(dir string, opt *Options) (*fontres.Families, error) {
	fileNames, err := fontFiles(dir, opt)
	if err != nil {
		return nil, err
	}

	r := opt.reader()
	fams := &fontres.Families{}
	for _, fileName := range fileNames {
		path := filepath.Join(dir, fileName)
		md, err := r.ReadMetadata(path)
		if err != nil {
			if opt != nil && opt.SkipUnreadable && isFontError(err) {
				opt.warn("skipping %v", err)
				continue
			}
			return nil, err
		}

		resourceName := fontres.ResourceName(fileName)
		if err := fontres.CheckResourceName(resourceName); err != nil {
			opt.warn("%s: %v", path, err)
		}
		fams.Add(fontres.Variant{
			Family:       md.Family,
			ResourceName: resourceName,
			Weight:       md.Weight,
			Style:        md.Style,
		})
	}
	checkVariableNames(fams, opt)
	return fams, nil
}

// checkVariableNames warns about families whose Kotlin variable names are
// not valid identifiers, or coincide with the name of another family.
func checkVariableNames(fams *fontres.Families, opt *Options) {
	seen := make(map[string]string)
	for _, family := range fams.Names(fontres.OrderName) {
		name := compose.VariableName(family)
		if r, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(r) {
			opt.warn("family %q: variable name %s starts with a digit", family, name)
		}
		if other, clash := seen[name]; clash {
			opt.warn("families %q and %q both use the variable name %s", other, family, name)
		} else {
			seen[name] = family
		}
	}
}

// Aggregate renames the font files in dir and then groups them into
// families.  This is the same as calling [Rename] followed by [Collect].
func Aggregate(dir string, opt *Options) (*fontres.Families, error) {
	_, err := Rename(dir, opt)
	if err != nil {
		return nil, err
	}
	return Collect(dir, opt)
}

// isFontError reports whether err describes a problem with the contents of
// a single font file.
func isFontError(err error) bool {
	var e1 *fontres.UnreadableFontError
	var e2 *fontres.UnrecognizedWeightError
	var e3 *fontres.UnsupportedStyleError
	return errors.As(err, &e1) || errors.As(err, &e2) || errors.As(err, &e3)
}
