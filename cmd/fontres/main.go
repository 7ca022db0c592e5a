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

// Fontres renames the font files in a directory for use as Android
// resources, and prints Jetpack Compose declarations for the font
// families found.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/fontres"
	"seehuhn.de/go/fontres/compose"
	"seehuhn.de/go/fontres/internal/buildinfo"
	"seehuhn.de/go/fontres/internal/prompt"
	"seehuhn.de/go/fontres/metadata"
	"seehuhn.de/go/fontres/scan"
)

// stringList is a flag which can be given more than once.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

var (
	dirArg         = flag.String("dir", "", "font `directory` (default: the working directory)")
	yesArg         = flag.Bool("y", false, "rename the fonts without asking")
	parserArg      = flag.String("parser", "builtin", "font parser, \"builtin\" or \"sfnt\"")
	weightsArg     = flag.String("weights", "exact", "weight matching, \"exact\" or \"nearest\"")
	obliqueArg     = flag.String("oblique", "normal", "treat oblique fonts as \"normal\", \"italic\" or \"error\"")
	orderArg       = flag.String("order", "name", "family order, \"name\" or \"scan\"")
	eolArg         = flag.String("eol", "crlf", "line endings of the generated code, \"crlf\" or \"lf\"")
	skipArg        = flag.Bool("skip-unreadable", false, "skip fonts which cannot be read, instead of stopping")
	overwriteArg   = flag.Bool("overwrite", false, "rename fonts even if this overwrites other files")
	outArg         = flag.String("o", "", "write the generated code to `file`")
	versionArg     = flag.Bool("version", false, "print version information and exit")
	excludeArg     stringList
	errInvalidFlag = errors.New("invalid flag value")
)

func main() {
	flag.Var(&excludeArg, "exclude", "ignore files matching `glob` (can be repeated)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "fontres - set up font files as Android resources\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("fontres"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  fontres [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fontres -dir app/src/main/res/font\n")
		fmt.Fprintf(os.Stderr, "  fontres -y -eol lf -o Fonts.kt -exclude '*-Variable*'\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}
	if *versionArg {
		fmt.Println(buildinfo.Short("fontres"))
		return
	}

	log.SetFlags(0)
	log.SetPrefix("fontres: ")

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	scanOpt, err := scanOptions()
	if err != nil {
		return err
	}
	composeOpt, err := composeOptions()
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	dir := *dirArg
	if dir == "" {
		dir = wd
	}

	fmt.Println("Android Resource Font Setup")
	fmt.Println()

	s := prompt.NewSession(os.Stdin, os.Stdout, os.Stderr, wd, dir)
	s.NoPrompt = !term.IsTerminal(int(os.Stdin.Fd()))
	dir, err = s.FindDirectory()
	if err != nil {
		return err
	}

	fmt.Println("Fonts have been found!")
	fmt.Printf("Directory: %q\n", dir)
	fmt.Println()

	if !*yesArg {
		ok, err := s.Confirm("Rename fonts for Android Resource?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Exiting...")
			return nil
		}
	}

	_, err = scan.Rename(dir, scanOpt)
	if err != nil {
		return err
	}
	fmt.Println("Renamed fonts for Android.")

	fams, err := scan.Collect(dir, scanOpt)
	if err != nil {
		return err
	}

	if *outArg != "" {
		return writeFile(*outArg, fams, composeOpt)
	}

	fmt.Println()
	fmt.Println()
	fmt.Println("#jetpack_compose:")
	fmt.Println()
	err = compose.Write(os.Stdout, fams, composeOpt)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println()
	return nil
}

func writeFile(fname string, fams *fontres.Families, opt *compose.Options) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = compose.Write(fd, fams, opt)
	if err != nil {
		fd.Close()
		return err
	}
	err = fd.Close()
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d font families to %s.\n", fams.Len(), fname)
	return nil
}

func scanOptions() (*scan.Options, error) {
	opt := &scan.Options{
		Exclude:        excludeArg,
		SkipUnreadable: *skipArg,
		Overwrite:      *overwriteArg,
		Logger:         log.Default(),
	}

	switch *parserArg {
	case "builtin":
		opt.Source = metadata.File{}
	case "sfnt":
		opt.Source = metadata.SFNT{}
	default:
		return nil, fmt.Errorf("-parser %q: %w", *parserArg, errInvalidFlag)
	}

	switch *weightsArg {
	case "exact":
		opt.Classifier.Weights = fontres.WeightExact
	case "nearest":
		opt.Classifier.Weights = fontres.WeightNearest
	default:
		return nil, fmt.Errorf("-weights %q: %w", *weightsArg, errInvalidFlag)
	}

	switch *obliqueArg {
	case "normal":
		opt.Classifier.Oblique = metadata.ObliqueAsNormal
	case "italic":
		opt.Classifier.Oblique = metadata.ObliqueAsItalic
	case "error":
		opt.Classifier.Oblique = metadata.ObliqueReject
	default:
		return nil, fmt.Errorf("-oblique %q: %w", *obliqueArg, errInvalidFlag)
	}

	return opt, nil
}

func composeOptions() (*compose.Options, error) {
	opt := &compose.Options{}

	switch *orderArg {
	case "name":
		opt.Order = fontres.OrderName
	case "scan":
		opt.Order = fontres.OrderScan
	default:
		return nil, fmt.Errorf("-order %q: %w", *orderArg, errInvalidFlag)
	}

	switch *eolArg {
	case "crlf":
		opt.LineEnding = "\r\n"
	case "lf":
		opt.LineEnding = "\n"
	default:
		return nil, fmt.Errorf("-eol %q: %w", *eolArg, errInvalidFlag)
	}

	return opt, nil
}
