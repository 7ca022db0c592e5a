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

// Package prompt implements the interactive part of the fontres command:
// asking for a directory which contains fonts, and asking for
// confirmation.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/fontres/scan"
)

// State is the state of a [Session].
type State int

// These are the states of a [Session].
const (
	// AwaitingDirectory means that no directory containing fonts has been
	// found yet.
	AwaitingDirectory State = iota

	// Validated means that [Session.Dir] is a directory containing fonts.
	Validated
)

func (s State) String() string {
	switch s {
	case AwaitingDirectory:
		return "AwaitingDirectory"
	case Validated:
		return "Validated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrNoInput is returned when the input ends before a question has been
// answered.
var ErrNoInput = errors.New("no input")

// Session asks the user for a directory containing fonts.
type Session struct {
	// Check validates a directory.  If this is nil, [scan.Check] is used.
	Check func(dir string) error

	// NoPrompt makes [Session.FindDirectory] fail instead of asking for
	// a different directory.  This is used when the input is not a
	// terminal.
	NoPrompt bool

	in     *bufio.Reader
	out    io.Writer // messages
	prompt io.Writer // questions

	wd    string
	dir   string
	state State
}

// NewSession starts a new session.  The search starts in dir.  The
// working directory wd is used to choose the wording of messages.
// Messages are written to out, questions are written to prompt and the
// answers are read from in.
func NewSession(in io.Reader, out, prompt io.Writer, wd, dir string) *Session {
	return &Session{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: prompt,
		wd:     wd,
		dir:    dir,
	}
}

// State returns the current state of the session.
func (s *Session) State() State {
	return s.state
}

// Dir returns the directory currently under consideration.
func (s *Session) Dir() string {
	return s.dir
}

// FindDirectory asks for directories until a directory containing fonts
// is found, and returns this directory.
func (s *Session) FindDirectory() (string, error) {
	check := s.Check
	if check == nil {
		check = scan.Check
	}

	for s.state == AwaitingDirectory {
		err := check(s.dir)
		if err == nil {
			s.state = Validated
			break
		}

		if s.dir == s.wd {
			fmt.Fprintln(s.out, "Sorry, the current working directory does not contain any fonts.")
		} else {
			fmt.Fprintln(s.out, "Sorry, the directory selected does not contain any fonts.")
		}
		if s.NoPrompt {
			return "", err
		}

		fmt.Fprint(s.prompt, "Enter the path of where your fonts are located: ")
		answer, err := s.readLine()
		if err != nil {
			return "", err
		}
		s.dir = answer
	}
	return s.dir, nil
}

// Confirm asks a yes/no question.  Answers starting with "y" or "Y" count
// as yes, everything else counts as no.
func (s *Session) Confirm(question string) (bool, error) {
	fmt.Fprint(s.prompt, question+" y/n: ")
	answer, err := s.readLine()
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y"), nil
}

// readLine reads one line of input, with leading and trailing white space
// removed.  A final line without a newline is accepted.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", ErrNoInput
		}
	} else if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
