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

// WeightMatch selects how numeric weight classes are mapped to [Weight]
// values.
type WeightMatch int

// These are the supported weight matching rules.
const (
	// WeightExact accepts only the weight classes 100, 200, ..., 900.
	WeightExact WeightMatch = iota

	// WeightNearest maps every weight class from 1 to 1000 to the nearest
	// standard weight.  Ties are resolved towards the bolder weight.
	WeightNearest
)

type weightRange struct {
	lo, hi uint16 // inclusive
	w      Weight
}

// The tables are checked in order; the first matching range wins.
var (
	exactWeights = []weightRange{
		{100, 100, Thin},
		{200, 200, ExtraLight},
		{300, 300, Light},
		{400, 400, Normal},
		{500, 500, Medium},
		{600, 600, SemiBold},
		{700, 700, Bold},
		{800, 800, ExtraBold},
		{900, 900, Black},
	}
	nearestWeights = []weightRange{
		{1, 149, Thin},
		{150, 249, ExtraLight},
		{250, 349, Light},
		{350, 449, Normal},
		{450, 549, Medium},
		{550, 649, SemiBold},
		{650, 749, Bold},
		{750, 849, ExtraBold},
		{850, 1000, Black},
	}
)

// ClassifyWeight maps an OS/2 weight class to a standard weight.
// The second return value is false if no standard weight matches.
func ClassifyWeight(class uint16, match WeightMatch) (Weight, bool) {
	table := exactWeights
	if match == WeightNearest {
		table = nearestWeights
	}
	for _, r := range table {
		if class >= r.lo && class <= r.hi {
			return r.w, true
		}
	}
	return 0, false
}
