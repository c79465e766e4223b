// seehuhn.de/go/snapgrid - snapping grids for 2D canvases
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

package testcases

import (
	"regexp"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestCases(t *testing.T) {
	for category, cases := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		seen := make(map[string]bool)
		for _, tc := range cases {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name %q", category, tc.Name)
			}
			if seen[tc.Name] {
				t.Errorf("%s: duplicate name %q", category, tc.Name)
			}
			seen[tc.Name] = true

			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s_%s: size %dx%d", category, tc.Name, tc.Width, tc.Height)
			}
			vp := tc.Viewport
			if vp.URx <= vp.LLx || vp.URy <= vp.LLy {
				t.Errorf("%s_%s: empty viewport %v", category, tc.Name, vp)
			}
			if _, err := tc.Grid.Config().Grid(); err != nil {
				t.Errorf("%s_%s: %v", category, tc.Name, err)
			}
			if tc.Grid.Count(vp) == 0 {
				t.Errorf("%s_%s: no vertices", category, tc.Name)
			}
		}
	}
}
