// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ttp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Construct builds one complete double round-robin schedule from an
// ordered team list using the circular method: the team at anchor is
// pinned to the tail of the pairing circle while every other team
// rotates one position per round. Teams at mirrored positions i and
// N-1-i meet in each round; upward selects which of the two home/away
// alternation patterns is used.
//
// The construction is deterministic: identical (ordering, anchor,
// upward) inputs produce identical schedules. Different anchors and
// directions over the same ordering reshuffle the slot-to-pairing
// mapping and the home/away roles, which is what the enumeration
// exploits against an asymmetric distance matrix.
func Construct(ordering []int, anchor int, upward bool) (*Schedule, error) {
	n := len(ordering)

	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("construct: team count %d must be even and at least 2", n)
	}

	if anchor < 0 || anchor >= n {
		return nil, fmt.Errorf("construct: anchor %d outside ordering of %d teams", anchor, n)
	}

	logrus.Tracef(
		"Constructing schedule for %d teams | Anchor: %d | Direction: %s",
		n, anchor, direction(upward),
	)

	// The circle is the ordering with the anchor team moved to the
	// tail. Rotation is never performed physically: the team at circle
	// position i during round r is ring[(i-r) mod (n-1)] for i < n-1,
	// and the anchor at i == n-1. This is index-for-index what
	// remove/rotate-right/re-append produces each round.
	ring := make([]int, 0, n-1)
	ring = append(ring, ordering[:anchor]...)
	ring = append(ring, ordering[anchor+1:]...)
	pinned := ordering[anchor]

	rounds := 2 * (n - 1)
	schedule := NewSchedule(rounds, n)

	at := func(round, position int) int {
		if position == n-1 {
			return pinned
		}

		return ring[((position-round)%(n-1)+(n-1))%(n-1)]
	}

	for round := 0; round < rounds; round++ {
		for i := 0; i < n/2; i++ {
			a := at(round, i)
			b := at(round, n-1-i)

			homeFirst := (round%2 == 0) == upward
			schedule.Games[round][a] = Game{HomeGame: homeFirst, Opponent: b}
			schedule.Games[round][b] = Game{HomeGame: !homeFirst, Opponent: a}
		}
	}

	return schedule, nil
}

func direction(upward bool) string {
	if upward {
		return "upward"
	}

	return "downward"
}
