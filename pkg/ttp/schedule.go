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
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// NoOpponent marks an unassigned schedule cell.
const NoOpponent = -1

// Game is one cell of a schedule: whether the team owning the cell
// plays at home, and who it plays against.
type Game struct {
	HomeGame bool `json:"home_game"`
	Opponent int  `json:"opponent"`
}

// Schedule is one candidate solution: a slots x teams matrix of Games.
// Games[slot][team] is team's game in that slot. A schedule is filled
// in one pass by the constructor and read-only from then on; evaluation
// never mutates it.
//
// Invariant: if Games[slot][t].Opponent == o then Games[slot][o]
// references t back, with exactly one of the two cells marked as the
// home side.
type Schedule struct {
	Id    int      `json:"id"`
	Games [][]Game `json:"solution"`
}

// NewSchedule returns an empty slots x teams schedule with every cell
// set to the unassigned placeholder.
func NewSchedule(slots, teams int) *Schedule {
	games := make([][]Game, slots)
	for slot := range games {
		games[slot] = make([]Game, teams)
		for team := range games[slot] {
			games[slot][team] = Game{HomeGame: false, Opponent: NoOpponent}
		}
	}

	return &Schedule{Id: -1, Games: games}
}

// Slots returns the number of rounds in the schedule.
func (schedule *Schedule) Slots() int {
	return len(schedule.Games)
}

// Teams returns the number of teams in the schedule.
func (schedule *Schedule) Teams() int {
	if len(schedule.Games) == 0 {
		return 0
	}

	return len(schedule.Games[0])
}

// Equal reports whether two schedules assign identical games. The
// identifier is excluded: equality is over schedule content, so two
// distinct enumeration ids carrying the same matrix compare equal.
func (schedule *Schedule) Equal(other *Schedule) bool {
	if schedule.Slots() != other.Slots() || schedule.Teams() != other.Teams() {
		return false
	}

	for slot := range schedule.Games {
		for team := range schedule.Games[slot] {
			if schedule.Games[slot][team] != other.Games[slot][team] {
				return false
			}
		}
	}

	return true
}

// ContentHash hashes the game matrix, again excluding the identifier.
// Schedules for which Equal holds hash identically.
func (schedule *Schedule) ContentHash() uint64 {
	hash := fnv.New64a()

	var cell [8]byte
	for slot := range schedule.Games {
		for team := range schedule.Games[slot] {
			game := schedule.Games[slot][team]

			binary.LittleEndian.PutUint32(cell[0:4], uint32(int32(game.Opponent)))
			cell[4] = 0
			if game.HomeGame {
				cell[4] = 1
			}

			_, _ = hash.Write(cell[:5])
		}
	}

	return hash.Sum64()
}

// HasDuplicates reports whether any two schedules in the collection
// carry the same game matrix. Hash buckets first, content comparison to
// confirm, so colliding hashes cannot produce a false positive.
func HasDuplicates(schedules []*Schedule) bool {
	buckets := make(map[uint64][]*Schedule, len(schedules))

	for _, schedule := range schedules {
		hash := schedule.ContentHash()
		for _, seen := range buckets[hash] {
			if schedule.Equal(seen) {
				return true
			}
		}

		buckets[hash] = append(buckets[hash], schedule)
	}

	return false
}

// Render formats the schedule as a slot-by-team table. Each cell shows
// the opponent id followed by H or A:
//
//	Id: 1
//	         ATL:0   NYM:1   PHI:2   MON:3
//	  Slot:0    3H      2A      1H      0A
func (schedule *Schedule) Render(instance *Instance) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Id: %d\n", schedule.Id)

	fmt.Fprintf(&builder, "%8s", "")
	for _, team := range instance.Teams {
		fmt.Fprintf(&builder, "%8s", fmt.Sprintf("%s:%d", team.Name, team.Id))
	}
	builder.WriteByte('\n')

	for slot, row := range schedule.Games {
		fmt.Fprintf(&builder, "%8s", fmt.Sprintf("Slot:%d", slot))
		for _, game := range row {
			side := "A"
			if game.HomeGame {
				side = "H"
			}

			fmt.Fprintf(&builder, "%8s", fmt.Sprintf("%d%s", game.Opponent, side))
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}
