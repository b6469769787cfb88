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

import "fmt"

// Instance is the full problem model for one Traveling Tournament
// Problem instance: the teams, the ordered time slots, the pairwise
// travel distances, and the constraint families the schedules will be
// scored against. It is loaded once and shared read-only by every
// downstream component.
type Instance struct {
	Name string

	Teams     []Team
	Slots     []Slot
	Distances []Distance

	CapacityConstraints   []CapacityConstraint
	SeparationConstraints []SeparationConstraint
}

// Team is one participant of the tournament. Id doubles as the team's
// index into distance matrices and schedule rows.
type Team struct {
	Id     int    `json:"id"`
	League int    `json:"league"`
	Name   string `json:"name"`
	Group  int    `json:"group"`
}

// Slot is one round of the tournament. Every team plays exactly one
// game per slot.
type Slot struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// Distance is the travel cost From -> To. The relation is asymmetric:
// the cost of the reverse trip is carried by a separate Distance.
type Distance struct {
	From int `json:"team1"`
	To   int `json:"team2"`
	Dist int `json:"dist"`
}

// Mode selects which side of a game a capacity constraint counts.
type Mode byte

const (
	ModeHome Mode = 'H'
	ModeAway Mode = 'A'
)

// CapacityConstraint bounds the number of home (or away) games a team
// may play within any window of Interval consecutive slots. The mode
// flag has seen contradictory readings in the wild; here ModeHome
// counts home games and ModeAway counts away games.
type CapacityConstraint struct {
	Interval int
	Min, Max int
	Mode     Mode

	// Weighting and filtering metadata, carried through from the
	// instance file but unused by violation counting.
	Penalty int
	Groups  [2]int
	Type    string
}

// SeparationConstraint bounds the slot distance between two consecutive
// meetings of the same pair of teams.
type SeparationConstraint struct {
	Min, Max int

	Penalty int
	Group   int
	Type    string
}

// Validate rejects malformed instances before any construction starts.
// Constructing from a bad instance would only fail deep inside the
// index arithmetic, so every precondition is checked here instead.
func (instance *Instance) Validate() error {
	n := len(instance.Teams)

	if n < 2 {
		return fmt.Errorf("instance %s: need at least 2 teams, have %d", instance.Name, n)
	}

	if n%2 != 0 {
		return fmt.Errorf("instance %s: team count %d is odd", instance.Name, n)
	}

	if expected := 2 * (n - 1); len(instance.Slots) != expected {
		return fmt.Errorf(
			"instance %s: %d slots, a double round-robin of %d teams needs %d",
			instance.Name, len(instance.Slots), n, expected,
		)
	}

	for i, team := range instance.Teams {
		if team.Id != i {
			return fmt.Errorf(
				"instance %s: team ids must be contiguous from 0, position %d has id %d",
				instance.Name, i, team.Id,
			)
		}
	}

	for _, distance := range instance.Distances {
		if distance.From < 0 || distance.From >= n || distance.To < 0 || distance.To >= n {
			return fmt.Errorf(
				"instance %s: distance %d -> %d references a team outside 0..%d",
				instance.Name, distance.From, distance.To, n-1,
			)
		}
	}

	for _, constraint := range instance.CapacityConstraints {
		if constraint.Interval < 1 || constraint.Interval > len(instance.Slots) {
			return fmt.Errorf(
				"instance %s: capacity constraint interval %d outside 1..%d",
				instance.Name, constraint.Interval, len(instance.Slots),
			)
		}
	}

	return nil
}

// TeamIds returns the identifiers of all teams in instance order.
func (instance *Instance) TeamIds() []int {
	ids := make([]int, len(instance.Teams))
	for i, team := range instance.Teams {
		ids[i] = team.Id
	}

	return ids
}
