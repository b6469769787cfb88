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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourTeamInstance is the concrete scenario instance: teams 0-3 and
// distance |i-j| between distinct venues.
func fourTeamInstance() *Instance {
	instance := &Instance{Name: "four"}

	for id := 0; id < 4; id++ {
		instance.Teams = append(instance.Teams, Team{Id: id, Name: "T"})
	}
	for id := 0; id < 6; id++ {
		instance.Slots = append(instance.Slots, Slot{Id: id})
	}

	for from := 0; from < 4; from++ {
		for to := 0; to < 4; to++ {
			if from == to {
				continue
			}

			dist := from - to
			if dist < 0 {
				dist = -dist
			}

			instance.Distances = append(instance.Distances, Distance{From: from, To: to, Dist: dist})
		}
	}

	return instance
}

func TestCheckCapacity(t *testing.T) {
	instance := fourTeamInstance()
	schedule, err := Construct(instance.TeamIds(), 0, true)
	require.NoError(t, err)

	t.Run("Satisfiable", func(t *testing.T) {
		// No team can fit more than 2 home games into a 2-slot window,
		// so a 0..2 bound can never be violated.
		instance.CapacityConstraints = []CapacityConstraint{
			{Interval: 2, Min: 0, Max: 2, Mode: ModeHome},
		}

		violations := Check(instance, schedule)
		assert.Equal(t, 0, violations.Capacity)
	})

	t.Run("Impossible", func(t *testing.T) {
		// A 0..0 home bound flags every window containing a home game.
		// Each team plays 3 home games across 6 slots, so some window
		// must trip for every team.
		instance.CapacityConstraints = []CapacityConstraint{
			{Interval: 2, Min: 0, Max: 0, Mode: ModeHome},
		}

		violations := Check(instance, schedule)
		assert.Greater(t, violations.Capacity, 0)
	})

	t.Run("ModeSelectsSide", func(t *testing.T) {
		// Every 6-slot window (the whole schedule) holds exactly 3
		// home and 3 away games per team, so a 3..3 bound is clean on
		// both sides and a 4..4 bound trips on both sides.
		instance.CapacityConstraints = []CapacityConstraint{
			{Interval: 6, Min: 3, Max: 3, Mode: ModeHome},
			{Interval: 6, Min: 3, Max: 3, Mode: ModeAway},
		}
		violations := Check(instance, schedule)
		assert.Equal(t, 0, violations.Capacity)

		instance.CapacityConstraints = []CapacityConstraint{
			{Interval: 6, Min: 4, Max: 4, Mode: ModeHome},
		}
		violations = Check(instance, schedule)
		assert.Equal(t, 4, violations.Capacity)
	})
}

func TestCheckSeparation(t *testing.T) {
	instance := fourTeamInstance()
	schedule, err := Construct(instance.TeamIds(), 0, true)
	require.NoError(t, err)

	t.Run("TightBound", func(t *testing.T) {
		// With 4 teams the two meetings of any pair are 3 slots apart
		// by construction, so a (0, 1] gap window flags every repeat
		// meeting: 3 opponents per team, 4 teams.
		instance.SeparationConstraints = []SeparationConstraint{
			{Min: 0, Max: 1},
		}

		violations := Check(instance, schedule)
		assert.Equal(t, 12, violations.Separation)
	})

	t.Run("LooseBound", func(t *testing.T) {
		instance.SeparationConstraints = []SeparationConstraint{
			{Min: 0, Max: 6},
		}

		violations := Check(instance, schedule)
		assert.Equal(t, 0, violations.Separation)
	})

	t.Run("MinimumGap", func(t *testing.T) {
		// gap <= Min also violates: a minimum of 3 flags the 3-slot
		// gaps this construction produces.
		instance.SeparationConstraints = []SeparationConstraint{
			{Min: 3, Max: 6},
		}

		violations := Check(instance, schedule)
		assert.Equal(t, 12, violations.Separation)
	})
}

func TestCheckRoundRobin(t *testing.T) {
	instance := fourTeamInstance()

	t.Run("ConstructedScheduleIsClean", func(t *testing.T) {
		for anchor := 0; anchor < 4; anchor++ {
			schedule, err := Construct(instance.TeamIds(), anchor, false)
			require.NoError(t, err)

			violations := Check(instance, schedule)
			assert.True(t, violations.RoundRobinOk)
		}
	})

	t.Run("OverplayedPairTrips", func(t *testing.T) {
		// Force teams 0 and 1 to meet in every one of the 6 slots;
		// 6 meetings is over the defensive bound of 4.
		schedule := NewSchedule(6, 4)
		for slot := 0; slot < 6; slot++ {
			home := slot%2 == 0
			schedule.Games[slot][0] = Game{HomeGame: home, Opponent: 1}
			schedule.Games[slot][1] = Game{HomeGame: !home, Opponent: 0}
			schedule.Games[slot][2] = Game{HomeGame: home, Opponent: 3}
			schedule.Games[slot][3] = Game{HomeGame: !home, Opponent: 2}
		}

		violations := Check(instance, schedule)
		assert.False(t, violations.RoundRobinOk)
	})
}
