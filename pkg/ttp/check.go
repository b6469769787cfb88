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

// Violations is the constraint score of one schedule.
type Violations struct {
	Capacity   int
	Separation int

	// RoundRobinOk is a sanity bound on pairing multiplicity, not a
	// tight double round-robin check: it only trips once a pair meets
	// more than 4 times. The construction itself guarantees exactly 2.
	RoundRobinOk bool
}

const roundRobinBound = 4

// Check scores a schedule against the instance's capacity and
// separation constraints and the round-robin multiplicity bound. It
// assumes a well-formed schedule; malformed ones are rejected by
// Instance.Validate and Construct before they can reach this stage.
func Check(instance *Instance, schedule *Schedule) Violations {
	violations := Violations{RoundRobinOk: true}

	slots := schedule.Slots()
	teams := schedule.Teams()

	// Capacity: for every constraint and team, slide a window of
	// Interval slots across the schedule and count games on the side
	// the mode selects. Each window outside [Min, Max] counts once.
	for _, constraint := range instance.CapacityConstraints {
		for team := 0; team < teams; team++ {
			for start := 0; start+constraint.Interval <= slots; start++ {
				count := 0
				for slot := start; slot < start+constraint.Interval; slot++ {
					game := schedule.Games[slot][team]
					switch constraint.Mode {
					case ModeHome:
						if game.HomeGame {
							count++
						}
					case ModeAway:
						if !game.HomeGame {
							count++
						}
					}
				}

				if count < constraint.Min || count > constraint.Max {
					violations.Capacity++
				}
			}
		}
	}

	// Separation: track the last slot each team met each opponent; a
	// repeat meeting with gap <= Min or > Max is a violation. First
	// meetings have no gap to measure and are never flagged.
	for _, constraint := range instance.SeparationConstraints {
		for team := 0; team < teams; team++ {
			lastMet := make([]int, teams)
			for i := range lastMet {
				lastMet[i] = -1
			}

			for slot := 0; slot < slots; slot++ {
				opponent := schedule.Games[slot][team].Opponent

				if last := lastMet[opponent]; last != -1 {
					gap := slot - last
					if gap <= constraint.Min || gap > constraint.Max {
						violations.Separation++
					}
				}

				lastMet[opponent] = slot
			}
		}
	}

	// Round-robin multiplicity over unordered pairs. Every meeting is
	// seen from both sides, so a pair's counter advances by 2 per slot
	// they share.
	meetings := make(map[[2]int]int)

	for slot := 0; slot < slots; slot++ {
		for team := 0; team < teams; team++ {
			opponent := schedule.Games[slot][team].Opponent

			pair := [2]int{team, opponent}
			if opponent < team {
				pair = [2]int{opponent, team}
			}

			meetings[pair]++
		}
	}

	for _, count := range meetings {
		if count > roundRobinBound {
			violations.RoundRobinOk = false
		}
	}

	return violations
}
