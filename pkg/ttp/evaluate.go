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

// Evaluate computes the total travel distance of a schedule under the
// travel-simulation model: every team starts at its own venue, moves to
// the opponent's venue for away games and back home for home games, and
// each leg is charged from the matrix. Consecutive away games chain
// from venue to venue, so the model composes with asymmetric matrices
// and arbitrary schedules.
func Evaluate(matrix DistanceMatrix, schedule *Schedule) int64 {
	var total int64

	for team := 0; team < schedule.Teams(); team++ {
		location := team
		for slot := 0; slot < schedule.Slots(); slot++ {
			game := schedule.Games[slot][team]

			next := team
			if !game.HomeGame {
				next = game.Opponent
			}

			total += int64(matrix[location][next])
			location = next
		}
	}

	return total
}

// Score is the full evaluation of one schedule: the travel objective
// plus its constraint violations.
type Score struct {
	Distance   int64
	Violations Violations
}

// EvaluateSchedule combines constraint checking and the travel
// objective into one score.
func EvaluateSchedule(instance *Instance, matrix DistanceMatrix, schedule *Schedule) Score {
	return Score{
		Distance:   Evaluate(matrix, schedule),
		Violations: Check(instance, schedule),
	}
}
