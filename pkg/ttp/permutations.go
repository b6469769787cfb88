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
	"math/rand"
	"strconv"
	"strings"
)

// PermutationSet is a batch of distinct team orderings together with
// the seed and instance they were sampled for, so a run can be
// reproduced from its persisted permutation file.
type PermutationSet struct {
	Seed         int64   `json:"seed"`
	InstanceName string  `json:"instance_name"`
	Permutations [][]int `json:"permutations"`
}

// SamplePermutations draws count distinct random orderings of teamIds
// from a stream seeded with seed. Sampling keeps shuffling the same
// stream until count distinct orderings have been seen, so identical
// (teamIds, count, seed) inputs always reproduce the same set
// membership. count must not exceed len(teamIds)! or the loop could
// never terminate; that precondition is checked up front.
func SamplePermutations(teamIds []int, count int, seed int64) (*PermutationSet, error) {
	if count < 0 {
		return nil, fmt.Errorf("sample: negative permutation count %d", count)
	}

	if !enoughPermutations(len(teamIds), count) {
		return nil, fmt.Errorf(
			"sample: %d distinct permutations requested but only %d! orderings exist",
			count, len(teamIds),
		)
	}

	rng := rand.New(rand.NewSource(seed))
	seen := make(map[string]struct{}, count)
	permutations := make([][]int, 0, count)

	for len(permutations) < count {
		ordering := make([]int, len(teamIds))
		copy(ordering, teamIds)
		rng.Shuffle(len(ordering), func(i, j int) {
			ordering[i], ordering[j] = ordering[j], ordering[i]
		})

		key := orderingKey(ordering)
		if _, duplicate := seen[key]; duplicate {
			continue
		}

		seen[key] = struct{}{}
		permutations = append(permutations, ordering)
	}

	return &PermutationSet{Seed: seed, Permutations: permutations}, nil
}

// enoughPermutations reports whether n! >= count without overflowing:
// the running product stops as soon as it clears count.
func enoughPermutations(n, count int) bool {
	product := 1
	for i := 2; i <= n; i++ {
		product *= i
		if product >= count {
			return true
		}
	}

	return product >= count
}

func orderingKey(ordering []int) string {
	parts := make([]string, len(ordering))
	for i, id := range ordering {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, ",")
}
