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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePermutations(t *testing.T) {
	teamIds := []int{0, 1, 2, 3, 4, 5}

	set, err := SamplePermutations(teamIds, 50, 2025)
	require.NoError(t, err)
	require.Len(t, set.Permutations, 50)

	seen := make(map[string]struct{})
	for _, ordering := range set.Permutations {
		// Every ordering is a permutation of the team ids.
		sorted := make([]int, len(ordering))
		copy(sorted, ordering)
		sort.Ints(sorted)
		assert.Equal(t, teamIds, sorted)

		// And all orderings are pairwise distinct.
		key := orderingKey(ordering)
		_, duplicate := seen[key]
		assert.False(t, duplicate)
		seen[key] = struct{}{}
	}
}

func TestSamplePermutationsReproducible(t *testing.T) {
	teamIds := []int{0, 1, 2, 3}

	first, err := SamplePermutations(teamIds, 20, 7)
	require.NoError(t, err)
	second, err := SamplePermutations(teamIds, 20, 7)
	require.NoError(t, err)

	assert.Equal(t, first.Permutations, second.Permutations)

	different, err := SamplePermutations(teamIds, 20, 8)
	require.NoError(t, err)
	assert.NotEqual(t, first.Permutations, different.Permutations)
}

func TestSamplePermutationsExhaustive(t *testing.T) {
	// 3! = 6: asking for all of them must terminate and return all 6.
	set, err := SamplePermutations([]int{0, 1, 2}, 6, 1)
	require.NoError(t, err)
	assert.Len(t, set.Permutations, 6)
}

func TestSamplePermutationsTooMany(t *testing.T) {
	// 7 > 3! can never be satisfied; the sampler must refuse instead
	// of looping forever.
	_, err := SamplePermutations([]int{0, 1, 2}, 7, 1)
	assert.Error(t, err)

	_, err = SamplePermutations([]int{0, 1, 2}, -1, 1)
	assert.Error(t, err)
}
