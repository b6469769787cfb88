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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	directory := t.TempDir()
	store, err := NewFileStore(directory)
	require.NoError(t, err)

	// Store out of id order; loading must sort by id.
	for _, anchor := range []int{2, 0, 3, 1} {
		schedule, err := Construct(orderedTeams(4), anchor, true)
		require.NoError(t, err)
		schedule.Id = anchor + 1

		require.NoError(t, store.Store(schedule))
	}

	// An unrelated file must be ignored by the loader.
	require.NoError(t, os.WriteFile(filepath.Join(directory, "notes.txt"), []byte("x"), 0666))

	loaded, err := LoadSchedules(directory)
	require.NoError(t, err)
	require.Len(t, loaded, 4)

	for i, schedule := range loaded {
		assert.Equal(t, i+1, schedule.Id)

		original, err := Construct(orderedTeams(4), i, true)
		require.NoError(t, err)
		assert.True(t, schedule.Equal(original))
	}
}

func TestLoadSchedulesMissingDirectory(t *testing.T) {
	_, err := LoadSchedules(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestRescore(t *testing.T) {
	instance := fourTeamInstance()
	matrix := NewDistanceMatrix(instance)

	directory := t.TempDir()
	store, err := NewFileStore(directory)
	require.NoError(t, err)

	set, err := SamplePermutations(instance.TeamIds(), 2, 9)
	require.NoError(t, err)

	enumerator := &Enumerator{
		Instance: instance,
		Matrix:   matrix,
		Sink:     store,
		Persist:  true,
	}

	_, generated, err := enumerator.GenerateAll(set.Permutations)
	require.NoError(t, err)

	// Rescoring the stored run reproduces the original distances.
	rescored, err := Rescore(directory, matrix)
	require.NoError(t, err)
	assert.Equal(t, generated, rescored)
}

func TestStorePermutations(t *testing.T) {
	directory := t.TempDir()

	set, err := SamplePermutations([]int{0, 1, 2, 3}, 5, 77)
	require.NoError(t, err)
	set.InstanceName = "NL4"

	require.NoError(t, StorePermutations(directory, set))

	data, err := os.ReadFile(filepath.Join(directory, "permutation.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seed": 77`)
	assert.Contains(t, string(data), `"instance_name": "NL4"`)
}
