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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

const filePermissions = 0755

// FileStore persists schedules as one pretty-printed JSON file each,
// solution_<id>.json, inside its directory.
type FileStore struct {
	Directory string
}

// NewFileStore creates the store's directory if needed.
func NewFileStore(directory string) (*FileStore, error) {
	if err := os.MkdirAll(directory, filePermissions); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", directory, err)
	}

	return &FileStore{Directory: directory}, nil
}

// Store writes one schedule. A failed write reports an error for this
// schedule only; nothing already written or held in memory is touched.
func (store *FileStore) Store(schedule *Schedule) error {
	path := filepath.Join(store.Directory, fmt.Sprintf("solution_%d.json", schedule.Id))
	return writeJson(path, schedule)
}

// StorePermutations writes the sampled permutation set next to the
// schedules it produced, as permutation.json.
func StorePermutations(directory string, set *PermutationSet) error {
	if err := os.MkdirAll(directory, filePermissions); err != nil {
		return fmt.Errorf("store: create %s: %w", directory, err)
	}

	return writeJson(filepath.Join(directory, "permutation.json"), set)
}

// LoadSchedules reads every solution_*.json file in a directory and
// returns the schedules sorted by identifier.
func LoadSchedules(directory string) ([]*Schedule, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", directory, err)
	}

	files := lo.Filter(entries, func(entry os.DirEntry, _ int) bool {
		name := entry.Name()
		return !entry.IsDir() &&
			strings.HasPrefix(name, "solution_") &&
			strings.HasSuffix(name, ".json")
	})

	schedules := make([]*Schedule, 0, len(files))
	for _, entry := range files {
		path := filepath.Join(directory, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("store: read %s: %w", path, err)
		}

		var schedule Schedule
		if err := json.Unmarshal(data, &schedule); err != nil {
			return nil, fmt.Errorf("store: decode %s: %w", path, err)
		}

		schedules = append(schedules, &schedule)
	}

	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].Id < schedules[j].Id
	})

	return schedules, nil
}

// Rescore loads previously stored schedules and re-runs the objective
// evaluator over each, returning their distances in identifier order.
// This is the entry point for recomputing statistics from a finished
// run without regenerating it.
func Rescore(directory string, matrix DistanceMatrix) ([]int64, error) {
	schedules, err := LoadSchedules(directory)
	if err != nil {
		return nil, err
	}

	distances := lo.Map(schedules, func(schedule *Schedule, _ int) int64 {
		return Evaluate(matrix, schedule)
	})

	return distances, nil
}

func writeJson(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}

	return nil
}
