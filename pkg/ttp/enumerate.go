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

// Config drives one enumeration run.
type Config struct {
	// Number of random team orderings to sample, and the seed to
	// sample them from.
	Permutations int   `yaml:"permutations"`
	Seed         int64 `yaml:"seed"`

	// Number of schedules that will be constructed and evaluated
	// concurrently. Values below 1 mean a single worker.
	Concurrency int `yaml:"concurrency"`

	// Whether finished schedules are forwarded to the persistence
	// sink. An explicit value, never an ambient toggle.
	Persist bool `yaml:"persist"`

	SolutionsDir    string `yaml:"solutions-dir"`
	PermutationsDir string `yaml:"permutations-dir"`
}

// Enumerator explores the schedule space for one instance: for every
// sampled ordering, both rotation directions and every anchor choice,
// it constructs a schedule and scores it. The instance and matrix are
// shared read-only; each constructed schedule is owned by the
// enumeration until handed to the persistence sink.
type Enumerator struct {
	Instance *Instance
	Matrix   DistanceMatrix

	// Sink receives every finished schedule when Persist is set.
	Sink    Sink
	Persist bool

	Progress Progress

	Concurrency int
}

// Sink is the persistence boundary: Store is called once per finished
// schedule when persistence is enabled. The sink owns naming and
// format.
type Sink interface {
	Store(schedule *Schedule) error
}

type job struct {
	id       int
	ordering []int
	anchor   int
	upward   bool
}

type outcome struct {
	id       int
	schedule *Schedule
	score    Score
}

// GenerateAll runs the full ordering x direction x anchor product:
// 2 * teams * len(orderings) schedules in total. Results come back in
// enumeration order regardless of worker interleaving, ids sequential
// from 1. The returned error is the first persistence failure, if any;
// the in-memory collections are complete either way.
//
// Workers never share schedules, so the only synchronization is job
// fan-out and result collection.
func (enumerator *Enumerator) GenerateAll(orderings [][]int) ([]*Schedule, []int64, error) {
	teams := len(enumerator.Instance.Teams)
	total := 2 * teams * len(orderings)

	progress := enumerator.Progress
	if progress == nil {
		progress = NoProgress{}
	}

	concurrency := enumerator.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	jobs := make(chan job)
	outcomes := make(chan outcome)
	complete := make(chan error)

	for worker := 0; worker < concurrency; worker++ {
		go enumerator.worker(jobs, outcomes)
	}

	schedules := make([]*Schedule, total)
	distances := make([]int64, total)
	go enumerator.collect(total, outcomes, schedules, distances, progress, complete)

	id := 0
	for _, ordering := range orderings {
		logrus.Debugf("Permutation: %v", ordering)

		for _, upward := range []bool{true, false} {
			for anchor := 0; anchor < teams; anchor++ {
				id++
				jobs <- job{id: id, ordering: ordering, anchor: anchor, upward: upward}
			}
		}
	}

	close(jobs)
	err := <-complete

	return schedules, distances, err
}

func (enumerator *Enumerator) worker(jobs <-chan job, outcomes chan<- outcome) {
	for job := range jobs {
		schedule, err := Construct(job.ordering, job.anchor, job.upward)
		if err != nil {
			// Orderings come from the validated instance, so this is
			// unreachable without a programming error upstream.
			logrus.Panicf("enumerate: %v", err)
		}

		schedule.Id = job.id
		score := EvaluateSchedule(enumerator.Instance, enumerator.Matrix, schedule)

		logrus.Tracef(
			"Schedule #%d | Distance: %d | Capacity: %d | Separation: %d | Round-robin ok: %v",
			schedule.Id, score.Distance,
			score.Violations.Capacity, score.Violations.Separation, score.Violations.RoundRobinOk,
		)

		outcomes <- outcome{id: job.id, schedule: schedule, score: score}
	}
}

// collect places outcomes into their id slot and forwards schedules to
// the sink. Running it on a single goroutine keeps sink calls
// serialized, so the sink needs no locking of its own.
func (enumerator *Enumerator) collect(
	total int,
	outcomes <-chan outcome,
	schedules []*Schedule,
	distances []int64,
	progress Progress,
	complete chan<- error,
) {
	var firstErr error

	for received := 0; received < total; received++ {
		outcome := <-outcomes

		schedules[outcome.id-1] = outcome.schedule
		distances[outcome.id-1] = outcome.score.Distance

		if enumerator.Persist && enumerator.Sink != nil {
			if err := enumerator.Sink.Store(outcome.schedule); err != nil {
				logrus.Error(err)
				if firstErr == nil {
					firstErr = fmt.Errorf("enumerate: store schedule %d: %w", outcome.schedule.Id, err)
				}
			}
		}

		progress.Advance()
	}

	progress.Finish()
	complete <- firstErr
}
