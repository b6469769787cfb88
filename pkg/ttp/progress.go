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
	"sync/atomic"
	"time"

	"github.com/briandowns/spinner"
)

// Progress receives one Advance call per completed (ordering,
// direction, anchor) unit of work. It is purely observational: the
// enumeration's results do not depend on it.
type Progress interface {
	Advance()
	Finish()
}

// NoProgress discards all progress events.
type NoProgress struct{}

func (NoProgress) Advance() {}
func (NoProgress) Finish()  {}

const spinnerCharSet = 11

// SpinnerProgress shows a terminal spinner with a completed/total
// counter in its suffix. Advance is safe to call from the enumeration
// workers concurrently.
type SpinnerProgress struct {
	spinner *spinner.Spinner
	total   int64
	done    atomic.Int64
}

// NewSpinnerProgress starts a spinner sized for total units of work.
func NewSpinnerProgress(total int) *SpinnerProgress {
	s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond)
	progress := &SpinnerProgress{spinner: s, total: int64(total)}

	s.Suffix = fmt.Sprintf(" 0/%d schedules", total)
	s.Start()

	return progress
}

func (progress *SpinnerProgress) Advance() {
	done := progress.done.Add(1)
	progress.spinner.Suffix = fmt.Sprintf(" %d/%d schedules", done, progress.total)
}

func (progress *SpinnerProgress) Finish() {
	progress.spinner.Stop()
}
