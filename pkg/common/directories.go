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

package common

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const Permissions = 0755

var (
	// Directory is where ttpgen keeps run artifacts by default.
	Directory string = filepath.Join(xdg.Home, "ttpgen")

	// SolutionsDirectory holds one JSON file per generated schedule.
	SolutionsDirectory string = filepath.Join(Directory, "solutions")

	// PermutationsDirectory holds the sampled permutation sets.
	PermutationsDirectory string = filepath.Join(Directory, "permutations")
)
