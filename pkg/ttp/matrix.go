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

// DistanceMatrix is the dense lookup form of an instance's sparse
// distance list, indexed [origin][destination]. Built once per run and
// read-only afterwards.
type DistanceMatrix [][]int

// NewDistanceMatrix densifies the instance's distance triples into an
// NxN matrix. Cells with no triple stay zero; if the same pair appears
// more than once the last triple wins.
func NewDistanceMatrix(instance *Instance) DistanceMatrix {
	n := len(instance.Teams)

	matrix := make(DistanceMatrix, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
	}

	for _, distance := range instance.Distances {
		matrix[distance.From][distance.To] = distance.Dist
	}

	return matrix
}
