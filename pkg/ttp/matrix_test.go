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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDistanceMatrix(t *testing.T) {
	instance := &Instance{
		Teams: []Team{{Id: 0}, {Id: 1}, {Id: 2}},
		Distances: []Distance{
			{From: 0, To: 1, Dist: 7},
			{From: 1, To: 0, Dist: 4},
			{From: 2, To: 1, Dist: 9},
		},
	}

	matrix := NewDistanceMatrix(instance)

	assert.Equal(t, DistanceMatrix{
		{0, 7, 0},
		{4, 0, 0},
		{0, 9, 0},
	}, matrix)
}

func TestNewDistanceMatrixLastWriteWins(t *testing.T) {
	instance := &Instance{
		Teams: []Team{{Id: 0}, {Id: 1}},
		Distances: []Distance{
			{From: 0, To: 1, Dist: 7},
			{From: 0, To: 1, Dist: 3},
		},
	}

	matrix := NewDistanceMatrix(instance)
	assert.Equal(t, 3, matrix[0][1])
}
