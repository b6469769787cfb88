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

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ttpgen/pkg/common"
	"laptudirm.com/x/ttpgen/pkg/ttp"
	"laptudirm.com/x/ttpgen/pkg/ttp/stats"
)

// ttpgen rescore
func Rescore() *cobra.Command {
	rescore := &cobra.Command{
		Use:   "rescore instance-file",
		Short: "Recompute distances for previously saved schedules",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`rescore loads the schedules a previous generate --save run
			wrote to the solutions directory, sorts them by identifier,
			re-runs the travel-distance evaluator over each against the
			given instance's distance matrix, and reports the statistical
			summary of the resulting distribution.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, _ := cmd.Flags().GetString("solutions-dir")

			instance, err := ttp.LoadInstance(args[0])
			if err != nil {
				return err
			}

			if err := instance.Validate(); err != nil {
				return err
			}

			logrus.Infof("Rescoring schedules from %s", directory)
			distances, err := ttp.Rescore(directory, ttp.NewDistanceMatrix(instance))
			if err != nil {
				return err
			}

			return stats.Report(distances)
		},
	}

	rescore.Flags().String("solutions-dir", common.SolutionsDirectory, "Directory of saved schedules")

	return rescore
}
