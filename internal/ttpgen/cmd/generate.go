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
	"os"
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/ttpgen/pkg/common"
	"laptudirm.com/x/ttpgen/pkg/ttp"
	"laptudirm.com/x/ttpgen/pkg/ttp/stats"
)

// ttpgen generate
func Generate() *cobra.Command {
	generate := &cobra.Command{
		Use:   "generate instance-file",
		Short: "Generate and score schedules for the given TTP instance",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`generate explores the schedule space of a Traveling
			Tournament Problem instance. It samples the requested number
			of random team orderings from the given seed, then builds one
			double round-robin schedule for every combination of ordering,
			rotation direction and anchor team using the circular
			construction method.

			Every schedule is scored: total travel distance under the
			instance's distance matrix, plus capacity, separation and
			round-robin constraint violations. A statistical summary of
			the distance distribution is reported at the end of the run.

			With --save, each schedule is written to the solutions
			directory as solution_<id>.json and the sampled orderings to
			the permutations directory, so a run can be rescored later
			with ttpgen rescore.

			Defaults can also be supplied as a YAML file via --config;
			explicit flags override values from the file.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := ttp.Config{
				Permutations:    10,
				Seed:            42,
				Concurrency:     runtime.NumCPU(),
				Persist:         false,
				SolutionsDir:    common.SolutionsDirectory,
				PermutationsDir: common.PermutationsDirectory,
			}

			if path := cmd.Flag("config").Value.String(); path != "" {
				file, err := os.ReadFile(path)
				if err != nil {
					return err
				}

				if err := yaml.Unmarshal(file, &config); err != nil {
					return err
				}
			}

			overrideFromFlags(cmd, &config)

			return runGenerate(args[0], config)
		},
	}

	generate.Flags().String("config", "", "YAML run-configuration file")
	generate.Flags().IntP("permutations", "p", 10, "Number of random team orderings to sample")
	generate.Flags().Int64P("seed", "s", 42, "Random seed for the permutation sampler")
	generate.Flags().IntP("concurrency", "c", runtime.NumCPU(), "Number of concurrent schedule builders")
	generate.Flags().Bool("save", false, "Save schedules and permutations to disk")
	generate.Flags().String("solutions-dir", common.SolutionsDirectory, "Directory for saved schedules")
	generate.Flags().String("permutations-dir", common.PermutationsDirectory, "Directory for saved permutation sets")

	return generate
}

func overrideFromFlags(cmd *cobra.Command, config *ttp.Config) {
	flags := cmd.Flags()

	if flags.Changed("permutations") {
		config.Permutations, _ = flags.GetInt("permutations")
	}
	if flags.Changed("seed") {
		config.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("concurrency") {
		config.Concurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Changed("save") {
		config.Persist, _ = flags.GetBool("save")
	}
	if flags.Changed("solutions-dir") {
		config.SolutionsDir, _ = flags.GetString("solutions-dir")
	}
	if flags.Changed("permutations-dir") {
		config.PermutationsDir, _ = flags.GetString("permutations-dir")
	}
}

func runGenerate(instanceFile string, config ttp.Config) error {
	logrus.Infof("Loading instance %s", instanceFile)
	instance, err := ttp.LoadInstance(instanceFile)
	if err != nil {
		return err
	}

	if err := instance.Validate(); err != nil {
		return err
	}

	matrix := ttp.NewDistanceMatrix(instance)

	logrus.Infof("Sampling %d permutations from seed %d", config.Permutations, config.Seed)
	set, err := ttp.SamplePermutations(instance.TeamIds(), config.Permutations, config.Seed)
	if err != nil {
		return err
	}
	set.InstanceName = instance.Name

	enumerator := &ttp.Enumerator{
		Instance:    instance,
		Matrix:      matrix,
		Persist:     config.Persist,
		Concurrency: config.Concurrency,
	}

	if config.Persist {
		if err := ttp.StorePermutations(config.PermutationsDir, set); err != nil {
			return err
		}

		store, err := ttp.NewFileStore(config.SolutionsDir)
		if err != nil {
			return err
		}

		enumerator.Sink = store
	}

	total := 2 * len(instance.Teams) * len(set.Permutations)
	logrus.Infof("Generating %d schedules", total)
	enumerator.Progress = ttp.NewSpinnerProgress(total)

	schedules, distances, err := enumerator.GenerateAll(set.Permutations)
	if err != nil {
		return err
	}

	if ttp.HasDuplicates(schedules) {
		logrus.Warn("Enumeration produced duplicate schedules")
	}

	return stats.Report(distances)
}
