package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/grouping/internal/config"
	"github.com/limaJavier/grouping/pkg/conflict"
	"github.com/limaJavier/grouping/pkg/model"
	"github.com/limaJavier/grouping/pkg/random"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

type Scenario struct {
	Mode      model.Mode
	Students  int
	GroupSize int // Ignored for seats
	Density   float64
}

type BenchmarkResult struct {
	Scenario      Scenario
	Trials        int
	Violations    int
	MeanConflicts float64
	Duration      time.Duration // Mean duration of a single build
}

func main() {
	conf, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
	log := logs.GetLoggerFromString(conf.LogLevel)

	studentsPtr := flag.String("students", "10,20,30,40", "Comma-separated roster sizes")
	densitiesPtr := flag.String("densities", "0.02,0.05,0.1,0.2", "Comma-separated probabilities (between 0 and 1) of any two students conflicting")
	groupSizesPtr := flag.String("sizes", "3,4,5", "Comma-separated group sizes")
	trialsPtr := flag.Int("trials", conf.Trials, "Trials per scenario")
	outFilePathPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	students, err := parseInts(*studentsPtr)
	if err != nil {
		log.Error("invalid roster sizes", "error", err)
		os.Exit(1)
	}
	densities, err := parseDensities(*densitiesPtr)
	if err != nil {
		log.Error("invalid densities", "error", err)
		os.Exit(1)
	}
	groupSizes, err := parseInts(*groupSizesPtr)
	if err != nil {
		log.Error("invalid group sizes", "error", err)
		os.Exit(1)
	}
	if *trialsPtr <= 0 {
		log.Error("trials must be greater than 0", "trials", *trialsPtr)
		os.Exit(1)
	}

	scenarios := getScenarios(students, densities, groupSizes)
	results := make([]BenchmarkResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		log.Info("benchmarking scenario", "mode", scenario.Mode, "students", scenario.Students, "size", scenario.GroupSize, "density", scenario.Density)
		results = append(results, measure(scenario, *trialsPtr, log))
	}

	file, err := os.Create(*outFilePathPtr)
	if err != nil {
		log.Error("cannot create CSV file", "error", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := toCsv(file, results); err != nil {
		log.Error("cannot write CSV file", "error", err)
		os.Exit(1)
	}
}

func getScenarios(students []int, densities []float64, groupSizes []int) []Scenario {
	scenarios := make([]Scenario, 0, len(students)*len(densities)*(len(groupSizes)+1))
	for _, studentCount := range students {
		for _, density := range densities {
			for _, groupSize := range groupSizes {
				scenarios = append(scenarios, Scenario{Mode: model.ModeGroups, Students: studentCount, GroupSize: groupSize, Density: density})
			}
			scenarios = append(scenarios, Scenario{Mode: model.ModeSeats, Students: studentCount, Density: density})
		}
	}
	return scenarios
}

// measure builds trials arrangements for the scenario, each with its own seeded roster, relation and source
func measure(scenario Scenario, trials int, log *slog.Logger) BenchmarkResult {
	result := BenchmarkResult{Scenario: scenario, Trials: trials}
	var elapsed time.Duration
	conflicts := 0

	for trial := range trials {
		seed := uint64(trial) + 1
		input := generateInput(scenario, seed)
		conflicts += input.Conflicts.Len()

		var planner model.Planner
		if scenario.Mode == model.ModeSeats {
			planner = model.NewSeatPlanner(random.NewSeededSource(seed), log)
		} else {
			planner = model.NewGroupPlanner(random.NewSeededSource(seed), log)
		}

		start := time.Now()
		built, err := planner.Build(input)
		elapsed += time.Since(start)
		if err != nil {
			log.Error("an error occurred during the build", "trial", trial, "error", err)
			os.Exit(1)
		} else if !planner.Verify(built, input) {
			log.Error("verification failed", "trial", trial)
			os.Exit(15)
		}

		if built.Violation {
			result.Violations++
		}
	}

	result.MeanConflicts = float64(conflicts) / float64(trials)
	result.Duration = elapsed / time.Duration(trials)
	return result
}

// generateInput draws a roster and a relation where every pair of students conflicts with probability scenario.Density
func generateInput(scenario Scenario, seed uint64) model.Input {
	rng := rand.New(rand.NewPCG(seed, uint64(scenario.Students)))

	roster := lo.Times(scenario.Students, func(i int) string { return fmt.Sprintf("student-%03d", i) })
	relation := conflict.NewRelation()
	for i := range len(roster) - 1 {
		for j := i + 1; j < len(roster); j++ {
			if rng.Float64() < scenario.Density {
				lo.Must0(relation.Add(roster[i], roster[j]))
			}
		}
	}

	unitCount := model.UnitCount(scenario.Mode, len(roster), 0, scenario.GroupSize)
	return model.Input{Mode: scenario.Mode, Roster: roster, Conflicts: relation, UnitCount: unitCount}
}

func toCsv(out io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(out)

	header := []string{"Mode", "Students", "Group size", "Density", "Trials", "Mean conflicts", "Violations", "Violation rate", "Duration(us)"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			string(result.Scenario.Mode),
			fmt.Sprintf("%d", result.Scenario.Students),
			fmt.Sprintf("%d", result.Scenario.GroupSize),
			fmt.Sprintf("%.3f", result.Scenario.Density),
			fmt.Sprintf("%d", result.Trials),
			fmt.Sprintf("%.1f", result.MeanConflicts),
			fmt.Sprintf("%d", result.Violations),
			fmt.Sprintf("%.3f", float64(result.Violations)/float64(result.Trials)),
			fmt.Sprintf("%.1f", float64(result.Duration.Nanoseconds())/1000),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func parseInts(values string) ([]int, error) {
	return parseList(values, func(value string) (int, error) {
		parsed, err := strconv.Atoi(value)
		if err == nil && parsed <= 0 {
			err = fmt.Errorf("%v must be greater than 0", parsed)
		}
		return parsed, err
	})
}

func parseDensities(values string) ([]float64, error) {
	return parseList(values, func(value string) (float64, error) {
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil && (parsed < 0 || parsed > 1) {
			err = fmt.Errorf("%v must be between 0 and 1", parsed)
		}
		return parsed, err
	})
}

func parseList[T any](values string, parse func(value string) (T, error)) ([]T, error) {
	fields := lo.Filter(strings.Split(values, ","), func(field string, _ int) bool {
		return strings.TrimSpace(field) != ""
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty list: %q", values)
	}

	result := make([]T, 0, len(fields))
	for _, field := range fields {
		parsed, err := parse(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		result = append(result, parsed)
	}
	return result, nil
}
