package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/grouping/internal/config"
	"github.com/limaJavier/grouping/pkg/model"
	"github.com/limaJavier/grouping/pkg/partition"
	"github.com/limaJavier/grouping/pkg/random"
	"github.com/limaJavier/grouping/pkg/reveal"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const (
	exitConflictFree = 10
	exitVerification = 15
	exitViolation    = 20
)

var (
	validModes   = []string{string(model.ModeGroups), string(model.ModeSeats)}
	validFormats = []string{"json", "table"}
	planners     = map[model.Mode]func(random.Source, *slog.Logger) model.Planner{
		model.ModeGroups: model.NewGroupPlanner,
		model.ModeSeats:  model.NewSeatPlanner,
	}
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so that deferred cleanups happen before exiting
func run() int {
	conf, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		return 1
	}
	log := logs.GetLoggerFromString(conf.LogLevel)

	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file")
	modePtr := flag.String("mode", "", `Arrangement to build, overriding the input file. Allowed values are:
- "groups" (balanced teamwork groups, by count or by size) and
- "seats" (desks of one or two students)`)
	countPtr := flag.Int("count", 0, "Number of groups, overriding the input file")
	sizePtr := flag.Int("size", 0, "Desired group size, overriding the input file; the number of groups is derived from it")
	seedPtr := flag.Uint64("seed", 0, "Seed of the random source; 0 picks a fresh one on every run")
	formatPtr := flag.String("format", conf.DefaultFormat, "Output format. Allowed values are: \"json\" and \"table\"")
	revealPtr := flag.Duration("reveal", conf.RevealInterval, "Interval between disclosing each unit in table format; 0 shows everything at once")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	filePath := *filePathPtr
	format := strings.ToLower(*formatPtr)

	// Validate arguments
	if filePath == "" {
		log.Error("an input file must be specified")
		return 1
	} else if !slices.Contains(validFormats, format) {
		log.Error("not a valid format", "format", format)
		return 1
	} else if *countPtr < 0 || *sizePtr < 0 {
		log.Error("count and size must not be negative", "count", *countPtr, "size", *sizePtr)
		return 1
	}

	// Extract input
	rawInput, err := model.RawInputFromJson(filePath)
	if err != nil {
		log.Error("cannot parse input file", "error", err)
		return 1
	}
	applyOverrides(&rawInput, strings.ToLower(*modePtr), *countPtr, *sizePtr, conf.DefaultMode)
	if !slices.Contains(validModes, rawInput.Mode) {
		log.Error("not a valid mode", "mode", rawInput.Mode)
		return 1
	}

	input, err := model.ProcessRawInput(rawInput)
	if err != nil {
		log.Error("invalid input", "error", err)
		return 1
	}

	// Initialize engines
	source := random.NewSource()
	if *seedPtr != 0 {
		source = random.NewSeededSource(*seedPtr)
	}
	planner := planners[input.Mode](source, log)

	// Build arrangement
	result, err := planner.Build(input)
	if err != nil {
		log.Error("an error occurred while building the arrangement", "error", err)
		return 1
	}

	// Verify arrangement correctness
	if !planner.Verify(result, input) {
		log.Error("arrangement failed verification")
		return exitVerification
	}

	// Write output
	var out io.Writer = os.Stdout
	if *outFilePathPtr != "" {
		file, err := os.Create(*outFilePathPtr)
		if err != nil {
			log.Error("cannot create output file", "error", err)
			return 1
		}
		defer file.Close()
		out = file
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch format {
	case "json":
		err = writeJson(out, result)
	case "table":
		err = writeTable(ctx, out, result, *revealPtr)
	}
	if err != nil {
		log.Error("an error occurred while writing the output", "error", err)
		return 1
	}

	if result.Violation {
		fmt.Fprintln(os.Stderr, color.Yellow.Sprintf("%d conflicting pair(s) could not be separated, consider using more units", len(result.Violations)))
		return exitViolation
	}
	return exitConflictFree
}

// applyOverrides lets command-line arguments take precedence over the document. Setting a count clears the size and vice versa
func applyOverrides(rawInput *model.RawInput, mode string, count, size int, defaultMode string) {
	if mode != "" {
		rawInput.Mode = mode
	} else if rawInput.Mode == "" {
		rawInput.Mode = defaultMode
	}

	if count > 0 {
		rawInput.Count, rawInput.Size = count, 0
	} else if size > 0 {
		rawInput.Count, rawInput.Size = 0, size
	}
}

func writeJson(out io.Writer, result model.Result) error {
	resultJson, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(resultJson))
	return err
}

// writeTable renders one row per unit. With a positive interval rows are disclosed one after the other
func writeTable(ctx context.Context, out io.Writer, result model.Result, interval time.Duration) error {
	units := result.Partition()
	offending := lo.SliceToMap(result.Violations, func(violation partition.Violation) (int, bool) {
		return violation.Unit, true
	})

	rows := lo.Map(units, func(unit partition.Unit, i int) []string {
		name := fmt.Sprintf("Seat %d", unit.Index+1)
		if result.Mode == model.ModeGroups {
			name = result.Groups[i].Name
		}
		members := strings.Join(unit.Members, ", ")
		if offending[unit.Index] {
			members = color.Red.Sprint(members)
		}
		return []string{name, fmt.Sprint(unit.Size()), members}
	})

	render := func(rows [][]string) {
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Unit", "Size", "Members"})
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.AppendBulk(rows)
		table.Render()
	}

	if interval <= 0 {
		render(rows)
		return nil
	}

	return reveal.Replay(ctx, len(rows), interval, func(index int) {
		render(rows[index : index+1])
	})
}
