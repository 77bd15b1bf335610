package model

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/limaJavier/grouping/pkg/conflict"
	"github.com/limaJavier/grouping/pkg/partition"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type Mode string

const (
	ModeGroups Mode = "groups"
	ModeSeats  Mode = "seats"
)

// RawInput is the request document as written by the caller
type RawInput struct {
	Mode      string     `mapstructure:"mode" validate:"required,oneof=groups seats"`
	Roster    []string   `mapstructure:"roster" validate:"unique,dive,required"`
	Conflicts [][]string `mapstructure:"conflicts" validate:"dive,len=2,dive,required"`
	Count     int        `mapstructure:"count" validate:"min=0"`
	Size      int        `mapstructure:"size" validate:"min=0"`
}

type Input struct {
	Mode      Mode
	Roster    []string // Present students only, no duplicates
	Conflicts *conflict.Relation
	UnitCount int
}

var validate = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their document names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterStructValidation(unitCountOrSizeValidation, RawInput{})
	return validate
}

// Groups are requested either by count or by size, never both and never none
func unitCountOrSizeValidation(level validator.StructLevel) {
	raw := level.Current().Interface().(RawInput)
	if Mode(raw.Mode) != ModeGroups {
		return
	}

	if raw.Count > 0 && raw.Size > 0 {
		level.ReportError(raw.Size, "size", "Size", "excluded_with", "count")
	} else if raw.Count == 0 && raw.Size == 0 {
		level.ReportError(raw.Count, "count", "Count", "required_without", "size")
	}
}

func RawInputFromJson(file string) (RawInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return RawInput{}, fmt.Errorf("cannot read input file: %w", err)
	}
	return ParseRawInput(bytes)
}

func ParseRawInput(bytes []byte) (RawInput, error) {
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return RawInput{}, err
	}

	var rawInput RawInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return RawInput{}, fmt.Errorf("cannot decode input: %w", err)
	}
	return rawInput, nil
}

func InputFromJson(file string) (Input, error) {
	rawInput, err := RawInputFromJson(file)
	if err != nil {
		return Input{}, err
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawInput) (Input, error) {
	if len(rawInput.Roster) == 0 {
		return Input{}, ErrEmptyRoster
	}

	if err := validate.Struct(rawInput); err != nil {
		return Input{}, newValidationError(err)
	}

	conflicts, err := conflict.FromPairs(lo.Map(rawInput.Conflicts, func(pair []string, _ int) [2]string {
		return [2]string{pair[0], pair[1]}
	}))
	if err != nil {
		return Input{}, err
	}

	mode := Mode(rawInput.Mode)
	return Input{
		Mode:      mode,
		Roster:    rawInput.Roster,
		Conflicts: conflicts,
		UnitCount: UnitCount(mode, len(rawInput.Roster), rawInput.Count, rawInput.Size),
	}, nil
}

// UnitCount derives how many units a roster of the given number of students is split into.
// Seats always hold two students; groups follow count when positive and size otherwise
func UnitCount(mode Mode, students, count, size int) int {
	switch {
	case mode == ModeSeats:
		return partition.UnitCountForSize(students, 2)
	case count > 0:
		return count
	default:
		return partition.UnitCountForSize(students, size)
	}
}
