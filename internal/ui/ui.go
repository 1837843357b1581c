package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sgaunet/timerange/pkg/timerange"
)

const pickerPageSize = 15

// RangeSelector prompts the user to choose a time range preset.
type RangeSelector struct{}

func NewRangeSelector() *RangeSelector {
	return &RangeSelector{}
}

// SelectRange shows an interactive picker over the given presets and
// returns the chosen one.
func (rs *RangeSelector) SelectRange(options []timerange.TimeOption) (timerange.TimeOption, error) {
	if len(options) == 0 {
		return timerange.TimeOption{}, fmt.Errorf("no presets to choose from")
	}

	displays := make([]string, len(options))
	for i, opt := range options {
		displays[i] = opt.Display
	}

	var selected string
	prompt := &survey.Select{
		Message:  "Choose a time range:",
		Options:  displays,
		PageSize: pickerPageSize,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return timerange.TimeOption{}, fmt.Errorf("failed to get range selection: %w", err)
	}

	for i, display := range displays {
		if display == selected {
			return options[i], nil
		}
	}
	return timerange.TimeOption{}, fmt.Errorf("selection %q not found in presets", selected)
}
