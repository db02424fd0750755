package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bikeshare/filter"
	"bikeshare/utils"
)

const yes = "yes"

// Prompt asks questions to the user and reads the answers line by line
type Prompt struct {
	scanner *bufio.Scanner
	output  io.Writer
}

func NewPrompt(input io.Reader, output io.Writer) *Prompt {
	return &Prompt{
		scanner: bufio.NewScanner(input),
		output:  output,
	}
}

// Ask prints question and returns the normalized answer. io.EOF is returned when the input is over
func (p *Prompt) Ask(question string) (string, error) {
	fmt.Fprint(p.output, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return utils.NormalizeInput(p.scanner.Text()), nil
}

// AskOption asks until the answer is one of options
func (p *Prompt) AskOption(question string, options []string, invalidMessage string) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if utils.ContainsString(answer, options) {
			return answer, nil
		}
		fmt.Fprintln(p.output, invalidMessage)
	}
}

// Confirm returns true if the user answers yes
func (p *Prompt) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return answer == yes, nil
}

// GetFilters asks for the city, month and day to analyze
func (p *Prompt) GetFilters(cities []string) (string, string, string, error) {
	fmt.Fprintln(p.output, "Hello! Let's explore some US bikeshare data!")

	city, err := p.AskOption(
		fmt.Sprintf("Which city would you like to explore? (%s): ", strings.Join(cities, ", ")),
		cities,
		"Invalid city. Please try again",
	)
	if err != nil {
		return "", "", "", err
	}

	month, err := p.AskOption(
		"Which month? (all, january, february, ... , june): ",
		append([]string{filter.All}, filter.Months...),
		"Invalid month. Please try again",
	)
	if err != nil {
		return "", "", "", err
	}

	day, err := p.AskOption(
		"Which day? (all, monday, tuesday, ... sunday): ",
		append([]string{filter.All}, filter.Days...),
		"Invalid day. Please try again",
	)
	if err != nil {
		return "", "", "", err
	}

	fmt.Fprintln(p.output, separator)
	return city, month, day, nil
}
