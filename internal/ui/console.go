package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/danilprakh0v/dprakhov-sd-hw2/internal/errors"
)

const dateLayout = "2006-01-02"

// Console renders menu trees and reads selections from a line-based input.
// Failures are reported through the error-code taxonomy and never crash
// the loop.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run drives the menu loop for root until the user backs out or input is
// exhausted.
func (c *Console) Run(root *MenuItem) {
	for {
		enabled := root.EnabledItems()
		if len(enabled) == 0 {
			return
		}

		fmt.Fprintf(c.out, "\n== %s ==\n", root.Label)
		for i, item := range enabled {
			fmt.Fprintf(c.out, "%d) %s\n", i+1, item.Label)
		}
		fmt.Fprintln(c.out, "0) Back")

		line, ok := c.readLine("> ")
		if !ok {
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 0 || choice > len(enabled) {
			fmt.Fprintln(c.out, "Invalid selection")
			continue
		}
		if choice == 0 {
			return
		}

		selected := enabled[choice-1]
		if selected.IsSubmenu() {
			c.Run(selected)
			continue
		}
		if selected.Run != nil {
			c.report(selected.Run())
		}
	}
}

// report renders an action result; nil errors print a confirmation.
func (c *Console) report(err error) {
	if err == nil {
		fmt.Fprintln(c.out, "Done")
		return
	}

	code := apperrors.Classify(err)
	fmt.Fprintf(c.out, "[%s] %s: %v\n", code, apperrors.GetErrorMessage(code), err)
}

func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) promptString(label string) (string, bool) {
	return c.readLine(label + ": ")
}

func (c *Console) promptDecimal(label string) (decimal.Decimal, bool) {
	for {
		line, ok := c.readLine(label + ": ")
		if !ok {
			return decimal.Zero, false
		}

		value, err := decimal.NewFromString(strings.TrimSpace(line))
		if err == nil {
			return value, true
		}
		fmt.Fprintln(c.out, "Enter a decimal number")
	}
}

func (c *Console) promptUUID(label string) (uuid.UUID, bool) {
	for {
		line, ok := c.readLine(label + ": ")
		if !ok {
			return uuid.Nil, false
		}

		id, err := uuid.Parse(strings.TrimSpace(line))
		if err == nil {
			return id, true
		}
		fmt.Fprintln(c.out, "Enter a valid id")
	}
}

func (c *Console) promptDate(label string) (time.Time, bool) {
	for {
		line, ok := c.readLine(label + " (YYYY-MM-DD): ")
		if !ok {
			return time.Time{}, false
		}

		date, err := time.Parse(dateLayout, strings.TrimSpace(line))
		if err == nil {
			return date, true
		}
		fmt.Fprintln(c.out, "Enter a date as YYYY-MM-DD")
	}
}

// promptKind reads the income/expense choice shared by category and
// operation creation. Returns 0 for income, 1 for expense.
func (c *Console) promptKind(label string) (int, bool) {
	for {
		line, ok := c.readLine(label + " (income/expense): ")
		if !ok {
			return 0, false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "income", "0":
			return 0, true
		case "expense", "1":
			return 1, true
		}
		fmt.Fprintln(c.out, "Enter income or expense")
	}
}
