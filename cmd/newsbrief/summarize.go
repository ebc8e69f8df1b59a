package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/newsbrief"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	summary, err := deps.Service.SummarizeURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsbrief.ErrorMessage(err))
		return err
	}
	return printSummary(deps, summary)
}

// Run executes the demo command.
func (c *DemoCmd) Run(deps *Dependencies) error {
	summary, err := deps.Service.SummarizeDemo(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsbrief.ErrorMessage(err))
		return err
	}
	return printSummary(deps, summary)
}

// printSummary writes summary as indented JSON or as plain text.
func printSummary(deps *Dependencies, summary *newsbrief.Summary) error {
	if deps.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Fprintln(deps.Stdout, summary.Title)
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, summary.Summary)
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintf(deps.Stdout, "Source: %s\n", summary.SourceURL)
	return nil
}
