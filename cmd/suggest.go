package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"datesuggest/internal"
)

// newEngine creates an engine for one typing session.
var newEngine = func() *internal.Engine {
	return internal.NewEngine(internal.NewNaturalDateParser(), time.Now)
}

func SuggestCommand(config *internal.Config, args []string) error {
	query := strings.ToLower(strings.Join(args, " "))
	suggestions := newEngine().Suggest(config.Suggest.Request(query))
	printSuggestions(os.Stdout, query, suggestions)
	return nil
}

// ReplayCommand feeds every line of in to the same engine, like keystrokes
// of one typing session, and prints the list after each line.
func ReplayCommand(config *internal.Config, in io.Reader, out io.Writer) error {
	engine := newEngine()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		query := strings.ToLower(strings.TrimRight(scanner.Text(), "\r"))
		suggestions := engine.Suggest(config.Suggest.Request(query))
		printSuggestions(out, query, suggestions)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read queries: %w", err)
	}
	return nil
}

func printSuggestions(out io.Writer, query string, suggestions []internal.Suggestion) {
	fmt.Fprintf(out, "Query: %q\n", query)
	fmt.Fprint(out, internal.RenderSuggestions(suggestions, -1))
	fmt.Fprintln(out)
}
