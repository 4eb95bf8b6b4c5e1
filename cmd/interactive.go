package cmd

import (
	"fmt"

	"datesuggest/internal"
)

func InteractiveCommand(config *internal.Config) error {
	chosen, err := internal.PickDate(newEngine(), config.Suggest)
	if err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}

	// User quit without choosing
	if chosen == nil {
		return nil
	}

	fmt.Printf("%s\t%s\n", chosen.Label, chosen.Date.Format(internal.DateLayout))
	return nil
}
