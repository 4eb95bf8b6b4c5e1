package cmd

import (
	"fmt"
	"os"

	"datesuggest/internal"
)

func InitConfigCommand(configPath string) error {
	if configPath == "" {
		var err error
		configPath, err = internal.UserConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	created, err := internal.SaveDefaultConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	if created {
		fmt.Printf("Created configuration file at %s\n", configPath)
		return nil
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	fmt.Printf("Configuration file already exists at %s\n", configPath)
	fmt.Println("\nCurrent settings:")
	fmt.Println("=================")
	fmt.Printf("%s\n", string(content))
	return nil
}
