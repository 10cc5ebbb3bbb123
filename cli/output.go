package cli

import "fmt"

func printError(message string) {
	fmt.Printf("✗ %s\n", message)
}

func printSuccess(message string) {
	fmt.Printf("✓ %s\n", message)
}
