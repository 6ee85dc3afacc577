package main

import "fmt"

// Prompter is used to ask the user for confirmation.
type Prompter interface {
	// Confirm asks the user a yes/no question and returns true if they say yes.
	Confirm(message string) (bool, error)
}

// StdioPrompter implements Prompter using stdin/stdout.
type StdioPrompter struct{}

// Confirm asks the user a yes/no question via stdin/stdout.
func (p StdioPrompter) Confirm(message string) (bool, error) {
	fmt.Printf("%s [y/n]: ", message)
	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false, err
	}
	return response == "y" || response == "Y" || response == "yes" || response == "Yes", nil
}

var prompter Prompter = StdioPrompter{}

// confirmDelete applies the confirm-deletes setting and the --yes flag.
func (a *app) confirmDelete(skip bool, message string) (bool, error) {
	if skip || !a.settings.Current().ConfirmDeletes {
		return true, nil
	}
	return prompter.Confirm(message)
}
