package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-base16/pkg/scheme"
)

func promptScheme(store *scheme.Store) (string, error) {
	slugs := store.Slugs()
	var picked string
	prompt := &survey.Select{
		Message:  "Scheme:",
		Options:  slugs,
		PageSize: 15,
		Description: func(value string, _ int) string {
			s, ok := store.Get(value)
			if !ok {
				return ""
			}
			return fmt.Sprintf("%s by %s", s.Name, s.Author)
		},
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return "", fmt.Errorf("select scheme: %w", err)
	}
	return picked, nil
}
