package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultCategories drive the order of the expense entry prompts. They do
// not validate input, any non-empty category is accepted as a custom
// entry.
var DefaultCategories = []string{"food", "transportation", "entertainment", "rent"}

type categoriesFile struct {
	Categories []string `yaml:"categories"`
}

// LoadCategories reads the prompt categories from a YAML file. An empty
// path or an empty list falls back to DefaultCategories.
func LoadCategories(path string) ([]string, error) {
	if path == "" {
		return DefaultCategories, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}

	var file categoriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing categories file: %w", err)
	}

	categories := make([]string, 0, len(file.Categories))
	for _, category := range file.Categories {
		category = strings.ToLower(strings.TrimSpace(category))
		if category != "" {
			categories = append(categories, category)
		}
	}

	if len(categories) == 0 {
		return DefaultCategories, nil
	}

	return categories, nil
}
