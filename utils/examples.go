package utils

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Example is one few-shot input/output pair.
type Example struct {
	Input       string `json:"input" yaml:"input" validate:"required"`
	Output      string `json:"output" yaml:"output" validate:"required"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// ReadExamplesFromFile reads few-shot examples from a .json, .jsonl, .yaml or .yml file.
func ReadExamplesFromFile(filePath string) ([]Example, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	var examples []Example
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".jsonl":
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			var example Example
			if err := json.Unmarshal([]byte(line), &example); err != nil {
				return nil, fmt.Errorf("failed to unmarshal JSON example: %w", err)
			}
			examples = append(examples, example)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("scanner error reading JSONL file: %w", err)
		}
	case ".json":
		if err := json.NewDecoder(file).Decode(&examples); err != nil {
			return nil, fmt.Errorf("failed to decode JSON examples: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&examples); err != nil {
			return nil, fmt.Errorf("failed to decode YAML examples: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported file format: %s", ext)
	}

	return examples, nil
}

// SelectExamples returns at most n examples. Order "random" shuffles a copy,
// "last" keeps the trailing n, anything else keeps the leading n.
func SelectExamples(examples []Example, n int, order string) []Example {
	if n < 0 {
		n = 0
	}
	out := make([]Example, len(examples))
	copy(out, examples)

	switch order {
	case "random":
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	case "last":
		if n < len(out) {
			return out[len(out)-n:]
		}
		return out
	}

	if n < len(out) {
		return out[:n]
	}
	return out
}
