package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single named starting deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck. A zero count means 1.
type CardEntry struct {
	Name   string `yaml:"name"`
	Attack int    `yaml:"attack"`
	Health int    `yaml:"health"`
	Count  int    `yaml:"count"`
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name to
// card slice.
func ParseDeckFile(path string) (map[string][]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	decks := make(map[string][]Card)
	for _, deck := range df.Decks {
		decks[deck.Name] = deck.expand()
	}
	return decks, nil
}

// DeckByName returns the named deck from the deck file.
func DeckByName(path, name string) ([]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	for _, deck := range df.Decks {
		if deck.Name == name {
			return deck.expand(), nil
		}
	}
	return nil, fmt.Errorf("deck %q not found (have %d decks)", name, len(df.Decks))
}

func (d DeckEntry) expand() []Card {
	var cards []Card
	for _, entry := range d.Cards {
		count := entry.Count
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			cards = append(cards, NewCard(entry.Name, entry.Attack, entry.Health))
		}
	}
	return cards
}
