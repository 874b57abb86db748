package poker

import (
	"encoding/json"
	"math/rand"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()

	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank)
	}
	if aceSpades.Suit != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit)
	}

	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}
	if aceSpades.Display() != "A♠" {
		t.Errorf("Expected 'A♠', got %s", aceSpades.Display())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}
}

func TestCardEquality(t *testing.T) {
	t.Parallel()

	// Cards are plain values; equality is structural
	if NewCard(King, Hearts) != NewCard(King, Hearts) {
		t.Error("identical cards should compare equal")
	}
	if NewCard(King, Hearts) == NewCard(King, Spades) {
		t.Error("cards of different suits should not compare equal")
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Spades},
				{Rank: Queen, Suit: Spades},
				{Rank: Jack, Suit: Spades},
				{Rank: Ten, Suit: Spades},
			},
		},
		{
			name:  "mixed suits with spaces",
			input: "Ah Kd",
			expected: []Card{
				{Rank: Ace, Suit: Hearts},
				{Rank: King, Suit: Diamonds},
			},
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:    "bad rank",
			input:   "Xs",
			wantErr: true,
		},
		{
			name:    "bad suit",
			input:   "Ax",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ParseCards(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for input %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cards) != len(tt.expected) {
				t.Fatalf("expected %d cards, got %d", len(tt.expected), len(cards))
			}
			for i, c := range cards {
				if c != tt.expected[i] {
					t.Errorf("card %d: expected %v, got %v", i, tt.expected[i], c)
				}
			}
		})
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	t.Parallel()

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(rank, suit)
			parsed, err := ParseCard(card.String())
			if err != nil {
				t.Fatalf("failed to parse %s: %v", card, err)
			}
			if parsed != card {
				t.Errorf("round trip failed: %v != %v", parsed, card)
			}
		}
	}
}

func TestCardJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal([]Card{NewCard(Ace, Spades), NewCard(Ten, Diamonds)})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `["As","Td"]` {
		t.Errorf("expected [\"As\",\"Td\"], got %s", data)
	}

	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(cards) != 2 || cards[0] != NewCard(Ace, Spades) || cards[1] != NewCard(Ten, Diamonds) {
		t.Errorf("round trip failed: %v", cards)
	}

	if err := json.Unmarshal([]byte(`"Zz"`), &cards[0]); err == nil {
		t.Error("expected error for bad card notation")
	}
}

func TestDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(42)))
	seen := make(map[Card]bool)
	cards := d.Deal(52)
	if cards == nil {
		t.Fatal("expected to deal 52 cards")
	}
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %s in deck", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 unique cards, got %d", len(seen))
	}
	if d.CardsRemaining() != 0 {
		t.Fatalf("expected empty deck, got %d remaining", d.CardsRemaining())
	}
	if d.Deal(1) != nil {
		t.Fatal("dealing from an empty deck should return nil")
	}
}
