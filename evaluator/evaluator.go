// Package evaluator ranks poker hands. It scores 5-card hands into one of
// ten categories with a total-ordering tiebreak value, and picks the best
// 5-card hand out of a superset of hole and community cards by enumerating
// every 5-card combination.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/apbharucha/poker/poker"
)

// HandCategory represents the ranking of a poker hand
type HandCategory int

const (
	HighCard HandCategory = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand category
func (hc HandCategory) String() string {
	switch hc {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// categoryBase spreads categories so that cross-category comparisons can
// never collide with within-category scores, which stay below 1000.
const categoryBase = 1000

// Evaluation is the result of ranking a hand. TiebreakValue imposes a strict
// total order: category first, then within-category strength.
type Evaluation struct {
	Category      HandCategory `json:"category"`
	TiebreakValue int          `json:"tiebreakValue"`
	Description   string       `json:"description"`
}

// Incomplete reports whether this evaluation came from fewer than 5 cards.
// Incomplete evaluations must not be compared against real rankings.
func (e Evaluation) Incomplete() bool {
	return e.TiebreakValue == 0
}

// Compare compares two evaluations and returns:
//
//	-1 if e is weaker than other
//	 0 if e equals other
//	 1 if e is stronger than other
func (e Evaluation) Compare(other Evaluation) int {
	switch {
	case e.TiebreakValue < other.TiebreakValue:
		return -1
	case e.TiebreakValue > other.TiebreakValue:
		return 1
	default:
		return 0
	}
}

// String returns a string representation of the evaluation
func (e Evaluation) String() string {
	return e.Description
}

// incompleteEvaluation is the sentinel returned for fewer than 5 cards.
func incompleteEvaluation() Evaluation {
	return Evaluation{
		Category:      HighCard,
		TiebreakValue: 0,
		Description:   "Incomplete hand",
	}
}

// Evaluate ranks a set of 5 or more cards, returning the best 5-card hand.
// With fewer than 5 cards it returns a degenerate "incomplete" evaluation.
// It never fails for well-formed cards.
func Evaluate(cards []poker.Card) Evaluation {
	switch {
	case len(cards) < 5:
		return incompleteEvaluation()
	case len(cards) == 5:
		return evaluateFive(cards)
	default:
		return bestOfCombinations(cards)
	}
}

// BestHand ranks the best 5-card hand available from hole plus community
// cards. Below 5 total cards it falls back to the degenerate evaluation.
func BestHand(hole, community []poker.Card) Evaluation {
	all := make([]poker.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)
	return Evaluate(all)
}

// bestOfCombinations enumerates every 5-card combination (C(n,5)) and keeps
// the maximum tiebreak value. Worst case is C(7,5)=21 evaluations.
func bestOfCombinations(cards []poker.Card) Evaluation {
	n := len(cards)
	best := incompleteEvaluation()
	combo := make([]poker.Card, 5)

	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == 5 {
			if eval := evaluateFive(combo); eval.TiebreakValue > best.TiebreakValue {
				best = eval
			}
			return
		}
		for i := start; i <= n-(5-depth); i++ {
			combo[depth] = cards[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)

	return best
}

func evaluateFive(cards []poker.Card) Evaluation {
	ranks := make([]int, 5)
	for i, c := range cards {
		ranks[i] = c.Value()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	counts := rankCounts(cards)
	flush := isFlush(cards)
	straightHigh := straightHighCard(ranks)

	switch {
	case flush && straightHigh == int(poker.Ace):
		return Evaluation{RoyalFlush, score(RoyalFlush, int(poker.Ace)), "Royal Flush"}

	case flush && straightHigh > 0:
		return Evaluation{
			StraightFlush,
			score(StraightFlush, straightHigh),
			fmt.Sprintf("Straight Flush, %s high", poker.Rank(straightHigh)),
		}

	case counts.quad > 0:
		return Evaluation{
			FourOfAKind,
			score(FourOfAKind, counts.quad*15+counts.kickers[0]),
			fmt.Sprintf("Four of a Kind, %ss", poker.Rank(counts.quad)),
		}

	case counts.trip > 0 && len(counts.pairs) > 0:
		return Evaluation{
			FullHouse,
			score(FullHouse, counts.trip*15+counts.pairs[0]),
			fmt.Sprintf("Full House, %ss over %ss", poker.Rank(counts.trip), poker.Rank(counts.pairs[0])),
		}

	case flush:
		return Evaluation{
			Flush,
			score(Flush, ranks[0]),
			fmt.Sprintf("Flush, %s high", poker.Rank(ranks[0])),
		}

	case straightHigh > 0:
		return Evaluation{
			Straight,
			score(Straight, straightHigh),
			fmt.Sprintf("Straight, %s high", poker.Rank(straightHigh)),
		}

	case counts.trip > 0:
		return Evaluation{
			ThreeOfAKind,
			score(ThreeOfAKind, counts.trip),
			fmt.Sprintf("Three of a Kind, %ss", poker.Rank(counts.trip)),
		}

	case len(counts.pairs) >= 2:
		// Tiebreak consults only the higher pair; the lower pair and kicker
		// do not enter the score.
		return Evaluation{
			TwoPair,
			score(TwoPair, counts.pairs[0]),
			fmt.Sprintf("Two Pair, %ss and %ss", poker.Rank(counts.pairs[0]), poker.Rank(counts.pairs[1])),
		}

	case len(counts.pairs) == 1:
		return Evaluation{
			OnePair,
			score(OnePair, counts.pairs[0]),
			fmt.Sprintf("Pair of %ss", poker.Rank(counts.pairs[0])),
		}

	default:
		return Evaluation{
			HighCard,
			score(HighCard, ranks[0]),
			fmt.Sprintf("High Card, %s", poker.Rank(ranks[0])),
		}
	}
}

func score(category HandCategory, withinScore int) int {
	return int(category)*categoryBase + withinScore
}

type groupedRanks struct {
	quad    int   // rank of four-of-a-kind, 0 if none
	trip    int   // rank of highest three-of-a-kind, 0 if none
	pairs   []int // pair ranks, descending
	kickers []int // ungrouped ranks, descending
}

func rankCounts(cards []poker.Card) groupedRanks {
	var freq [15]int
	for _, c := range cards {
		freq[c.Value()]++
	}

	var g groupedRanks
	for rank := int(poker.Ace); rank >= int(poker.Two); rank-- {
		switch freq[rank] {
		case 4:
			g.quad = rank
		case 3:
			if g.trip == 0 {
				g.trip = rank
			} else {
				// Second trip in a 5+ card evaluation acts as the pair
				g.pairs = append(g.pairs, rank)
			}
		case 2:
			g.pairs = append(g.pairs, rank)
		case 1:
			g.kickers = append(g.kickers, rank)
		}
	}
	if len(g.kickers) == 0 {
		g.kickers = []int{0}
	}
	return g
}

func isFlush(cards []poker.Card) bool {
	suit := cards[0].Suit
	for _, c := range cards[1:] {
		if c.Suit != suit {
			return false
		}
	}
	return true
}

// straightHighCard returns the high card of a straight formed by the given
// descending-sorted ranks, or 0 if there is no straight. The wheel
// (A-5-4-3-2) counts as a 5-high straight; aces are otherwise high only.
func straightHighCard(sorted []int) int {
	distinct := sorted[:1]
	for _, r := range sorted[1:] {
		if r != distinct[len(distinct)-1] {
			distinct = append(distinct, r)
		}
	}
	if len(distinct) != 5 {
		return 0
	}

	if distinct[0]-distinct[4] == 4 {
		return distinct[0]
	}

	// Wheel: A,5,4,3,2
	if distinct[0] == int(poker.Ace) && distinct[1] == int(poker.Five) && distinct[1]-distinct[4] == 3 {
		return int(poker.Five)
	}

	return 0
}
