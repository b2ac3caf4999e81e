package quantum

import (
	"fmt"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/pkg"
)

// weightedSplit is one entry of the card pool: an X/O split and its draw weight.
type weightedSplit struct {
	x      int
	weight int
}

// splitPool holds the eleven offered splits. Balanced splits come up more
// often than extreme ones.
var splitPool = []weightedSplit{
	{x: 90, weight: 1},
	{x: 80, weight: 1},
	{x: 70, weight: 3},
	{x: 60, weight: 4},
	{x: 55, weight: 4},
	{x: 50, weight: 5},
	{x: 45, weight: 4},
	{x: 40, weight: 4},
	{x: 30, weight: 3},
	{x: 20, weight: 1},
	{x: 10, weight: 1},
}

type DeckGenerator struct {
	rng pkg.Source
}

func NewDeckGenerator(rng pkg.Source) *DeckGenerator {
	return &DeckGenerator{rng: rng}
}

// Generate draws three distinct splits. Each draw is weighted by what is left
// in the pool, so no split appears twice in one deck.
func (that *DeckGenerator) Generate(round int) []entity.ProbabilityCard {
	remaining := append([]weightedSplit(nil), splitPool...)

	total := 0
	for _, split := range remaining {
		total += split.weight
	}

	deck := make([]entity.ProbabilityCard, 0, entity.DeckSize)
	for slot := 0; slot < entity.DeckSize; slot++ {
		pick := that.rng.Intn(total)

		chosen := 0
		for i, split := range remaining {
			if pick < split.weight {
				chosen = i
				break
			}
			pick -= split.weight
		}

		split := remaining[chosen]
		deck = append(deck, entity.ProbabilityCard{
			ID:           cardID(round, slot),
			XProbability: split.x,
			OProbability: 100 - split.x,
		})

		total -= split.weight
		remaining = append(remaining[:chosen], remaining[chosen+1:]...)
	}

	return deck
}

func cardID(round, slot int) string {
	return fmt.Sprintf("card-%d-%d", round, slot)
}
