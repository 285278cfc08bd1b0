package services

import "go.uber.org/zap"

// ContractEngine собирает все части движка анкеты с общими настройками.
type ContractEngine struct {
	Prices   *PriceCalculator
	Blocks   *ContractBlocks
	Resolver *PlaceholderResolver
	Renderer *TemplateRenderer
	Merger   *EntityMerger
}

func NewContractEngine(rateMarkers []string, logger *zap.Logger) *ContractEngine {
	prices := NewPriceCalculator(rateMarkers)
	blocks := NewContractBlocks(prices)
	resolver := NewPlaceholderResolver(blocks)
	return &ContractEngine{
		Prices:   prices,
		Blocks:   blocks,
		Resolver: resolver,
		Renderer: NewTemplateRenderer(resolver),
		Merger:   NewEntityMerger(logger),
	}
}
