// Package stats computes the summary counters shown after imports and by the
// stats command.
package stats

import "voyago/roadmap"

type RoadmapSummary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
}

type ShopSummary struct {
	Total     int `json:"total"`
	Visited   int `json:"visited"`
	Favorites int `json:"favorites"`
}

type VinylSummary struct {
	ShopSummary
	WishlistItems int `json:"wishlistItems"`
}

type Summary struct {
	Roadmap RoadmapSummary `json:"roadmap"`
	Shops   ShopSummary    `json:"shops"`
	Vinyl   VinylSummary   `json:"vinyl"`
}

// Summarize counts records per collection. It is a pure total function:
// nil collections count as zero and record order never affects the result.
func Summarize(doc roadmap.Document) Summary {
	var summary Summary

	summary.Roadmap.Total = len(doc.Roadmap)
	for _, activity := range doc.Roadmap {
		switch activity.Status {
		case roadmap.StatusDone:
			summary.Roadmap.Completed++
		case roadmap.StatusTodo:
			summary.Roadmap.Pending++
		case roadmap.StatusInProgress:
			summary.Roadmap.InProgress++
		}
	}

	summary.Shops = summarizeShops(doc.Shops)
	summary.Vinyl.ShopSummary = summarizeShops(doc.Vinyl)
	for _, shop := range doc.Vinyl {
		summary.Vinyl.WishlistItems += len(shop.Wishlist)
	}

	return summary
}

func summarizeShops(shops []roadmap.Shop) ShopSummary {
	counts := ShopSummary{Total: len(shops)}
	for _, shop := range shops {
		if shop.Visited {
			counts.Visited++
		}
		if shop.Favorite {
			counts.Favorites++
		}
	}
	return counts
}
