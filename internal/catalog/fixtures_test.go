package catalog

import (
	"fmt"

	"github.com/Veraticus/dealscope/internal/model"
)

func testDeals() []model.Deal {
	return []model.Deal{
		{Title: "Hollow Knight", Platform: "PC", Store: "Steam", Price: 7.49, OldPrice: 14.99, Featured: true},
		{Title: "Celeste", Platform: "PC", Store: "GOG", Price: 4.99, OldPrice: 19.99},
		{Title: "Resident Evil 4", Platform: "PC", Store: "Steam", Price: 19.99, OldPrice: 39.99, Featured: true},
		{Title: "Resident Evil Village Gold Edition", Platform: "PC", Store: "Fanatical", Price: 14.99, OldPrice: 49.99},
		{Title: "Elden Ring", Platform: "PC", Store: "Humble Store", Price: 35.99, OldPrice: 59.99},
		{Title: "anno 1800", Platform: "PC", Store: "Ubisoft", Price: 14.99, OldPrice: 59.99},
		{Title: "Bastion", Platform: "Mac", Store: "Steam", Price: 1.49, OldPrice: 14.99, Featured: true},
	}
}

// numberedDeals returns n deals titled "Game 001".."Game n".
func numberedDeals(n int) []model.Deal {
	deals := make([]model.Deal, n)
	for i := range deals {
		deals[i] = model.Deal{
			Title:    fmt.Sprintf("Game %03d", i+1),
			Platform: "PC",
			Store:    "Steam",
			Price:    float64(i%10) + 0.99,
			OldPrice: 19.99,
		}
	}
	return deals
}

func titles(deals []model.Deal) []string {
	out := make([]string, len(deals))
	for i, d := range deals {
		out[i] = d.Title
	}
	return out
}
