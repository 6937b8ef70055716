package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pokedex/internal/server/models"
)

// runMenu drives the viewer loop: print the menu, read a choice, execute it.
// The loop exits on the exit choice or when stdin is exhausted.
func (a *App) runMenu(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to the JSON data viewer!")
	fmt.Fprintln(a.out)

	for {
		fmt.Fprintln(a.out, "1. View all data")
		fmt.Fprintln(a.out, "2. Filter by ID")
		fmt.Fprintln(a.out, "3. Exit")
		fmt.Fprintln(a.out, "4. Display Overview Page")

		choice, err := GetSimpleText(a.reader, "Please enter your choice:", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.viewAll(ctx)
		case "2":
			id, err := GetSimpleText(a.reader, "Please enter the ID you want to filter by:", a.out)
			if err != nil {
				return
			}
			a.filterByID(ctx, id)
		case "3":
			fmt.Fprintln(a.out, "Exiting...")
			return
		case "4":
			a.displayOverview(ctx)
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
	}
}

func (a *App) viewAll(ctx context.Context) {
	items, err := a.source.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintln(a.out, "All Data:")
	for _, item := range items {
		fmt.Fprintf(a.out, "- %s (%d)\n", item.Name, item.ID)
	}
}

func (a *App) filterByID(ctx context.Context, idStr string) {
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		fmt.Fprintf(a.out, "No data found for ID %s\n", idStr)
		return
	}

	item, err := a.source.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "No data found for ID %s\n", idStr)
		return
	}

	a.printDetail(item)
}

func (a *App) printDetail(item models.Pokemon) {
	fmt.Fprintf(a.out, "- %s (%d)\n", item.Name, item.ID)
	fmt.Fprintf(a.out, "  - Description: %s\n", item.Description)
	fmt.Fprintf(a.out, "  - Height: %v\n", item.Height)
	fmt.Fprintf(a.out, "  - Weight: %v\n", item.Weight)
	fmt.Fprintf(a.out, "  - Is Legendary: %v\n", item.IsLegendary)
	fmt.Fprintf(a.out, "  - Birthdate: %s\n", item.Birthdate)
	fmt.Fprintf(a.out, "  - Image URL: %s\n", item.ImageURL)
	fmt.Fprintf(a.out, "  - Type: %s\n", item.Type)
	fmt.Fprintf(a.out, "  - Abilities: %s\n", strings.Join(item.Abilities, ", "))
	fmt.Fprintf(a.out, "  - Evolution Chain: %s -> %s -> %s\n",
		item.EvolutionChain.BaseForm, item.EvolutionChain.EvolvesTo, item.EvolutionChain.FinalForm)
}

func (a *App) displayOverview(ctx context.Context) {
	items, err := a.source.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintln(a.out, "Overview Page:")
	fmt.Fprintln(a.out, "ID | Name | Height | Weight | Is Legendary")
	for _, item := range items {
		legendary := "No"
		if item.IsLegendary {
			legendary = "Yes"
		}
		fmt.Fprintf(a.out, "%d | %s | %v | %v | %s\n",
			item.ID, item.Name, item.Height, item.Weight, legendary)
	}
}
