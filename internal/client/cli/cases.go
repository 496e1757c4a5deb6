package cli

import (
	"strings"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/client/samples"
	"github.com/dmitrijs2005/lawlink/internal/client/search"
)

func (a *App) Cases() {
	a.section("Case tracking")
	for _, c := range samples.Cases() {
		a.printf("%s  %s\n", titleStyle.Render(c.Title), badge(c.Status))
		a.printf("  %s\n", c.Description)
		a.println(mutedStyle.Render("  Last update: " + c.LastUpdate))
	}
}

// Updates lists legal updates, optionally limited to one category.
func (a *App) Updates(args []string) {
	category := models.AllCategories
	if len(args) > 0 {
		category = strings.Join(args, " ")
	}

	list := search.FilterUpdates(samples.LegalUpdates(), category)
	a.section("Legal updates: " + category)
	a.println(mutedStyle.Render("Categories: " + strings.Join(models.LegalUpdateCategories, ", ")))
	if len(list) == 0 {
		a.println(mutedStyle.Render("  (none)"))
	}
	for _, u := range list {
		a.printf("%s  %s\n", titleStyle.Render(u.Title), mutedStyle.Render(u.Date+" · "+u.Category))
		a.printf("  %s\n", u.Summary)
	}
}
