package theme

import "saigon-foodtour/internal/textnorm"

// VenueText is the subset of venue fields the matcher inspects.
type VenueText struct {
	Name        string
	Taste       string
	Description string
}

// Matches reports whether the venue text satisfies the theme's rule.
// Unknown theme identifiers never match.
func (c *Catalog) Matches(themeID string, v VenueText) bool {
	def, ok := c.defs[themeID]
	if !ok {
		return false
	}

	switch themeID {
	case FoodZone:
		// A zone of eateries is recognized from its description: it names
		// a district/zone and mentions food.
		desc := textnorm.StripAccents(v.Description)
		return desc != "" &&
			textnorm.ContainsLoose(desc, "khu") &&
			textnorm.ContainsLoose(desc, "am thuc")
	case Michelin:
		return textnorm.NormalizeKeepAccents(v.Description) == michelinSentinel
	}

	for _, kw := range def.Keywords {
		if textnorm.ContainsWord(v.Name, kw) {
			return true
		}
	}

	// Spicy and dessert venues are often named after the shop, not the
	// dish; the taste profile field is the fallback signal.
	switch themeID {
	case Spicy:
		return textnorm.ContainsLoose(v.Taste, "cay")
	case Dessert:
		return textnorm.ContainsLoose(v.Taste, "ngot")
	}
	return false
}

// MatchesAny reports whether any of the given themes matches the venue.
func (c *Catalog) MatchesAny(themeIDs []string, v VenueText) bool {
	for _, id := range themeIDs {
		if c.Matches(id, v) {
			return true
		}
	}
	return false
}

// beverage keywords shared by the leak filter below. Kept identical to the
// Drinks theme keyword list.
func (c *Catalog) beverageKeywords() []string {
	return c.defs[Drinks].Keywords
}

// IsBeverageName reports whether the venue name reads as a café or drink
// shop. When the active theme set does not include Drinks, such venues are
// excluded from results regardless of which theme matched, so cafés do not
// leak into food searches.
func (c *Catalog) IsBeverageName(name string) bool {
	for _, kw := range c.beverageKeywords() {
		if textnorm.ContainsWord(name, kw) {
			return true
		}
	}
	return false
}

// IsBreadMealName reports whether the venue name contains a bánh mì
// variant. Dessert searches exclude these: a bakery item is not a
// bread-based meal.
func (c *Catalog) IsBreadMealName(name string) bool {
	return textnorm.ContainsWord(name, "bánh mì")
}
