// Package theme defines the venue categories users can pick and the
// matching rules that bind a category to rows of the dataset. The catalog
// is built once at startup and is safe for concurrent reads.
package theme

// Theme identifiers. These are the values accepted in planning requests.
const (
	StreetFood = "street_food"
	Seafood    = "seafood"
	Vegetarian = "vegetarian"
	Luxury     = "luxury"
	Asian      = "asian"
	Spicy      = "spicy"
	Dessert    = "dessert"
	Drinks     = "drinks"
	FoodZone   = "food_zone"
	Michelin   = "michelin"
)

// michelinSentinel is the exact description value (case-insensitively)
// that marks an award-listed venue in the dataset.
const michelinSentinel = "michelin guide"

// Definition is the display metadata and keyword list for one theme.
// Themes with an empty keyword list are matched against the venue
// description instead of the name.
type Definition struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Keywords []string `json:"keywords,omitempty"`
}

// Catalog is the immutable set of theme definitions.
type Catalog struct {
	defs  map[string]Definition
	order []string
}

// NewCatalog builds the static catalog. Keyword lists keep their
// diacritics; name matching is diacritic-sensitive.
func NewCatalog() *Catalog {
	defs := []Definition{
		{
			ID: StreetFood, Name: "Ăn vặt / đường phố", Icon: "🍢",
			Keywords: []string{
				"bánh mì", "phở", "bún", "xôi", "cơm tấm", "bánh xèo",
				"hủ tiếu", "bánh cuốn", "gỏi cuốn", "nem", "cháo", "bột chiên",
			},
		},
		{
			ID: Seafood, Name: "Hải sản", Icon: "🦞",
			Keywords: []string{
				"hải sản", "ốc", "cua", "ghẹ", "tôm", "mực", "sò", "hàu", "cá",
			},
		},
		{
			ID: Vegetarian, Name: "Món chay", Icon: "🥗",
			Keywords: []string{"chay"},
		},
		{
			ID: Luxury, Name: "Nhà hàng sang trọng", Icon: "🍷",
			Keywords: []string{
				"nhà hàng", "fine dining", "bistro", "rooftop", "buffet",
				"steakhouse",
			},
		},
		{
			ID: Asian, Name: "Món Á", Icon: "🍜",
			Keywords: []string{
				"sushi", "ramen", "dimsum", "dim sum", "lẩu", "hàn quốc",
				"nhật", "bbq", "gogi", "tokbokki", "mì cay",
			},
		},
		{
			ID: Spicy, Name: "Món cay", Icon: "🌶️",
			Keywords: []string{"cay", "mì cay", "lẩu thái", "tokbokki"},
		},
		{
			ID: Dessert, Name: "Tráng miệng / bánh ngọt", Icon: "🍰",
			Keywords: []string{
				"chè", "kem", "bánh ngọt", "tiệm bánh", "bakery",
				"tráng miệng", "bánh kem", "pudding",
			},
		},
		{
			ID: Drinks, Name: "Cà phê / nước uống", Icon: "☕",
			Keywords: []string{
				"cà phê", "cafe", "coffee", "trà sữa", "trà", "nước ép",
				"sinh tố", "juice", "bar", "pub",
			},
		},
		// Description-driven themes carry no keywords.
		{ID: FoodZone, Name: "Khu ẩm thực", Icon: "🏮"},
		{ID: Michelin, Name: "Michelin Guide", Icon: "⭐"},
	}

	c := &Catalog{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		c.defs[d.ID] = d
		c.order = append(c.order, d.ID)
	}
	return c
}

// Get returns the definition for id.
func (c *Catalog) Get(id string) (Definition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// IDs returns all theme identifiers in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// IsSpecial reports whether id is one of the description-driven themes.
// Special themes bypass per-slot keyword filtering and are never diluted
// into slot category logic.
func IsSpecial(id string) bool {
	return id == FoodZone || id == Michelin
}
