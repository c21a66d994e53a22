package theme

import "testing"

func TestMatchesKeywordThemes(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name  string
		theme string
		venue VenueText
		want  bool
	}{
		{name: "pho matches street food", theme: StreetFood, venue: VenueText{Name: "Phở Lệ"}, want: true},
		{name: "word boundary respected", theme: StreetFood, venue: VenueText{Name: "Văn phòng quận 1"}, want: false},
		{name: "seafood shop", theme: Seafood, venue: VenueText{Name: "Ốc Đào"}, want: true},
		{name: "vegetarian", theme: Vegetarian, venue: VenueText{Name: "Cơm chay An Lạc"}, want: true},
		{name: "luxury restaurant", theme: Luxury, venue: VenueText{Name: "Nhà hàng Ngon 138"}, want: true},
		{name: "asian hotpot", theme: Asian, venue: VenueText{Name: "Lẩu nấm Ashima"}, want: true},
		{name: "drinks cafe", theme: Drinks, venue: VenueText{Name: "Cà phê Vợt"}, want: true},
		{name: "unknown theme id", theme: "nonsense", venue: VenueText{Name: "Phở Lệ"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Matches(tt.theme, tt.venue); got != tt.want {
				t.Errorf("Matches(%s, %q) = %v, want %v", tt.theme, tt.venue.Name, got, tt.want)
			}
		})
	}
}

func TestMatchesTasteFallback(t *testing.T) {
	c := NewCatalog()

	// Name carries no keyword; the taste field decides.
	spicy := VenueText{Name: "Quán Tư Béo", Taste: "Cay nồng"}
	if !c.Matches(Spicy, spicy) {
		t.Error("spicy taste profile should match the spicy theme")
	}
	sweet := VenueText{Name: "Tiệm Cô Ba", Taste: "Ngọt thanh"}
	if !c.Matches(Dessert, sweet) {
		t.Error("sweet taste profile should match the dessert theme")
	}
	if c.Matches(Spicy, sweet) {
		t.Error("sweet venue must not match spicy")
	}
}

func TestMatchesDescriptionThemes(t *testing.T) {
	c := NewCatalog()

	zone := VenueText{Name: "Hồ Thị Kỷ", Description: "Khu ẩm thực về đêm nổi tiếng quận 10"}
	if !c.Matches(FoodZone, zone) {
		t.Error("description naming a food zone should match")
	}
	if c.Matches(FoodZone, VenueText{Name: "Hồ Thị Kỷ", Description: "chợ hoa lớn nhất"}) {
		t.Error("description without the zone markers must not match")
	}

	starred := VenueText{Name: "Anan Saigon", Description: "Michelin Guide"}
	if !c.Matches(Michelin, starred) {
		t.Error("exact sentinel description should match, case-insensitively")
	}
	if c.Matches(Michelin, VenueText{Name: "Anan Saigon", Description: "được Michelin Guide nhắc tới"}) {
		t.Error("sentinel embedded in longer text must not match")
	}
}

func TestBeverageAndBreadHelpers(t *testing.T) {
	c := NewCatalog()

	if !c.IsBeverageName("Trà sữa Phúc Long") {
		t.Error("tea shop should read as a beverage venue")
	}
	if c.IsBeverageName("Cơm tấm Ba Ghiền") {
		t.Error("rice shop is not a beverage venue")
	}
	if !c.IsBreadMealName("Bánh Mì Huỳnh Hoa") {
		t.Error("bánh mì shop should be flagged")
	}
	if c.IsBreadMealName("Bánh flan Cô Lan") {
		t.Error("flan shop is not a bread meal")
	}
}

func TestCatalogOrderAndSpecials(t *testing.T) {
	c := NewCatalog()

	ids := c.IDs()
	if len(ids) != 10 {
		t.Fatalf("expected 10 themes, got %d", len(ids))
	}
	if ids[0] != StreetFood || ids[len(ids)-1] != Michelin {
		t.Errorf("catalog order changed: %v", ids)
	}
	if !IsSpecial(FoodZone) || !IsSpecial(Michelin) {
		t.Error("description-driven themes must be special")
	}
	if IsSpecial(Drinks) {
		t.Error("drinks is not special")
	}
	if _, ok := c.Get("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}
