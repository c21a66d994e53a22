package textnorm

import "testing"

func TestStripAccents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Phở Hòa", "pho hoa"},
		{"  Bún Đậu Mắm Tôm  ", "bun dau mam tom"},
		{"CÀ PHÊ SỮA ĐÁ", "ca phe sua da"},
		{"", ""},
		{"abc 123", "abc 123"},
	}
	for _, tt := range tests {
		if got := StripAccents(tt.in); got != tt.want {
			t.Errorf("StripAccents(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    bool
	}{
		{name: "exact word", text: "Quán Phở Lệ", keyword: "phở", want: true},
		{name: "word inside longer word", text: "Văn phòng quận 1", keyword: "phở", want: false},
		{name: "diacritics matter", text: "quán pho mát", keyword: "phở", want: false},
		{name: "multiword keyword", text: "Bánh Mì Huỳnh Hoa", keyword: "bánh mì", want: true},
		{name: "case and spacing", text: "  CƠM   TẤM  ba ghiền", keyword: "cơm tấm", want: true},
		{name: "empty text", text: "", keyword: "phở", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsWord(tt.text, tt.keyword); got != tt.want {
				t.Errorf("ContainsWord(%q, %q) = %v, want %v", tt.text, tt.keyword, got, tt.want)
			}
		})
	}
}

func TestContainsLoose(t *testing.T) {
	if !ContainsLoose("Khu ẩm thực Hồ Thị Kỷ", "am thuc") {
		t.Error("accent-stripped substring should match")
	}
	if ContainsLoose("quán ăn ngon", "am thuc") {
		t.Error("unrelated text should not match")
	}
	// Loose matching is substring-based, not word-based.
	if !ContainsLoose("văn phòng", "pho") {
		t.Error("loose matching is expected to match inside words")
	}
}
