package model

import "testing"

func TestStoreBookable(t *testing.T) {
	tests := []struct {
		name  string
		store Store
		want  bool
	}{
		{"active normal store", Store{ID: "s1", Category: "normal", IsActive: true}, true},
		{"inactive store", Store{ID: "s1", Category: "normal", IsActive: false}, false},
		{"office store", Store{ID: "hq", Category: "office", IsActive: true}, false},
		{"uncategorised active store", Store{ID: "s1", IsActive: true}, true},
	}
	for _, tt := range tests {
		if got := tt.store.Bookable(); got != tt.want {
			t.Errorf("%s: Bookable() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
