package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		limit     int
		wantPages int
	}{
		{"exact fit", 40, 1, 20, 2},
		{"partial last page", 41, 1, 20, 3},
		{"empty set still one page", 0, 1, 20, 1},
		{"single item", 1, 1, 20, 1},
		{"bad limit falls back", 35, 1, 0, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildPagination(tc.total, tc.page, tc.limit)
			if got.Pages != tc.wantPages {
				t.Fatalf("Pages = %d, want %d", got.Pages, tc.wantPages)
			}
			if got.Total != tc.total {
				t.Errorf("Total = %d, want %d", got.Total, tc.total)
			}
		})
	}
}
