package genres

import "testing"

func TestAreSimilar(t *testing.T) {
	tables := DefaultTables()
	tests := []struct {
		a, b string
		want bool
	}{
		{"Science Fiction", "Sci-Fi & Fantasy", true},
		{"Sci-Fi", "Science Fiction", true},
		{"Sci-Fi", "Sci-Fi & Fantasy", true},
		{"Action", "Action & Adventure", false},
		{"Adventure", "Action & Adventure", false},
		{"Fantasy", "Sci-Fi & Fantasy", false},
		{"War", "War & Politics", true},
		{"War & Military", "War", true},
		{"Mystery", "Mystery", true},
		{"mystery", "MYSTERY", true},
		{"Comedy", "Drama", false},
		{"", "Drama", false},
	}
	for _, tc := range tests {
		if got := AreSimilar(tc.a, tc.b, tables); got != tc.want {
			t.Fatalf("AreSimilar(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAreSimilarIsSymmetric(t *testing.T) {
	tables := DefaultTables()
	pairs := [][2]string{
		{"Action", "Action & Adventure"},
		{"Science Fiction", "Sci-Fi & Fantasy"},
		{"War", "Warfare"},
	}
	for _, p := range pairs {
		if AreSimilar(p[0], p[1], tables) != AreSimilar(p[1], p[0], tables) {
			t.Fatalf("AreSimilar not symmetric for %q / %q", p[0], p[1])
		}
	}
}
