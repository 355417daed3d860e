package restclient

import "testing"

func TestJoinURL(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		segments []any
		want     string
	}{
		{
			name:     "segments appended in order",
			base:     "http://host/base",
			segments: []any{"elements", 1},
			want:     "http://host/base/elements/1",
		},
		{
			name:     "empty path defaults to root",
			base:     "http://host",
			segments: []any{"posts"},
			want:     "http://host/posts",
		},
		{
			name:     "no segments",
			base:     "http://host/base",
			segments: nil,
			want:     "http://host/base",
		},
		{
			name:     "query string preserved",
			base:     "http://host/base?v=1&w=2",
			segments: []any{"items"},
			want:     "http://host/base/items?v=1&w=2",
		},
		{
			name:     "fragment preserved",
			base:     "http://host/base#frag",
			segments: []any{"items"},
			want:     "http://host/base/items#frag",
		},
		{
			name:     "dotdot is not normalized",
			base:     "http://host/base",
			segments: []any{"..", "other"},
			want:     "http://host/base/../other",
		},
		{
			name:     "absolute segment resets the path",
			base:     "http://host/base",
			segments: []any{"/v2", "items"},
			want:     "http://host/v2/items",
		},
		{
			name:     "trailing slash base",
			base:     "http://host/base/",
			segments: []any{"items"},
			want:     "http://host/base/items",
		},
		{
			name:     "non-string segments are stringified",
			base:     "http://host",
			segments: []any{"posts", 42, true},
			want:     "http://host/posts/42/true",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := joinURL(tc.base, tc.segments)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("joinURL(%q, %v) = %q, want %q", tc.base, tc.segments, got, tc.want)
			}
		})
	}
}

func TestJoinURL_InvalidBase(t *testing.T) {
	if _, err := joinURL("http://host\x7f/", []any{"a"}); err == nil {
		t.Error("expected parse error")
	}
}
