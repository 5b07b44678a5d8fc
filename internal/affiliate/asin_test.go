package affiliate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractASIN(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{name: "dp", path: "/dp/B08N5WRWNW", want: "B08N5WRWNW", wantOK: true},
		{name: "dp with slug", path: "/Echo-Dot/dp/B07XJ8C8F5/ref=sr_1_1", want: "B07XJ8C8F5", wantOK: true},
		{name: "gp product", path: "/gp/product/B07XJ8C8F5", want: "B07XJ8C8F5", wantOK: true},
		{name: "upper case path", path: "/DP/B07XJ8C8F5", want: "B07XJ8C8F5", wantOK: true},
		{name: "trailing slash", path: "/dp/B07XJ8C8F5/", want: "B07XJ8C8F5", wantOK: true},
		{name: "too short", path: "/dp/B07XJ8C8", wantOK: false},
		{name: "too long", path: "/dp/B07XJ8C8F55", wantOK: false},
		{name: "non alphanumeric", path: "/dp/B07XJ8-8F5", wantOK: false},
		{name: "other shape", path: "/gp/aw/d/B07XJ8C8F5", wantOK: false},
		{name: "empty", path: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractASIN(tt.path)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
