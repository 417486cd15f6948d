package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoldenPathFor(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		ext  string
		path string
		want string
	}{
		{
			name: "single extension replaced",
			ext:  "golden",
			path: filepath.Join("out", "box.txt"),
			want: filepath.Join("out", "box.golden"),
		},
		{
			name: "multi-extension name keeps its extensions",
			ext:  "golden",
			path: filepath.Join("out", "box.kt.txt"),
			want: filepath.Join("out", "box.kt.txt.golden"),
		},
		{
			name: "golden dir rehomes the derived name",
			dir:  "goldens",
			ext:  "golden",
			path: filepath.Join("out", "box.kt.txt"),
			want: filepath.Join("goldens", "box.kt.txt.golden"),
		},
		{
			name: "no extension gains one",
			ext:  "golden",
			path: "box",
			want: "box.golden",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prevDir, prevExt := goldenDir, goldenExt
			t.Cleanup(func() { goldenDir, goldenExt = prevDir, prevExt })
			goldenDir, goldenExt = tt.dir, tt.ext

			assert.Equal(t, tt.want, goldenPathFor(tt.path))
		})
	}
}
