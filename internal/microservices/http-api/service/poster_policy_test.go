package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosterPolicy_Messages(t *testing.T) {
	p := DefaultPosterPolicy()
	assert.Equal(t, "Only .png and .jpg images are allowed!", p.typeError().Message)
	assert.Equal(t, "Max allowed size for poster is 1MB!", p.sizeError().Message)

	p = PosterPolicy{AllowedExtensions: []string{".png", ".jpg", ".webp"}, MaxSize: 512 << 10}
	assert.Equal(t, "Only .png, .jpg and .webp images are allowed!", p.typeError().Message)
	assert.Equal(t, "Max allowed size for poster is 512KB!", p.sizeError().Message)
}

func TestPosterPolicy_Allows(t *testing.T) {
	p := DefaultPosterPolicy()

	tests := []struct {
		name string
		want bool
	}{
		{"poster.png", true},
		{"poster.JPG", true},
		{"archive.tar.png", true},
		{"poster.jpeg", false},
		{"poster.gif", false},
		{"png", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.allows(tt.name))
		})
	}
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "1MB", humanSize(1048576))
	assert.Equal(t, "2MB", humanSize(2<<20))
	assert.Equal(t, "1KB", humanSize(1024))
	assert.Equal(t, "1000 bytes", humanSize(1000))
}

func BenchmarkPosterPolicy_Read(b *testing.B) {
	p := DefaultPosterPolicy()
	data := bytes.Repeat([]byte{0xAB}, 900<<10)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		poster, _ := fakePoster("bench.png", int64(len(data)), data)
		if _, err := p.read(poster); err != nil {
			b.Fatal(err)
		}
	}
}
