package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "file"},
		{"plain", "photo.jpg", "photo.jpg"},
		{"uppercase folded", "IMG_0042.JPG", "img-0042.jpg"},
		{"accents stripped", "Château Photo.jpg", "chateau-photo.jpg"},
		{"path traversal reduced to base", "../../etc/passwd", "passwd"},
		{"windows path reduced to base", `C:\Users\me\pic.jpg`, "pic.jpg"},
		{"separator runs collapse", "weird___name...final.png", "weird-name-final.png"},
		{"dot only", ".", "file"},
		{"symbols only", "###$$$.gif", "file.gif"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFileName(tt.in))
		})
	}
}

func TestSanitizeFileName_Truncates(t *testing.T) {
	got := sanitizeFileName(strings.Repeat("a", 150) + ".jpg")
	assert.Len(t, got, maxFileNameLen)
	assert.True(t, strings.HasSuffix(got, ".jpg"))
}
