package media

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantFilename(t *testing.T) {
	assert.Equal(t, "profile_7_200_thumb.jpg", VariantFilename("profile_7_200.jpg", "thumb"))
	assert.Equal(t, "property_3_100_large.webp", VariantFilename("property_3_100.webp", "large"))
}

func TestFileSet(t *testing.T) {
	got := FileSet("profile_7_100.jpg", AvatarVariants)
	want := []string{
		"profile_7_100.jpg",
		"profile_7_100_thumb.jpg",
		"profile_7_100_small.jpg",
		"profile_7_100_medium.jpg",
		"profile_7_100_large.jpg",
	}
	assert.Equal(t, want, got)
}

func TestNamerBasename(t *testing.T) {
	n := NewNamerAt(func() int64 { return 200 })
	assert.Equal(t, "profile_7_200.jpg", n.Basename(ClassAvatar, 7, "jpg"))
	// second call within the same stamp must still be unique
	assert.Equal(t, "profile_7_201.jpg", n.Basename(ClassAvatar, 7, "jpg"))
}

func TestNamerMonotonicUnderConcurrency(t *testing.T) {
	n := NewNamerAt(func() int64 { return 1000 })

	const workers = 16
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		names = make(map[string]struct{}, workers)
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			name := n.Basename(ClassPropertyPhoto, 42, "png")
			mu.Lock()
			names[name] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, names, workers)
}
