package gmrepo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanerClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Health", "Health"},
		{"crlf", "Health\r\n", "Health"},
		{"embedded", "Crohn\r\nDisease", "CrohnDisease"},
		{"whitespace", "  D006262\t", "D006262"},
		{"empty", "", ""},
	}

	c := NewCleaner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Clean(tt.in))
		})
	}
}

func TestCleanerMemoizes(t *testing.T) {
	c := NewCleaner()

	c.Clean("Health\r\n")
	c.Clean("Health\r\n")
	c.Clean("Diabetes")

	assert.Equal(t, 2, c.Size())
}

func TestCleanerConcurrent(t *testing.T) {
	c := NewCleaner()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "Health", c.Clean("Health\r\n"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Size())
}
