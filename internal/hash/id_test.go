package hash

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestFoldedID(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		equal string
	}{
		{"already lower", "tools/toolsnodraw", "tools/toolsnodraw"},
		{"mixed case", "TOOLS/ToolsNoDraw", "tools/toolsnodraw"},
		{"class name", "Info_Player_Teamspawn", "info_player_teamspawn"},
		{"digits and punctuation", "DE_Dust2/Wall-01", "de_dust2/wall-01"},
		{"longer than one block", strings.Repeat("AbC", 50), strings.Repeat("abc", 50)},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, ID(tt.equal), FoldedID(tt.data))
		})
	}

	t.Run("non ascii bytes untouched", func(t *testing.T) {
		require.NotEqual(t, FoldedID("É"), FoldedID("é"))
	})
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkID(b *testing.B) {
	randStr := randString(20)
	b.ResetTimer()
	for b.Loop() {
		ID(randStr)
	}
}

func BenchmarkFoldedID(b *testing.B) {
	randStr := randString(20)
	b.ResetTimer()
	for b.Loop() {
		FoldedID(randStr)
	}
}
