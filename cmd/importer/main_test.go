package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractImageURLs(t *testing.T) {
	html := `<p><img class="big" src="https://cdn.example.com/a.jpg" alt=""><img src="https://cdn.example.com/b.jpg"></p>`
	require.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, extractImageURLs(html))

	require.Empty(t, extractImageURLs(""))
	require.Empty(t, extractImageURLs("no images here"))
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Шина КАМА NU-301 185/65R15", "шина-кама-nu-301-18565r15"},
		{"  Cordiant   Winter Drive 2  ", "cordiant-winter-drive-2"},
		{"Nokian Hakkapeliitta R5!", "nokian-hakkapeliitta-r5"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, generateSlug(tc.name))
	}
}

func TestNormalizeWidth(t *testing.T) {
	require.Equal(t, 385, normalizeWidth("15 (385)"))
	require.Equal(t, 185, normalizeWidth("185"))
	require.Equal(t, 22.5, normalizeWidth("22.5"))
	require.Equal(t, "145/70", normalizeWidth("145/70"))
	require.Nil(t, normalizeWidth(""))
	require.Nil(t, normalizeWidth("   "))
}

func TestParseScalar(t *testing.T) {
	require.Equal(t, 65, parseScalar("65"))
	require.Equal(t, 22.5, parseScalar("22.5"))
	require.Equal(t, "92T", parseScalar("92T"))
	require.Nil(t, parseScalar(""))
}

func TestParsePrice(t *testing.T) {
	require.Equal(t, 4350, parsePrice("4350"))
	require.Equal(t, 4350, parsePrice("4350.4"))
	require.Equal(t, 4351, parsePrice("4350.6"))
	require.Nil(t, parsePrice(""))
	require.Nil(t, parsePrice("договорная"))
}
