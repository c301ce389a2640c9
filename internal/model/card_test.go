package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashtagsRoundTrip(t *testing.T) {
	cases := [][]string{
		{"history"},
		{"history", "art", "science"},
		{"a,b", "c ,d", "e"},
		{"trailing,", "x"},
	}
	for _, tags := range cases {
		require.Equal(t, tags, SplitHashtags(JoinHashtags(tags)))
	}
}

func TestSplitHashtags(t *testing.T) {
	require.Equal(t, []string{}, SplitHashtags(""))
	require.Equal(t, []string{"a", "b"}, SplitHashtags("a, b"))
	require.Equal(t, []string{"a,b"}, SplitHashtags("a,b"))
	require.Equal(t, []string{"a", "b,"}, SplitHashtags("a, b,"))
	require.Equal(t, []string{"a", ""}, SplitHashtags("a, "))
}

func TestCardDraftSetHashtagsText(t *testing.T) {
	card := CardDraft{}
	card.SetHashtagsText("sport, music")
	require.Equal(t, []string{"sport", "music"}, card.Hashtags)
	require.Equal(t, "sport, music", card.HashtagsText())
}
