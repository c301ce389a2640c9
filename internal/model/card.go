package model

import "strings"

// HashtagSeparator joins hashtags in the card's display text.
const HashtagSeparator = ", "

type CardDraft struct {
	Number      int      `json:"number"`
	Description string   `json:"description"`
	Hashtags    []string `json:"hashtags"`
	SetID       int      `json:"setId"`
}

// HashtagsText is the display form of the hashtag list.
func (d CardDraft) HashtagsText() string {
	return JoinHashtags(d.Hashtags)
}

// SetHashtagsText replaces the hashtag list with the parsed display text.
func (d *CardDraft) SetHashtagsText(text string) {
	d.Hashtags = SplitHashtags(text)
}

func JoinHashtags(tags []string) string {
	return strings.Join(tags, HashtagSeparator)
}

// SplitHashtags splits on the full separator only, so "a,b" stays one tag
// and a trailing "a," keeps its comma. Empty text is an empty list.
func SplitHashtags(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, HashtagSeparator)
}
