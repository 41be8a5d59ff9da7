package font

import "github.com/rivo/uniseg"

// Cluster is one or more codepoints that form a single user-perceived
// character for glyph lookup purposes: a plain rune, an emoji with a
// variation selector, a ZWJ sequence, a flag pair.
type Cluster struct {
	runes []rune
	text  string
}

// NewCluster builds a cluster from a single grapheme's text.
func NewCluster(text string) Cluster {
	return Cluster{runes: []rune(text), text: text}
}

// ClusterFromRune builds a single-codepoint cluster.
func ClusterFromRune(r rune) Cluster {
	return Cluster{runes: []rune{r}, text: string(r)}
}

// Text returns the cluster's text.
func (c Cluster) Text() string { return c.text }

// Runes returns the cluster's codepoints. The slice must not be mutated.
func (c Cluster) Runes() []rune { return c.runes }

// IsEmoji reports whether the cluster is classified as emoji presentation:
// either its base codepoint defaults to emoji presentation, or an emoji
// variation selector (U+FE0F) forces it. A text variation selector
// (U+FE0E) forces text presentation regardless of the base.
func (c Cluster) IsEmoji() bool {
	for _, r := range c.runes {
		if r == 0xFE0E {
			return false
		}
	}
	for _, r := range c.runes {
		if r == 0xFE0F {
			return true
		}
	}
	for _, r := range c.runes {
		if isClusterComponent(r) {
			continue
		}
		return isEmojiPresentation(r)
	}
	return false
}

// SplitClusters segments text into grapheme clusters. Multi-codepoint emoji
// (ZWJ sequences, flags, keycaps, skin tones) stay together.
func SplitClusters(text string) []Cluster {
	if text == "" {
		return nil
	}
	clusters := make([]Cluster, 0, len(text))
	state := -1
	for len(text) > 0 {
		var g string
		g, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		clusters = append(clusters, NewCluster(g))
	}
	return clusters
}

// isClusterComponent reports whether the rune is an emoji/cluster component
// that never maps to its own glyph: joiners, variation selectors, skin tone
// modifiers, tags and the combining keycap.
func isClusterComponent(r rune) bool {
	switch {
	case r == 0x200D: // zero-width joiner
		return true
	case r == 0xFE0E || r == 0xFE0F: // variation selectors
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tone modifiers
		return true
	case r >= 0xE0020 && r <= 0xE007F: // tag characters
		return true
	case r == 0x20E3: // combining enclosing keycap
		return true
	}
	return false
}

// isEmojiPresentation reports whether the rune defaults to emoji
// presentation (Emoji_Presentation=Yes). These display as emoji without
// requiring U+FE0F.
func isEmojiPresentation(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F300 && r <= 0x1F5FF: // misc symbols and pictographs
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport and map symbols
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols
		return true
	case r >= 0x1FA00 && r <= 0x1FAFF: // symbols extended A/B
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tone modifiers
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators (flags)
		return true
	case r >= 0x1F000 && r <= 0x1F02F: // mahjong tiles
		return true
	case r >= 0x1F0A0 && r <= 0x1F0FF: // playing cards
		return true
	case r >= 0x231A && r <= 0x231B: // watch, hourglass
		return true
	case r >= 0x23E9 && r <= 0x23F3: // media controls
		return true
	case r == 0x2614 || r == 0x2615: // umbrella, hot beverage
		return true
	case r >= 0x26AA && r <= 0x26AB: // circles
		return true
	case r == 0x26BD || r == 0x26BE: // soccer, baseball
		return true
	case r >= 0x2648 && r <= 0x2653: // zodiac
		return true
	case r == 0x2B50 || r == 0x2B55: // star, heavy circle
		return true
	default:
		return false
	}
}
