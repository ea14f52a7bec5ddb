// Package random generates display attributes for new records: role and
// invoice colors, role icons, and the placeholder display name assigned
// to freshly created users.
package random

import (
	"fmt"
	"math/rand/v2"
)

var colors = []string{
	"#f94144", "#f3722c", "#f8961e", "#f9c74f",
	"#90be6d", "#43aa8b", "#4d908e", "#577590",
	"#277da1", "#9b5de5", "#f15bb5", "#00bbf9",
}

var icons = []string{
	"star", "bolt", "leaf", "flame",
	"anchor", "compass", "rocket", "shield",
	"feather", "globe", "moon", "sun",
}

var adjectives = []string{
	"brisk", "calm", "clever", "eager",
	"gentle", "keen", "lively", "quiet",
	"swift", "warm", "witty", "bold",
}

var nouns = []string{
	"falcon", "otter", "maple", "comet",
	"harbor", "meadow", "ridge", "sparrow",
	"cedar", "breeze", "summit", "ember",
}

// Color returns a random display color as a hex string.
func Color() string {
	return colors[rand.IntN(len(colors))]
}

// Icon returns a random icon name.
func Icon() string {
	return icons[rand.IntN(len(icons))]
}

// Username returns a generated display name like "swiftotter42".
func Username() string {
	return fmt.Sprintf("%s%s%d",
		adjectives[rand.IntN(len(adjectives))],
		nouns[rand.IntN(len(nouns))],
		rand.IntN(100),
	)
}
