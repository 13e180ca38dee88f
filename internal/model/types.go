// Package model defines shared data structures.
package model

// CodeSnippet is a read-only block of source text to be typed.
type CodeSnippet struct {
	ID          string `yaml:"id"`
	Language    string `yaml:"language"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Code        string `yaml:"code"`
}

// LeaderboardEntry is one row of the compiled-in leaderboard.
type LeaderboardEntry struct {
	Name     string
	WPM      int
	Accuracy int
	Streak   string
}

// Config defines practice settings.
type Config struct {
	SnippetID   string
	Duration    int
	Theme       string
	SnippetsDir string
	Locale      string
}
