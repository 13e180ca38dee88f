// Package leaderboard serves the compiled-in top players list.
package leaderboard

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/fastcode/internal/i18n"
	"github.com/verte-zerg/fastcode/internal/model"
)

// Badge thresholds in words per minute.
const (
	EliteWPM = 120
	ProWPM   = 105
)

// Badge is a player's tier.
type Badge string

const (
	BadgeElite  Badge = "elite"
	BadgePro    Badge = "pro"
	BadgeRising Badge = "rising"
)

// TranslationKey returns the i18n key for the badge label.
func (b Badge) TranslationKey() string {
	return "topPlayers.badge." + string(b)
}

var entries = []model.LeaderboardEntry{
	{Name: "Moorfo", WPM: 132, Accuracy: 98, Streak: "12 days"},
	{Name: "Alex D.", WPM: 118, Accuracy: 96, Streak: "8 days"},
	{Name: "Priya S.", WPM: 112, Accuracy: 95, Streak: "5 days"},
	{Name: "Marina G.", WPM: 108, Accuracy: 94, Streak: "4 days"},
	{Name: "Kenji T.", WPM: 104, Accuracy: 93, Streak: "3 days"},
	{Name: "Amelia R.", WPM: 101, Accuracy: 92, Streak: "2 days"},
}

// Entries returns a copy of the leaderboard in rank order.
func Entries() []model.LeaderboardEntry {
	out := make([]model.LeaderboardEntry, len(entries))
	copy(out, entries)
	return out
}

// Top returns the first n entries.
func Top(n int) []model.LeaderboardEntry {
	all := Entries()
	if n < 0 || n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// BadgeFor classifies a speed.
func BadgeFor(wpm int) Badge {
	switch {
	case wpm >= EliteWPM:
		return BadgeElite
	case wpm >= ProWPM:
		return BadgePro
	default:
		return BadgeRising
	}
}

// Rows renders entries as table cells: rank, name, WPM, accuracy, streak, badge.
func Rows(list []model.LeaderboardEntry, tr i18n.Translator) [][]string {
	rows := make([][]string, 0, len(list))
	for i, e := range list {
		rows = append(rows, []string{
			"#" + strconv.Itoa(i+1),
			e.Name,
			strconv.Itoa(e.WPM),
			strconv.Itoa(e.Accuracy) + "%",
			e.Streak,
			tr.T(BadgeFor(e.WPM).TranslationKey()),
		})
	}
	return rows
}

// Headers returns the localized column titles matching Rows.
func Headers(tr i18n.Translator) []string {
	return []string{
		"#",
		tr.T("nav.topPlayers"),
		tr.T("topPlayers.wpm"),
		tr.T("topPlayers.accuracy"),
		tr.T("topPlayers.streak"),
		tr.T("topPlayers.badgeLabel"),
	}
}

// Render writes the leaderboard as a plain-text table.
func Render(w io.Writer, list []model.LeaderboardEntry, tr i18n.Translator) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No players yet.")
		return err
	}
	if _, err := fmt.Fprintln(w, tr.T("topPlayers.title")); err != nil {
		return err
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true}
	for _, line := range formatTable(Headers(tr), Rows(list, tr), rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, tr.T("topPlayers.footer")); err != nil {
		return err
	}
	return nil
}
