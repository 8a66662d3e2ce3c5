package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/parlorgames/poker/domain/deck"
	"github.com/parlorgames/poker/domain/poker"
)

// render draws the whole table: opponents on top, the board in the
// middle, the viewer's seat at the bottom.
func render(v poker.View, you string) {
	var opponents []pterm.Panel
	var mine pterm.Panel
	for _, s := range v.Seats {
		if s.ID == you {
			mine = pterm.Panel{Data: seatBox(s, v, true)}
			continue
		}
		opponents = append(opponents, pterm.Panel{Data: seatBox(s, v, false)})
	}
	board := pterm.Panel{Data: boardBox(v)}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		opponents,
		{board},
		{mine},
	}).Render()
}

func seatBox(s poker.SeatView, v poker.View, main bool) string {
	hpadding := 4
	if main {
		hpadding = 10
	}
	pbox := pterm.DefaultBox.WithLeftPadding(hpadding).WithRightPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)

	status := pterm.LightGreen("Active")
	switch {
	case s.Eliminated:
		status = pterm.LightRed("Out")
	case s.Folded:
		status = pterm.LightRed("Folded")
	case s.AllIn:
		status = pterm.LightYellow("All In")
	}
	if v.Actor == s.ID {
		status += pterm.LightCyan("  <- to act")
	}

	lines := []string{
		status,
		fmt.Sprintf("Bet: %d   Stack: %d", s.RoundBet, s.Stack),
	}
	if len(s.Cards) > 0 {
		lines = append(lines, pterm.BgGreen.Sprint(handLine(s.Cards)))
	}
	if s.Outcome == poker.OutcomeWin || s.Outcome == poker.OutcomeSplit {
		lines = append(lines, pterm.LightGreen(fmt.Sprintf("won %d", s.Won)))
	}

	title := s.Name
	if !main && s.IsAI {
		title += " (cpu)"
	}
	return pbox.WithTitle(title).WithTitleTopLeft().Sprint(strings.Join(lines, "\n"))
}

func boardBox(v poker.View) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	header := string(v.Phase)
	if v.Variant != "" {
		header = v.Variant.String() + " - " + header
	}
	lines := []string{pterm.LightCyan(header)}
	if v.Wilds != "" {
		lines = append(lines, "Wild: "+pterm.LightMagenta(v.Wilds))
	}
	lines = append(lines, fmt.Sprintf("Pot: %d   To call: %d", v.Pot, v.ToCall))
	if len(v.Community) > 0 {
		lines = append(lines, pterm.BgGreen.Sprint(handLine(v.Community)))
	}
	if v.Message != "" {
		lines = append(lines, pterm.Gray(v.Message))
	}
	return pbox.WithTitle(pterm.LightGreen("|TABLE|")).WithTitleTopCenter().Sprint(strings.Join(lines, "\n"))
}

func handLine(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " - ")
}
