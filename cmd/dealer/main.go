package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sirupsen/logrus"

	"github.com/parlorgames/poker/domain/ai"
	"github.com/parlorgames/poker/domain/eval"
	"github.com/parlorgames/poker/domain/poker"
)

const youID = "you"

// aiPace is how long the table pauses before a computer seat acts, so
// the action stays readable.
const aiPace = 700 * time.Millisecond

var opponentNames = []string{"Ada", "Bruno", "Clara", "Dino", "Edda"}

// tableWilds is the wildcard menu chosen at setup; dealers pick from it
// each hand.
var tableWilds []eval.Wildness

func main() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("arlor ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker", pterm.FgDarkGray.ToStyle()),
	).Render()

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").WithDefaultValue("You").Show()
	pterm.Println()

	cfg, err := buildConfig(name)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	table, err := poker.New(cfg)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	run(table)
}

// buildConfig walks the interactive table setup.
func buildConfig(name string) (poker.Config, error) {
	countStr, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("How many opponents?").
		WithOptions([]string{"1", "2", "3", "4", "5"}).
		Show()
	count, _ := strconv.Atoi(countStr)

	tierStr, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Opponent skill").
		WithOptions([]string{"Easy", "Medium", "Hard"}).
		Show()
	tier := map[string]ai.Tier{"Easy": ai.Easy, "Medium": ai.Medium, "Hard": ai.Hard}[tierStr]

	variantStr, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Game").
		WithOptions([]string{"Dealer's choice", "Five-Card Draw", "Seven-Card Stud", "Hold'em"}).
		Show()
	var variant poker.Variant
	switch variantStr {
	case "Five-Card Draw":
		variant = poker.FiveCardDraw
	case "Seven-Card Stud":
		variant = poker.SevenCardStud
	case "Hold'em":
		variant = poker.Holdem
	}

	var wildOptions []eval.Wildness
	if variant.AllowsWilds() {
		wildOptions = chooseWildMenu(variant)
	}
	tableWilds = wildOptions

	// Engine logs go to a file so the table rendering stays clean.
	log := logrus.New()
	if f, err := os.OpenFile("hand.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
	} else {
		log.SetLevel(logrus.PanicLevel)
	}

	seats := []poker.SeatConfig{{ID: youID, Name: name, Human: true}}
	for i := 0; i < count; i++ {
		seats = append(seats, poker.SeatConfig{
			ID:   "ai" + strconv.Itoa(i+1),
			Name: opponentNames[i],
			Tier: tier,
		})
	}
	return poker.Config{
		StartingStack: 200,
		Ante:          2,
		SmallBlind:    1,
		BigBlind:      2,
		MinRaise:      2,
		Variant:       variant,
		WildOptions:   wildOptions,
		Seats:         seats,
		Logger:        log,
	}, nil
}

// wildMenu is the fixed list of wildcard sets a dealer may call.
var wildMenu = []struct {
	label string
	rules eval.Wildness
}{
	{"Jokers wild", eval.Wildness{{Kind: eval.JokersWild}}},
	{"Deuces wild", eval.Wildness{{Kind: eval.RankWild, Rank: 2}}},
	{"Black jacks wild", eval.Wildness{{Kind: eval.BlackJacksWild}}},
	{"Follow the queen", eval.Wildness{{Kind: eval.FollowQueen}}},
}

// chooseWildMenu selects which wildcard sets are on offer at this table.
// Dealer's-choice dealers later pick one of these (or none) per hand.
func chooseWildMenu(variant poker.Variant) []eval.Wildness {
	labels := make([]string, 0, len(wildMenu))
	for _, w := range wildMenu {
		if w.rules[0].Kind == eval.FollowQueen && variant == poker.FiveCardDraw {
			continue // needs face-up cards
		}
		labels = append(labels, w.label)
	}
	picked, _ := pterm.DefaultInteractiveMultiselect.
		WithDefaultText("Wildcard sets on offer (none for straight poker)").
		WithOptions(labels).
		Show()
	var out []eval.Wildness
	for _, label := range picked {
		for _, w := range wildMenu {
			if w.label == label {
				out = append(out, w.rules)
			}
		}
	}
	return out
}

func run(t *poker.Table) {
	for {
		view := t.State(youID)
		render(view, youID)

		if t.GameOver() && (view.Phase == poker.PhaseSettlement || view.HandDead) {
			announceChampion(view)
			return
		}

		if t.CurrentActorIsAI() {
			time.Sleep(aiPace)
			res, acted, err := t.Tick()
			if err != nil {
				pterm.Error.Println(err)
				continue
			}
			if acted && res.Message != "" {
				pterm.Info.Println(res.Message)
			}
			continue
		}

		switch {
		case view.Phase == poker.PhaseSettlement || view.HandDead:
			if !promptNextHand(t, view) {
				return
			}
		case t.CurrentActor() == youID:
			a := promptAction(t, view)
			res, err := t.Submit(youID, a)
			if err != nil {
				pterm.Error.Println(err)
				continue
			}
			if len(res.Drawn) > 0 {
				pterm.Info.Printfln("You drew %s", handLine(res.Drawn))
			}
		default:
			// No actor and the hand is live: nothing to do but wait for
			// the machine, which should not happen. Bail out cleanly.
			pterm.Warning.Println("table stalled; leaving")
			return
		}
	}
}

// promptNextHand asks whether to deal again. It submits next_hand from
// the first surviving seat, covering the case where the human is out.
func promptNextHand(t *poker.Table, view poker.View) bool {
	ok, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultText("Deal the next hand?").
		WithDefaultValue(true).
		Show()
	if !ok {
		return false
	}
	for _, s := range view.Seats {
		if s.Eliminated {
			continue
		}
		if _, err := t.Submit(s.ID, poker.Action{Kind: poker.ActionNextHand}); err != nil {
			pterm.Error.Println(err)
			return false
		}
		return true
	}
	return false
}

// promptAction collects the human player's action for the current phase.
func promptAction(t *poker.Table, view poker.View) poker.Action {
	switch view.Phase {
	case poker.PhaseVariantSelect:
		return promptVariant()
	case poker.PhaseWildSelect:
		return promptWilds(view)
	case poker.PhaseAnte:
		pterm.Info.Println("You have the deal.")
		return poker.Action{Kind: poker.ActionDeal}
	case poker.PhaseDraw:
		return promptDraw(view)
	}
	return promptBet(view)
}

func promptVariant() poker.Action {
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Dealer's choice: pick the game").
		WithOptions([]string{"Five-Card Draw", "Seven-Card Stud", "Hold'em"}).
		Show()
	v := map[string]poker.Variant{
		"Five-Card Draw":  poker.FiveCardDraw,
		"Seven-Card Stud": poker.SevenCardStud,
		"Hold'em":         poker.Holdem,
	}[choice]
	return poker.Action{Kind: poker.ActionChooseVariant, Variant: v}
}

func promptWilds(view poker.View) poker.Action {
	labels := []string{"No wild cards"}
	var sets []eval.Wildness
	for _, set := range tableWilds {
		if len(set) > 0 && set[0].Kind == eval.FollowQueen && view.Variant != poker.SevenCardStud {
			continue
		}
		labels = append(labels, wildLabel(set))
		sets = append(sets, set)
	}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Call your wild cards").
		WithOptions(labels).
		Show()
	for i, label := range labels[1:] {
		if label == choice {
			return poker.Action{Kind: poker.ActionChooseWilds, Wilds: sets[i]}
		}
	}
	return poker.Action{Kind: poker.ActionChooseWilds}
}

// wildLabel shows a configured set under its menu name when it has one.
func wildLabel(set eval.Wildness) string {
	for _, w := range wildMenu {
		if len(w.rules) == len(set) && len(set) > 0 && w.rules[0] == set[0] {
			return w.label
		}
	}
	return set.String()
}

func promptBet(view poker.View) poker.Action {
	var you poker.SeatView
	for _, s := range view.Seats {
		if s.ID == youID {
			you = s
		}
	}
	options := []string{}
	if view.ToCall == 0 {
		options = append(options, "Check")
	} else if you.Stack >= view.ToCall {
		options = append(options, fmt.Sprintf("Call %d", view.ToCall))
	}
	if you.Stack > view.ToCall {
		options = append(options, "Raise")
	}
	options = append(options, "All in", "Fold")

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Your action").
		WithOptions(options).
		Show()
	switch {
	case choice == "Check":
		return poker.Action{Kind: poker.ActionCheck}
	case strings.HasPrefix(choice, "Call"):
		return poker.Action{Kind: poker.ActionCall}
	case choice == "Raise":
		prompt := fmt.Sprintf("Raise by how much? (minimum %d)", view.MinRaise)
		amountStr, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(prompt).
			WithDefaultValue(strconv.Itoa(view.MinRaise)).
			Show()
		amount, err := strconv.Atoi(strings.TrimSpace(amountStr))
		if err != nil {
			amount = view.MinRaise
		}
		return poker.Action{Kind: poker.ActionRaise, Amount: amount}
	case choice == "All in":
		return poker.Action{Kind: poker.ActionAllIn}
	}
	return poker.Action{Kind: poker.ActionFold}
}

func promptDraw(view poker.View) poker.Action {
	var you poker.SeatView
	for _, s := range view.Seats {
		if s.ID == youID {
			you = s
		}
	}
	labels := make([]string, len(you.Cards))
	for i, c := range you.Cards {
		labels[i] = fmt.Sprintf("%d: %s", i+1, c)
	}
	picked, _ := pterm.DefaultInteractiveMultiselect.
		WithDefaultText(fmt.Sprintf("Discard up to %d cards (none to stand pat)", view.DrawLimit)).
		WithOptions(labels).
		Show()
	if len(picked) == 0 {
		return poker.Action{Kind: poker.ActionStandPat}
	}
	indices := make([]int, 0, len(picked))
	for _, label := range picked {
		n, err := strconv.Atoi(strings.SplitN(label, ":", 2)[0])
		if err != nil {
			continue
		}
		indices = append(indices, n-1)
	}
	return poker.Action{Kind: poker.ActionDiscard, Indices: indices}
}

func announceChampion(view poker.View) {
	for _, s := range view.Seats {
		if !s.Eliminated {
			pterm.Success.Printfln("%s wins the game with %d chips!", s.Name, s.Stack)
			return
		}
	}
}
