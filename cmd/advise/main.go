package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/apbharucha/poker/advisor"
	"github.com/apbharucha/poker/advisor/model"
	"github.com/apbharucha/poker/internal/relay"
	"github.com/apbharucha/poker/poker"
)

type CLI struct {
	Hole       string  `arg:"" help:"Hole cards, e.g. 'AsKd'" required:""`
	Board      string  `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Street     string  `short:"s" help:"Street (preflop, flop, turn, river); inferred from the board when omitted"`
	Pot        float64 `help:"Current pot size, outstanding bet excluded" default:"0"`
	Call       float64 `help:"Amount required to call" default:"0"`
	Stack      float64 `help:"Hero stack" default:"200"`
	BigBlind   float64 `name:"bb" help:"Big blind size" default:"2"`
	SmallBlind float64 `name:"sb" help:"Small blind size" default:"1"`
	Opponents  int     `short:"n" help:"Number of active opponents" default:"1"`
	Bluff      bool    `help:"Evaluate the line as a deliberate bluff"`
	Parameters string  `short:"p" help:"Path to learned parameters JSON file"`
	JSON       bool    `short:"j" help:"Emit the raw recommendation as JSON"`
	NoColor    bool    `help:"Disable colored output"`
}

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	game, err := buildContext(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	var opts []advisor.Option
	if cli.Parameters != "" {
		opts = append(opts, advisor.WithParameterStore(
			model.NewStore(relay.FileFetcher{Path: cli.Parameters})))
	}
	engine := advisor.NewEngine(opts...)

	rec := engine.Recommend(context.Background(), game)

	if cli.JSON {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding recommendation: %v\n", err)
			ctx.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	displayRecommendation(game, rec)
}

func buildContext(cli CLI) (advisor.GameContext, error) {
	hole, err := poker.ParseCards(cli.Hole)
	if err != nil {
		return advisor.GameContext{}, fmt.Errorf("hole cards: %v", err)
	}
	if len(hole) != 2 {
		return advisor.GameContext{}, fmt.Errorf("need exactly 2 hole cards, got %d", len(hole))
	}

	var board []poker.Card
	if cli.Board != "" {
		board, err = poker.ParseCards(cli.Board)
		if err != nil {
			return advisor.GameContext{}, fmt.Errorf("board: %v", err)
		}
		if len(board) > 5 {
			return advisor.GameContext{}, fmt.Errorf("board cannot have more than 5 cards")
		}
	}

	seen := make(map[poker.Card]bool)
	for _, card := range append(append([]poker.Card{}, hole...), board...) {
		if seen[card] {
			return advisor.GameContext{}, fmt.Errorf("duplicate card: %s", card)
		}
		seen[card] = true
	}

	street, err := resolveStreet(cli.Street, len(board))
	if err != nil {
		return advisor.GameContext{}, err
	}

	return advisor.GameContext{
		HoleCards:      hole,
		CommunityCards: board,
		Street:         street,
		Pot:            cli.Pot,
		CallAmount:     cli.Call,
		Stack:          cli.Stack,
		BigBlind:       cli.BigBlind,
		SmallBlind:     cli.SmallBlind,
		ActivePlayers:  cli.Opponents,
		BluffIntent:    cli.Bluff,
	}, nil
}

func resolveStreet(flag string, boardSize int) (advisor.Street, error) {
	if flag != "" {
		switch advisor.Street(strings.ToLower(flag)) {
		case advisor.StreetPreflop, advisor.StreetFlop, advisor.StreetTurn, advisor.StreetRiver:
			return advisor.Street(strings.ToLower(flag)), nil
		}
		return "", fmt.Errorf("unknown street: %s", flag)
	}

	switch boardSize {
	case 0:
		return advisor.StreetPreflop, nil
	case 3:
		return advisor.StreetFlop, nil
	case 4:
		return advisor.StreetTurn, nil
	case 5:
		return advisor.StreetRiver, nil
	}
	return "", fmt.Errorf("cannot infer street from a %d-card board", boardSize)
}

func displayRecommendation(game advisor.GameContext, rec advisor.AIRecommendation) {
	fmt.Printf("%s  %s", headerStyle.Render("hole"), cardStyle.Render(formatCards(game.HoleCards)))
	if len(game.CommunityCards) > 0 {
		fmt.Printf("    %s  %s", headerStyle.Render("board"), cardStyle.Render(formatCards(game.CommunityCards)))
	}
	fmt.Printf("    %s\n\n", noteStyle.Render(rec.Hand.Description))

	action := strings.ToUpper(string(rec.Action))
	if rec.Amount > 0 {
		action = fmt.Sprintf("%s %.0f", action, rec.Amount)
	}
	fmt.Printf("%s %s", headerStyle.Render(">"), actionStyle.Render(action))
	if rec.Secondary != nil {
		fmt.Printf("  %s", noteStyle.Render(fmt.Sprintf("(%d%%, otherwise %s)",
			rec.PrimaryFrequency, rec.Secondary.Action)))
	}
	fmt.Printf("\n  %s\n\n", rec.Reasoning)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("win"),
		numberStyle.Render(fmt.Sprintf("%.1f%%", rec.WinProbability)))
	if rec.PotOdds > 0 {
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("pot odds"),
			numberStyle.Render(fmt.Sprintf("%.1f%%", rec.PotOdds)))
	}
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("ev"),
		numberStyle.Render(fmt.Sprintf("%+.2f", rec.ExpectedValue)))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("bluff odds"),
		numberStyle.Render(fmt.Sprintf("%.1f%%", rec.BluffSuccessOdds)))
	w.Flush()

	if rec.GoodForValue {
		fmt.Printf("\n%s\n", actionStyle.Render("good spot for value"))
	}
	if rec.Opportunity != nil {
		fmt.Printf("\n%s %s\n", warnStyle.Render("bluff spot:"), rec.Opportunity.Reason)
	}
}

func formatCards(cards []poker.Card) string {
	var parts []string
	for _, card := range cards {
		parts = append(parts, card.Display())
	}
	return strings.Join(parts, " ")
}
