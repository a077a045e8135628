package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"aceyducey/deal"
	"aceyducey/game"
)

// printInstructions shows the attribution and the rules of the game.
func printInstructions() {
	pterm.DefaultCenter.Println("ACEY DUCEY CARD GAME")
	pterm.DefaultCenter.Println("CREATIVE COMPUTING  MORRISTOWN, NEW JERSEY")
	pterm.Println()
	pterm.Println("ACEY-DUCEY IS PLAYED IN THE FOLLOWING MANNER")
	pterm.Println("THE DEALER (COMPUTER) DEALS TWO CARDS FACE UP")
	pterm.Println("YOU HAVE AN OPTION TO BET OR NOT BET DEPENDING")
	pterm.Println("ON WHETHER OR NOT YOU FEEL THE CARD WILL HAVE")
	pterm.Println("A VALUE BETWEEN THE FIRST TWO.")
	pterm.Println()
}

func printBalance(balance int) {
	pterm.Info.Printfln("YOU NOW HAVE $%d DOLLARS", balance)
}

// cardBox renders a single rank inside a bordered box.
func cardBox(r deal.Rank) string {
	return pterm.DefaultBox.WithLeftPadding(3).WithRightPadding(3).WithTopPadding(1).WithBottomPadding(1).Sprintf("%s", r)
}

// printBounds shows the two bound cards ascending, regardless of deal order.
func printBounds(a, b deal.Rank) {
	low, high := deal.Sorted(a, b)
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: cardBox(low)}, {Data: cardBox(high)}},
	}).Render()
}

func printThird(r deal.Rank) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: cardBox(r)}},
	}).Render()
}

// historyData builds the table rows for the settled rounds of a sitting.
func historyData(h *game.History) pterm.TableData {
	data := pterm.TableData{{"#", "CARDS", "THIRD", "BET", "RESULT", "BALANCE"}}
	for _, r := range h.Rounds() {
		low, high := deal.Sorted(r.First, r.Second)
		data = append(data, []string{
			strconv.Itoa(r.Round),
			low.Label() + " " + high.Label(),
			r.Third.Label(),
			strconv.Itoa(r.Bet),
			r.Outcome.String(),
			strconv.Itoa(r.Balance),
		})
	}
	return data
}

// fairnessPanel formats the seed reveal so the player can re-derive every
// draw of the sitting.
func fairnessPanel(seeds deal.Seeds, sessionID string) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("Session:     %s", pterm.LightCyan(sessionID))
	info += pterm.Sprintfln("Client seed: %s", seeds.Client)
	info += pterm.Sprintfln("Server seed: %s", seeds.Server)
	info += pterm.Sprintf("Draw n is floor(f * 13), f from the first 4 bytes of HMAC-SHA256(server, \"client:n\")")
	return pbox.WithTitle(pterm.LightYellow("|FAIR DEAL|")).WithTitleTopCenter().Sprintf("%s", info)
}

// printFarewell shows the game-over screen: the round history, the sitting
// stats and the seed reveal.
func printFarewell(engine *game.Engine, seeds deal.Seeds) {
	h := engine.History()
	pterm.Println()
	pterm.Println("GAME OVER. Thanks for playing!")
	if len(h.Rounds()) > 0 {
		pterm.Println()
		pterm.DefaultTable.WithHasHeader().WithData(historyData(h)).Render()
		pterm.Println()
		pterm.Info.Printfln("%d won, %d lost, peak balance $%d over %d bankroll(s)",
			h.Wins(), h.Losses(), h.Peak(), h.Sittings())
	}
	pterm.Println()
	pterm.Println(fairnessPanel(seeds, h.SessionID))
}
