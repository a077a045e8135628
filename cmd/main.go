package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"aceyducey/deal"
	"aceyducey/game"
)

const defaultClientSeed = "acey ducey"

func main() {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("A", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("cey ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("D", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ucey", pterm.FgDarkGray.ToStyle()),
	).Render()

	serverSeed, err := deal.NewServerSeed()
	if err != nil {
		logger.Error("could not seed the dealer", "error", err)
		os.Exit(1)
	}

	clientSeed, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Type a lucky phrase to salt the deal").
		WithDefaultValue(defaultClientSeed).Show()
	if err != nil || clientSeed == "" {
		clientSeed = defaultClientSeed
	}
	pterm.Println()

	dealer := deal.NewDealer(deal.Seeds{Server: serverSeed, Client: clientSeed})
	engine := game.New(dealer)
	logger.Info("table open", "session", engine.History().SessionID)

	for engine.State() != game.StateGameOver {
		switch engine.State() {
		case game.StateInitializing:
			printInstructions()
			engine.Start()
		case game.StatePlaying, game.StateBetNothing:
			playTurn(engine)
		}
	}

	printFarewell(engine, dealer.Seeds())
	logger.Info("table closed",
		"session", engine.History().SessionID,
		"rounds", len(engine.History().Rounds()),
		"balance", engine.Balance(),
	)
}

// playTurn runs one deal-bet-settle cycle. Read errors on either prompt end
// the game the same way declining to continue would.
func playTurn(engine *game.Engine) {
	first, second, showBalance := engine.Deal()
	if showBalance {
		printBalance(engine.Balance())
	}
	pterm.Println("HERE ARE YOUR NEXT TWO CARDS:")
	printBounds(first, second)

	raw, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText("WHAT IS YOUR BET").Show()
	if err != nil {
		engine.Finish()
		return
	}

	result := engine.PlaceBet(raw)
	switch result.Outcome {
	case game.OutcomeChicken:
		pterm.Warning.Println("CHICKEN!!")
	case game.OutcomeOverBet:
		pterm.Error.Println("SORRY, MY FRIEND, BUT YOU BET TOO MUCH.")
		pterm.Error.Printfln("YOU HAVE ONLY %d DOLLARS TO BET.", result.Balance)
	case game.OutcomeWin:
		printThird(result.Third)
		pterm.Success.Println("YOU WIN!!!")
	case game.OutcomeLose:
		printThird(result.Third)
		pterm.Error.Println("SORRY, YOU LOSE")
	case game.OutcomeBroke:
		printThird(result.Third)
		pterm.Error.Println("SORRY, YOU LOSE")
		pterm.Error.Println("SORRY, FRIEND, BUT YOU BLEW YOUR WAD.")
		answer, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText("TRY AGAIN (YES OR NO)?").Show()
		if err != nil {
			answer = "NO"
		}
		engine.Replay(answer)
	}
}
