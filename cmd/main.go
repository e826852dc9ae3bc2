package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/fivecard/showdown/deck"
	"github.com/fivecard/showdown/poker"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [seed]\n", os.Args[0])
		os.Exit(1)
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	seed := time.Now().UnixNano()
	if len(os.Args) == 2 {
		parsed, err := strconv.ParseInt(os.Args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "usage: %s [seed]\n", os.Args[0])
			os.Exit(1)
		}
		if parsed != 0 {
			seed = parsed
		}
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Show", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("down", pterm.FgDarkGray.ToStyle()),
	).Render()

	logger.Info("shuffling deck", "seed", seed)

	d := deck.New()
	d.Shuffle(rand.New(rand.NewSource(seed)))
	if err := d.Validate(); err != nil {
		logger.Error("shuffled deck failed validation", "error", err.Error())
		os.Exit(1)
	}

	rows, err := dealOrderRows(d)
	if err != nil {
		logger.Error("could not render deal order", "error", err.Error())
		os.Exit(1)
	}
	pterm.DefaultSection.Println("Deal order")
	if err := pterm.DefaultTable.WithData(rows).Render(); err != nil {
		logger.Error("could not render deal order", "error", err.Error())
		os.Exit(1)
	}

	handA, err := poker.Deal(d, 1)
	if err != nil {
		logger.Error("could not deal hand A", "error", err.Error())
		os.Exit(1)
	}
	handB, err := poker.Deal(d, 6)
	if err != nil {
		logger.Error("could not deal hand B", "error", err.Error())
		os.Exit(1)
	}

	catA := poker.Classify(handA.Ranks, handA.Suits)
	catB := poker.Classify(handB.Ranks, handB.Suits)

	pterm.DefaultSection.Println("Hands")
	err = pterm.DefaultPanel.WithPanels(pterm.Panels{{
		getHandPanel("HAND A", handA, catA),
		getHandPanel("HAND B", handB, catB),
	}}).Render()
	if err != nil {
		logger.Error("could not render hands", "error", err.Error())
		os.Exit(1)
	}

	pterm.DefaultSection.Println("Frequency tables")
	if err := pterm.DefaultTable.WithHasHeader().WithData(rankCountRows(handA, handB)).Render(); err != nil {
		logger.Error("could not render rank counts", "error", err.Error())
		os.Exit(1)
	}
	pterm.Println()
	if err := pterm.DefaultTable.WithHasHeader().WithData(suitCountRows(handA, handB)).Render(); err != nil {
		logger.Error("could not render suit counts", "error", err.Error())
		os.Exit(1)
	}

	err = pterm.DefaultPanel.WithPanels(pterm.Panels{{
		getVerdictPanel(catA, catB),
	}}).Render()
	if err != nil {
		logger.Error("could not render verdict", "error", err.Error())
		os.Exit(1)
	}
}
