package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fivecard/showdown/deck"
	"github.com/fivecard/showdown/poker"
)

// dealOrderRows lays the 52 dealt cards out column-major: one column
// per suit row of the grid, 13 rows, each cell "order card".
func dealOrderRows(d *deck.Deck) (pterm.TableData, error) {
	rows := make(pterm.TableData, deck.Faces)
	for r := 0; r < deck.Faces; r++ {
		rows[r] = make([]string, deck.Suits)
		for c := 0; c < deck.Suits; c++ {
			order := c*deck.Faces + r + 1
			suit, face, err := d.Find(order)
			if err != nil {
				return nil, err
			}
			rank, err := poker.RankFromFace(face)
			if err != nil {
				return nil, err
			}
			card, err := poker.NewCard(uint8(suit), rank)
			if err != nil {
				return nil, err
			}
			rows[r][c] = pterm.Sprintf("%2d %s", order, card.String())
		}
	}
	return rows, nil
}

func rankLabel(rank int) string {
	switch rank {
	case poker.Jack:
		return "J"
	case poker.Queen:
		return "Q"
	case poker.King:
		return "K"
	case poker.Ace:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}

// rankCountRows builds the rank frequency table for both hands, one
// column per rank 2..A.
func rankCountRows(a, b poker.Hand) pterm.TableData {
	header := []string{"Rank"}
	rowA := []string{"Hand A"}
	rowB := []string{"Hand B"}
	for r := 2; r <= poker.Ace; r++ {
		header = append(header, rankLabel(r))
		rowA = append(rowA, strconv.Itoa(a.Ranks[r]))
		rowB = append(rowB, strconv.Itoa(b.Ranks[r]))
	}
	return pterm.TableData{header, rowA, rowB}
}

// suitCountRows builds the suit frequency table for both hands.
func suitCountRows(a, b poker.Hand) pterm.TableData {
	header := []string{"Suit"}
	rowA := []string{"Hand A"}
	rowB := []string{"Hand B"}
	for s := 0; s <= poker.Spade; s++ {
		header = append(header, poker.SuitName(uint8(s)))
		rowA = append(rowA, strconv.Itoa(a.Suits[s]))
		rowB = append(rowB, strconv.Itoa(b.Suits[s]))
	}
	return pterm.TableData{header, rowA, rowB}
}

func getHandPanel(title string, h poker.Hand, c poker.Category) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	handString := pterm.Sprintfln("%s", h.String())
	handString += pterm.Sprintfln("%s", pterm.LightCyan(c.String()))
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|" + title + "|")).WithTitleTopCenter().Sprintf("%s", handString)}
}

func getVerdictPanel(catA, catB poker.Category) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	infoString := verdictLine(catA, catB)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprintf("%s", infoString)}
}

// verdictLine reports the winner by category. Equal categories are a
// tie because kickers are not compared.
func verdictLine(catA, catB poker.Category) string {
	switch poker.Compare(catA, catB) {
	case -1:
		return pterm.Sprintfln("Hand A wins: %s beats %s", catA, catB)
	case 1:
		return pterm.Sprintfln("Hand B wins: %s beats %s", catB, catA)
	default:
		return pterm.Sprintfln("Tie: both hands hold %s and kickers are not compared", catA)
	}
}
