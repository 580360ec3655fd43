// Command reversi plays a game between two players, each either a
// console-driven human or the search-backed AI, and prints the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tsukushibito/reversi/board"
	"github.com/tsukushibito/reversi/eval"
	"github.com/tsukushibito/reversi/player"
	"github.com/tsukushibito/reversi/search"
)

func main() {
	blackType := flag.String("black", "human", "Black player type (human/ai)")
	whiteType := flag.String("white", "ai", "White player type (human/ai)")
	depth := flag.Int("depth", 6, "AI search depth in plies")
	mode := flag.String("mode", "negaalpha", "AI search mode (negamax/negaalpha)")
	flag.Parse()

	log.SetOutput(os.Stdout)
	log.SetFlags(0)

	searchMode := search.NegaAlpha
	if *mode == "negamax" {
		searchMode = search.NegaMax
	}

	newPlayer := func(color board.Color, typ string) player.Player {
		if typ == "ai" {
			return player.NewAIPlayer(*depth, searchMode, eval.NewSimple())
		}
		return player.NewConsolePlayer(color, os.Stdin, os.Stdout)
	}

	game := player.NewGame(board.NewBitBoard(), newPlayer(board.ColorBlack, *blackType), newPlayer(board.ColorWhite, *whiteType))
	game.Logger = log.Default()

	log.Println("starting reversi")
	final := game.Run()

	player.RenderBoard(os.Stdout, final.Squares)
	fmt.Printf("game over: black=%d white=%d\n", final.BlackCount, final.WhiteCount)
}
