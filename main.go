package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"wall-duel/internal/config"
	"wall-duel/internal/game"
	"wall-duel/internal/random"
	"wall-duel/internal/render"
)

// Hot-seat play in the terminal. Type "row col" to click a cell, "r" to
// start over, "q" to quit.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	size := flag.Int("size", cfg.Game.GridSize, "grid size")
	dark := flag.Int("dark", cfg.Game.DarkCells, "number of dark cells")
	seed := flag.Int64("seed", cfg.Game.Seed, "layout seed (0 draws one)")
	flag.Parse()

	if *seed == 0 {
		if *seed, err = random.NewSeed(); err != nil {
			log.Fatal(err)
		}
	}

	g, err := game.NewGameWithOptions(game.Options{Size: *size, DarkCells: *dark}, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("seed %d\n", *seed)

	if err := play(g, os.Stdin, render.NewContext(os.Stdout, 1)); err != nil {
		log.Fatal(err)
	}
}

func play(g *game.Game, in io.Reader, ctx *render.Context) error {
	reader := bufio.NewReader(in)
	for {
		if err := ctx.DrawBoard(g); err != nil {
			return err
		}
		if g.State() == game.GameOver {
			fmt.Fprintln(ctx.Out, "press enter for a new game, q to quit")
		}
		fmt.Fprint(ctx.Out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			if strings.TrimSpace(line) == "" {
				return nil
			}
		}
		parts := strings.Fields(line)

		switch {
		case len(parts) == 1 && parts[0] == "q":
			return nil
		case g.State() == game.GameOver || (len(parts) == 1 && parts[0] == "r"):
			if g, err = g.Reset(); err != nil {
				return err
			}
			continue
		case len(parts) != 2:
			fmt.Fprintln(ctx.Out, "Format: row col")
			continue
		}

		row, errR := strconv.Atoi(parts[0])
		col, errC := strconv.Atoi(parts[1])
		if errR != nil || errC != nil {
			fmt.Fprintln(ctx.Out, "Format: row col")
			continue
		}
		out, err := g.Click(row, col)
		if err != nil {
			fmt.Fprintln(ctx.Out, "Invalid:", err)
			continue
		}
		if out.Move != nil && out.Move.Captured != nil {
			fmt.Fprintf(ctx.Out, "%v captured at %v\n", out.Move.Player, out.Move.To)
		}
	}
}
