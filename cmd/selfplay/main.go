// Command selfplay pits two agents against each other from the initial
// position and reports game results plus per-move timing statistics.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/montanaflynn/stats"

	"github.com/jade-guiton/chess/ai"
	"github.com/jade-guiton/chess/chess"
)

func makeAgent(spec string) (ai.Agent, error) {
	switch {
	case spec == "random":
		return ai.RandomAgent{}, nil
	case strings.HasPrefix(spec, "search:"):
		depth, err := strconv.Atoi(strings.TrimPrefix(spec, "search:"))
		if err != nil || depth < 1 {
			return nil, fmt.Errorf("bad search depth in agent spec %q", spec)
		}
		return ai.NewSearchAgent(depth), nil
	default:
		return nil, fmt.Errorf("unknown agent spec %q (want \"random\" or \"search:N\")", spec)
	}
}

type result struct {
	winner   string // "white", "black", or "draw"
	plies    int
	moveSecs []float64
}

func playGame(white, black ai.Agent, maxPlies int) result {
	pos, err := chess.ParseFEN(chess.FENStartPos)
	if err != nil {
		panic(err)
	}
	agents := [2]ai.Agent{white, black}
	var moveSecs []float64
	for {
		legal := pos.GenLegal()
		if len(legal) == 0 {
			winner := "draw"
			// The 75-move rule ends the game as a draw even from check.
			if pos.HalfMoveClock() < 75 && pos.IsInCheck(pos.SideToMove()) {
				winner = strings.ToLower(pos.SideToMove().Opponent().String())
			}
			return result{winner: winner, plies: pos.Ply() - 1, moveSecs: moveSecs}
		}
		if pos.Ply() > maxPlies {
			return result{winner: "draw", plies: pos.Ply() - 1, moveSecs: moveSecs}
		}
		agent := agents[pos.SideToMove()]
		t0 := time.Now()
		mov := agent.PickMove(pos, legal)
		moveSecs = append(moveSecs, time.Since(t0).Seconds())
		pos.ApplyMove(mov)
	}
}

func report(name string, secs []float64) {
	if len(secs) == 0 {
		return
	}
	data := stats.LoadRawData(secs)
	mean, err := stats.Mean(data)
	if err != nil {
		log.WithError(err).Fatal("computing move time stats")
	}
	median, _ := stats.Median(data)
	p95, _ := stats.Percentile(data, 95)
	log.WithFields(log.Fields{
		"agent":  name,
		"moves":  len(secs),
		"mean":   fmt.Sprintf("%.1fms", mean*1000),
		"median": fmt.Sprintf("%.1fms", median*1000),
		"p95":    fmt.Sprintf("%.1fms", p95*1000),
	}).Info("move times")
}

func main() {
	whiteSpec := flag.String("white", "search:5", "white agent (\"random\" or \"search:N\")")
	blackSpec := flag.String("black", "search:5", "black agent (\"random\" or \"search:N\")")
	games := flag.Int("games", 1, "number of games to play")
	maxPlies := flag.Int("max-plies", 400, "adjudicate a draw after this many half-moves")
	verbose := flag.Bool("v", false, "log each search")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	white, err := makeAgent(*whiteSpec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	black, err := makeAgent(*blackSpec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	wins := map[string]int{}
	var whiteSecs, blackSecs []float64
	for i := 0; i < *games; i++ {
		res := playGame(white, black, *maxPlies)
		wins[res.winner]++
		for j, s := range res.moveSecs {
			if j%2 == 0 {
				whiteSecs = append(whiteSecs, s)
			} else {
				blackSecs = append(blackSecs, s)
			}
		}
		log.WithFields(log.Fields{
			"game":   i + 1,
			"winner": res.winner,
			"plies":  res.plies,
		}).Info("game over")
	}

	log.WithFields(log.Fields{
		"white": wins["white"],
		"black": wins["black"],
		"draw":  wins["draw"],
	}).Info("final score")
	report(white.Name(), whiteSecs)
	report(black.Name(), blackSecs)
}
