package main

import (
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lichensongs/Nash-ISMCTS/experiments"
	"github.com/lichensongs/Nash-ISMCTS/experiments/metrics"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := experiments.DefaultConfig()
	if len(os.Args) > 1 {
		loaded, err := experiments.LoadConfig(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Str("path", os.Args[1]).Msg("cannot load experiment config")
		}
		cfg = loaded
	}

	output := termenv.NewOutput(os.Stdout)
	output.HideCursor()
	defer output.ShowCursor()

	fmt.Printf("Running %q: %d deals x %d simulations\n", cfg.Name, cfg.Games, cfg.Simulations)

	dealerScore := 0.0
	records, summary, err := experiments.Run(cfg, func(done, total int, record metrics.GameRecord) {
		dealerScore += record.DealerScore
		output.ClearLine()
		fmt.Printf("\r%s %s",
			output.String(fmt.Sprintf("deal %d/%d", done, total)).Foreground(output.Color("6")),
			output.String(fmt.Sprintf("dealer total %+.0f", dealerScore)).Foreground(output.Color("3")))
	})
	fmt.Println()
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	perDeal := summary.Duration
	if summary.Deals > 0 {
		perDeal = summary.Duration / time.Duration(summary.Deals)
	}
	fmt.Printf("%d deals, %d simulations in %s (%s per deal)\n",
		summary.Deals, summary.Simulations, summary.Duration, perDeal)
	fmt.Printf("dealer scored %+.0f over %d deals\n", dealerScore, len(records))
}
