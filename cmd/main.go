package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/FishDontExist/SOLinspector/chain"
	"github.com/FishDontExist/SOLinspector/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	accounts, err := config.WatchedAccounts()
	if err != nil {
		log.Fatal().Err(err).Msg("bad account list")
	}

	node := chain.New()
	inspector := chain.NewInspector(node, os.Stdout)
	inspector.Run(accounts)
}
