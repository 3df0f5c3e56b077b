package main

import (
	"os"

	"github.com/Dosada05/tournament-scheduler/cli"
)

func main() {
	os.Exit(cli.Execute())
}
