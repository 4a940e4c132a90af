package main

import (
	"os"

	"github.com/dakotalock/holy-grail-app-1750546242/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
