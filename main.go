package main

import (
	"os"

	"github.com/gbunao/portfolio-cms/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
