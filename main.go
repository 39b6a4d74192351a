package main

import (
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/go-play/cmd"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
