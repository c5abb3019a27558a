package main

import "lookandpick/internal/game"

func main() {
	game.RunDesktop()
}
