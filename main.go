package main

import "github.com/Vishnu-Cyber-Blip/f1-race-replay/cmd"

func main() {
	cmd.Execute()
}
