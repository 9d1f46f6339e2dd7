package main

import "github.com/roomiebot/roomie/cmd"

func main() {
	cmd.Execute()
}
