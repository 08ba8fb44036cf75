package main

import "github.com/akmonengine/tortuosity/cmd/tortuosity/cmd"

func main() {
	cmd.Execute()
}
