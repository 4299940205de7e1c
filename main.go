package main

import "medialog/cmd"

func main() {
	cmd.Execute()
}
