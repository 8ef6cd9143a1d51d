package main

import "github.com/SaiNageswarS/video-mcp/cmd"

func main() {
	cmd.Execute()
}
