// Package main is the entry point for the AlgoLab CLI.
package main

import "github.com/TechnoBlogger14o3/AlgoLab/cmd"

func main() {
	cmd.Execute()
}
