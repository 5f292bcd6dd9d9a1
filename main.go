// Package main is the entry point for the cricmetrics CLI tool, which reads
// ball-by-ball cricket match records and computes batting statistics.
package main

import "github.com/pable/go-cricket-metrics/cmd"

func main() {
	cmd.Execute()
}
