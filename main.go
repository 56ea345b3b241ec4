// Package main is the entry point for bilidl.
package main

import (
	"github.com/bilidl/bilidl/cmd"
	"github.com/bilidl/bilidl/config"
	"github.com/bilidl/bilidl/extractor"
	"github.com/bilidl/bilidl/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go extractor.CollectGarbage()

	cmd.Execute()
}
