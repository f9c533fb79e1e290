// Package main provides the gntaxa CLI application.
// gntaxa answers taxonomy queries over local NCBI taxonomy dumps.
package main

import "github.com/gnames/gntaxa/cmd"

func main() {
	cmd.Execute()
}
