//go:build mage
// +build mage

package main

import (
	"log"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace
type Test mg.Namespace

var Default = Build.Cmds

func kicscheckCmd() error {
	log.Printf("Building...")
	return sh.RunV("go", "build", "-o", "bin/kicscheck", "./pkg/cmd/kicscheck")
}

func (Build) Cmds() {
	mg.Deps(Clean, kicscheckCmd)
}

// Run linter against codebase
func (Build) Lint() error {
	log.Printf("Linting...")
	return sh.RunV("golangci-lint", "run", "./...")
}

// Run tests in verbose mode
func (Test) Verbose() error {
	return sh.RunV("go", "test", "-v", "./...")
}

func (Test) Default() error {
	return sh.RunV("go", "test", "./...")
}

// Removes built files
func Clean() error {
	log.Printf("Cleaning all")
	return sh.Rm("bin")
}
