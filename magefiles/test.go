//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests of every package.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "-count=1", "./..."), withStream())
	return err
}

// Runs the curve, track and train tests with the race detector.
func (Test) Track() error {
	_, err := executeCmd("go", withArgs("test", "-race", "-count=1", "./spline/...", "./track/...", "./train/..."), withDir("engine"), withStream())
	return err
}
