//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the railroad scene in a window.
func (Run) Scene() error {
	fmt.Println("Run scene...")
	_, err := executeCmd("go", withArgs("run", ".", "--config", "assets/railroad.toml", "--watch", "--log-level", "debug"), withStream())
	return err
}

// Runs the railroad scene headless for a fixed number of ticks.
func (Run) Headless() error {
	fmt.Println("Run headless scene...")
	_, err := executeCmd("go", withArgs("run", ".", "--headless", "--ticks", "600"), withStream())
	return err
}
