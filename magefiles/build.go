//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Tidies the module and builds the anima binary into bin/.
func (Build) Binary() error {
	if err := goModTidy(); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("build", "-o", "bin/anima", "."), withStream())
	return err
}
