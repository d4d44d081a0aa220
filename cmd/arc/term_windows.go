package main

import (
	"os"

	"github.com/pkg/errors"
)

// setRawIO() attempts to set stdin to raw IO and returns a function to
// restore IO settings as they were before.
func setRawIO() (func(), error) {
	return nil, errors.New("raw IO not supported")
}

func consoleSize(*os.File) (int, int) {
	return 0, 0
}
