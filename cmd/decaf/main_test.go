package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/funvibe/decaf/internal/config"
)

func TestMain(m *testing.M) {
	config.IsTestMode = true
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"decaf": Main,
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
