package main

import (
	"testing"
)

func TestCommandsRegistered(t *testing.T) {
	want := []string{"init", "describe", "sample", "tstat", "parametric", "permtest", "qq", "runs", "report", "watch"}
	have := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestStudyRunnerUnknown(t *testing.T) {
	if _, err := studyRunner("bogus"); err == nil {
		t.Error("unknown study should fail")
	}
}

func TestRootFlags(t *testing.T) {
	for _, flag := range []string{"config", "data", "seed", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q missing", flag)
		}
	}
}
