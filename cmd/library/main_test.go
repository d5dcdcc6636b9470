package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/library-circulation/cmd/library/config"
	"github.com/matryer/is"
)

func TestRun(t *testing.T) {

	t.Run("runs a scripted session against a pinned date", func(t *testing.T) {
		is := is.New(t)

		cfg, err := config.Load()
		is.NoErr(err)
		cfg.Today = "2024-01-01"

		script := strings.Join([]string{
			"1", "B1", "Kokoro", "Natsume Soseki", "1",
			"4", "M1", "Taro",
			"6", "B1", "M1",
			"11",
		}, "\n")

		var out, logs bytes.Buffer
		err = run(context.Background(), cfg, strings.NewReader(script), &out, &logs, false)
		is.NoErr(err)
		is.True(strings.Contains(out.String(), `Lent "Kokoro" to Taro.`))
		is.True(strings.Contains(out.String(), "Due: 2024-01-08"))
		is.True(strings.Contains(out.String(), "Exiting the library circulation tracker."))
	})

	t.Run("the today flag must be a date", func(t *testing.T) {
		is := is.New(t)

		cmd := newRootCmd()
		cmd.SetArgs([]string{"--today", "yesterday"})
		cmd.SetOut(&bytes.Buffer{})

		err := cmd.Execute()
		is.True(err != nil)
		is.True(strings.Contains(err.Error(), "LIBRARY_TODAY"))
	})
}
