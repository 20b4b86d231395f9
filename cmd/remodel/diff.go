package main

import (
	"strings"

	"github.com/signadot/remodel/dom"
	"github.com/signadot/remodel/encode"
	"github.com/signadot/remodel/format"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// treeDiff returns a line diff of the outlines of a and b, or "" if they
// are the same.
func treeDiff(a, b *dom.Snapshot, colors bool) string {
	from := encode.MustString(a, encode.EncodeFormat(format.TreeFormat))
	to := encode.MustString(b, encode.EncodeFormat(format.TreeFormat))
	if from == to {
		return ""
	}
	dmp := diffpatch.New()
	fromChars, toChars, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)
	del, ins := "- ", "+ "
	if colors {
		del, ins = color.RedString("- "), color.GreenString("+ ")
	}
	res := &strings.Builder{}
	for _, d := range diffs {
		lead := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			lead = del
		case diffpatch.DiffInsert:
			lead = ins
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			res.WriteString(lead)
			res.WriteString(line)
		}
	}
	return res.String()
}

// treePatch returns the JSON merge patch taking a to b.
func treePatch(a, b *dom.Snapshot) ([]byte, error) {
	from, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	to, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(from, to)
}
