package tuitest

import (
	"bytes"
	"testing"
)

func TestResponderAnswersCursorQueryAcrossReads(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("hello\x1b[6"))
	if out.Len() != 0 {
		t.Fatalf("partial query answered early: %q", out.String())
	}
	tr.Process([]byte("n world"))
	if out.String() != "\x1b[1;1R" {
		t.Fatalf("unexpected response %q", out.String())
	}
}

func TestResponderAnswersBackgroundQuery(t *testing.T) {
	var out bytes.Buffer
	newTerminalResponder(&out).Process([]byte("\x1b]11;?\x07"))
	if out.String() != "\x1b]11;rgb:0000/0000/0000\x07" {
		t.Fatalf("unexpected response %q", out.String())
	}
}
