package tuitest

import (
	"bytes"
	"io"
)

// queryReply pairs a terminal capability query with the answer a plain dark
// terminal would give. Without answers, programs probing the background
// color or cursor position stall until their own timeout.
type queryReply struct {
	query []byte
	reply []byte
}

var terminalReplies = []queryReply{
	{query: []byte("\x1b[6n"), reply: []byte("\x1b[1;1R")},
	{query: []byte("\x1b]10;?\x07"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{query: []byte("\x1b]10;?\x1b\\"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{query: []byte("\x1b]11;?\x07"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{query: []byte("\x1b]11;?\x1b\\"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

const (
	responderMaxBuffer = 256
	responderTail      = 64
)

type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, responderMaxBuffer/2)}
}

// Process scans output for queries, including ones split across reads.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerOne() {
	}
	if len(tr.buf) > responderMaxBuffer {
		tr.buf = tr.buf[len(tr.buf)-responderTail:]
	}
}

// answerOne replies to the earliest pending query and drops the buffer up to
// its end.
func (tr *terminalResponder) answerOne() bool {
	first, end := -1, 0
	var reply []byte
	for _, qr := range terminalReplies {
		idx := bytes.Index(tr.buf, qr.query)
		if idx < 0 || (first >= 0 && idx >= first) {
			continue
		}
		first, end, reply = idx, idx+len(qr.query), qr.reply
	}
	if first < 0 {
		return false
	}
	tr.buf = tr.buf[end:]
	_, _ = tr.w.Write(reply)
	return true
}
