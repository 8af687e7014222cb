package main

import (
	"bytes"
	"log"
	"testing"
)

func TestSilenceLogRestoresOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	restore := silenceLog(true)
	log.Print("hidden")
	restore()
	log.Print("Exited with score 3")

	if bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Errorf("log written while silenced: %q", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("Exited with score 3")) {
		t.Errorf("log not restored after silence: %q", buf.String())
	}
}

func TestSilenceLogVerbose(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	restore := silenceLog(false)
	log.Print("kept")
	restore()

	if !bytes.Contains(buf.Bytes(), []byte("kept")) {
		t.Errorf("verbose mode discarded logs: %q", buf.String())
	}
}
