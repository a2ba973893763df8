package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/tracer"
)

// parseScript reads a pointer-event script, one event per line:
//
//	begin  <id> <x> <y>
//	move   <id> <x> <y>
//	end    <id>
//	cancel <id>
//
// Blank lines and lines starting with '#' are skipped.
func parseScript(r io.Reader) ([]tracer.Event, error) {
	var events []tracer.Event
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ev, err := parseEvent(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func parseEvent(fields []string) (tracer.Event, error) {
	kind, err := tracer.ParseEventKind(fields[0])
	if err != nil {
		return tracer.Event{}, err
	}

	want := 4
	if kind == tracer.EventEnd || kind == tracer.EventCancel {
		want = 2
	}
	if len(fields) != want {
		return tracer.Event{}, fmt.Errorf("%s takes %d fields, got %d", kind, want, len(fields))
	}

	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return tracer.Event{}, fmt.Errorf("contact id: %w", err)
	}
	ev := tracer.Event{Kind: kind, ID: tracer.ContactID(id)}
	if want == 2 {
		return ev, nil
	}

	if ev.X, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return tracer.Event{}, fmt.Errorf("x: %w", err)
	}
	if ev.Y, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return tracer.Event{}, fmt.Errorf("y: %w", err)
	}
	return ev, nil
}
