// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host implements an interactive battle runner for the mars
// simulator: a REPL that loads warrior source files, configures battle
// parameters, runs battles, and reports pMARS-style scores.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/cmd"

	"github.com/ondrik/redmars/disasm"
	"github.com/ondrik/redmars/mars"
	"github.com/ondrik/redmars/redcode"
)

type state byte

const (
	stateProcessingCommands state = iota
	stateRunning
)

// warriorSlot holds one loaded warrior and the source it was parsed from.
type warriorSlot struct {
	name     string
	filename string
	parsed   redcode.ParsedWarrior
	loaded   bool
}

// A Host runs an interactive session against the mars simulator: it holds
// two warrior slots, a set of battle parameters, and an optional trace
// sink, and dispatches REPL commands against them.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	state       state
	lastCmd     *cmd.Selection

	params    mars.BattleParameters
	settings  *settings
	warriors  [2]warriorSlot
	tracer    *mars.Tracer
	tracePath string
}

// New creates a host with pMARS-standard default battle parameters. If
// REDCODE_TRACE_FILE is set in the environment, tracing starts enabled
// against that path, mirroring the way the rest of this host's startup
// configuration (battle parameters) comes from explicit values rather than
// hidden global state.
func New() *Host {
	h := &Host{
		state: stateProcessingCommands,
		params: mars.BattleParameters{
			CoreSize:         8000,
			MaxCycles:        8000,
			MaxProcesses:     8000,
			ReadLimit:        8000,
			WriteLimit:       8000,
			MinDistance:      100,
			MaxWarriorLength: 100,
			Rounds:           1,
		},
	}
	h.settings = newSettings(&h.params)

	if path := os.Getenv("REDCODE_TRACE_FILE"); path != "" {
		if t, err := mars.NewTracer(path); err == nil {
			h.tracer = t
			h.tracePath = path
		}
	}

	return h
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the next command to be entered.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	if interactive {
		h.println("redmars battle host. Type 'help' for a command list.")
	}

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		if err := h.processCommand(line); err != nil {
			break
		}
	}
}

// Break returns the host to command-processing state; a battle already
// inside mars.RunBattle is not stopped and runs to completion. Outside a
// battle it prints a reminder of how to quit and re-displays the prompt.
func (h *Host) Break() {
	h.println()
	switch h.state {
	case stateRunning:
		h.state = stateProcessingCommands
	case stateProcessingCommands:
		h.println("Type 'quit' to exit the application.")
		h.prompt()
	}
}

func (h *Host) processCommand(line string) error {
	var c cmd.Selection
	if line != "" {
		var err error
		c, err = cmds.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			h.println("Command not found.")
			return nil
		case err == cmd.ErrAmbiguous:
			h.println("Command is ambiguous.")
			return nil
		case err != nil:
			h.printf("ERROR: %v.\n", err)
			return nil
		}
	} else if h.lastCmd != nil {
		c = *h.lastCmd
	}

	if c.Command == nil {
		return nil
	}
	if c.Command.Data == nil && c.Command.Subtree != nil {
		h.displayCommands(c.Command.Subtree, nil)
		return nil
	}

	h.lastCmd = &c

	handler := c.Command.Data.(func(*Host, cmd.Selection) error)
	return handler(h, c)
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if !h.interactive {
		return
	}
	h.printf("mars> ")
	h.flush()
}

func (h *Host) slot(n int) (*warriorSlot, error) {
	if n != 1 && n != 2 {
		return nil, fmt.Errorf("warrior number must be 1 or 2, got %d", n)
	}
	return &h.warriors[n-1], nil
}

func (h *Host) cmdLoad(c cmd.Selection, n int) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	filename := c.Args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	w, err := redcode.Parse(string(data), h.params.MaxWarriorLength, h.params.Strict1988Mode)
	if err != nil {
		h.printf("ERROR: %v\n", err)
		return nil
	}

	slot, err := h.slot(n)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	slot.name = w.Name
	if slot.name == "" {
		slot.name = filename
	}
	slot.filename = filename
	slot.parsed = w
	slot.loaded = true

	h.printf("Loaded warrior %d '%s' (%d instructions) from '%s'.\n", n, slot.name, len(w.Instructions), filename)
	return nil
}

func (h *Host) cmdLoad1(c cmd.Selection) error { return h.cmdLoad(c, 1) }
func (h *Host) cmdLoad2(c cmd.Selection) error { return h.cmdLoad(c, 2) }

func (h *Host) cmdList(c cmd.Selection) error {
	ns := []int{1, 2}
	if len(c.Args) > 0 {
		n, err := strconv.Atoi(c.Args[0])
		if err != nil || (n != 1 && n != 2) {
			h.println("Warrior number must be 1 or 2.")
			return nil
		}
		ns = []int{n}
	}

	for _, n := range ns {
		slot, _ := h.slot(n)
		if !slot.loaded {
			h.printf("Warrior %d is not loaded.\n", n)
			continue
		}
		h.printf("Warrior %d: %s\n", n, slot.name)
		h.output.WriteString(disasm.Warrior(slot.parsed))
		h.flush()
	}
	return nil
}

// cmdShow summarizes the hosting session: which warriors are loaded and
// whether tracing is active. Unlike "set" with no arguments, which dumps
// every battle parameter, "show" reports session state.
func (h *Host) cmdShow(c cmd.Selection) error {
	for n := 1; n <= 2; n++ {
		slot, _ := h.slot(n)
		if !slot.loaded {
			h.printf("Warrior %d: (not loaded)\n", n)
			continue
		}
		h.printf("Warrior %d: %s (%d instructions, entry %d) from '%s'\n",
			n, slot.name, len(slot.parsed.Instructions), slot.parsed.EntryPoint, slot.filename)
	}
	if h.tracer == nil {
		h.println("Tracing: off")
	} else {
		h.printf("Tracing: on, writing to '%s'\n", h.tracePath)
	}
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Battle parameters:")
		h.settings.Display(h.output)

	case 1:
		h.displayUsage(c.Command)

	default:
		key, value := c.Args[0], strings.Join(c.Args[1:], " ")
		switch h.settings.Kind(key) {
		case reflect.Invalid:
			h.printf("setting '%s' not found\n", key)
		default:
			if err := h.settings.Set(key, value); err != nil {
				h.printf("%v\n", err)
			} else {
				h.println("Setting updated.")
			}
		}
	}
	return nil
}

func (h *Host) cmdTrace(c cmd.Selection) error {
	if len(c.Args) == 0 {
		if h.tracer == nil {
			h.println("Tracing is off.")
		} else {
			h.printf("Tracing is on, writing to '%s'.\n", h.tracePath)
		}
		return nil
	}

	switch strings.ToLower(c.Args[0]) {
	case "off":
		if h.tracer != nil {
			h.tracer.Close()
			h.tracer = nil
		}
		h.println("Tracing disabled.")
	default:
		path := c.Args[0]
		t, err := mars.NewTracer(path)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		if h.tracer != nil {
			h.tracer.Close()
		}
		h.tracer = t
		h.tracePath = path
		h.printf("Tracing to '%s'.\n", path)
	}
	return nil
}

func (h *Host) cmdRun(c cmd.Selection) error {
	if !h.warriors[0].loaded || !h.warriors[1].loaded {
		h.println("Both warrior 1 and warrior 2 must be loaded before running.")
		return nil
	}
	if err := h.params.Validate(); err != nil {
		h.printf("ERROR: %v\n", err)
		return nil
	}

	h.state = stateRunning
	s1, s2, err := mars.RunBattle(h.params, h.warriors[0].parsed, h.warriors[1].parsed, h.tracer)
	h.state = stateProcessingCommands
	if err != nil {
		h.printf("ERROR: %v\n", err)
		return nil
	}

	h.output.WriteString(mars.FormatScores(h.warriors[0].name, h.warriors[1].name, s1, s2))
	h.flush()
	return nil
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	switch {
	case len(c.Args) == 0:
		h.displayCommands(cmds, nil)
	default:
		s, err := cmds.Lookup(strings.Join(c.Args, " "))
		if err != nil {
			h.printf("%v\n", err)
		} else {
			switch {
			case s.Command.Subtree != nil:
				h.displayCommands(s.Command.Subtree, s.Command)
			default:
				if s.Command.Usage != "" {
					h.printf("Usage: %s\n\n", s.Command.Usage)
				}
				switch {
				case s.Command.Description != "":
					h.printf("Description:\n%s\n\n", indentWrap(3, s.Command.Description))
				case s.Command.Brief != "":
					h.printf("Description:\n%s.\n\n", indentWrap(3, s.Command.Brief))
				}
				if len(s.Command.Shortcuts) > 0 {
					switch {
					case len(s.Command.Shortcuts) > 1:
						h.printf("Shortcuts: %s\n\n", strings.Join(s.Command.Shortcuts, ", "))
					default:
						h.printf("Shortcut: %s\n\n", s.Command.Shortcuts[0])
					}
				}
			}
		}
	}
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	if h.tracer != nil {
		h.tracer.Close()
	}
	return errors.New("exiting program")
}

func (h *Host) displayUsage(c *cmd.Command) {
	if c.Usage != "" {
		h.printf("Usage: %s\n", c.Usage)
	}
}

func (h *Host) displayCommands(commands *cmd.Tree, c *cmd.Command) {
	h.printf("%s commands:\n", commands.Title)
	for _, cc := range commands.Commands {
		if cc.Brief != "" {
			h.printf("    %-15s  %s\n", cc.Name, cc.Brief)
		}
	}
	h.println()

	if c != nil && len(c.Shortcuts) > 0 {
		switch {
		case len(c.Shortcuts) > 1:
			h.printf("Shortcuts: %s\n\n", strings.Join(c.Shortcuts, ", "))
		default:
			h.printf("Shortcut: %s\n\n", c.Shortcuts[0])
		}
	}
}
