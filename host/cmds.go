// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree("redmars")

	root.AddCommand(cmd.Command{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})
	root.AddCommand(cmd.Command{
		Name:  "load1",
		Brief: "Load warrior 1 from a Redcode source file",
		Description: "Parse the file as a single Redcode warrior and store" +
			" it as warrior 1, rejecting it outright on the first violated rule.",
		Usage: "load1 <filename>",
		Data:  (*Host).cmdLoad1,
	})
	root.AddCommand(cmd.Command{
		Name:  "load2",
		Brief: "Load warrior 2 from a Redcode source file",
		Description: "Parse the file as a single Redcode warrior and store" +
			" it as warrior 2, rejecting it outright on the first violated rule.",
		Usage: "load2 <filename>",
		Data:  (*Host).cmdLoad2,
	})
	root.AddCommand(cmd.Command{
		Name:  "list",
		Brief: "Disassemble a loaded warrior",
		Description: "Display the canonical rendering of every instruction" +
			" in the given warrior. With no argument, list both.",
		Usage: "list [1|2]",
		Data:  (*Host).cmdList,
	})
	root.AddCommand(cmd.Command{
		Name:  "run",
		Brief: "Run a battle between warrior 1 and warrior 2",
		Description: "Validate the current battle parameters, then run the" +
			" configured number of rounds between the two loaded warriors" +
			" and report their scores in pMARS ABI form.",
		Usage: "run",
		Data:  (*Host).cmdRun,
	})
	root.AddCommand(cmd.Command{
		Name:  "set",
		Brief: "Set a battle parameter",
		Description: "Set the value of a battle parameter, such as coresize" +
			" or rounds. To see the current values of all parameters, type" +
			" set without any arguments.",
		Usage: "set [<param> <value>]",
		Data:  (*Host).cmdSet,
	})
	root.AddCommand(cmd.Command{
		Name:  "show",
		Brief: "Show loaded warriors and trace status",
		Description: "Report which warriors are loaded, their instruction" +
			" counts and entry points, and whether execution tracing is" +
			" currently enabled.",
		Usage: "show",
		Data:  (*Host).cmdShow,
	})
	root.AddCommand(cmd.Command{
		Name:  "trace",
		Brief: "Enable or disable execution tracing",
		Description: "With no arguments, report whether tracing is enabled." +
			" With a filename, enable tracing to that file. With 'off'," +
			" disable tracing.",
		Usage: "trace [<filename> | off]",
		Data:  (*Host).cmdTrace,
	})
	root.AddCommand(cmd.Command{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})

	root.AddShortcut("l1", "load1")
	root.AddShortcut("l2", "load2")
	root.AddShortcut("r", "run")
	root.AddShortcut("?", "help")

	cmds = root
}
