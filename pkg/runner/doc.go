/*
Package runner implements the line-oriented play loop for a Derelict session.

It is the bridge between a [derelict.Session] and a terminal or a pipe.
The runner renders scenes through a pluggable IOHandler, reads player input,
plays animated exits and asks for confirmation before leaving the game.

# Key Components

  - Runner: the loop driving a session until the player exits or input ends.
  - IOHandler: decouples presentation (TextHandler, JSONHandler) from the loop.
  - ExitPolicy: decides whether an exit request really ends the game.

# Input

While a guard waits for an answer, each line is the answer. Otherwise a line
picks a choice by id, label or number. Lines starting with "/" are commands:
"/inventory" (or "/inv", "/i"), "/look" and "/quit" (or "/exit"). Any other
"/name" picks the choice name, which is how a player gives up on a riddle.

# Usage

	eng, _ := derelict.New()
	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)
	if err := r.Run(ctx, eng.NewSession()); err != nil {
		log.Fatal(err)
	}
*/
package runner
