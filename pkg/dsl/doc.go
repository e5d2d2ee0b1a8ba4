/*
Package dsl provides a fluent Go builder for constructing Derelict scene graphs.

It is an alternative to YAML story documents when scenes are generated in code
or written inline in tests.

Example usage:

	b := dsl.New()

	b.Add("corridor").
		Text("A riddle is carved into the wall.").
		Media("puzzle.png").
		GuardedChoice("solve-riddle", "Solve the riddle").
		Prompt("Enter your answer for the riddle:").
		Answers("echo").
		Success("chamber").
		OnFailure("Try again!").
		Escape("Give up and return", "corridor").
		Done().
		Exit("Leave")

	b.Add("chamber").
		Text("A hidden door slides open.").
		Exit("Leave")

	g, err := b.Build()
*/
package dsl
