/*
Package derelict is a scene-graph narrative engine for branching text adventures.

A story is a fixed graph of scenes. Each scene carries narrative text, an opaque media
reference and the choices it offers: plain moves to another scene, guarded moves that
only fire once the player types an accepted answer, and exit requests. Entering a scene
may grant an inventory item, exactly once.

# Concept

The engine never performs I/O. A host (terminal runner, TUI, HTTP or MCP server) asks
a Session for a Render, shows it, collects the player's pick or answer and calls back.
Wrong answers are ordinary results carried on Render.Outcome; only programmer errors
(unknown scenes, unknown choices, answers with no guard pending) are returned as errors.

# Usage

	eng, err := derelict.New() // built-in "Sci-Fi Adventure"
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	sess := eng.NewSession()
	render, _ := sess.Start(ctx)
	fmt.Println(render.Text)

	render, _ = sess.Choose(ctx, "explore-ship")
	render, _ = sess.Choose(ctx, "mysterious-corridor")
	render, _ = sess.Choose(ctx, "solve-riddle")
	if render.AwaitingInput() {
		render, _ = sess.ResolveGuardedTransition(ctx, "echo")
	}
	fmt.Println(render.Outcome, render.SceneID) // success alien-chamber

Custom stories can be loaded from YAML (pkg/adapters/file), assembled in memory
(pkg/adapters/memory) or built with the fluent builder in pkg/dsl.
*/
package derelict
