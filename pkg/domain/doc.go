/*
Package domain contains the core domain models of the Derelict narrative engine.

It defines the scene graph vocabulary and the session state, and is kept free of
I/O, following the same hexagonal split as the rest of the module.

# Key Entities

  - Scene: a node of the narrative graph (text, media, choices, entry effect).
  - Choice: a labeled option whose target is a scene, a Guard, or an exit request.
  - Guard: a transition gated by player input (text answers or a number).
  - State: the runtime snapshot of a session (current scene, inventory, history).
  - Render: what a host must present after each engine call.
*/
package domain
