/*
Package ports defines the driven ports (interfaces) for the Derelict engine.

These interfaces decouple the core logic from where stories come from, so the
same engine can run the embedded story, a YAML file on disk or a graph assembled
in memory by tests.

# Key Interfaces

  - GraphLoader: Responsible for loading a Story (entry scene plus scene definitions).
*/
package ports
