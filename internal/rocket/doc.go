// Package rocket implements the physical model of a vertically-launched
// reusable rocket in two dimensions: state, forces, fuel accounting, and
// a fixed-timestep integrator.
//
// The package is pure physics. It knows nothing about episodes, rewards,
// or rendering; those live in internal/env and internal/tui.
//
//   - [State]: rocket state at an instant
//   - [Params]: immutable physical constants for one vehicle/world
//   - [ForceModel]: net force/torque from control inputs and environment
//   - [Integrator]: semi-implicit Euler step with ground clamp
//
// All computations are deterministic; any randomness (wind sampling) is
// owned by the caller.
package rocket
