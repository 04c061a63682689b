// Package env turns the raw physics in internal/rocket into a step-wise
// decision process: a reset/step environment with a fixed action and
// observation contract, reward shaping, and an episode state machine
// (Flying, Landed, Crashed, TimedOut).
//
// The environment is single-threaded and turn-based: exactly one Step
// call advances exactly one fixed timestep of simulated time. Given the
// same seed and the same action sequence, trajectories are bit-identical;
// all randomness (wind) is drawn from a source owned by the episode and
// reseeded on Reset.
//
// Rendering is not this package's concern. A renderer reads Snapshot()
// and draws; the environment never imports presentation code.
package env
