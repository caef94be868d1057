// Package a2a implements the Agent-to-Agent semantic model that sits above
// raw MXP frames: messages, tasks, artifacts, and agent cards. Every type in
// this package round-trips losslessly through JSON with lowerCamelCase keys
// and tolerates unknown keys on the way in.
package a2a
