// SPDX-License-Identifier: MIT

// Package engine coordinates the simulation pipeline
//
//	noise → signal → (end-tidal, design) → glm → metrics
//
// and reruns only the stages a configuration change invalidates.
//
// Two layers:
//   - Classify, PlanFor and Recompute are pure: a snapshot diff becomes a
//     Category, a Category becomes a Plan, and Recompute applies a Plan to a
//     clone of the previous Output.
//   - Engine owns the process-lifetime state (noise cache, CO₂ phase,
//     current Output) and notifies subscribers after every action.
//
// Engine is not safe for concurrent use; callers serialize actions.
package engine
