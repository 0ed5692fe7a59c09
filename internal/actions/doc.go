// Package actions applies user intents to a calculator session.
//
// Each action corresponds to something the user does in a presentation
// layer (add a stage, remove one, edit a field, calculate, plot) and is
// applied synchronously by Session.Dispatch, which returns a View to render.
//
// Key patterns:
//   - Presentation layers never touch the stage sequence directly
//   - Validation failures become status text, never a crash
//   - The last successful result survives later failed calculations
//
// Dependencies:
//   - stage: The ordered, editable stage list
//   - engine: Validation and the rocket equation
//   - chart: Bar chart data for Plot
package actions
