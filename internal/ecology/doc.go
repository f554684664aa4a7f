// Package ecology provides population dynamics models for simulation.
//
// Each model implements the [ecodyn.System] interface, defining the
// differential equations governing the populations' evolution:
//
//   - [LotkaVolterra]: classic two-species predator-prey cycle
//   - [LogisticPrey]: predator-prey with density-limited prey growth
//
// Models also implement [ecodyn.Configurable] for runtime parameter
// adjustment; rate parameters are bounded by the course uncertainty
// ranges and SetParam rejects values outside them.
package ecology
