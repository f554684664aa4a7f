// Package ecodyn provides core simulation primitives for population
// dynamics models.
//
// The package defines the fundamental interfaces and types for fixed-step
// numerical simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: numerical stepping interface
//   - [Config]: step size and horizon for a run
//   - [Result]: one recorded trajectory
//
// # Example
//
//	sys := ecology.NewLotkaVolterra()
//	integ := integrators.NewEuler()
//	s := sim.New(sys, integ)
//	result, _ := s.Run(ctx, sys.DefaultState(), ecodyn.DefaultConfig())
//
// # Thread Safety
//
// A run only reads its own inputs and writes its own fresh output
// slices, so independent runs may proceed fully in parallel. See the
// experiment package for the batch runner.
package ecodyn
