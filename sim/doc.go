// Package sim provides the deterministic SIR epidemic simulation core.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - params.go / state.go: the value types (ModelParameters, CompartmentState, TimeSeries)
//   - integrator.go: the adaptive Dormand-Prince solver for the SIR system
//   - scenario.go: the Composer, which splices simulation segments at
//     intervention change-points while carrying state forward
//
// # Architecture
//
// Everything is a pure function of its inputs: a "model" is a ModelParameters
// value, a run is Integrate(params, initial, grid), and composed runs are a
// fold over intervention segments. The Composer adds batch reducers on top
// (SweepReproductionNumber, CompareScenarios) that turn trajectories into
// ScenarioResult summaries via Summarize.
//
// The package does no I/O except LoadScenarioFile, which reads one YAML
// comparison spec. Rendering (charts, tables, CSV) is the caller's concern;
// the cmd package is the reference consumer.
package sim
