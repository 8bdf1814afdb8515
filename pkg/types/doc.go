// Package types defines the table, value, and sweep-metadata types shared by
// the notebook reconciler, the table providers, and the sweep store.
// Implements: prd001-notebook-core (Value, FieldDict, Tables, SweepSet);
//
//	docs/ARCHITECTURE § Data Model.
package types
