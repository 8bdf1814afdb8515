// Package notebook implements the lab-notebook reconciler and the stimulus
// wave-note decoder. The reconciler classifies raw notebook rows by entry
// source, merges the fragmented per-sweep records into one grid per sweep,
// finalizes each grid with the broadcast rules, and overlays the textual
// table. The decoder recovers structured epoch metadata from the Stim Wave
// Note mini-language.
// Implements: prd001-notebook-core; docs/ARCHITECTURE § Reconciler.
package notebook
