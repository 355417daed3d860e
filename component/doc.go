// Package component defines lifecycle contracts for managed
// infrastructure components. Applications that start and stop their
// dependencies in a controlled order implement Component for each of
// them; Describable adds optional startup-summary reporting.
package component
