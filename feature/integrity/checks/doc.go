// Package checks holds the individual integrity checks run by the integrity
// feature: workspace reachability, input export layout and archive schema.
package checks
